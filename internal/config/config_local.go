//go:build !gcloud

package config

import "errors"

func (c *PubSubConfig) Validate() error {
	if c.Topic == "" {
		return errors.New("PUBSUB_TOPIC is required for event publishing")
	}

	return nil
}
