//go:build gcloud

package config

import "errors"

func (c *PubSubConfig) Validate() error {
	if c.GCloudProjectID == "" {
		return errors.New("GOOGLE_CLOUD_PROJECT is required for event publishing")
	}

	if c.Topic == "" {
		return errors.New("PUBSUB_TOPIC is required for event publishing")
	}

	return nil
}
