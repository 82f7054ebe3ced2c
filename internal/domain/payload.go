package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"unicode/utf8"
)

// attributeKeys are the top-level fields lifted into message attributes so
// subscribers can filter without decoding the payload.
var attributeKeys = []string{
	"request_id",
	"session_id",
	"trace_id",
	"conversation_id",
}

// Payload is a JSON value bound for a topic, held together with its
// canonical re-encoding. The re-encoded bytes are what gets transmitted.
type Payload struct {
	value any
	data  []byte
}

func ParsePayload(raw []byte) (Payload, error) {
	// JSON text must be UTF-8; decoding would silently replace bad bytes
	// with U+FFFD and mutate the transmitted payload.
	if !utf8.Valid(raw) {
		return Payload{}, fmt.Errorf("%w: invalid UTF-8", ErrMalformedPayload)
	}

	// UseNumber keeps numeric literals intact through re-encoding; decoding
	// into any otherwise rounds large integers through float64.
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	var value any
	if err := decoder.Decode(&value); err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	// Decode stops after the first complete value; the document must be
	// exactly one value.
	if !json.Valid(raw) {
		return Payload{}, fmt.Errorf("%w: trailing data after top-level value", ErrMalformedPayload)
	}

	return newPayload(value)
}

func ParsePayloadBatch(raw []byte) ([]Payload, error) {
	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil {
		if !json.Valid(raw) {
			return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
		}

		return nil, ErrPayloadNotArray
	}

	// A JSON null unmarshals into a nil slice without error.
	if elements == nil {
		return nil, ErrPayloadNotArray
	}

	if len(elements) == 0 {
		return nil, ErrEmptyBatch
	}

	payloads := make([]Payload, 0, len(elements))
	for i, element := range elements {
		payload, err := ParsePayload(element)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}

		payloads = append(payloads, payload)
	}

	return payloads, nil
}

func newPayload(value any) (Payload, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	return Payload{
		value: value,
		data:  data,
	}, nil
}

func (p Payload) Bytes() []byte {
	return p.data
}

// Attributes lifts the well-known identifier fields from a top-level JSON
// object. Payloads whose top level is not an object carry no attributes.
func (p Payload) Attributes() map[string]string {
	object, ok := p.value.(map[string]any)
	if !ok {
		return nil
	}

	attrs := make(map[string]string)

	for _, key := range attributeKeys {
		if s, ok := object[key].(string); ok && s != "" {
			attrs[key] = s
		}
	}

	if len(attrs) == 0 {
		return nil
	}

	return attrs
}

func (p Payload) IsZero() bool {
	return p.data == nil
}
