package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AselaPathirage/pub-sub-client-GoogleCloud/internal/domain"
)

func TestParsePayloadSuccess(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "object",
			input: `{"event": "test", "count": 3}`,
		},
		{
			name:  "nested object",
			input: `{"outer": {"inner": ["a", "b"]}}`,
		},
		{
			name:  "array",
			input: `[1, 2, 3]`,
		},
		{
			name:  "scalar string",
			input: `"hello"`,
		},
		{
			name:  "null",
			input: `null`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := domain.ParsePayload([]byte(tt.input))

			assert.NoError(t, err)
			assert.False(t, payload.IsZero())
			assert.JSONEq(t, tt.input, string(payload.Bytes()))
		})
	}
}

func TestParsePayloadCanonicalBytesSuccess(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "whitespace is stripped",
			input:    "{\n  \"event\": \"test\"\n}",
			expected: `{"event":"test"}`,
		},
		{
			name:     "object keys are sorted",
			input:    `{"b": 2, "a": 1}`,
			expected: `{"a":1,"b":2}`,
		},
		{
			name:     "large integer survives re-encoding",
			input:    `{"request_id": 1234567890123456789}`,
			expected: `{"request_id":1234567890123456789}`,
		},
		{
			name:     "integer above float64 precision survives re-encoding",
			input:    `{"n": 9007199254740993}`,
			expected: `{"n":9007199254740993}`,
		},
		{
			name:     "high precision decimal survives re-encoding",
			input:    `{"rate": 0.30000000000000004}`,
			expected: `{"rate":0.30000000000000004}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := domain.ParsePayload([]byte(tt.input))

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, string(payload.Bytes()))
		})
	}
}

func TestParsePayloadError(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "unterminated object",
			input: `{invalid`,
		},
		{
			name:  "trailing comma",
			input: `{"event": "test",}`,
		},
		{
			name:  "empty input",
			input: ``,
		},
		{
			name:  "plain text",
			input: `not json at all`,
		},
		{
			name:  "trailing data after value",
			input: `{"event": "test"} extra`,
		},
		{
			name:  "invalid UTF-8 bytes",
			input: "{\"event\": \"\xff\xfe\"}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.ParsePayload([]byte(tt.input))

			assert.ErrorIs(t, err, domain.ErrMalformedPayload)
		})
	}
}

func TestPayloadAttributesSuccess(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected map[string]string
	}{
		{
			name:  "identifier fields are lifted",
			input: `{"request_id": "req_123", "session_id": "sess_456", "prompt": "hello"}`,
			expected: map[string]string{
				"request_id": "req_123",
				"session_id": "sess_456",
			},
		},
		{
			name:  "optional identifiers included when present",
			input: `{"request_id": "req_123", "trace_id": "trace_789", "conversation_id": "conv_012"}`,
			expected: map[string]string{
				"request_id":      "req_123",
				"trace_id":        "trace_789",
				"conversation_id": "conv_012",
			},
		},
		{
			name:     "non string identifier is skipped",
			input:    `{"request_id": 42, "session_id": "sess_456"}`,
			expected: map[string]string{"session_id": "sess_456"},
		},
		{
			name:     "empty identifier is skipped",
			input:    `{"request_id": "", "session_id": "sess_456"}`,
			expected: map[string]string{"session_id": "sess_456"},
		},
		{
			name:     "object without identifiers",
			input:    `{"event": "test"}`,
			expected: nil,
		},
		{
			name:     "top level array",
			input:    `[{"request_id": "req_123"}]`,
			expected: nil,
		},
		{
			name:     "top level scalar",
			input:    `"hello"`,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := domain.ParsePayload([]byte(tt.input))
			require.NoError(t, err)

			assert.Equal(t, tt.expected, payload.Attributes())
		})
	}
}

func TestParsePayloadBatchSuccess(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "array of objects",
			input:    `[{"event": "first"}, {"event": "second"}]`,
			expected: []string{`{"event":"first"}`, `{"event":"second"}`},
		},
		{
			name:     "mixed element types",
			input:    `[{"event": "first"}, "second", 3]`,
			expected: []string{`{"event":"first"}`, `"second"`, `3`},
		},
		{
			name:     "large integer element",
			input:    `[9007199254740993]`,
			expected: []string{`9007199254740993`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payloads, err := domain.ParsePayloadBatch([]byte(tt.input))

			assert.NoError(t, err)
			require.Len(t, payloads, len(tt.expected))

			for i, expected := range tt.expected {
				assert.Equal(t, expected, string(payloads[i].Bytes()))
			}
		})
	}
}

func TestParsePayloadBatchError(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectedErr error
	}{
		{
			name:        "top level object",
			input:       `{"event": "test"}`,
			expectedErr: domain.ErrPayloadNotArray,
		},
		{
			name:        "top level scalar",
			input:       `"hello"`,
			expectedErr: domain.ErrPayloadNotArray,
		},
		{
			name:        "null document",
			input:       `null`,
			expectedErr: domain.ErrPayloadNotArray,
		},
		{
			name:        "malformed document",
			input:       `[{"event": "test"`,
			expectedErr: domain.ErrMalformedPayload,
		},
		{
			name:        "empty array",
			input:       `[]`,
			expectedErr: domain.ErrEmptyBatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.ParsePayloadBatch([]byte(tt.input))

			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}
