package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AselaPathirage/pub-sub-client-GoogleCloud/internal/domain"
)

func TestSessionIDFromStringSuccess(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "plain identifier",
			input: "sess_123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := domain.SessionIDFromString(tt.input)

			assert.NoError(t, err)
			assert.Equal(t, tt.input, id.String())
			assert.False(t, id.IsZero())
		})
	}
}

func TestSessionIDFromStringError(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "empty string",
			input: "",
		},
		{
			name:  "whitespace only",
			input: "\t ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.SessionIDFromString(tt.input)

			assert.ErrorIs(t, err, domain.ErrEmptySessionID)
		})
	}
}
