package domain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AselaPathirage/pub-sub-client-GoogleCloud/internal/domain"
)

func TestNewSpeakingRateSuccess(t *testing.T) {
	tests := []struct {
		name  string
		input float64
	}{
		{
			name:  "base rate",
			input: 1.0,
		},
		{
			name:  "slower than base",
			input: 0.5,
		},
		{
			name:  "faster than base",
			input: 2.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate, err := domain.NewSpeakingRate(tt.input)

			assert.NoError(t, err)
			assert.Equal(t, tt.input, rate.Value())
			assert.False(t, rate.IsZero())
		})
	}
}

func TestNewSpeakingRateError(t *testing.T) {
	tests := []struct {
		name  string
		input float64
	}{
		{
			name:  "zero",
			input: 0,
		},
		{
			name:  "negative",
			input: -1.5,
		},
		{
			name:  "NaN",
			input: math.NaN(),
		},
		{
			name:  "positive infinity",
			input: math.Inf(1),
		},
		{
			name:  "negative infinity",
			input: math.Inf(-1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NewSpeakingRate(tt.input)

			assert.ErrorIs(t, err, domain.ErrInvalidSpeakingRate)
		})
	}
}

func TestDefaultSpeakingRateSuccess(t *testing.T) {
	tests := []struct {
		name string
	}{
		{
			name: "default is the base rate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate := domain.DefaultSpeakingRate()

			assert.Equal(t, domain.BaseSpeakingRate, rate.Value())
			assert.False(t, rate.IsZero())
		})
	}
}
