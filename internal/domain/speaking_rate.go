package domain

import (
	"errors"
	"math"
)

type SpeakingRate struct {
	value float64
}

const BaseSpeakingRate = 1.0

var ErrInvalidSpeakingRate = errors.New("speaking rate must be a positive finite number")

func NewSpeakingRate(v float64) (SpeakingRate, error) {
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return SpeakingRate{}, ErrInvalidSpeakingRate
	}

	return SpeakingRate{value: v}, nil
}

func DefaultSpeakingRate() SpeakingRate {
	return SpeakingRate{value: BaseSpeakingRate}
}

func (r SpeakingRate) Value() float64 {
	return r.value
}

func (r SpeakingRate) IsZero() bool {
	return r.value == 0
}
