package domain

import (
	"errors"
	"strings"
)

type RequestID struct {
	value string
}

var ErrEmptyRequestID = errors.New("request ID cannot be empty")

func RequestIDFromString(s string) (RequestID, error) {
	if strings.TrimSpace(s) == "" {
		return RequestID{}, ErrEmptyRequestID
	}

	return RequestID{value: s}, nil
}

func (r RequestID) String() string {
	return r.value
}

func (r RequestID) IsZero() bool {
	return r.value == ""
}

func (r RequestID) Equals(other RequestID) bool {
	return r.value == other.value
}
