package domain

import (
	"errors"
	"strings"
)

type SessionID struct {
	value string
}

var ErrEmptySessionID = errors.New("session ID cannot be empty")

func SessionIDFromString(s string) (SessionID, error) {
	if strings.TrimSpace(s) == "" {
		return SessionID{}, ErrEmptySessionID
	}

	return SessionID{value: s}, nil
}

func (s SessionID) String() string {
	return s.value
}

func (s SessionID) IsZero() bool {
	return s.value == ""
}

func (s SessionID) Equals(other SessionID) bool {
	return s.value == other.value
}
