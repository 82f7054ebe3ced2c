package domain

import (
	"errors"
	"strings"
)

type Language struct {
	code string
}

const BaseLanguageCode = "en"

var ErrEmptyLanguage = errors.New("language code cannot be empty")

func LanguageFromString(s string) (Language, error) {
	if strings.TrimSpace(s) == "" {
		return Language{}, ErrEmptyLanguage
	}

	return Language{code: s}, nil
}

func DefaultLanguage() Language {
	return Language{code: BaseLanguageCode}
}

func (l Language) Code() string {
	return l.code
}

func (l Language) IsZero() bool {
	return l.code == ""
}
