// Package entities contains domain entities used across the application.
package entities

import (
	"errors"
	"fmt"
)

var ErrUnknownLanguage = errors.New("unknown language")

// Language is one of the languages a word entry can be recorded for.
type Language string

const (
	LanguageCantonese Language = "Cantonese"
	LanguageFilipino  Language = "Filipino"
)

// Languages returns the supported languages in display order.
func Languages() []Language {
	return []Language{LanguageCantonese, LanguageFilipino}
}

// ParseLanguage returns the Language matching s exactly.
func ParseLanguage(s string) (Language, error) {
	for _, l := range Languages() {
		if string(l) == s {
			return l, nil
		}
	}
	return "", fmt.Errorf("parse language %q: %w", s, ErrUnknownLanguage)
}

func (l Language) String() string {
	return string(l)
}
