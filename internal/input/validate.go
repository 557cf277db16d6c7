// Package input validates the raw sentence before it goes anywhere near
// the network.
package input

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// MaxSentenceLength is the fixed limit on a trimmed sentence, counted in
// characters (runes), not bytes.
const MaxSentenceLength = 1000

var (
	ErrEmptyInput   = errors.New("sentence cannot be empty or contain only whitespace")
	ErrInputTooLong = errors.New("sentence is too long (maximum 1000 characters)")
)

// Validate trims the raw sentence and bounds-checks it. Internal
// whitespace is preserved.
func Validate(raw string) (string, error) {
	sentence := strings.TrimSpace(raw)
	if sentence == "" {
		return "", ErrEmptyInput
	}

	if utf8.RuneCountInString(sentence) > MaxSentenceLength {
		return "", ErrInputTooLong
	}

	return sentence, nil
}
