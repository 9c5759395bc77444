package normalize

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jamesainslie/go-vitok/tokenizer"
)

// Tokenization modes for Text.
const (
	// ModeInternal splits with the engine's lexical tokenizer.
	ModeInternal = "internal"
	// ModeSpace splits on whitespace runs.
	ModeSpace = "space"
)

// Text normalizes a whole string: it splits text according to mode,
// runs the token pass (with the character pass enabled) on every
// unit, and rejoins with single spaces.
func Text(text, mode string) (string, error) {
	if !utf8.ValidString(text) {
		return "", tokenizer.ErrInvalidUTF8
	}

	var units []string
	switch mode {
	case ModeInternal:
		// Legacy codepoints sit outside the scanner's word classes, so
		// the character pass must run before the scan or a word like
		// "ðồng" splits at the eth.
		words, err := tokenizer.New().Words(Characters(text))
		if err != nil {
			return "", fmt.Errorf("tokenizing: %w", err)
		}
		units = words
	case ModeSpace:
		units = strings.Fields(text)
	default:
		return "", fmt.Errorf("unknown tokenization mode %q", mode)
	}

	for i, unit := range units {
		units[i] = Token(unit, true)
	}
	return strings.Join(units, " "), nil
}
