// Package normalize rewrites non-standard Vietnamese character and
// token forms into canonical ones, driven by embedded mapping tables.
//
// Two independent passes exist: a character pass (canonical Unicode
// composition plus codepoint substitution) and a token pass (exact
// dictionary lookup for short tokens). Text normalizes a whole string
// through the token pass.
package normalize

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"unicode/utf8"
)

// ErrInvalidRules indicates the embedded rule tables are corrupt.
// This is fatal: normalization correctness cannot be guessed.
var ErrInvalidRules = errors.New("normalize: invalid rules data")

//go:embed rules.json
var rulesJSON []byte

// Tables holds the immutable substitution maps. Loaded once per
// process and shared read-only by all callers.
type Tables struct {
	CharMap  map[rune]rune
	TokenMap map[string]string
}

// rulesFile mirrors the serialized layout of the embedded rules.
type rulesFile struct {
	CharacterMap map[string]string `json:"character_map"`
	TokenMap     map[string]string `json:"token_map"`
}

var loadOnce = sync.OnceValues(parseRules)

// Load returns the process-wide tables, parsing the embedded rules on
// first use. All subsequent calls share the same immutable value.
func Load() (*Tables, error) {
	return loadOnce()
}

func parseRules() (*Tables, error) {
	var file rulesFile
	if err := json.Unmarshal(rulesJSON, &file); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRules, err)
	}
	if len(file.CharacterMap) == 0 || len(file.TokenMap) == 0 {
		return nil, fmt.Errorf("%w: empty mapping tables", ErrInvalidRules)
	}

	charMap := make(map[rune]rune, len(file.CharacterMap))
	for from, to := range file.CharacterMap {
		fr, fs := utf8.DecodeRuneInString(from)
		tr, ts := utf8.DecodeRuneInString(to)
		if fs != len(from) || ts != len(to) || fr == utf8.RuneError || tr == utf8.RuneError {
			return nil, fmt.Errorf("%w: character entry %q -> %q is not a codepoint pair", ErrInvalidRules, from, to)
		}
		charMap[fr] = tr
	}

	return &Tables{CharMap: charMap, TokenMap: file.TokenMap}, nil
}

// tables returns the shared tables, panicking if the embedded data is
// corrupt. Engine constructors call Load first, so a panic here means
// normalization was used without initialization against broken build
// data.
func tables() *Tables {
	t, err := Load()
	if err != nil {
		panic(err)
	}
	return t
}
