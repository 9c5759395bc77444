package normalize

import "unicode/utf8"

// maxTokenLen is the longest token, in runes, that the token map is
// consulted for. Longer tokens pass through unchanged.
const maxTokenLen = 6

// Token normalizes a single token. Tokens longer than six runes are
// returned unchanged. Otherwise the character pass runs first when
// useCharNormalize is set, and the resulting form is looked up in the
// token map; a hit returns the canonical form, a miss returns the
// (possibly character-normalized) input.
func Token(token string, useCharNormalize bool) string {
	if utf8.RuneCountInString(token) > maxTokenLen {
		return token
	}

	if useCharNormalize {
		token = Characters(token)
	}

	if mapped, ok := tables().TokenMap[token]; ok {
		return mapped
	}
	return token
}
