package crf

import (
	"strings"
	"unicode"
)

// Extract derives one fixed feature template per token from a +-1
// window: lowercased identity plus shape class of the token and its
// neighbors, and the two ordered bigrams touching the position.
// Casing is carried by the shape feature, so identity features stay
// case-insensitive. Pure; no I/O.
func Extract(tokens []string) [][]string {
	lower := make([]string, len(tokens))
	shapes := make([]string, len(tokens))
	for i, tok := range tokens {
		lower[i] = strings.ToLower(tok)
		shapes[i] = shape(tok)
	}

	features := make([][]string, len(tokens))
	for i := range tokens {
		feats := make([]string, 0, 8)
		feats = append(feats, "w0="+lower[i], "sh0="+shapes[i])

		if i > 0 {
			feats = append(feats,
				"w-1="+lower[i-1],
				"sh-1="+shapes[i-1],
				"w-1w0="+lower[i-1]+"|"+lower[i])
		} else {
			feats = append(feats, "bos")
		}

		if i < len(tokens)-1 {
			feats = append(feats,
				"w+1="+lower[i+1],
				"sh+1="+shapes[i+1],
				"w0w+1="+lower[i]+"|"+lower[i+1])
		} else {
			feats = append(feats, "eos")
		}

		features[i] = feats
	}
	return features
}

// shape classifies a token's surface form.
func shape(tok string) string {
	var hasUpper, hasLower, hasDigit, hasOther bool
	first := true
	firstUpper := false
	for _, r := range tok {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
			if first {
				firstUpper = true
			}
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasOther = true
		}
		first = false
	}

	switch {
	case hasDigit && !hasUpper && !hasLower:
		return "digit"
	case hasDigit:
		return "mixed"
	case hasUpper && !hasLower:
		return "upper"
	case firstUpper:
		return "title"
	case hasLower && !hasOther:
		return "lower"
	case !hasUpper && !hasLower && !hasDigit:
		return "punct"
	default:
		return "other"
	}
}
