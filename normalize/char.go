package normalize

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Characters applies canonical Unicode composition (NFC) to text and
// then substitutes every codepoint present in the character map.
// Composition runs first so decomposed diacritics reach the map in
// their precomposed form.
func Characters(text string) string {
	text = norm.NFC.String(text)

	charMap := tables().CharMap
	var b strings.Builder
	changed := false
	for i, r := range text {
		mapped, ok := charMap[r]
		if ok && !changed {
			b.Grow(len(text))
			b.WriteString(text[:i])
			changed = true
		}
		if !changed {
			continue
		}
		if ok {
			b.WriteRune(mapped)
		} else {
			b.WriteRune(r)
		}
	}
	if !changed {
		return text
	}
	return b.String()
}
