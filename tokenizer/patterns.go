package tokenizer

import "regexp"

// Vietnamese alphabet, precomposed forms. The ASCII ranges sit first
// so the classes read as extensions of A-Z / a-z.
const (
	upperLetters = `A-ZÀÁẢÃẠĂẰẮẲẴẶÂẦẤẨẪẬĐÈÉẺẼẸÊỀẾỂỄỆÌÍỈĨỊÒÓỎÕỌÔỒỐỔỖỘƠỜỚỞỠỢÙÚỦŨỤƯỪỨỬỮỰỲÝỶỸỴ`
	lowerLetters = `a-zàáảãạăằắẳẵặâầấẩẫậđèéẻẽẹêềếểễệìíỉĩịòóỏõọôồốổỗộơờớởỡợùúủũụưừứửữựỳýỷỹỵ`

	letterClass = `[` + upperLetters + lowerLetters + `]`
	upperClass  = `[` + upperLetters + `]`
	wordClass   = `[` + upperLetters + lowerLetters + `0-9_]`
)

type matcher struct {
	kind Kind
	re   *regexp.Regexp

	// notAtEnd rejects a match that reaches the end of the input. Used
	// for the all-caps-plus-dot abbreviation form, where a text-final
	// dot is a sentence stop rather than part of the abbreviation.
	notAtEnd bool
}

// cascade lists the matchers in priority order. Each pattern is
// anchored so it can only claim a prefix at the current scan position;
// within a pattern, longer alternatives come first.
var cascade = []matcher{
	{kind: Whitespace, re: anchored(`\s+`)},
	{kind: Special, re: anchored(`==>|=>|->|\.{2,}|-{2,}|>>|\d+x\d+|v\.v\.\.\.|v\.v\.|v\.v|°[CF]`)},
	{kind: Abbrev, re: anchored(
		`[A-ZĐ]+&[A-ZĐ]+` +
			`|T\.Ư` +
			`|` + upperClass + `+(?:\.` + wordClass + `+)+\.?` +
			`|` + wordClass + `+['’]` + wordClass + `+`)},
	{kind: Abbrev, re: anchored(`[A-ZĐ]+\.`), notAtEnd: true},
	{kind: Abbrev, re: anchored(
		`Tp\.|Mr\.|Mrs\.|Ms\.|Dr\.|ThS\.|Th\.S|Th\.s` +
			`|e-mail` +
			`|\d+[A-Z]+\d*-\d+` +
			`|NĐ-CP`)},
	{kind: URL, re: anchored(
		`(?:https?|ftp)://[^\s<>(){}\[\]]+` +
			`|www\.[a-z0-9.-]+\.[a-z]{2,13}(?:/[^\s]*)?` +
			`|[a-z0-9]+(?:[.-][a-z0-9]+)*\.(?:com|net|org|vn|edu|gov|info|io)\b(?:/[^\s]*)?`)},
	{kind: Email, re: anchored(`[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9.-]+`)},
	{kind: Phone, re: anchored(`\d{2,}-\d{3,}-\d{3,}`)},
	{kind: DateTime, re: anchored(
		`\d{1,2}/\d{1,2}/\d+` +
			`|\d{1,2}/\d{1,4}` +
			`|\d{1,2}-\d{1,2}-\d+` +
			`|\d{1,2}-\d{1,4}` +
			`|\d{1,2}\.\d{1,2}\.\d+` +
			`|\d{4}/\d{1,2}/\d{1,2}` +
			`|\d{2}:\d{2}:\d{2}`)},
	{kind: Code, re: anchored(`\d+[A-Z]+\d+|\d+[A-Z]+`)},
	{kind: Number, re: anchored(
		`\d+(?:\.\d+)+,\d+` +
			`|\d+(?:\.\d+)+` +
			`|\d+(?:,\d+)+` +
			`|\d+(?:[.,_]\d+)?`)},
	{kind: Emoji, re: anchored(`:\)+|=\)+|♥‿♥|:D+|<3`)},
	{kind: Punct, re: anchored(`[.,()ʺ]`)},
	{kind: Word, re: anchored(wordClass + `+(?:-` + wordClass + `+)+`)},
	{kind: Word, re: anchored(wordClass + `+`)},
	{kind: Symbol, re: anchored(`:+|[+×÷%$><=^_-]`)},
}

func anchored(pattern string) *regexp.Regexp {
	return regexp.MustCompile(`\A(?:` + pattern + `)`)
}
