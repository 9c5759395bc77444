package tokenizer

// Kind classifies a base token.
type Kind int

const (
	Other Kind = iota
	Word
	Number
	Punct
	Whitespace
	Special
	Abbrev
	URL
	Email
	Phone
	DateTime
	Code
	Emoji
	Symbol
)

var kindNames = map[Kind]string{
	Other:      "other",
	Word:       "word",
	Number:     "number",
	Punct:      "punct",
	Whitespace: "whitespace",
	Special:    "special",
	Abbrev:     "abbreviation",
	URL:        "url",
	Email:      "email",
	Phone:      "phone",
	DateTime:   "datetime",
	Code:       "code",
	Emoji:      "emoji",
	Symbol:     "symbol",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "other"
}

// Class collapses the detailed kind set into the five coarse classes
// {Word, Number, Punct, Whitespace, Other}.
func (k Kind) Class() Kind {
	switch k {
	case Word, Abbrev:
		return Word
	case Number:
		return Number
	case Punct:
		return Punct
	case Whitespace:
		return Whitespace
	default:
		return Other
	}
}
