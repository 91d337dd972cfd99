package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Word represents a bare word or the content of a string literal.
	Word
	// StringLiteralSeparator represents the '"' quote.
	StringLiteralSeparator // "
	// NamespaceSeparator represents the '!' separator.
	NamespaceSeparator // !
	// LineSeparator represents the ',' separator.
	LineSeparator // ,
	// NameSeparator represents the ':' separator.
	NameSeparator // :
	// OpenObject represents the '{' bracket.
	OpenObject // {
	// CloseObject represents the '}' bracket.
	CloseObject // }
	// OpenArguments represents the '(' bracket.
	OpenArguments // (
	// CloseArguments represents the ')' bracket.
	CloseArguments // )
)

var kindNames = [...]string{
	Invalid:                "Invalid",
	EOF:                    "EOF",
	Word:                   "Word",
	StringLiteralSeparator: "StringLiteralSeparator",
	NamespaceSeparator:     "NamespaceSeparator",
	LineSeparator:          "LineSeparator",
	NameSeparator:          "NameSeparator",
	OpenObject:             "OpenObject",
	CloseObject:            "CloseObject",
	OpenArguments:          "OpenArguments",
	CloseArguments:         "CloseArguments",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsEOF reports whether k marks the end of input.
func (k Kind) IsEOF() bool { return k == EOF }

// IsPunct reports whether k is one of the single-character punctuation kinds.
func (k Kind) IsPunct() bool {
	return k >= StringLiteralSeparator && k <= CloseArguments
}
