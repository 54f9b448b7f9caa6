package parser

type TokenType int

const (
	// Special tokens
	ILLEGAL TokenType = iota
	EOF

	// Program delimiters
	START
	END

	// Markers
	ASSIGN   // 어…엄, Value is the target index
	VARIABLE // 어…, Value is the variable index
	LITERAL  // . and , runs, Value is the signed sum
	STAR     // blank between two operands

	// Keywords
	GOTO
	CONSOLE
	CONDITIONAL
	RETURN

	// Punctuation
	QUESTION
	BANG
	KEK

	// Separators
	NEWLINE
)

var tokenTypeNames = [...]string{
	ILLEGAL:     "ILLEGAL",
	EOF:         "EOF",
	START:       "START",
	END:         "END",
	ASSIGN:      "ASSIGN",
	VARIABLE:    "VARIABLE",
	LITERAL:     "LITERAL",
	STAR:        "STAR",
	GOTO:        "GOTO",
	CONSOLE:     "CONSOLE",
	CONDITIONAL: "CONDITIONAL",
	RETURN:      "RETURN",
	QUESTION:    "QUESTION",
	BANG:        "BANG",
	KEK:         "KEK",
	NEWLINE:     "NEWLINE",
}

func (t TokenType) String() string {
	if t >= 0 && int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "TokenType(?)"
}

// ScanErrorKind classifies a ScanError
type ScanErrorKind int

const (
	UnexpectedCharacter ScanErrorKind = iota
	IncompleteKeyword                 // 동 without 탄
)

// ParseErrorKind classifies a ParseError
type ParseErrorKind int

const (
	MalformedStatement ParseErrorKind = iota
	MissingStart
	UnexpectedEOF
	NonConstantGoto
)

type Position struct {
	Line   int // 1-based
	Column int // 1-based, in runes
	Offset int // 0-based byte offset in input
}
