// Package token SPDX-License-Identifier: Apache-2.0
package token

// Source spellings of the language. Keywords are matched by the scanner in
// internal/parser and by the declarative grammar in package grammar.
const (
	START          = "어떻게"
	END            = "이 사람이름이냐ㅋㅋ"
	END_STEM       = "이 사람이름이냐"
	GOTO           = "준"
	CONSOLE        = "식"
	CONDITIONAL    = "동탄"
	RETURN         = "화이팅"
	EO             = '어' // variable marker, repeated
	EOM            = '엄' // assignment marker
	INC            = '.'
	DEC            = ','
	QUESTION       = '?'
	BANG           = '!'
	KEK            = 'ㅋ'
	LINE_SEPARATOR = '~'
)

var descriptions = map[string]string{
	START:       "program start",
	END:         "program end",
	GOTO:        "jump to a line: 준<line>",
	CONSOLE:     "console output: 식<expr>! prints a number, 식<expr>ㅋ prints a character, 식ㅋ prints a newline",
	CONDITIONAL: "conditional: 동탄<variable>?<statement> runs the statement when the variable is not zero",
	RETURN:      "exit the program: 화이팅 or 화이팅!<expr>",
}

// Describe returns a one-line description of a keyword, or "" if the
// spelling is not a keyword.
func Describe(spelling string) string {
	return descriptions[spelling]
}

// IsKeyword reports whether spelling is one of the fixed keywords.
func IsKeyword(spelling string) bool {
	_, ok := descriptions[spelling]
	return ok
}
