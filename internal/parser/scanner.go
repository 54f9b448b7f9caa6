package parser

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"umjunsik/token"
)

type Token struct {
	Type     TokenType
	Lexeme   string
	Value    int64 // literal sum, variable index or assignment target
	Position Position
}

type Scanner struct {
	source      string
	tokens      []Token
	start       int
	current     int
	line        int
	startLine   int
	startColumn int
	column      int
	errors      []ScanError
}

type ScanError struct {
	Kind     ScanErrorKind
	Message  string
	Position Position // line, column, offset
	Length   int      // bytes covered
}

func (e ScanError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Position.Line, e.Position.Column, e.Message)
}

func NewScanner(source string) *Scanner {
	return &Scanner{
		source: source,
		line:   1,
		column: 1,
	}
}

func (s *Scanner) ScanTokens() []Token {
	for !s.isAtEnd() {
		s.start = s.current
		s.startLine = s.line
		s.startColumn = s.column
		s.scanToken()
	}
	s.tokens = append(s.tokens, Token{Type: EOF, Position: Position{Line: s.line, Column: s.column, Offset: s.current}})
	return s.tokens
}

func (s *Scanner) Errors() []ScanError {
	return s.errors
}

func (s *Scanner) scanToken() {
	c := s.advance()
	switch c {
	case '\n', token.LINE_SEPARATOR:
		s.addToken(NEWLINE)
	case ' ', '\t', '\r':
		s.scanBlank()
	case token.INC, token.DEC:
		s.scanLiteral(c)
	case token.QUESTION:
		s.addToken(QUESTION)
	case token.BANG:
		s.addToken(BANG)
	case token.KEK:
		s.addToken(KEK)
	default:
		s.scanDefault(c)
	}
}

func (s *Scanner) scanDefault(c rune) {
	if s.scanKeyword() {
		return
	}

	switch c {
	case token.EO:
		s.scanMarker()
	case token.EOM:
		s.addValueToken(ASSIGN, 0)
	case '이':
		s.scanEnd()
	case '동':
		s.reportError(IncompleteKeyword, fmt.Sprintf("expected '탄' after '동' to form %s", token.CONDITIONAL))
	default:
		s.reportError(UnexpectedCharacter, fmt.Sprintf("Unexpected character: %q", c))
	}
}

// scanKeyword consumes a fixed keyword starting at the current token. No
// keyword is a prefix of another, so at most one can match.
func (s *Scanner) scanKeyword() bool {
	rest := s.source[s.start:]
	for spelling, tt := range KEYWORDS {
		if strings.HasPrefix(rest, spelling) {
			s.advanceTo(s.start + len(spelling))
			s.addToken(tt)
			return true
		}
	}
	return false
}

// scanMarker collapses a run of 어 into a single token. A trailing 엄 turns
// the run into an assignment target.
func (s *Scanner) scanMarker() {
	count := 1
	for s.peek() == token.EO && !s.startsWith(token.START) {
		s.advance()
		count++
	}
	if s.peek() == token.EOM {
		s.advance()
		s.addValueToken(ASSIGN, int64(count))
		return
	}
	s.addValueToken(VARIABLE, int64(count-1))
}

func (s *Scanner) scanLiteral(first rune) {
	value := literalStep(first)
	for s.peek() == token.INC || s.peek() == token.DEC {
		value += literalStep(s.advance())
	}
	s.addValueToken(LITERAL, value)
}

func literalStep(c rune) int64 {
	if c == token.DEC {
		return -1
	}
	return 1
}

func (s *Scanner) scanEnd() {
	if !strings.HasPrefix(s.source[s.start:], token.END_STEM) {
		s.reportError(UnexpectedCharacter, fmt.Sprintf("Unexpected character: %q", '이'))
		return
	}
	s.advanceTo(s.start + len(token.END_STEM))
	for s.peek() == token.KEK {
		s.advance()
	}
	s.addToken(END)
}

// scanBlank skips spaces and tabs. Between two operands the blank is
// significant and becomes a multiplication.
func (s *Scanner) scanBlank() {
	for s.peek() == ' ' || s.peek() == '\t' || s.peek() == '\r' {
		s.advance()
	}
	if s.lastIsOperand() && s.operandAhead() {
		s.addToken(STAR)
	}
}

func (s *Scanner) lastIsOperand() bool {
	if len(s.tokens) == 0 {
		return false
	}
	last := s.tokens[len(s.tokens)-1].Type
	return last == LITERAL || last == VARIABLE
}

func (s *Scanner) operandAhead() bool {
	rest := s.source[s.current:]
	switch s.peek() {
	case token.INC, token.DEC:
		return true
	case token.EO:
		if strings.HasPrefix(rest, token.START) {
			return false
		}
		eo := string(token.EO)
		i := 0
		for strings.HasPrefix(rest[i:], eo) && !strings.HasPrefix(rest[i:], token.START) {
			i += len(eo)
		}
		return !strings.HasPrefix(rest[i:], string(token.EOM))
	}
	return false
}

func (s *Scanner) advance() rune {
	c, size := utf8.DecodeRuneInString(s.source[s.current:])
	s.current += size
	if c == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return c
}

func (s *Scanner) advanceTo(offset int) {
	for s.current < offset && !s.isAtEnd() {
		s.advance()
	}
}

func (s *Scanner) peek() rune {
	if s.isAtEnd() {
		return 0
	}
	c, _ := utf8.DecodeRuneInString(s.source[s.current:])
	return c
}

func (s *Scanner) startsWith(prefix string) bool {
	return strings.HasPrefix(s.source[s.current:], prefix)
}

func (s *Scanner) addToken(tokenType TokenType) {
	s.addValueToken(tokenType, 0)
}

func (s *Scanner) addValueToken(tokenType TokenType, value int64) {
	s.tokens = append(s.tokens, Token{
		Type:   tokenType,
		Lexeme: s.source[s.start:s.current],
		Value:  value,
		Position: Position{
			Line:   s.startLine,
			Column: s.startColumn,
			Offset: s.start,
		},
	})
}

func (s *Scanner) reportError(kind ScanErrorKind, message string) {
	s.errors = append(s.errors, ScanError{
		Kind:     kind,
		Message:  message,
		Position: Position{Line: s.startLine, Column: s.startColumn, Offset: s.start},
		Length:   s.current - s.start,
	})
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}
