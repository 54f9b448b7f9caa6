package parser

import "umjunsik/internal/ast"

func (p *Parser) advance() Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(tt TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == tt
}

func (p *Parser) match(types ...TokenType) bool {
	for _, tt := range types {
		if p.check(tt) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) peek() Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() Token {
	return p.tokens[p.current-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == EOF
}

func (p *Parser) errorAtCurrent(kind ParseErrorKind, message string, expected ...TokenType) {
	p.errorAt(p.peek(), kind, message, expected...)
}

func (p *Parser) errorAt(tok Token, kind ParseErrorKind, message string, expected ...TokenType) {
	var spellings []string
	for _, tt := range expected {
		spellings = append(spellings, Spelling(tt))
	}
	p.errors = append(p.errors, ParseError{
		Kind:     kind,
		Message:  message,
		Position: tok.Position,
		Expected: spellings,
	})
}

// reportedAt reports whether the last recorded error points at tok.
func (p *Parser) reportedAt(tok Token) bool {
	if len(p.errors) == 0 {
		return false
	}
	return p.errors[len(p.errors)-1].Position == tok.Position
}

func (p *Parser) makePos(tok Token) ast.Position {
	return ast.Position{
		Filename: p.filename,
		Offset:   tok.Position.Offset,
		Line:     tok.Position.Line,
		Column:   tok.Position.Column,
	}
}

// synchronize skips to the end of the current line so the next statement
// can be parsed.
func (p *Parser) synchronize() {
	for !p.isAtEnd() && !p.check(NEWLINE) && !p.check(END) {
		p.advance()
	}
}
