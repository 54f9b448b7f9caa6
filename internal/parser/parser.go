package parser

import (
	"fmt"
	"strings"

	"umjunsik/internal/ast"
)

type Parser struct {
	filename string
	tokens   []Token
	current  int
	errors   []ParseError
}

// ParseError describes a malformed statement or expression. Expected holds
// the spellings of the tokens that would have been accepted.
type ParseError struct {
	Kind     ParseErrorKind
	Message  string
	Position Position
	Expected []string
}

func (e ParseError) Error() string {
	msg := fmt.Sprintf("%d:%d: %s", e.Position.Line, e.Position.Column, e.Message)
	if len(e.Expected) > 0 {
		msg += fmt.Sprintf(" (expected %s)", strings.Join(e.Expected, " or "))
	}
	return msg
}

func NewParser(filename string, tokens []Token) *Parser {
	return &Parser{
		filename: filename,
		tokens:   tokens,
	}
}

func (p *Parser) Errors() []ParseError {
	return p.errors
}

// ParseProgram parses every line between the start and end keywords. Lines
// are numbered in parse order starting at 1; blank lines are skipped and do
// not take a number. Tokens after the end keyword are ignored.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}

	p.skipNewlines()
	if !p.match(START) {
		p.errorAtCurrent(MissingStart, "expected program start", START)
	}

	for {
		if p.match(END) {
			return program
		}
		if p.isAtEnd() {
			p.errorAtCurrent(UnexpectedEOF, "unexpected end of input", END)
			return program
		}
		if p.match(NEWLINE) {
			continue
		}

		stmt := p.parseStatement()
		program.Lines = append(program.Lines, ast.Line{
			Number: len(program.Lines) + 1,
			Stmt:   stmt,
		})

		if _, bad := stmt.(*ast.BadStmt); bad {
			p.synchronize()
			continue
		}
		if !p.check(NEWLINE) && !p.check(END) && !p.isAtEnd() {
			p.errorAtCurrent(MalformedStatement, "expected end of statement", NEWLINE, END)
			p.synchronize()
		}
	}
}

func (p *Parser) skipNewlines() {
	for p.match(NEWLINE) {
	}
}
