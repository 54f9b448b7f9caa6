// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	goerrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	"umjunsik/internal/compiler"
	"umjunsik/internal/errors"
	"umjunsik/token"
)

const PROMPT = ">> "

// Session accumulates statements entered one line at a time. Every line is
// checked by compiling the whole program with the line appended; lines that
// fail are reported and dropped.
type Session struct {
	lines []string
}

// Source returns the complete program for the accepted lines
func (s *Session) Source() string {
	var b strings.Builder
	b.WriteString(token.START + "\n")
	for _, line := range s.lines {
		b.WriteString(line + "\n")
	}
	b.WriteString(token.END + "\n")
	return b.String()
}

// Eval appends line and returns the compilation of the resulting program.
// On failure the line is not kept.
func (s *Session) Eval(line string) (*compiler.Result, error) {
	s.lines = append(s.lines, line)
	result, err := compiler.Compile("<repl>", s.Source())
	if err != nil {
		s.lines = s.lines[:len(s.lines)-1]
	}
	return result, err
}

func (s *Session) Reset() {
	s.lines = nil
}

// prompter reads one line of input. *liner.State implements it for
// terminals.
type prompter interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

type readerPrompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func (p *readerPrompter) Prompt(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		fmt.Fprintln(p.out)
		return "", io.EOF
	}
	return p.scanner.Text(), nil
}

func (p *readerPrompter) AppendHistory(string) {}

// Start runs a session reading plain lines from in
func Start(in io.Reader, out io.Writer) {
	run(&readerPrompter{scanner: bufio.NewScanner(in), out: out}, out)
}

// StartTerminal runs a session with line editing and history on the
// controlling terminal.
func StartTerminal(out io.Writer) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	run(line, out)
}

func run(p prompter, out io.Writer) {
	session := &Session{}
	red := color.New(color.FgRed)
	yellow := color.New(color.FgYellow)

	for {
		input, err := p.Prompt(PROMPT)
		if goerrors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			return
		}

		line := strings.TrimSpace(input)
		switch line {
		case "":
			continue
		case ":quit":
			return
		case ":reset":
			session.Reset()
			continue
		case ":source":
			fmt.Fprint(out, session.Source())
			continue
		}
		p.AppendHistory(line)

		result, err := session.Eval(line)
		if err != nil {
			if cerr, ok := err.(*compiler.Error); ok {
				for _, d := range cerr.Diagnostics {
					red.Fprintln(out, describe(d))
				}
			} else {
				red.Fprintln(out, err)
			}
			continue
		}

		for _, w := range result.Warnings {
			yellow.Fprintln(out, describe(w))
		}
		fmt.Fprintf(out, "AST:\n%s\nIR:\n%s", result.Program.String(), result.IR)
	}
}

// describe renders a diagnostic without a position, since every line of
// the session lives in a synthetic program.
func describe(d errors.CompilerError) string {
	return fmt.Sprintf("%s[%s]: %s", d.Level, d.Code, d.Message)
}
