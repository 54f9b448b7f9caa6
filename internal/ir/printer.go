package ir

import (
	"fmt"
	"strings"
)

// Printer renders a Function as Lamina IR text
type Printer struct {
	indent int
	output strings.Builder
}

// NewPrinter creates a new IR printer
func NewPrinter() *Printer {
	return &Printer{indent: 0}
}

// Print returns the Lamina text of fn
func Print(fn *Function) string {
	p := NewPrinter()
	p.printFunction(fn)
	return p.output.String()
}

// Helper methods

func (p *Printer) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.output.WriteString("  ")
	}
}

func (p *Printer) writeLine(format string, args ...interface{}) {
	p.writeIndent()
	p.output.WriteString(fmt.Sprintf(format, args...))
	p.output.WriteString("\n")
}

func (p *Printer) printFunction(fn *Function) {
	p.writeLine("fn @%s() -> %s {", fn.Name, fn.ReturnType)
	p.indent++
	for i, block := range fn.Blocks {
		if i > 0 {
			p.output.WriteString("\n")
		}
		p.printBlock(block)
	}
	p.indent--
	p.writeLine("}")
}

func (p *Printer) printBlock(block *BasicBlock) {
	p.writeLine("%s:", block.Label)
	p.indent++
	for _, inst := range block.Instructions {
		p.writeLine("%s", inst.String())
	}
	if block.Terminator != nil {
		p.writeLine("%s", block.Terminator.String())
	}
	p.indent--
}
