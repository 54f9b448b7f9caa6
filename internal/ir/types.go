package ir

import (
	"fmt"
	"strconv"
)

// IR for a single parameterless function returning i64. Every temporary is
// defined exactly once; variables live in stack slots accessed through
// explicit loads and stores.

// Function represents the generated main function
type Function struct {
	Name       string
	ReturnType string
	Slots      []*Slot
	Entry      *BasicBlock
	Blocks     []*BasicBlock // in emission order, Entry first
}

// Slot is the stack storage allocated for one variable index
type Slot struct {
	ID    int // first-occurrence order
	Index int // source variable index
	Ptr   *Value
}

// BasicBlock represents a labeled sequence of instructions ending in a terminator
type BasicBlock struct {
	Label        string
	Instructions []Instruction
	Terminator   Terminator
}

// Value is either a named virtual register or an immediate constant
type Value struct {
	ID      int
	Name    string
	IsConst bool
	Imm     int64
}

func (v *Value) String() string {
	if v.IsConst {
		return strconv.FormatInt(v.Imm, 10)
	}
	return "%" + v.Name
}

// Constant returns an immediate operand
func Constant(imm int64) *Value {
	return &Value{IsConst: true, Imm: imm}
}

type Opcode int

const (
	OpAdd Opcode = iota
	OpSub
	OpMul
	OpNe
)

func (op Opcode) String() string {
	switch op {
	case OpAdd:
		return "add.i64"
	case OpSub:
		return "sub.i64"
	case OpMul:
		return "mul.i64"
	case OpNe:
		return "ne.i64"
	default:
		return "unknown"
	}
}

type Instruction interface {
	GetResult() *Value
	GetOperands() []*Value
	IsTerminator() bool
	String() string
}

// Terminators end basic blocks
type Terminator interface {
	Instruction
	GetSuccessors() []*BasicBlock
}

type AllocInstruction struct {
	Result *Value
}

type StoreInstruction struct {
	Address *Value
	Value   *Value
}

type LoadInstruction struct {
	Result  *Value
	Address *Value
}

type BinaryInstruction struct {
	Result *Value
	Op     Opcode
	Left   *Value
	Right  *Value
}

// PrintInstruction writes Value in decimal, or as a character when Char is set
type PrintInstruction struct {
	Value *Value
	Char  bool
}

// CommentInstruction carries no semantics; it is emitted for placeholders
type CommentInstruction struct {
	Text string
}

type ReturnTerminator struct {
	Value *Value
}

type BranchTerminator struct {
	Condition  *Value
	TrueBlock  *BasicBlock
	FalseBlock *BasicBlock
}

type JumpTerminator struct {
	Target *BasicBlock
}

// Implementation of interfaces

func (a *AllocInstruction) GetResult() *Value     { return a.Result }
func (a *AllocInstruction) GetOperands() []*Value { return nil }
func (a *AllocInstruction) IsTerminator() bool    { return false }
func (a *AllocInstruction) String() string {
	return fmt.Sprintf("%s = alloc.ptr.stack i64", a.Result)
}

func (s *StoreInstruction) GetResult() *Value     { return nil }
func (s *StoreInstruction) GetOperands() []*Value { return []*Value{s.Address, s.Value} }
func (s *StoreInstruction) IsTerminator() bool    { return false }
func (s *StoreInstruction) String() string {
	return fmt.Sprintf("store.i64 %s, %s", s.Address, s.Value)
}

func (l *LoadInstruction) GetResult() *Value     { return l.Result }
func (l *LoadInstruction) GetOperands() []*Value { return []*Value{l.Address} }
func (l *LoadInstruction) IsTerminator() bool    { return false }
func (l *LoadInstruction) String() string {
	return fmt.Sprintf("%s = load.i64 %s", l.Result, l.Address)
}

func (b *BinaryInstruction) GetResult() *Value     { return b.Result }
func (b *BinaryInstruction) GetOperands() []*Value { return []*Value{b.Left, b.Right} }
func (b *BinaryInstruction) IsTerminator() bool    { return false }
func (b *BinaryInstruction) String() string {
	return fmt.Sprintf("%s = %s %s, %s", b.Result, b.Op, b.Left, b.Right)
}

func (p *PrintInstruction) GetResult() *Value     { return nil }
func (p *PrintInstruction) GetOperands() []*Value { return []*Value{p.Value} }
func (p *PrintInstruction) IsTerminator() bool    { return false }
func (p *PrintInstruction) String() string {
	if p.Char {
		return fmt.Sprintf("printchar %s", p.Value)
	}
	return fmt.Sprintf("print %s", p.Value)
}

func (c *CommentInstruction) GetResult() *Value     { return nil }
func (c *CommentInstruction) GetOperands() []*Value { return nil }
func (c *CommentInstruction) IsTerminator() bool    { return false }
func (c *CommentInstruction) String() string        { return "; " + c.Text }

func (r *ReturnTerminator) GetResult() *Value            { return nil }
func (r *ReturnTerminator) GetOperands() []*Value        { return []*Value{r.Value} }
func (r *ReturnTerminator) IsTerminator() bool           { return true }
func (r *ReturnTerminator) GetSuccessors() []*BasicBlock { return nil }
func (r *ReturnTerminator) String() string {
	return fmt.Sprintf("ret.i64 %s", r.Value)
}

func (b *BranchTerminator) GetResult() *Value     { return nil }
func (b *BranchTerminator) GetOperands() []*Value { return []*Value{b.Condition} }
func (b *BranchTerminator) IsTerminator() bool    { return true }
func (b *BranchTerminator) GetSuccessors() []*BasicBlock {
	return []*BasicBlock{b.TrueBlock, b.FalseBlock}
}
func (b *BranchTerminator) String() string {
	return fmt.Sprintf("br %s, %s, %s", b.Condition, b.TrueBlock.Label, b.FalseBlock.Label)
}

func (j *JumpTerminator) GetResult() *Value            { return nil }
func (j *JumpTerminator) GetOperands() []*Value        { return nil }
func (j *JumpTerminator) IsTerminator() bool           { return true }
func (j *JumpTerminator) GetSuccessors() []*BasicBlock { return []*BasicBlock{j.Target} }
func (j *JumpTerminator) String() string {
	return fmt.Sprintf("jmp %s", j.Target.Label)
}

// SlotMapping returns the variable index to slot id mapping
func (f *Function) SlotMapping() map[int]int {
	mapping := make(map[int]int, len(f.Slots))
	for _, slot := range f.Slots {
		mapping[slot.Index] = slot.ID
	}
	return mapping
}

// Block returns the block with the given label, or nil
func (f *Function) Block(label string) *BasicBlock {
	for _, block := range f.Blocks {
		if block.Label == label {
			return block
		}
	}
	return nil
}
