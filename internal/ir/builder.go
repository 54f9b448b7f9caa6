package ir

import (
	"fmt"

	"umjunsik/internal/ast"
)

// Builder lowers a parsed program into a Function. A Builder is used for a
// single generation and is not safe for concurrent use.
type Builder struct {
	fn           *Function
	slots        *SlotTable
	labels       *labelTable
	currentBlock *BasicBlock
	tempCounter  int
	condCounter  int
	warnings     []Warning

	// Statement being lowered, for error reporting
	line int
	pos  ast.Position
}

func NewBuilder() *Builder {
	return &Builder{}
}

// Build runs usage analysis, resolves labels, then emits every block.
func (b *Builder) Build(program *ast.Program) (*Function, error) {
	b.slots = AnalyzeSlots(program)
	b.labels = resolveLabels(program)
	b.fn = &Function{Name: "main", ReturnType: "i64"}

	entry := &BasicBlock{Label: "entry"}
	b.fn.Entry = entry
	b.startBlock(entry)

	for id, index := range b.slots.Indices() {
		ptr := &Value{ID: id, Name: fmt.Sprintf("v%d", id)}
		b.fn.Slots = append(b.fn.Slots, &Slot{ID: id, Index: index, Ptr: ptr})
		if err := b.emit(&AllocInstruction{Result: ptr}); err != nil {
			return nil, err
		}
		if err := b.emit(&StoreInstruction{Address: ptr, Value: Constant(0)}); err != nil {
			return nil, err
		}
	}

	if len(program.Lines) == 0 {
		if err := b.terminate(&ReturnTerminator{Value: Constant(0)}); err != nil {
			return nil, err
		}
		return b.fn, nil
	}
	if err := b.terminate(&JumpTerminator{Target: b.labels.lines[program.Lines[0].Number]}); err != nil {
		return nil, err
	}

	for i, line := range program.Lines {
		b.line = line.Number
		b.pos = line.Stmt.NodePos()
		b.startBlock(b.labels.lines[line.Number])

		next := b.labels.successor(program, i)
		if err := b.lowerStmt(line.Stmt, next); err != nil {
			return nil, err
		}

		if b.currentBlock.Terminator != nil {
			continue
		}
		var term Terminator = &ReturnTerminator{Value: Constant(0)}
		if next != nil {
			term = &JumpTerminator{Target: next}
		}
		if err := b.terminate(term); err != nil {
			return nil, err
		}
	}

	if b.labels.exit != nil {
		b.line = 0
		b.startBlock(b.labels.exit)
		if err := b.terminate(&ReturnTerminator{Value: Constant(0)}); err != nil {
			return nil, err
		}
	}

	return b.fn, nil
}

// Warnings returns the non-fatal conditions found by the last Build.
func (b *Builder) Warnings() []Warning {
	return b.warnings
}

func (b *Builder) lowerStmt(stmt ast.Stmt, next *BasicBlock) error {
	switch s := stmt.(type) {
	case *ast.Assign:
		value, err := b.lowerExpr(s.Value)
		if err != nil {
			return err
		}
		ptr, err := b.slotPtr(s.Index)
		if err != nil {
			return err
		}
		return b.emit(&StoreInstruction{Address: ptr, Value: value})

	case *ast.Print:
		value, err := b.lowerExpr(s.Value)
		if err != nil {
			return err
		}
		return b.emit(&PrintInstruction{Value: value})

	case *ast.PrintChar:
		value, err := b.lowerExpr(s.Value)
		if err != nil {
			return err
		}
		return b.emit(&PrintInstruction{Value: value, Char: true})

	case *ast.PrintNewline:
		value, err := b.lowerConstant(10)
		if err != nil {
			return err
		}
		return b.emit(&PrintInstruction{Value: value, Char: true})

	case *ast.Input:
		return b.lowerInput(s)

	case *ast.Conditional:
		return b.lowerConditional(s, next)

	case *ast.Goto:
		target, ok := b.labels.lines[s.Target]
		if !ok {
			return b.errorf(UnresolvedLabel, "goto targets line %d, which does not exist", s.Target)
		}
		return b.terminate(&JumpTerminator{Target: target})

	case *ast.Return:
		value := Constant(0)
		if s.Value != nil {
			var err error
			if value, err = b.lowerExpr(s.Value); err != nil {
				return err
			}
		}
		return b.terminate(&ReturnTerminator{Value: value})

	default:
		return fmt.Errorf("line %d: cannot generate code for %s", b.line, stmt.NodeType())
	}
}

// lowerConditional branches to a fresh body block when the guard is non-zero
// and to next otherwise. The body rejoins next unless it terminates itself.
func (b *Builder) lowerConditional(s *ast.Conditional, next *BasicBlock) error {
	ptr, err := b.slotPtr(s.Guard)
	if err != nil {
		return err
	}
	if next == nil {
		return fmt.Errorf("line %d: conditional has no fall-through block", b.line)
	}

	guard := b.newTemp()
	if err := b.emit(&LoadInstruction{Result: guard, Address: ptr}); err != nil {
		return err
	}
	cond := b.newTemp()
	if err := b.emit(&BinaryInstruction{Result: cond, Op: OpNe, Left: guard, Right: Constant(0)}); err != nil {
		return err
	}

	body := &BasicBlock{Label: fmt.Sprintf("cond_%d", b.condCounter)}
	b.condCounter++
	if err := b.terminate(&BranchTerminator{Condition: cond, TrueBlock: body, FalseBlock: next}); err != nil {
		return err
	}

	b.startBlock(body)
	if err := b.lowerStmt(s.Body, next); err != nil {
		return err
	}
	if b.currentBlock.Terminator == nil {
		return b.terminate(&JumpTerminator{Target: next})
	}
	return nil
}

// lowerInput emits a placeholder: the backend has no input instruction, so
// the variable keeps its current value.
func (b *Builder) lowerInput(s *ast.Input) error {
	ptr, err := b.slotPtr(s.Index)
	if err != nil {
		return err
	}
	if err := b.emit(&CommentInstruction{Text: fmt.Sprintf("console input into variable %d is not supported", s.Index)}); err != nil {
		return err
	}
	if err := b.emit(&CommentInstruction{Text: fmt.Sprintf("(placeholder) %s keeps its value", ptr)}); err != nil {
		return err
	}
	b.warnings = append(b.warnings, Warning{
		Line:     b.line,
		Position: s.Pos,
		Message:  fmt.Sprintf("console input is not supported; variable %d is left unchanged", s.Index),
	})
	return nil
}

func (b *Builder) lowerExpr(expr ast.Expr) (*Value, error) {
	switch e := expr.(type) {
	case *ast.Number:
		return b.lowerConstant(e.Value)

	case *ast.Variable:
		ptr, err := b.slotPtr(e.Index)
		if err != nil {
			return nil, err
		}
		result := b.newTemp()
		return result, b.emit(&LoadInstruction{Result: result, Address: ptr})

	case *ast.BinaryOp:
		left, err := b.lowerExpr(e.Left)
		if err != nil {
			return nil, err
		}
		right, err := b.lowerExpr(e.Right)
		if err != nil {
			return nil, err
		}
		result := b.newTemp()
		return result, b.emit(&BinaryInstruction{Result: result, Op: binaryOpcode(e.Op), Left: left, Right: right})

	default:
		return nil, fmt.Errorf("line %d: cannot generate code for %T", b.line, expr)
	}
}

// lowerConstant materialises v with an add-with-zero; the backend has no
// bare constant instruction.
func (b *Builder) lowerConstant(v int64) (*Value, error) {
	result := b.newTemp()
	return result, b.emit(&BinaryInstruction{Result: result, Op: OpAdd, Left: Constant(v), Right: Constant(0)})
}

func binaryOpcode(op ast.Operator) Opcode {
	switch op {
	case ast.Sub:
		return OpSub
	case ast.Mul:
		return OpMul
	default:
		return OpAdd
	}
}

// newTemp is the only source of temporaries. The counter is never reset
// within a function.
func (b *Builder) newTemp() *Value {
	v := &Value{ID: b.tempCounter, Name: fmt.Sprintf("t%d", b.tempCounter)}
	b.tempCounter++
	return v
}

func (b *Builder) slotPtr(index int) (*Value, error) {
	id, ok := b.slots.Lookup(index)
	if !ok {
		return nil, b.errorf(SlotInvariant, "variable %d has no slot", index)
	}
	return b.fn.Slots[id].Ptr, nil
}

func (b *Builder) startBlock(block *BasicBlock) {
	b.fn.Blocks = append(b.fn.Blocks, block)
	b.currentBlock = block
}

func (b *Builder) emit(inst Instruction) error {
	if b.currentBlock.Terminator != nil {
		return b.errorf(BlockOrder, "instruction %q emitted after block %s terminated", inst.String(), b.currentBlock.Label)
	}
	b.currentBlock.Instructions = append(b.currentBlock.Instructions, inst)
	return nil
}

func (b *Builder) terminate(term Terminator) error {
	if b.currentBlock.Terminator != nil {
		return b.errorf(BlockOrder, "block %s terminated twice", b.currentBlock.Label)
	}
	b.currentBlock.Terminator = term
	return nil
}

func (b *Builder) errorf(kind CodeGenErrorKind, format string, args ...interface{}) *CodeGenError {
	return &CodeGenError{
		Kind:     kind,
		Line:     b.line,
		Position: b.pos,
		Message:  fmt.Sprintf(format, args...),
	}
}
