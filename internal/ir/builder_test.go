package ir

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"umjunsik/internal/ast"
	"umjunsik/internal/parser"
)

func parseProgram(t *testing.T, lines ...string) *ast.Program {
	t.Helper()
	src := "어떻게\n" + strings.Join(lines, "\n") + "\n이 사람이름이냐ㅋㅋ"
	program, parseErrors, scanErrors := parser.ParseSource("test.umm", src)
	require.Empty(t, scanErrors)
	require.Empty(t, parseErrors)
	return program
}

func generate(t *testing.T, lines ...string) *Function {
	t.Helper()
	fn, _, err := Generate(parseProgram(t, lines...))
	require.NoError(t, err)
	require.NotNil(t, fn)
	return fn
}

func blockLabels(fn *Function) []string {
	labels := make([]string, 0, len(fn.Blocks))
	for _, block := range fn.Blocks {
		labels = append(labels, block.Label)
	}
	return labels
}

func instructionText(block *BasicBlock) []string {
	var lines []string
	for _, inst := range block.Instructions {
		lines = append(lines, inst.String())
	}
	if block.Terminator != nil {
		lines = append(lines, block.Terminator.String())
	}
	return lines
}

func TestEmptyProgram(t *testing.T) {
	fn := generate(t)

	assert.Empty(t, fn.Slots)
	require.Len(t, fn.Blocks, 1)
	assert.Equal(t, []string{"ret.i64 0"}, instructionText(fn.Entry))
}

func TestAssignAndPrint(t *testing.T) {
	fn := generate(t, "엄...", "어엄....", "식어어!")

	require.Len(t, fn.Slots, 2)
	assert.Equal(t, []string{"entry", "line_1", "line_2", "line_3"}, blockLabels(fn))

	var prints []*PrintInstruction
	for _, block := range fn.Blocks {
		for _, inst := range block.Instructions {
			if p, ok := inst.(*PrintInstruction); ok {
				prints = append(prints, p)
			}
		}
	}
	require.Len(t, prints, 1, "Exactly one print should be emitted")
	assert.False(t, prints[0].Char)

	assert.Equal(t, []string{
		"%t2 = load.i64 %v1",
		"print %t2",
		"ret.i64 0",
	}, instructionText(fn.Block("line_3")))
}

func TestGotoUnknownLine(t *testing.T) {
	_, _, err := Generate(parseProgram(t, "엄.", "준....."))
	require.Error(t, err)

	var cgErr *CodeGenError
	require.True(t, errors.As(err, &cgErr))
	assert.Equal(t, UnresolvedLabel, cgErr.Kind)
	assert.Equal(t, 2, cgErr.Line)
	assert.Equal(t, 3, cgErr.Position.Line)
	assert.Contains(t, cgErr.Error(), "unresolved label at line 2")
}

func TestGotoNonPositiveLine(t *testing.T) {
	_, _, err := Generate(parseProgram(t, "준.,"))

	var cgErr *CodeGenError
	require.True(t, errors.As(err, &cgErr))
	assert.Equal(t, UnresolvedLabel, cgErr.Kind)
}

func TestSlotsFollowFirstOccurrence(t *testing.T) {
	// v2 = v0; print v5; v0 = v5
	program := parseProgram(t, "어어엄어", "식어어어어어어!", "엄어어어어어어")
	slots := AnalyzeSlots(program)

	assert.Equal(t, 3, slots.Len())
	assert.Equal(t, []int{2, 0, 5}, slots.Indices())

	id, ok := slots.Lookup(5)
	assert.True(t, ok)
	assert.Equal(t, 2, id)

	_, ok = slots.Lookup(1)
	assert.False(t, ok, "Unused indices get no slot")
}

func TestConditionalGuardBeforeBody(t *testing.T) {
	program := parseProgram(t, "동탄어어?엄어어어")
	assert.Equal(t, []int{1, 0, 2}, AnalyzeSlots(program).Indices())
}

func TestInputTargetGetsSlot(t *testing.T) {
	fn, warnings, err := Generate(parseProgram(t, "어어어엄식?"))
	require.NoError(t, err)

	require.Len(t, fn.Slots, 1)
	assert.Equal(t, 3, fn.Slots[0].Index)

	require.Len(t, warnings, 1)
	assert.Equal(t, 1, warnings[0].Line)
	assert.Contains(t, warnings[0].Message, "console input is not supported")

	assert.Equal(t, []string{
		"; console input into variable 3 is not supported",
		"; (placeholder) %v0 keeps its value",
		"ret.i64 0",
	}, instructionText(fn.Block("line_1")))
}

func TestSlotMappingIsStable(t *testing.T) {
	lines := []string{"어어어엄.", "엄어어어", "식어!", "동탄어어?식어어어어ㅋ"}

	first := generate(t, lines...)
	second := generate(t, lines...)

	assert.Equal(t, first.SlotMapping(), second.SlotMapping())
	assert.Equal(t, Print(first), Print(second))
	assert.Equal(t, map[int]int{3: 0, 0: 1, 2: 2, 1: 3}, first.SlotMapping())
}

func TestExpressionLowering(t *testing.T) {
	fn := generate(t, "엄.어 ..")

	assert.Equal(t, []string{
		"%t0 = add.i64 1, 0",
		"%t1 = load.i64 %v0",
		"%t2 = add.i64 2, 0",
		"%t3 = mul.i64 %t1, %t2",
		"%t4 = add.i64 %t0, %t3",
		"store.i64 %v0, %t4",
		"ret.i64 0",
	}, instructionText(fn.Block("line_1")))
}

func TestLiteralLowering(t *testing.T) {
	tests := []struct {
		literal  string
		expected string
	}{
		{".....", "%t0 = add.i64 5, 0"},
		{",,,,", "%t0 = add.i64 -4, 0"},
		{"..,...,", "%t0 = add.i64 3, 0"},
	}

	for _, tt := range tests {
		t.Run(tt.literal, func(t *testing.T) {
			fn := generate(t, "식"+tt.literal+"!")
			assert.Equal(t, tt.expected, fn.Block("line_1").Instructions[0].String())
		})
	}
}

func TestSubtraction(t *testing.T) {
	fn := generate(t, "엄어,,")
	assert.Equal(t, "%t2 = sub.i64 %t0, %t1", fn.Block("line_1").Instructions[2].String())
}

func TestConditionalBranches(t *testing.T) {
	fn := generate(t, "엄.", "동탄어?식어!", "식ㅋ")

	assert.Equal(t, []string{"entry", "line_1", "line_2", "cond_0", "line_3"}, blockLabels(fn))

	line2 := fn.Block("line_2")
	assert.Equal(t, []string{
		"%t1 = load.i64 %v0",
		"%t2 = ne.i64 %t1, 0",
		"br %t2, cond_0, line_3",
	}, instructionText(line2))

	branch, ok := line2.Terminator.(*BranchTerminator)
	require.True(t, ok)
	assert.Same(t, fn.Block("cond_0"), branch.TrueBlock)
	assert.Same(t, fn.Block("line_3"), branch.FalseBlock)

	assert.Equal(t, []string{
		"%t3 = load.i64 %v0",
		"print %t3",
		"jmp line_3",
	}, instructionText(fn.Block("cond_0")))

	assert.Equal(t, []string{
		"%t4 = add.i64 10, 0",
		"printchar %t4",
		"ret.i64 0",
	}, instructionText(fn.Block("line_3")))
}

func TestConditionalOnLastLineUsesExit(t *testing.T) {
	fn := generate(t, "동탄어?화이팅")

	assert.Equal(t, []string{"entry", "line_1", "cond_0", "exit"}, blockLabels(fn))
	assert.Equal(t, []string{"ret.i64 0"}, instructionText(fn.Block("cond_0")),
		"A terminating body does not jump")
	assert.Equal(t, []string{"ret.i64 0"}, instructionText(fn.Block("exit")))
}

func TestNoExitBlockWithoutTrailingConditional(t *testing.T) {
	fn := generate(t, "동탄어?식어!", "화이팅")
	assert.Nil(t, fn.Block("exit"))
}

func TestNestedConditional(t *testing.T) {
	fn := generate(t, "동탄어?동탄어어?식.!", "화이팅")

	assert.Equal(t, []string{"entry", "line_1", "cond_0", "cond_1", "line_2"}, blockLabels(fn))
	inner, ok := fn.Block("cond_0").Terminator.(*BranchTerminator)
	require.True(t, ok)
	assert.Same(t, fn.Block("line_2"), inner.FalseBlock)
	assert.Equal(t, "jmp line_2", fn.Block("cond_1").Terminator.String())
}

func TestGotoTargetsResolvedBlock(t *testing.T) {
	fn := generate(t, "준...", "엄.", "준..", "동탄어?준..")

	line2 := fn.Block("line_2")
	for _, label := range []string{"line_3", "cond_0"} {
		jump, ok := fn.Block(label).Terminator.(*JumpTerminator)
		require.True(t, ok, label)
		assert.Same(t, line2, jump.Target, "Every jump to line 2 reaches the same block")
	}

	forward, ok := fn.Block("line_1").Terminator.(*JumpTerminator)
	require.True(t, ok)
	assert.Same(t, fn.Block("line_3"), forward.Target)
}

func TestReturnValue(t *testing.T) {
	fn := generate(t, "화이팅!어", "식.!")

	assert.Equal(t, []string{
		"%t0 = load.i64 %v0",
		"ret.i64 %t0",
	}, instructionText(fn.Block("line_1")))
	assert.Equal(t, "ret.i64 0", fn.Block("line_2").Terminator.String())
}

func TestTemporariesAreSingleAssignment(t *testing.T) {
	fn := generate(t, "엄. ..어", "동탄어?식어 어ㅋ", "식ㅋ", "화이팅!어..")

	defined := map[string]bool{}
	lastID := -1
	for _, block := range fn.Blocks[1:] {
		for _, inst := range block.Instructions {
			result := inst.GetResult()
			if result == nil {
				continue
			}
			assert.False(t, defined[result.Name], "%s defined twice", result.Name)
			defined[result.Name] = true
			assert.Greater(t, result.ID, lastID, "Temporaries are numbered in emission order")
			lastID = result.ID
		}
	}
	assert.NotEmpty(t, defined)
}

func TestEmitAfterTerminatorFails(t *testing.T) {
	b := NewBuilder()
	b.fn = &Function{}
	b.startBlock(&BasicBlock{Label: "line_1"})
	require.NoError(t, b.terminate(&ReturnTerminator{Value: Constant(0)}))

	err := b.emit(&PrintInstruction{Value: Constant(1)})
	var cgErr *CodeGenError
	require.True(t, errors.As(err, &cgErr))
	assert.Equal(t, BlockOrder, cgErr.Kind)

	err = b.terminate(&ReturnTerminator{Value: Constant(0)})
	require.True(t, errors.As(err, &cgErr))
	assert.Equal(t, BlockOrder, cgErr.Kind)
}

func TestMissingSlotFails(t *testing.T) {
	b := NewBuilder()
	b.slots = AnalyzeSlots(&ast.Program{})
	b.fn = &Function{}

	_, err := b.slotPtr(3)
	var cgErr *CodeGenError
	require.True(t, errors.As(err, &cgErr))
	assert.Equal(t, SlotInvariant, cgErr.Kind)
}
