package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanTypes(t *testing.T, input string) []TokenType {
	t.Helper()
	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()
	require.Empty(t, scanner.Errors())

	types := make([]TokenType, 0, len(tokens))
	for _, tok := range tokens {
		types = append(types, tok.Type)
	}
	return types
}

func TestScanProgram(t *testing.T) {
	input := "어떻게\n엄...\n어엄....\n식어어!\n이 사람이름이냐ㅋㅋ"

	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()
	require.Empty(t, scanner.Errors())

	expected := []struct {
		tt    TokenType
		value int64
	}{
		{START, 0}, {NEWLINE, 0},
		{ASSIGN, 0}, {LITERAL, 3}, {NEWLINE, 0},
		{ASSIGN, 1}, {LITERAL, 4}, {NEWLINE, 0},
		{CONSOLE, 0}, {VARIABLE, 1}, {BANG, 0}, {NEWLINE, 0},
		{END, 0}, {EOF, 0},
	}

	require.Len(t, tokens, len(expected))
	for i, exp := range expected {
		assert.Equal(t, exp.tt, tokens[i].Type, "token %d", i)
		assert.Equal(t, exp.value, tokens[i].Value, "token %d", i)
	}
}

func TestLiteralRuns(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{".", 1},
		{".....", 5},
		{",,,", -3},
		{".,.,.", 1},
		{",,..,", -1},
		{".,", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := NewScanner(tt.input).ScanTokens()
			require.Len(t, tokens, 2)
			assert.Equal(t, LITERAL, tokens[0].Type)
			assert.Equal(t, tt.expected, tokens[0].Value)
			assert.Equal(t, tt.input, tokens[0].Lexeme)
		})
	}
}

func TestMarkerRuns(t *testing.T) {
	tests := []struct {
		input string
		tt    TokenType
		value int64
	}{
		{"어", VARIABLE, 0},
		{"어어어", VARIABLE, 2},
		{"엄", ASSIGN, 0},
		{"어엄", ASSIGN, 1},
		{"어어어엄", ASSIGN, 3},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := NewScanner(tt.input).ScanTokens()
			require.Len(t, tokens, 2)
			assert.Equal(t, tt.tt, tokens[0].Type)
			assert.Equal(t, tt.value, tokens[0].Value)
		})
	}
}

func TestBlankBetweenOperands(t *testing.T) {
	assert.Equal(t, []TokenType{VARIABLE, STAR, LITERAL, EOF}, scanTypes(t, "어 .."))
	assert.Equal(t, []TokenType{LITERAL, STAR, VARIABLE, EOF}, scanTypes(t, "..  \t어어"))
	assert.Equal(t, []TokenType{LITERAL, VARIABLE, EOF}, scanTypes(t, "..어"))

	// Blanks that do not sit between two operands are ignored.
	assert.Equal(t, []TokenType{ASSIGN, LITERAL, EOF}, scanTypes(t, "엄 .."))
	assert.Equal(t, []TokenType{LITERAL, ASSIGN, EOF}, scanTypes(t, ".. 어엄"))
	assert.Equal(t, []TokenType{CONSOLE, VARIABLE, BANG, EOF}, scanTypes(t, "식 어 !"))
	assert.Equal(t, []TokenType{LITERAL, NEWLINE, LITERAL, EOF}, scanTypes(t, ". \n ."))
}

func TestKeywords(t *testing.T) {
	input := "어떻게 준 식 동탄 화이팅 ? ! ㅋ ~\n이 사람이름이냐ㅋㅋㅋㅋ"
	expected := []TokenType{
		START, GOTO, CONSOLE, CONDITIONAL, RETURN,
		QUESTION, BANG, KEK, NEWLINE, NEWLINE, END, EOF,
	}

	assert.Equal(t, expected, scanTypes(t, input))
}

func TestEndKeywordTrailingLaughs(t *testing.T) {
	tokens := NewScanner("이 사람이름이냐").ScanTokens()
	require.Len(t, tokens, 2)
	assert.Equal(t, END, tokens[0].Type)

	tokens = NewScanner("이 사람이름이냐ㅋㅋㅋㅋㅋ").ScanTokens()
	require.Len(t, tokens, 2)
	assert.Equal(t, END, tokens[0].Type)
	assert.Equal(t, "이 사람이름이냐ㅋㅋㅋㅋㅋ", tokens[0].Lexeme)
}

func TestStartIsNotAVariable(t *testing.T) {
	assert.Equal(t, []TokenType{START, EOF}, scanTypes(t, "어떻게"))
	assert.Equal(t, []TokenType{VARIABLE, START, EOF}, scanTypes(t, "어어떻게"))
}

func TestTokenPositions(t *testing.T) {
	tokens := NewScanner("어떻게\n 식ㅋ").ScanTokens()
	require.Len(t, tokens, 5)

	assert.Equal(t, Position{Line: 1, Column: 1, Offset: 0}, tokens[0].Position)
	assert.Equal(t, Position{Line: 1, Column: 4, Offset: 9}, tokens[1].Position)
	assert.Equal(t, Position{Line: 2, Column: 2, Offset: 11}, tokens[2].Position)
	assert.Equal(t, Position{Line: 2, Column: 3, Offset: 14}, tokens[3].Position)
}

func TestScanErrorsContinue(t *testing.T) {
	scanner := NewScanner("어떻게 x 동 식")
	tokens := scanner.ScanTokens()

	errs := scanner.Errors()
	require.Len(t, errs, 2)
	assert.Equal(t, Position{Line: 1, Column: 5, Offset: 10}, errs[0].Position)
	assert.Equal(t, 1, errs[0].Length)
	assert.Contains(t, errs[0].Message, "Unexpected character")
	assert.Contains(t, errs[1].Message, "탄")
	assert.Equal(t, UnexpectedCharacter, errs[0].Kind)
	assert.Equal(t, IncompleteKeyword, errs[1].Kind)
	assert.Equal(t, "1:5: Unexpected character: 'x'", errs[0].Error())

	require.Len(t, tokens, 3)
	assert.Equal(t, START, tokens[0].Type)
	assert.Equal(t, CONSOLE, tokens[1].Type)
}
