package errors

// Error codes for the umjunsik compiler
// These codes are used in error messages and editor diagnostics
// to provide consistent error identification across the toolchain.
//
// Error code ranges:
// E0100-E0199: Scanner errors
// E0200-E0299: Parser errors
// E0300-E0399: Code generation errors
// W0001-W0099: Warning codes

const (
	// Scanner errors (E0100-E0199)

	// E0101: Character outside the language alphabet
	ErrorUnexpectedCharacter = "E0101"

	// E0102: Keyword started but not completed, such as 동 without 탄
	ErrorIncompleteKeyword = "E0102"

	// Parser errors (E0200-E0299)

	// E0201: Program does not open with 어떻게
	ErrorMissingStart = "E0201"

	// E0202: Input ended before 이 사람이름이냐ㅋㅋ
	ErrorUnexpectedEOF = "E0202"

	// E0203: Statement or expression has the wrong shape
	ErrorMalformedStatement = "E0203"

	// E0204: Goto target reads a variable
	ErrorNonConstantGoto = "E0204"

	// Code generation errors (E0300-E0399)

	// E0301: Goto names a line that does not exist
	ErrorUnresolvedLabel = "E0301"

	// E0302: Variable used without a slot (compiler defect)
	ErrorSlotInvariant = "E0302"

	// E0303: Instruction emitted after a terminator (compiler defect)
	ErrorBlockOrder = "E0303"

	// Warning codes

	// W0001: Variable assigned but never read
	WarningUnusedVariable = "W0001"

	// W0002: Line can never execute
	WarningUnreachableCode = "W0002"

	// W0003: Variable read but never assigned, always zero
	WarningUnassignedVariable = "W0003"

	// W0004: Console input lowered to a placeholder
	WarningInputPlaceholder = "W0004"
)

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorUnexpectedCharacter:
		return "Character is not part of the language"
	case ErrorIncompleteKeyword:
		return "Keyword is incomplete"
	case ErrorMissingStart:
		return "Program must begin with 어떻게"
	case ErrorUnexpectedEOF:
		return "Program must end with 이 사람이름이냐ㅋㅋ"
	case ErrorMalformedStatement:
		return "Statement is malformed"
	case ErrorNonConstantGoto:
		return "Goto target must be a constant"
	case ErrorUnresolvedLabel:
		return "Goto target line does not exist"
	case ErrorSlotInvariant:
		return "Internal error: variable has no storage slot"
	case ErrorBlockOrder:
		return "Internal error: instruction emitted after block end"
	case WarningUnusedVariable:
		return "Variable is assigned but never read"
	case WarningUnreachableCode:
		return "Line is unreachable"
	case WarningUnassignedVariable:
		return "Variable is read but never assigned"
	case WarningInputPlaceholder:
		return "Console input is not supported"
	default:
		return "Unknown error code"
	}
}

// IsWarning returns true if the error code represents a warning rather than an error
func IsWarning(code string) bool {
	return code != "" && code[0] == 'W'
}

// GetErrorCategory returns the category of the error based on its code
func GetErrorCategory(code string) string {
	switch {
	case code >= "E0100" && code < "E0200":
		return "Scanner"
	case code >= "E0200" && code < "E0300":
		return "Parser"
	case code >= "E0300" && code < "E0400":
		return "Code Generation"
	case IsWarning(code):
		return "Warning"
	default:
		return "Unknown"
	}
}
