package diag

import "fmt"

// Code is a stable, compact diagnostic identifier in the Exxxx family defined
// by the language's external interface: lexical/syntactic ranges are left to
// the lexer/parser (out of scope for this module), and the core pipeline owns
// the resolution, lowering, type-checking, and call-arity ranges below.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical/syntactic errors. The external interface leaves this range to
	// whatever lexer/parser a caller supplies; these two codes belong to the
	// small one built here to drive the pipeline from real source text.
	EIllegalChar   Code = 1
	ESyntaxError   Code = 2

	// Symbol lookup (§4.2 path resolution).
	ENotFound        Code = 101 // first segment not found in the symbol table
	ENotVisible      Code = 102 // found but VisibleWithin excludes the query point
	ENotFoundIn      Code = 103 // subsequent segment missing from StaticMemberTable

	// Kind mismatch on a resolved path.
	ENotAValue Code = 104
	ENotAType  Code = 105

	// Member access (§4.3 Member/TupleMember).
	EMemberNotAValue  Code = 120
	ENoMemberOn       Code = 121
	ETupleIndexBounds Code = 122

	// Imports (§4.2).
	EImportNotFound   Code = 160
	EImportNotAModule Code = 161
	EMultipleImports  Code = 162

	// Loop labels (§4.3 break/continue).
	EBreakOutsideLoop    Code = 301
	EUndefinedBreakLabel Code = 302
	EContinueOutsideLoop Code = 303
	EUndefinedContLabel  Code = 304

	// Mutability (§4.3 Assign).
	ENotMutable Code = 310

	// Calls.
	ECantCall Code = 501

	// Type checking (§4.4).
	EReturnMismatch  Code = 502
	EBindMismatch    Code = 504
	EAssignMismatch  Code = 505
	EIfCondNotBool   Code = 506
	EWhileCondNotBool Code = 507
	EMissingArgs     Code = 508
	EExtraArgs       Code = 509
	EWrongArgType    Code = 510

	// HIR→MIR lowering (§4.5, open questions).
	EIndirectCallUnsupported Code = 511
	ERecursiveTypeAlias      Code = 512

	// String literal lowering (§4.3).
	ENoHexSequence          Code = 520
	EInvalidHexSequence     Code = 521
	EInvalidEscapeSequence  Code = 522

	// Globals.
	EGlobalMissingDefault Code = 601
)

var codeNames = map[Code]string{
	UnknownCode:              "E0000",
	EIllegalChar:             "E0001",
	ESyntaxError:             "E0002",
	ENotFound:                "E0101",
	ENotVisible:              "E0102",
	ENotFoundIn:              "E0103",
	ENotAValue:               "E0104",
	ENotAType:                "E0105",
	EMemberNotAValue:         "E0120",
	ENoMemberOn:              "E0121",
	ETupleIndexBounds:        "E0122",
	EImportNotFound:          "E0160",
	EImportNotAModule:        "E0161",
	EMultipleImports:         "E0162",
	EBreakOutsideLoop:        "E0301",
	EUndefinedBreakLabel:     "E0302",
	EContinueOutsideLoop:     "E0303",
	EUndefinedContLabel:      "E0304",
	ENotMutable:              "E0310",
	ECantCall:                "E0501",
	EReturnMismatch:          "E0502",
	EBindMismatch:            "E0504",
	EAssignMismatch:          "E0505",
	EIfCondNotBool:           "E0506",
	EWhileCondNotBool:        "E0507",
	EMissingArgs:             "E0508",
	EExtraArgs:               "E0509",
	EWrongArgType:            "E0510",
	EIndirectCallUnsupported: "E0511",
	ERecursiveTypeAlias:      "E0512",
	ENoHexSequence:           "E0520",
	EInvalidHexSequence:      "E0521",
	EInvalidEscapeSequence:   "E0522",
	EGlobalMissingDefault:    "E0601",
}

// ID returns the stable "Exxxx" string form of the code.
func (c Code) ID() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("E%04d", uint16(c))
}

func (c Code) String() string { return c.ID() }
