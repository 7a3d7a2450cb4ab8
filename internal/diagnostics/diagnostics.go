// Package diagnostics defines the structured error taxonomy shared by the
// lexer, parser and analyzer.
package diagnostics

import (
	"fmt"

	"github.com/alexandramedway/odds/internal/token"
)

// Phase identifies which stage of the pipeline raised a diagnostic.
type Phase string

const (
	PhaseLexer    Phase = "lexer"
	PhaseParser   Phase = "parser"
	PhaseAnalyzer Phase = "analyzer"
)

// Code names a specific diagnostic condition.
type Code string

const (
	// Lexer/parser errors (ambient, not part of spec.md's analyzer taxonomy).
	ErrIllegalCharacter Code = "L001"
	ErrUnexpectedToken  Code = "P001"
	ErrExpectedToken    Code = "P002"

	// Analyzer errors — spec.md §7.
	ErrUndefinedVariable    Code = "A001"
	ErrUnopTypeError        Code = "A002"
	ErrBinopTypeError       Code = "A003"
	ErrExpectedBool         Code = "A004"
	ErrAssignToVoid         Code = "A005"
	ErrListElementType      Code = "A006"
	ErrCallNonFunction      Code = "A007"
	ErrCallArityMismatch    Code = "A008"
	ErrCallArgTypeMismatch  Code = "A009"
	ErrRecursiveTypeMismatch Code = "A010"
	ErrUnconstrainedReturn  Code = "A011"
	ErrFdeclReassign        Code = "A012"
	ErrConstrainConflict    Code = "A013"
	ErrUnconstrainedIf      Code = "A014"
	ErrIfBranchMismatch     Code = "A015"
)

var templates = map[Code]string{
	ErrIllegalCharacter: "illegal character: %q",
	ErrUnexpectedToken:  "unexpected token: expected %s, got %s",
	ErrExpectedToken:    "expected %s",

	ErrUndefinedVariable:     "undefined variable: %s",
	ErrUnopTypeError:         "operator %s cannot be applied to %s",
	ErrBinopTypeError:        "operator %s cannot be applied to %s and %s",
	ErrExpectedBool:          "if condition must be Bool, got %s",
	ErrAssignToVoid:          "cannot assign a Void-typed expression to %s",
	ErrListElementType:       "list element has type %s, expected %s",
	ErrCallNonFunction:       "cannot call a value of type %s",
	ErrCallArityMismatch:     "call expects %d argument(s), got %d",
	ErrCallArgTypeMismatch:   "argument %d has type %s, expected %s",
	ErrRecursiveTypeMismatch: "parameter %s inferred as %s conflicts with declared type %s",
	ErrUnconstrainedReturn:   "function %s's return type could not be constrained",
	ErrFdeclReassign:         "cannot redefine %s while its declaration is still in progress",
	ErrConstrainConflict:     "cannot constrain %s to %s",
	ErrUnconstrainedIf:       "if branches are both unconstrained",
	ErrIfBranchMismatch:      "if branches have incompatible types: %s and %s",
}

// Error is the single diagnostic type raised anywhere in the pipeline.
type Error struct {
	Code  Code
	Phase Phase
	Token token.Token
	Args  []interface{}
}

func (e *Error) Error() string {
	template, ok := templates[e.Code]
	message := e.Code.String()
	if ok {
		message = fmt.Sprintf(template, e.Args...)
	}
	if e.Token.Line > 0 {
		return fmt.Sprintf("[%s] %d:%d: %s (%s)", e.Phase, e.Token.Line, e.Token.Column, message, e.Code)
	}
	return fmt.Sprintf("[%s] %s (%s)", e.Phase, message, e.Code)
}

func (c Code) String() string { return string(c) }

// New builds a diagnostic for the given phase, code and source token.
func New(phase Phase, code Code, tok token.Token, args ...interface{}) *Error {
	return &Error{Code: code, Phase: phase, Token: tok, Args: args}
}

// NewAnalyzer is a convenience constructor for PhaseAnalyzer diagnostics,
// which is where spec.md's error taxonomy (§7) lives.
func NewAnalyzer(code Code, tok token.Token, args ...interface{}) *Error {
	return New(PhaseAnalyzer, code, tok, args...)
}
