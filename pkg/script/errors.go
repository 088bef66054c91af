package script

import (
	"fmt"
	"strings"
)

// ErrorKind classifies a failure in the pipeline.
type ErrorKind int

const (
	// SyntaxError is a malformed token stream or grammar violation.
	SyntaxError ErrorKind = iota
	// SemanticError is well-formed input that is meaningless at its point
	// of use: undefined variable or label, duplicate label, unknown color
	// or function, re-Spawn, drawing before Spawn.
	SemanticError
	// ExecutionError is a runtime condition violated by an otherwise
	// correct program: out-of-bounds position, division by zero,
	// mismatched operand types.
	ExecutionError
)

var errorKindNames = [...]string{
	SyntaxError:    "syntax error",
	SemanticError:  "semantic error",
	ExecutionError: "execution error",
}

func (k ErrorKind) String() string {
	if int(k) >= 0 && int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is a classified diagnostic carrying the 1-based source line it
// refers to and an optional free-form context string (e.g. which command
// or argument position failed).
type Error struct {
	Kind    ErrorKind
	Line    int
	Message string
	Context string
}

func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("line %d: %s: %s (%s)", e.Line, e.Kind, e.Message, e.Context)
	}
	return fmt.Sprintf("line %d: %s: %s", e.Line, e.Kind, e.Message)
}

// withContext returns a copy of e annotated with a context string.
func (e *Error) withContext(format string, args ...any) *Error {
	c := *e
	c.Context = fmt.Sprintf(format, args...)
	return &c
}

func syntaxErr(line int, format string, args ...any) *Error {
	return &Error{Kind: SyntaxError, Line: line, Message: fmt.Sprintf(format, args...)}
}

func semanticErr(line int, format string, args ...any) *Error {
	return &Error{Kind: SemanticError, Line: line, Message: fmt.Sprintf(format, args...)}
}

func executionErr(line int, format string, args ...any) *Error {
	return &Error{Kind: ExecutionError, Line: line, Message: fmt.Sprintf(format, args...)}
}

// ErrorList aggregates the diagnostics of one parse pass. The parser
// resynchronizes at statement boundaries, so a single pass can report
// several syntax errors.
type ErrorList []*Error

func (el ErrorList) Error() string {
	var b strings.Builder
	for i, e := range el {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(e.Error())
	}
	return b.String()
}
