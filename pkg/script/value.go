package script

import (
	"fmt"
	"strconv"
)

// ValueKind tags the runtime type of a Value.
type ValueKind int

const (
	IntValue ValueKind = iota
	BoolValue
	StringValue
)

var valueKindNames = [...]string{
	IntValue:    "int",
	BoolValue:   "bool",
	StringValue: "string",
}

func (k ValueKind) String() string {
	if int(k) >= 0 && int(k) < len(valueKindNames) {
		return valueKindNames[k]
	}
	return fmt.Sprintf("ValueKind(%d)", int(k))
}

// Value is the closed tagged union every expression evaluates to.
// Exactly one of the payload fields is meaningful, selected by Kind.
// There are no implicit coercions between kinds.
type Value struct {
	Kind ValueKind
	Int  int
	Bool bool
	Str  string
}

func intVal(v int) Value    { return Value{Kind: IntValue, Int: v} }
func boolVal(v bool) Value  { return Value{Kind: BoolValue, Bool: v} }
func strVal(v string) Value { return Value{Kind: StringValue, Str: v} }

func (v Value) String() string {
	switch v.Kind {
	case IntValue:
		return strconv.Itoa(v.Int)
	case BoolValue:
		return strconv.FormatBool(v.Bool)
	case StringValue:
		return strconv.Quote(v.Str)
	}
	return "<invalid value>"
}
