package dtypes

import "fmt"

// Type is the declared type of a field, parameter, local or method result.
type Type uint8

const (
	TYP_INT Type = iota
	TYP_BOOLEAN

	// Only valid as a method return type.
	TYP_VOID
)

var typeNames = [...]string{
	TYP_INT:     "int",
	TYP_BOOLEAN: "boolean",
	TYP_VOID:    "void",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}

	return fmt.Sprintf("Type(%d)", t)
}
