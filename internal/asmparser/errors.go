package asmparser

import "errors"

// Fatal assembler errors. None are recovered internally; Assemble
// returns as soon as one is encountered.
var (
	ErrMalformedLabelDef = errors.New("asmparser: label definition must be followed by a number and a newline")
	ErrDuplicateLabel    = errors.New("asmparser: label redefined")
	ErrUndefinedLabel    = errors.New("asmparser: reference to undefined label")
	ErrUnexpectedToken   = errors.New("asmparser: unexpected token outside an instruction context")
	ErrBadOperandForm    = errors.New("asmparser: no recognized operand form for instruction")
)
