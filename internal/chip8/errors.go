package chip8

import "errors"

// Fatal executor/load error kinds. The VM never recovers from these
// internally; the host is expected to report and stop.
var (
	ErrUnknownOpcode  = errors.New("chip8: unknown opcode")
	ErrStackUnderflow = errors.New("chip8: stack underflow on RET")
	ErrStackOverflow  = errors.New("chip8: stack overflow on CALL")
	ErrROMTooLarge    = errors.New("chip8: rom exceeds available program memory")
)
