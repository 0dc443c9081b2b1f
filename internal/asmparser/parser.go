// Package asmparser turns chippy assembler source into CHIP-8 machine
// code. Assembly happens in two passes over the full token stream: a
// label pre-pass that resolves every label to a concrete 16-bit value,
// followed by an encode pass that walks the resolved tokens matching
// each instruction against its known operand forms.
package asmparser

import (
	"errors"
	"fmt"
	"io"

	"github.com/bradford-hamilton/chippy/internal/asmscan"
)

// Assemble lexes, resolves labels in, and encodes src, returning the
// raw CHIP-8 program bytes ready to be written after the standard ROM
// origin (0x200) or loaded directly by chip8.New.
func Assemble(src []byte) ([]byte, error) {
	tokens, err := scanAll(src)
	if err != nil {
		return nil, err
	}

	resolved, err := labelPrePass(tokens)
	if err != nil {
		return nil, err
	}

	return encode(resolved)
}

func scanAll(src []byte) ([]asmscan.Token, error) {
	sc := asmscan.New(src)
	var tokens []asmscan.Token
	for {
		tok, err := sc.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

// encode walks the resolved token stream left to right. Each mnemonic
// it meets must be immediately followed by one of its registered
// operand forms and a terminating newline; anything else aborts the
// assembly. Bare newlines between statements are skipped, and any
// token encountered outside of a matched instruction is an error —
// there is no expression syntax to fall back on.
func encode(tokens []asmscan.Token) ([]byte, error) {
	var out []byte

	for i := 0; i < len(tokens); {
		tok := tokens[i]

		if tok.Kind == asmscan.KindNewline {
			i++
			continue
		}

		candidates, ok := forms[tok.Kind]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnexpectedToken, tok.Word)
		}
		i++

		matched := false
		for _, f := range candidates {
			ops, consumed, ok := matchForm(tokens, i, f)
			if !ok {
				continue
			}
			bytes := f.encode(ops)
			out = append(out, bytes[0], bytes[1])
			i += consumed
			matched = true
			break
		}
		if !matched {
			return nil, fmt.Errorf("%w: %q", ErrBadOperandForm, tok.Word)
		}
	}

	return out, nil
}

// matchForm reports whether f's operand matchers are satisfied by the
// tokens starting at pos, followed by a newline. On success it returns
// the matched operand tokens and the number of tokens consumed
// (operands plus the trailing newline).
func matchForm(tokens []asmscan.Token, pos int, f form) ([]asmscan.Token, int, bool) {
	need := len(f.operands) + 1
	if pos+need > len(tokens) {
		return nil, 0, false
	}
	for idx, m := range f.operands {
		if !m(tokens[pos+idx]) {
			return nil, 0, false
		}
	}
	if tokens[pos+len(f.operands)].Kind != asmscan.KindNewline {
		return nil, 0, false
	}
	return tokens[pos : pos+len(f.operands) : pos+len(f.operands)], need, true
}
