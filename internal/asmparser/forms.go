package asmparser

import "github.com/bradford-hamilton/chippy/internal/asmscan"

type tokenMatcher func(asmscan.Token) bool

func isRegister(t asmscan.Token) bool  { return t.Kind == asmscan.KindRegister }
func isIRegister(t asmscan.Token) bool { return t.Kind == asmscan.KindIRegister }
func isComma(t asmscan.Token) bool     { return t.Kind == asmscan.KindComma }
func isNumValue(t asmscan.Token) bool  { return t.IsNumericValue() }

// form is one recognized operand shape for a mnemonic: the sequence of
// tokens expected to follow it (not including the terminating
// newline, which every form requires) and the function that turns the
// matched operand tokens into the two big-endian opcode bytes.
type form struct {
	operands []tokenMatcher
	encode   func(ops []asmscan.Token) [2]byte
}

func reg3(a, b tokenMatcher) []tokenMatcher { return []tokenMatcher{a, isComma, b} }

func hi4(nibble byte, x uint16) byte { return nibble<<4 | byte(x) }

// forms is keyed by mnemonic kind. Where a mnemonic has more than one
// form, they are tried in the order listed here and the first match
// wins — mirroring the assembler's original try-this-else-try-that
// encode pass, restructured into an explicit table.
var forms = map[asmscan.Kind][]form{
	asmscan.KindCLS: {
		{encode: func(ops []asmscan.Token) [2]byte { return [2]byte{0x00, 0xE0} }},
	},
	asmscan.KindRET: {
		{encode: func(ops []asmscan.Token) [2]byte { return [2]byte{0x00, 0xEE} }},
	},
	asmscan.KindJP: {
		{operands: []tokenMatcher{isNumValue}, encode: encodeAddr(0x1)},
	},
	asmscan.KindCall: {
		{operands: []tokenMatcher{isNumValue}, encode: encodeAddr(0x2)},
	},
	asmscan.KindSKP: {
		{operands: []tokenMatcher{isRegister}, encode: func(ops []asmscan.Token) [2]byte {
			return [2]byte{hi4(0xE, ops[0].Literal), 0x9E}
		}},
	},
	asmscan.KindSKNP: {
		{operands: []tokenMatcher{isRegister}, encode: func(ops []asmscan.Token) [2]byte {
			return [2]byte{hi4(0xE, ops[0].Literal), 0xA1}
		}},
	},
	asmscan.KindLD: {
		{operands: reg3(isRegister, isNumValue), encode: func(ops []asmscan.Token) [2]byte {
			return [2]byte{hi4(0x6, ops[0].Literal), byte(ops[2].Literal)}
		}},
		{operands: reg3(isRegister, isRegister), encode: func(ops []asmscan.Token) [2]byte {
			return [2]byte{hi4(0x8, ops[0].Literal), byte(ops[2].Literal << 4)}
		}},
		{operands: reg3(isIRegister, isNumValue), encode: func(ops []asmscan.Token) [2]byte {
			nnn := ops[2].Literal
			return [2]byte{0xA0 | byte(nnn>>8), byte(nnn & 0xFF)}
		}},
	},
	asmscan.KindSE: {
		{operands: reg3(isRegister, isRegister), encode: func(ops []asmscan.Token) [2]byte {
			return [2]byte{hi4(0x5, ops[0].Literal), byte(ops[2].Literal << 4)}
		}},
		{operands: reg3(isRegister, isNumValue), encode: func(ops []asmscan.Token) [2]byte {
			return [2]byte{hi4(0x3, ops[0].Literal), byte(ops[2].Literal)}
		}},
	},
	asmscan.KindSNE: {
		{operands: reg3(isRegister, isRegister), encode: func(ops []asmscan.Token) [2]byte {
			return [2]byte{hi4(0x9, ops[0].Literal), byte(ops[2].Literal << 4)}
		}},
		{operands: reg3(isRegister, isNumValue), encode: func(ops []asmscan.Token) [2]byte {
			return [2]byte{hi4(0x4, ops[0].Literal), byte(ops[2].Literal)}
		}},
	},
	asmscan.KindRND: {
		{operands: reg3(isRegister, isNumValue), encode: func(ops []asmscan.Token) [2]byte {
			return [2]byte{hi4(0xC, ops[0].Literal), byte(ops[2].Literal)}
		}},
	},
	asmscan.KindADD: {
		{operands: reg3(isRegister, isRegister), encode: func(ops []asmscan.Token) [2]byte {
			return [2]byte{hi4(0x8, ops[0].Literal), byte(ops[2].Literal<<4) | 0x4}
		}},
		{operands: reg3(isRegister, isNumValue), encode: func(ops []asmscan.Token) [2]byte {
			return [2]byte{hi4(0x7, ops[0].Literal), byte(ops[2].Literal)}
		}},
		{operands: reg3(isIRegister, isRegister), encode: func(ops []asmscan.Token) [2]byte {
			return [2]byte{hi4(0xF, ops[2].Literal), 0x1E}
		}},
	},
	asmscan.KindOR:   {algebraic3(0x1)},
	asmscan.KindAND:  {algebraic3(0x2)},
	asmscan.KindXOR:  {algebraic3(0x3)},
	asmscan.KindSUB:  {algebraic3(0x5)},
	asmscan.KindSHR:  {algebraic3(0x6)},
	asmscan.KindSUBN: {algebraic3(0x7)},
	asmscan.KindSHL:  {algebraic3(0xE)},
	asmscan.KindDRW: {
		{operands: []tokenMatcher{isRegister, isComma, isRegister, isComma, isNumValue}, encode: func(ops []asmscan.Token) [2]byte {
			return [2]byte{hi4(0xD, ops[0].Literal), byte(ops[2].Literal<<4) | byte(ops[4].Literal&0xF)}
		}},
	},
}

// algebraic3 builds the single Vx,Vy form shared by the 8xy1-8xy7/8xyE
// bitwise and arithmetic instructions; only the low nibble changes.
func algebraic3(lowNibble byte) form {
	return form{
		operands: reg3(isRegister, isRegister),
		encode: func(ops []asmscan.Token) [2]byte {
			return [2]byte{hi4(0x8, ops[0].Literal), byte(ops[2].Literal<<4) | lowNibble}
		},
	}
}

func encodeAddr(topNibble byte) func(ops []asmscan.Token) [2]byte {
	return func(ops []asmscan.Token) [2]byte {
		nnn := ops[0].Literal
		return [2]byte{topNibble<<4 | byte(nnn>>8), byte(nnn & 0xFF)}
	}
}
