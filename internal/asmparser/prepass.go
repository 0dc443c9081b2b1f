package asmparser

import (
	"fmt"

	"github.com/bradford-hamilton/chippy/internal/asmscan"
)

// labelPrePass walks the raw token stream once, recording every label
// definition (":name <value>\n") and rewriting every label reference
// into a resolved KindNumericalValueLabel token. It also promotes bare
// KindNumber tokens into KindNumericalValueNumber, so the encode pass
// never has to think about where a 16-bit literal came from.
//
// Label definitions are stripped from the output entirely; they carry
// no opcode of their own.
func labelPrePass(tokens []asmscan.Token) ([]asmscan.Token, error) {
	labels := make(map[string]uint16)
	out := make([]asmscan.Token, 0, len(tokens))

	for i := 0; i < len(tokens); {
		tok := tokens[i]
		i++

		switch tok.Kind {
		case asmscan.KindLabelIdentifier:
			if i+1 >= len(tokens) || !isRawOrResolvedNumber(tokens[i]) || tokens[i+1].Kind != asmscan.KindNewline {
				return nil, fmt.Errorf("%w: %q", ErrMalformedLabelDef, tok.Word)
			}
			if _, exists := labels[tok.Word]; exists {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateLabel, tok.Word)
			}
			labels[tok.Word] = tokens[i].Literal
			i += 2

		case asmscan.KindLabel:
			val, ok := labels[tok.Word]
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrUndefinedLabel, tok.Word)
			}
			out = append(out, asmscan.Token{Kind: asmscan.KindNumericalValueLabel, Word: tok.Word, Literal: val})

		case asmscan.KindNumber:
			out = append(out, asmscan.Token{Kind: asmscan.KindNumericalValueNumber, Word: tok.Word, Literal: tok.Literal})

		default:
			out = append(out, tok)
		}
	}

	return out, nil
}

func isRawOrResolvedNumber(t asmscan.Token) bool {
	return t.Kind == asmscan.KindNumber || t.Kind == asmscan.KindNumericalValueNumber
}
