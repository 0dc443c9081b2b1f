package asmscan

import (
	"errors"
	"io"
	"testing"
)

func scanAll(t *testing.T, src string) []Token {
	t.Helper()
	s := New([]byte(src))
	var tokens []Token
	for {
		tok, err := s.Next()
		if errors.Is(err, io.EOF) {
			return tokens
		}
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		tokens = append(tokens, tok)
	}
}

func TestScanMnemonicsAndOperands(t *testing.T) {
	tokens := scanAll(t, "LD V1, 0x3\nLD I, 0x200\n")

	want := []Kind{
		KindLD, KindRegister, KindComma, KindNumericalValueNumber, KindNewline,
		KindLD, KindIRegister, KindComma, KindNumericalValueNumber, KindNewline,
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(tokens), len(want), tokens)
	}
	for i, k := range want {
		if tokens[i].Kind != k {
			t.Errorf("token %d: kind = %v, want %v (%+v)", i, tokens[i].Kind, k, tokens[i])
		}
	}

	if tokens[1].Literal != 1 {
		t.Errorf("V1 literal = %d, want 1", tokens[1].Literal)
	}
	if tokens[3].Literal != 0x3 {
		t.Errorf("0x3 literal = %#x, want 0x3", tokens[3].Literal)
	}
	if tokens[8].Literal != 0x200 {
		t.Errorf("0x200 literal = %#x, want 0x200", tokens[8].Literal)
	}
}

func TestScanLabelDefinitionAndReference(t *testing.T) {
	tokens := scanAll(t, ":loop 0x204\nJP loop\n")

	if len(tokens) != 6 {
		t.Fatalf("got %d tokens, want 6: %+v", len(tokens), tokens)
	}
	if tokens[0].Kind != KindLabelIdentifier || tokens[0].Word != "loop" {
		t.Errorf("token 0 = %+v, want LabelIdentifier %q", tokens[0], "loop")
	}
	if tokens[1].Kind != KindNumericalValueNumber || tokens[1].Literal != 0x204 {
		t.Errorf("token 1 = %+v, want resolved hex literal 0x204", tokens[1])
	}
	if tokens[4].Kind != KindLabel || tokens[4].Word != "loop" {
		t.Errorf("token 4 = %+v, want a bare Label %q", tokens[4], "loop")
	}
}

func TestDecimalNumbersPromoteLater(t *testing.T) {
	tokens := scanAll(t, "RND V0, 12\n")
	if tokens[3].Kind != KindNumber {
		t.Fatalf("decimal literal scanned as %v, want the unresolved KindNumber (asmparser promotes it)", tokens[3].Kind)
	}
	if tokens[3].Literal != 12 {
		t.Fatalf("decimal literal = %d, want 12", tokens[3].Literal)
	}
}

func TestRegisterIsCaseSensitiveHex(t *testing.T) {
	tokens := scanAll(t, "ADD VA, VF\n")
	if tokens[1].Literal != 0xA {
		t.Errorf("VA literal = %#x, want 0xA", tokens[1].Literal)
	}
	if tokens[3].Literal != 0xF {
		t.Errorf("VF literal = %#x, want 0xF", tokens[3].Literal)
	}
}

func TestUnexpectedCharacter(t *testing.T) {
	s := New([]byte("@"))
	if _, err := s.Next(); !errors.Is(err, ErrUnexpectedChar) {
		t.Fatalf("Next on '@': got %v, want ErrUnexpectedChar", err)
	}
}

func TestUnknownWordIsLabel(t *testing.T) {
	tokens := scanAll(t, "mylabel\n")
	if tokens[0].Kind != KindLabel || tokens[0].Word != "mylabel" {
		t.Fatalf("token = %+v, want a bare Label", tokens[0])
	}
}
