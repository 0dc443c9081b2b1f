package asmparser

import (
	"bytes"
	"errors"
	"testing"
)

func assemble(t *testing.T, src string) []byte {
	t.Helper()
	out, err := Assemble([]byte(src))
	if err != nil {
		t.Fatalf("Assemble(%q): %v", src, err)
	}
	return out
}

func TestAssembleLoadRegisterAndIndex(t *testing.T) {
	got := assemble(t, "LD V1,0x3\nLD I,0x200\n")
	want := []byte{0x61, 0x03, 0xA2, 0x00}
	if !bytes.Equal(got, want) {
		t.Errorf("got % X, want % X", got, want)
	}
}

func TestAssembleLabelReference(t *testing.T) {
	got := assemble(t, ":loop 0x204\nJP loop\n")
	want := []byte{0x12, 0x04}
	if !bytes.Equal(got, want) {
		t.Errorf("got % X, want % X", got, want)
	}
}

func TestAssembleSkipFamily(t *testing.T) {
	got := assemble(t, "SE V2,0x33\nSE VC,VA\n")
	want := []byte{0x32, 0x33, 0x5C, 0xA0}
	if !bytes.Equal(got, want) {
		t.Errorf("got % X, want % X", got, want)
	}
}

func TestAssembleDraw(t *testing.T) {
	got := assemble(t, "DRW V1,V2,0x5\n")
	want := []byte{0xD1, 0x25}
	if !bytes.Equal(got, want) {
		t.Errorf("got % X, want % X", got, want)
	}
}

func TestAssembleSkipKeyForms(t *testing.T) {
	got := assemble(t, "SKP V3\nSKNP V4\n")
	want := []byte{0xE3, 0x9E, 0xE4, 0xA1}
	if !bytes.Equal(got, want) {
		t.Errorf("got % X, want % X", got, want)
	}
}

func TestAssembleNoOperandForms(t *testing.T) {
	got := assemble(t, "CLS\nRET\n")
	want := []byte{0x00, 0xE0, 0x00, 0xEE}
	if !bytes.Equal(got, want) {
		t.Errorf("got % X, want % X", got, want)
	}
}

func TestAssembleAlgebraicAndAddForms(t *testing.T) {
	got := assemble(t, "OR V1,V2\nADD V1,0x10\nADD I,V1\n")
	want := []byte{
		0x81, 0x21, // OR V1,V2
		0x71, 0x10, // ADD V1,0x10
		0xF1, 0x1E, // ADD I,V1
	}
	if !bytes.Equal(got, want) {
		t.Errorf("got % X, want % X", got, want)
	}
}

func TestUndefinedLabel(t *testing.T) {
	_, err := Assemble([]byte("JP nowhere\n"))
	if !errors.Is(err, ErrUndefinedLabel) {
		t.Fatalf("got %v, want ErrUndefinedLabel", err)
	}
}

func TestDuplicateLabel(t *testing.T) {
	_, err := Assemble([]byte(":loop 0x200\n:loop 0x202\nJP loop\n"))
	if !errors.Is(err, ErrDuplicateLabel) {
		t.Fatalf("got %v, want ErrDuplicateLabel", err)
	}
}

func TestMalformedLabelDefinition(t *testing.T) {
	_, err := Assemble([]byte(":loop V1\n"))
	if !errors.Is(err, ErrMalformedLabelDef) {
		t.Fatalf("got %v, want ErrMalformedLabelDef", err)
	}
}

func TestBadOperandForm(t *testing.T) {
	_, err := Assemble([]byte("LD V1,V2,V3\n"))
	if !errors.Is(err, ErrBadOperandForm) {
		t.Fatalf("got %v, want ErrBadOperandForm", err)
	}
}

func TestUnexpectedTokenOutsideInstruction(t *testing.T) {
	_, err := Assemble([]byte("V1\n"))
	if !errors.Is(err, ErrUnexpectedToken) {
		t.Fatalf("got %v, want ErrUnexpectedToken", err)
	}
}
