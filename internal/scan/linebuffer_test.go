package scan

import (
	"reflect"
	"testing"
)

func TestLineBuffer(t *testing.T) {
	var b lineBuffer

	lines := b.Feed("alpha\nbra")
	if !reflect.DeepEqual(lines, []string{"alpha"}) {
		t.Fatalf("expected [alpha], got %v", lines)
	}

	lines = b.Feed("vo\nchar")
	if !reflect.DeepEqual(lines, []string{"bravo"}) {
		t.Fatalf("expected split line reassembled, got %v", lines)
	}

	if tail := b.Flush(); tail != "char" {
		t.Fatalf("expected leftover tail, got %q", tail)
	}
	if tail := b.Flush(); tail != "" {
		t.Fatalf("expected empty buffer after flush, got %q", tail)
	}
}

func TestLineBufferEmptyChunks(t *testing.T) {
	var b lineBuffer
	if lines := b.Feed(""); len(lines) != 0 {
		t.Fatalf("expected no lines, got %v", lines)
	}
	if lines := b.Feed("\n"); !reflect.DeepEqual(lines, []string{""}) {
		t.Fatalf("expected one empty line, got %v", lines)
	}
}
