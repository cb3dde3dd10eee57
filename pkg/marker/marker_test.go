package marker

import (
	"strings"
	"testing"
)

func TestParse_SingleBlockWithBase(t *testing.T) {
	text := "<<<<<<<\nleft line\n|||||||\nbase line\n=======\nright line\n>>>>>>>\n"
	blocks := Parse(text)
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	b := blocks[0]
	if b.Left != "left line" || b.Base != "base line" || b.Right != "right line" {
		t.Errorf("block = %+v", b)
	}
	if b.FullMarker != text {
		t.Errorf("FullMarker = %q, want %q", b.FullMarker, text)
	}
}

func TestParse_NoBaseSection(t *testing.T) {
	text := "<<<<<<<\nleft\n=======\nright\n>>>>>>>\n"
	blocks := Parse(text)
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	if blocks[0].Base != "" {
		t.Errorf("Base = %q, want empty", blocks[0].Base)
	}
}

func TestParse_MultipleBlocksNonAdjacent(t *testing.T) {
	text := "before\n" +
		"<<<<<<<\nl1\n=======\nr1\n>>>>>>>\n" +
		"middle\n" +
		"<<<<<<<\nl2\n=======\nr2\n>>>>>>>\n" +
		"after\n"

	blocks := Parse(text)
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(blocks))
	}
	if blocks[0].Left != "l1" || blocks[1].Left != "l2" {
		t.Errorf("blocks = %+v", blocks)
	}
}

func TestParse_UnterminatedBlockDiscarded(t *testing.T) {
	text := "<<<<<<<\nleft\n=======\nright\n" // no closing >>>>>>>
	blocks := Parse(text)
	if len(blocks) != 0 {
		t.Fatalf("got %d blocks, want 0 for unterminated input", len(blocks))
	}
}

func TestParse_NeverPanics(t *testing.T) {
	inputs := []string{
		"",
		">>>>>>>\n",
		"=======\n",
		"<<<<<<<\n|||||||\n|||||||\n=======\n>>>>>>>\n",
		strings.Repeat("<<<<<<<\n", 50),
	}
	for _, in := range inputs {
		_ = Parse(in)
	}
}

func TestEmit_RoundTrip(t *testing.T) {
	cases := []Block{
		{Left: "left1\nleft2", Base: "base1", Right: "right1"},
		{Left: "left only", Base: "", Right: "right only"},
		{Left: "", Base: "", Right: "right only"},
		{Left: "same", Base: "", Right: "same"},
	}
	for _, b := range cases {
		emitted := Emit(b)
		parsed := Parse(emitted)
		if len(parsed) != 1 {
			t.Fatalf("Emit(%+v) = %q, Parse gave %d blocks", b, emitted, len(parsed))
		}
		got := parsed[0]
		if got.Left != b.Left || got.Base != b.Base || got.Right != b.Right {
			t.Errorf("round trip mismatch: got %+v, want %+v", got, b)
		}
	}
}

func TestEmit_OmitsBaseWhenEmpty(t *testing.T) {
	out := Emit(Block{Left: "l", Right: "r"})
	if strings.Contains(out, basePrefix) {
		t.Errorf("Emit with empty base should omit %q, got %q", basePrefix, out)
	}
}

func TestEmit_IncludesBaseWhenPresent(t *testing.T) {
	out := Emit(Block{Left: "l", Base: "b", Right: "r"})
	if !strings.Contains(out, basePrefix) {
		t.Errorf("Emit with non-empty base should include %q, got %q", basePrefix, out)
	}
}

func TestParse_InteriorMarkersAsData(t *testing.T) {
	// Nested markers are not supported: an inner marker line inside the
	// left section is just content.
	text := "<<<<<<<\n<<<<<<< nested-looking\n=======\nright\n>>>>>>>\n"
	blocks := Parse(text)
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	if blocks[0].Left != "<<<<<<< nested-looking" {
		t.Errorf("Left = %q", blocks[0].Left)
	}
}
