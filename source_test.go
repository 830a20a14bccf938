package snunzip

import "testing"

func collectSingles(t *testing.T, chunk []byte) []CompressedSingle {
	t.Helper()
	var out []CompressedSingle
	for line := range Source(oneChunk(chunk)) {
		out = append(out, line)
	}
	return out
}

func TestSourceSingleShortLine(t *testing.T) {
	lines := collectSingles(t, []byte("ABC"))
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	if lines[0].Endi != 2 || !lines[0].Last {
		t.Fatalf("line = %+v, want endi=2 last=true", lines[0])
	}
	if string(lines[0].Data[:3]) != "ABC" {
		t.Fatalf("data = %q", lines[0].Data[:3])
	}
}

func TestSourceExactlyOneLine(t *testing.T) {
	lines := collectSingles(t, []byte("12345678"))
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	if lines[0].Endi != W-1 || !lines[0].Last {
		t.Fatalf("line = %+v, want endi=%d last=true", lines[0], W-1)
	}
}

func TestSourceTwoLines(t *testing.T) {
	lines := collectSingles(t, []byte("12345678AB"))
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0].Last {
		t.Fatalf("first line should not be last")
	}
	if lines[0].Endi != W-1 {
		t.Fatalf("first line endi = %d, want %d", lines[0].Endi, W-1)
	}
	if !lines[1].Last || lines[1].Endi != 1 {
		t.Fatalf("second line = %+v, want last=true endi=1", lines[1])
	}
}

func TestSourceEmptyChunkYieldsNoLines(t *testing.T) {
	lines := collectSingles(t, nil)
	if len(lines) != 0 {
		t.Fatalf("got %d lines, want 0 for empty chunk", len(lines))
	}
}
