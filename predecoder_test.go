package snunzip

import "testing"

func collectDoubles(t *testing.T, chunk []byte) []CompressedDouble {
	t.Helper()
	var out []CompressedDouble
	for d := range PreDecoder(Source(oneChunk(chunk))) {
		out = append(out, d)
	}
	return out
}

func TestPreDecoderSingleByteVarintStart(t *testing.T) {
	chunk := []byte{0x0C, 'A', 'B', 'C', 'D'}
	doubles := collectDoubles(t, chunk)
	if len(doubles) != 1 {
		t.Fatalf("got %d doubles, want 1", len(doubles))
	}
	d := doubles[0]
	if !d.First || d.Start != 1 {
		t.Fatalf("d = %+v, want first=true start=1", d)
	}
	if !d.Last {
		t.Fatalf("d.Last = false, want true (single-line chunk)")
	}
}

func TestPreDecoderFiveByteVarintStart(t *testing.T) {
	chunk := []byte{0x80, 0x80, 0x80, 0x80, 0x01, 'X', 'Y', 'Z'}
	doubles := collectDoubles(t, chunk)
	if len(doubles) == 0 {
		t.Fatal("no doubles produced")
	}
	d := doubles[0]
	if !d.First || d.Start != 5 {
		t.Fatalf("d = %+v, want first=true start=5", d)
	}
}

func TestPreDecoderTwoLineLookahead(t *testing.T) {
	chunk := append([]byte{0x10}, make([]byte, 15)...) // 1+15 = 16 bytes, two lines
	doubles := collectDoubles(t, chunk)
	if len(doubles) != 2 {
		t.Fatalf("got %d doubles, want 2", len(doubles))
	}
	if doubles[0].Last {
		t.Fatalf("first double should not be last")
	}
	if doubles[0].PyEndi != 2*W-1 {
		t.Fatalf("first double py_endi = %d, want %d", doubles[0].PyEndi, 2*W-1)
	}
	if !doubles[1].Last || doubles[1].First {
		t.Fatalf("second double = %+v, want last=true first=false", doubles[1])
	}
}
