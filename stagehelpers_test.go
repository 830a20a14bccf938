package snunzip

import (
	"bytes"
	"errors"
	"testing"

	snap "github.com/golang/snappy"
)

// TestStreamCountEquality checks spec §8's stream-count-equality invariant
// directly: the number of ld_pop-marked records out of the element
// decoder, cmd_gen_1, and cmd_gen_2 must each equal the count of
// compressed-single input records from Source.
func TestStreamCountEquality(t *testing.T) {
	want := []byte("count me please, stream counts must line up end to end")
	compressed := snap.Encode(nil, want)

	var lineCount, elLdPop, pcLdPop, cmdLdPop int
	lines := WithCounterSeq(Source(oneChunk(compressed)), &lineCount)
	doubles := PreDecoder(lines)
	elements := WithLdPopCounter(ElementDecoder(doubles), &elLdPop)
	partials := WithLdPopCounter(CmdGen1(elements), &pcLdPop)
	commands := WithLdPopCounter(CmdGen2(partials, DefaultOptions(len(want))), &cmdLdPop)

	for _, err := range commands {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if lineCount == 0 {
		t.Fatal("lineCount = 0, want > 0")
	}
	if elLdPop != lineCount || pcLdPop != lineCount || cmdLdPop != lineCount {
		t.Fatalf("ld_pop counts = (element_decoder=%d, cmd_gen_1=%d, cmd_gen_2=%d), want all == compressed-single count %d",
			elLdPop, pcLdPop, cmdLdPop, lineCount)
	}
}

func TestWithVerifierAcceptsMatchingOutput(t *testing.T) {
	want := []byte("verify this exactly")
	compressed := snap.Encode(nil, want)
	commands := CmdGen2(CmdGen1(ElementDecoder(PreDecoder(Source(oneChunk(compressed))))), DefaultOptions(len(want)))

	checked := WithVerifier(Datapath(commands), [][]byte{want})
	for _, err := range checked {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
}

func TestWithVerifierRejectsMismatchedOutput(t *testing.T) {
	want := []byte("verify this exactly")
	compressed := snap.Encode(nil, want)
	commands := CmdGen2(CmdGen1(ElementDecoder(PreDecoder(Source(oneChunk(compressed))))), DefaultOptions(len(want)))

	wrong := [][]byte{[]byte("totally different bytes!")}
	checked := WithVerifier(Datapath(commands), wrong)

	sawErr := false
	for _, err := range checked {
		if err != nil {
			sawErr = true
			if !errors.Is(err, ErrPipelineDesync) {
				t.Fatalf("err = %v, want ErrPipelineDesync", err)
			}
		}
	}
	if !sawErr {
		t.Fatal("expected ErrPipelineDesync, got none")
	}
}

func TestDumpWritesOneSerializedLinePerRecord(t *testing.T) {
	want := []byte("dump me")
	compressed := snap.Encode(nil, want)
	commands := CmdGen2(CmdGen1(ElementDecoder(PreDecoder(Source(oneChunk(compressed))))), DefaultOptions(len(want)))

	var buf bytes.Buffer
	n := 0
	for _, err := range Dump(Datapath(commands), &buf) {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		n++
	}
	lines := bytes.Count(buf.Bytes(), []byte("\n"))
	if lines != n {
		t.Fatalf("wrote %d lines, want %d (one per record)", lines, n)
	}
	if buf.Len() == 0 {
		t.Fatal("Dump wrote nothing")
	}
}
