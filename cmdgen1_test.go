package snunzip

import (
	"iter"
	"testing"
)

func oneElement(e Element) iter.Seq2[Element, error] {
	return func(yield func(Element, error) bool) {
		yield(e, nil)
	}
}

func collectPartials(in iter.Seq2[PartialCommand, error]) ([]PartialCommand, error) {
	var out []PartialCommand
	for pc, err := range in {
		if err != nil {
			return out, err
		}
		out = append(out, pc)
	}
	return out, nil
}

// A copy with offset<=1 takes the run-length path: every sub-command is
// flagged CpRle and the offset is never doubled (elhCpOff stays 1 throughout).
func TestCmdGen1RunLengthOffsetOne(t *testing.T) {
	el := Element{CpVal: true, CpOff: 1, CpLen: 20, Last: true, LdPop: true}
	parts, err := collectPartials(CmdGen1(oneElement(el)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(parts) == 0 {
		t.Fatal("no partial commands produced")
	}
	for i, p := range parts {
		if !p.CpRle {
			t.Fatalf("part %d: CpRle = false, want true (offset<=1)", i)
		}
		if p.CpOff != 1 {
			t.Fatalf("part %d: CpOff = %d, want 1 (RLE offset never doubles)", i, p.CpOff)
		}
	}
	last := parts[len(parts)-1]
	if !last.Last || !last.LdPop {
		t.Fatalf("last part = %+v, want last=true ldpop=true", last)
	}
}

// A copy whose offset is small enough to be exhausted in one W-1-byte
// sub-copy triggers the doubling trick on the following sub-copy.
func TestCmdGen1DoublingTrick(t *testing.T) {
	// offset=3, len=10 (diminished: cp_len field holds real_len-1, i.e. 9).
	el := Element{CpVal: true, CpOff: 3, CpLen: 9, Last: true, LdPop: true}
	parts, err := collectPartials(CmdGen1(oneElement(el)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(parts) < 2 {
		t.Fatalf("got %d partial commands, want >= 2 (offset 3 needs doubling)", len(parts))
	}
	first := parts[0]
	if first.CpRle {
		t.Fatal("CpRle = true, want false (offset > 1)")
	}
	if first.CpOff != 3 {
		t.Fatalf("first.CpOff = %d, want 3", first.CpOff)
	}
	if int(first.CpLen) != 2 {
		// cpLen clamped to elhCpOff-1 = 3-1 = 2 since the remaining length
		// (9) >= elhCpOff (3).
		t.Fatalf("first.CpLen = %d, want 2 (clamped to offset-1)", first.CpLen)
	}
	second := parts[1]
	if second.CpOff != 6 {
		t.Fatalf("second.CpOff = %d, want 6 (doubled from 3)", second.CpOff)
	}
}

// A short copy element paired with a trailing literal: the literal is only
// surfaced on the final sub-command (advance=true), matching the Python
// reference's "literal only fires once copy remainder is exhausted" rule.
func TestCmdGen1LiteralDeferredUntilCopyDrains(t *testing.T) {
	el := Element{
		CpVal: true, CpOff: 2, CpLen: 1, // real length 2, fits in one sub-copy
		LiVal: true, LiOff: 5, LiLen: 3,
		Last: true, LdPop: true,
	}
	parts, err := collectPartials(CmdGen1(oneElement(el)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(parts) != 1 {
		t.Fatalf("got %d partial commands, want 1 (copy drains in one sub-copy)", len(parts))
	}
	p := parts[0]
	if !p.LiVal {
		t.Fatal("LiVal = false, want true (copy fully drained on this command)")
	}
	if !p.Last || !p.LdPop {
		t.Fatalf("p = %+v, want last=true ldpop=true", p)
	}
}
