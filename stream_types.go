// SPDX-License-Identifier: MIT
// Source: github.com/go-snunzip/snunzip

package snunzip

import "strconv"

// The stream record types below are pure value types passed by value between
// pipeline stages; none of them carry shared or mutable state. Each stage
// owns its own persistent state separately (local variables inside the
// stage function) and is reset at chunk boundaries.

// CompressedSingle is one W-byte line of raw compressed input.
type CompressedSingle struct {
	Data [W]byte // chunk data
	Last bool    // true on the last line of the chunk
	Endi int     // last valid byte index, 0..W-1; must equal W-1 unless Last
}

// String renders a CompressedSingle the way the reference emulator's
// __repr__ does: valid bytes as ASCII, padding as '/', '>' on the last line.
func (c CompressedSingle) String() string {
	term := byte('|')
	if c.Last {
		term = '>'
	}
	return "CS(|" + asciiRun(c.Data[:c.Endi+1]) + pad('/', W-1-c.Endi) + string(term) + ")"
}

// CompressedDouble pairs a line with its successor (a W*2-byte look-ahead
// window), as produced by the pre-decoder.
type CompressedDouble struct {
	Data   [2 * W]byte // current line followed by the next line
	First  bool        // true on the first double-line of a chunk
	Start  int         // first valid byte index, 0..W; valid only when First
	Last   bool        // true when the current (first) line is the chunk's last
	Endi   int         // current line's last valid byte index
	PyEndi int         // last valid index across the whole 2W window (look-ahead aware)
}

func (c CompressedDouble) String() string {
	start := 0
	lead := byte('|')
	if c.First {
		start = c.Start
		lead = '<'
	}
	term := byte('|')
	if c.Last {
		term = '>'
	}
	return "CS(" + string(lead) + pad('/', start) + asciiRun(c.Data[start:c.PyEndi+1]) +
		pad('/', 2*W-1-c.PyEndi) + string(term) + ")"
}

// Element is one decoded Snappy element: an optional copy, an optional
// literal header, and the literal-data window that accompanies it.
type Element struct {
	CpVal  bool       // copy element present
	CpOff  uint16     // copy offset as recorded in the element (16b)
	CpLen  uint8      // copy length, diminished-one (6b)
	LiVal  bool       // literal header present
	LiOff  int        // offset of literal data within the 2W window, 0..2W
	LiLen  uint16     // literal length, diminished-one
	LdPop  bool         // pop the literal-data line after this record
	Last   bool         // last element of the chunk
	PyData [2 * W]byte  // literal-data window carried alongside (software shortcut, see design notes)
}

func (e Element) String() string {
	term := byte(']')
	if e.Last {
		term = '>'
	}
	cp := "-,"
	if e.CpVal {
		cp = strconv.Itoa(int(e.CpOff)) + "," + strconv.Itoa(int(e.CpLen)+1) + ","
	}
	li := "-,"
	if e.LiVal {
		li = strconv.Itoa(e.LiOff) + "," + strconv.Itoa(int(e.LiLen)+1) + ","
	}
	ld := "-  "
	if e.LdPop {
		ld = "pop"
	}
	return "EL([" + asciiRun(e.PyData[:]) + string(term) + ", cp=" + cp + " li=" + li + " ld=" + ld + ")"
}

func (e Element) ldPopped() bool { return e.LdPop }

// PartialCommand is one per-cycle chunk of a copy element, produced by
// cmd_gen_1, with a diminished-one length of at most W-1 (also under RLE
// acceleration).
type PartialCommand struct {
	CpOff  uint16 // copy offset for this chunk (may have been doubled by the non-RLE doubling trick)
	CpLen  int8   // diminished-one bytes to copy this cycle, or -1 if no copy is pending
	CpRle  bool   // run-length acceleration: CmdGen2 makes CpRol a byte index, not a rotation
	LiVal  bool   // literal forwarded on this (advancing) cycle
	LiOff  int    // literal offset within the 2W window
	LiLen  uint16 // literal length, diminished-one
	LdPop  bool   // pop the literal-data line (only set on the advancing cycle)
	Last   bool   // last command of the chunk (only set on the advancing cycle)
	PyData [2 * W]byte
}

func (p PartialCommand) String() string {
	cp := "-"
	if p.CpLen >= 0 {
		cp = strconv.Itoa(int(p.CpOff)) + "/" + strconv.Itoa(int(p.CpLen)+1)
	}
	return "PC(cp=" + cp + " li=" + strconv.Itoa(p.LiOff) + "/" + strconv.Itoa(int(p.LiLen)+1) + ")"
}

func (p PartialCommand) ldPopped() bool { return p.LdPop }

// Command is cmd_gen_2's fully-resolved output: addresses, rotation amounts,
// and byte-range endpoints the datapath needs to materialize one cycle.
type Command struct {
	LtVal  bool   // read from long-term memory (else short-term)
	LtAdev uint16 // long-term even-bank line address
	LtAdod uint16 // long-term odd-bank line address
	LtSwap bool   // false: linepair = even&odd; true: odd&even
	StAddr uint8  // short-term relative line index, 0..31 (0 = most recent)
	CpRol  int    // copy rotation amount (or byte index when CpRle)
	CpRle  bool   // run-length acceleration mode
	CpEnd  int    // index (0..2W) one past the last copy byte this cycle provides
	LiRol  int    // literal rotation amount
	LiEnd  int    // index (0..2W) one past the last literal byte this cycle provides
	LdPop   bool // pop the literal-data line after this command
	Last    bool // last command of the chunk
	PyData  [2 * W]byte
	PyStart int // index (0..2W) of the first valid byte this cycle provides
}

func (c Command) String() string {
	return "CM(cp_end=" + strconv.Itoa(c.CpEnd) + " li_end=" + strconv.Itoa(c.LiEnd) + " start=" + strconv.Itoa(c.PyStart) + ")"
}

func (c Command) ldPopped() bool { return c.LdPop }

// Decompressed is one W-byte line of decompressed output.
type Decompressed struct {
	Data [W]byte // decompressed data
	Last bool    // true on the last line of the chunk
	Cnt  int     // number of valid bytes, 0..W; must equal W unless Last
}

func (d Decompressed) String() string {
	term := byte('|')
	if d.Last {
		term = '>'
	}
	return "DE(|" + asciiRun(d.Data[:d.Cnt]) + pad('/', W-d.Cnt) + string(term) + ")"
}

// --- small rendering helpers shared by the String() methods above ---

func asciiRun(b []byte) string {
	out := make([]byte, len(b))
	for i, v := range b {
		if v >= 32 && v < 127 {
			out[i] = v
		} else {
			out[i] = '.'
		}
	}
	return string(out)
}

func pad(c byte, n int) string {
	if n <= 0 {
		return ""
	}
	out := make([]byte, n)
	for i := range out {
		out[i] = c
	}
	return string(out)
}
