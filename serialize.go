// SPDX-License-Identifier: MIT
// Source: github.com/go-snunzip/snunzip

package snunzip

import "strings"

// binary renders value as a zero-padded binary string of the given bit
// width, or a string of '-' don't-care placeholders when valid is false.
// This is the wire format stage records use for test-vector interchange
// with an HDL simulation (spec §6): fixed-width fields, concatenated,
// newline-separated per record.
func binary(value int, bits int, valid bool) string {
	if !valid {
		return strings.Repeat("-", bits)
	}
	mask := (1 << uint(bits)) - 1
	v := value & mask
	var b strings.Builder
	b.Grow(bits)
	for i := bits - 1; i >= 0; i-- {
		if v&(1<<uint(i)) != 0 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

func binaryBool(value bool, bits int, valid bool) string {
	v := 0
	if value {
		v = 1
	}
	return binary(v, bits, valid)
}

// Serialize renders the line's wire format.
func (c CompressedSingle) Serialize() string {
	var b strings.Builder
	for idx, v := range c.Data {
		b.WriteString(binary(int(v), 8, idx <= c.Endi))
	}
	b.WriteString(binaryBool(c.Last, 1, true))
	b.WriteString(binary(c.Endi, WB, true))
	return b.String()
}

// Serialize renders the line-pair's wire format.
func (c CompressedDouble) Serialize() string {
	var b strings.Builder
	for idx, v := range c.Data {
		valid := idx <= c.PyEndi && (!c.First || idx >= c.Start)
		b.WriteString(binary(int(v), 8, valid))
	}
	b.WriteString(binaryBool(c.First, 1, true))
	b.WriteString(binary(c.Start, 2, c.First))
	b.WriteString(binaryBool(c.Last, 1, true))
	b.WriteString(binary(c.Endi, WB, true))
	return b.String()
}

// Serialize renders the element's wire format.
func (e Element) Serialize() string {
	var b strings.Builder
	b.WriteString(binaryBool(e.CpVal, 1, true))
	b.WriteString(binary(int(e.CpOff), 16, e.CpVal))
	b.WriteString(binary(int(e.CpLen), 6, e.CpVal))
	b.WriteString(binaryBool(e.LiVal, 1, true))
	b.WriteString(binary(e.LiOff, WB+1, e.LiVal))
	b.WriteString(binary(int(e.LiLen), 16, e.LiVal))
	b.WriteString(binaryBool(e.LdPop, 1, true))
	b.WriteString(binaryBool(e.Last, 1, true))
	return b.String()
}

// Serialize renders the command's wire format. cp_val and li_val are
// derived from the end indices, as in the reference model; they are not
// stored fields on Command.
func (c Command) Serialize() string {
	cpVal := c.CpEnd > c.PyStart
	liVal := c.LiEnd > c.CpEnd

	var b strings.Builder
	b.WriteString(binaryBool(c.LtVal, 1, cpVal))
	b.WriteString(binary(int(c.LtAdev), 15-WB, c.LtVal && cpVal))
	b.WriteString(binary(int(c.LtAdod), 15-WB, c.LtVal && cpVal))
	b.WriteString(binaryBool(c.LtSwap, 1, cpVal))
	b.WriteString(binary(int(c.StAddr), 5, !c.LtVal && cpVal))
	b.WriteString(binary(c.CpRol, WB+1, cpVal))
	b.WriteString(binaryBool(c.CpRle, 1, cpVal))
	b.WriteString(binary(c.CpEnd, WB+1, true))
	b.WriteString(binary(c.LiRol, WB+1, liVal))
	b.WriteString(binary(c.LiEnd, WB+1, liVal))
	b.WriteString(binaryBool(c.LdPop, 1, true))
	b.WriteString(binaryBool(c.Last, 1, true))
	return b.String()
}

// Serialize renders the decompressed line's wire format.
func (d Decompressed) Serialize() string {
	var b strings.Builder
	for idx, v := range d.Data {
		b.WriteString(binary(int(v), 8, idx < d.Cnt))
	}
	b.WriteString(binaryBool(d.Last, 1, true))
	b.WriteString(binary(d.Cnt, WB+1, true))
	return b.String()
}
