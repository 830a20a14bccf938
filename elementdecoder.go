// SPDX-License-Identifier: MIT
// Source: github.com/go-snunzip/snunzip

package snunzip

import "iter"

// ElementDecoder scans the doubled line window and emits one Element record
// per Snappy element (a copy and/or a literal header), tracking a running
// compressed-stream offset across the 2W window (spec §4.2).
//
// It owns two pieces of persistent, per-chunk state: off, the byte offset
// within the current double-line window, and cdhValid, whether a double-line
// is currently loaded. Both reset naturally at the next chunk's first
// double-line (off is reseeded from CompressedDouble.Start).
func ElementDecoder(in iter.Seq[CompressedDouble]) iter.Seq2[Element, error] {
	return func(yield func(Element, error) bool) {
		next, stop := iter.Pull(in)
		defer stop()

		off := 0
		cdhValid := false
		var cdh CompressedDouble

		for {
			if !cdhValid {
				c, ok := next()
				if !ok {
					return
				}
				cdh = c
				cdhValid = true
				if cdh.First {
					off = cdh.Start
				}
			}

			var el Element
			el.PyData = cdh.Data

			ofi := off & (W - 1)
			switch {
			case off > cdh.Endi || cdh.Data[ofi]&3 == 0:
				// no copy this cycle
			case cdh.Data[ofi]&3 == 1:
				el.CpVal = true
				el.CpOff = uint16((uint16(cdh.Data[ofi]>>5) & 7 << 8) | uint16(cdh.Data[ofi+1]))
				el.CpLen = ((cdh.Data[ofi] >> 2) & 7) + 3
				off += 2
			case cdh.Data[ofi]&3 == 2:
				el.CpVal = true
				el.CpOff = uint16(cdh.Data[ofi+1]) | uint16(cdh.Data[ofi+2])<<8
				el.CpLen = (cdh.Data[ofi] >> 2) & 63
				off += 3
			default: // &3 == 3: the unsupported 5-byte copy
				yield(Element{}, ErrMalformedElement)
				return
			}

			ofi = off & (W - 1)
			liVal := off <= cdh.Endi && cdh.Data[ofi]&3 == 0
			liLen := uint16(cdh.Data[ofi] >> 2)
			liHdlen := 1
			switch {
			case liLen == 60:
				liLen = uint16(cdh.Data[ofi+1])
				liHdlen = 2
			case liLen == 61:
				liLen = uint16(cdh.Data[ofi+2])<<8 | uint16(cdh.Data[ofi+1])
				liHdlen = 3
			case liLen > 61:
				if liVal {
					yield(Element{}, ErrMalformedElement)
					return
				}
			}

			el.LiVal = liVal
			if liVal {
				el.LiOff = off + liHdlen
				el.LiLen = liLen
				off += liHdlen + int(liLen) + 1
			}

			if off > cdh.Endi {
				off -= W
				cdhValid = false
				el.LdPop = true
				el.Last = cdh.Last
			}

			if !yield(el, nil) {
				return
			}
		}
	}
}
