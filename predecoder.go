// SPDX-License-Identifier: MIT
// Source: github.com/go-snunzip/snunzip

package snunzip

import "iter"

// PreDecoder pairs each line with its successor (a W*2-byte look-ahead
// window) and locates the chunk's first element by skipping the leading
// length varint's continuation bytes (spec §4.1). It holds exactly one line
// of look-ahead, which never bleeds across a chunk boundary: a chunk's
// final line is always paired with a synthetic zero line, never with the
// next chunk's first line.
//
// PreDecoder never fails locally; a compressed stream that never reaches a
// Last line simply drains without producing further output.
func PreDecoder(in iter.Seq[CompressedSingle]) iter.Seq[CompressedDouble] {
	return func(yield func(CompressedDouble) bool) {
		next, stop := iter.Pull(in)
		defer stop()

		cur, ok := next()
		if !ok {
			return
		}

		busy := false
		for {
			var nxt CompressedSingle
			if cur.Last {
				nxt = CompressedSingle{Endi: W - 1}
			} else {
				var ok bool
				nxt, ok = next()
				if !ok {
					return
				}
			}

			first := !busy
			busy = !cur.Last

			start := 0
			if first {
				for start < W && cur.Data[start]&0x80 != 0 {
					start++
				}
				start++
			}

			var pyEndi int
			switch {
			case cur.Last:
				pyEndi = cur.Endi
			case nxt.Last:
				pyEndi = W + nxt.Endi
			default:
				pyEndi = 2*W - 1
			}

			var dbl CompressedDouble
			copy(dbl.Data[:W], cur.Data[:])
			copy(dbl.Data[W:], nxt.Data[:])
			dbl.First = first
			dbl.Start = start
			dbl.Last = cur.Last
			dbl.Endi = cur.Endi
			dbl.PyEndi = pyEndi

			if !yield(dbl) {
				return
			}

			if cur.Last {
				c, ok := next()
				if !ok {
					return
				}
				cur = c
			} else {
				cur = nxt
			}
		}
	}
}
