// SPDX-License-Identifier: MIT
// Source: github.com/go-snunzip/snunzip

package snunzip

import "iter"

// Source packetizes a sequence of raw compressed chunks into W-byte
// CompressedSingle lines, setting Last on each chunk's final line and Endi
// to its final valid byte index. This is the pipeline's boundary stage
// (spec §4.6); it never fails locally.
func Source(chunks iter.Seq[[]byte]) iter.Seq[CompressedSingle] {
	return func(yield func(CompressedSingle) bool) {
		for chunk := range chunks {
			for offs := 0; offs < len(chunk); offs += W {
				var line CompressedSingle
				n := copy(line.Data[:], chunk[offs:])
				line.Endi = n - 1
				line.Last = offs+W >= len(chunk)
				if !yield(line) {
					return
				}
			}
		}
	}
}
