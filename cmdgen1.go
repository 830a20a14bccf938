// SPDX-License-Identifier: MIT
// Source: github.com/go-snunzip/snunzip

package snunzip

import "iter"

// CmdGen1 is stage one of the two-stage command generator (spec §4.3). It
// preprocesses copy elements into chunks with a diminished-one length of at
// most W-1, further clamped to the current copy offset except in the
// offset<=1 run-length acceleration case, and applies the doubling trick
// (offset <<= 1 after each offset-clamped sub-copy) so that the next sub-copy
// can move twice as many bytes at once without reading beyond what has
// already been written. elhCpOff < W holds at the point of the shift: the
// shift only runs when cp_len >= elhCpOff, and cp_len is at most W-1.
//
// Errors from the upstream ElementDecoder are forwarded unchanged and end
// the sequence.
func CmdGen1(in iter.Seq2[Element, error]) iter.Seq2[PartialCommand, error] {
	return func(yield func(PartialCommand, error) bool) {
		next, stop := iter.Pull2(in)
		defer stop()

		elhValid := false
		var elh Element
		cpRem := -1
		var elhCpOff uint16

		for {
			if !elhValid {
				e, err, ok := next()
				if !ok {
					return
				}
				if err != nil {
					yield(PartialCommand{}, err)
					return
				}
				elh = e
				elhValid = true
				if elh.CpVal {
					cpRem = int(elh.CpLen)
				}
				elhCpOff = elh.CpOff
			}

			cpOff := elhCpOff
			cpLen := cpRem
			if cpLen > W-1 {
				cpLen = W - 1
			}

			var cpRle bool
			if elhCpOff <= 1 {
				cpRle = true
			} else {
				if cpLen >= int(elhCpOff) {
					cpLen = int(elhCpOff) - 1
					elhCpOff <<= 1
				}
				cpRle = false
			}

			cpRem -= cpLen + 1
			advance := cpRem < 0
			if elhValid && advance {
				elhValid = false
			}

			pc := PartialCommand{
				CpOff:  cpOff,
				CpLen:  int8(cpLen),
				CpRle:  cpRle,
				LiVal:  elh.LiVal && advance,
				LiOff:  elh.LiOff,
				LiLen:  elh.LiLen,
				LdPop:  elh.LdPop && advance,
				Last:   elh.Last && advance,
				PyData: elh.PyData,
			}
			if !yield(pc, nil) {
				return
			}
		}
	}
}
