// SPDX-License-Identifier: MIT
// Source: github.com/go-snunzip/snunzip

package snunzip

import "iter"

// srl emulates a fixed-depth shift-register lookup: push prepends a value,
// and indexing counts back from the most recently pushed entry. It backs the
// datapath's short-term (per-column) history.
type srl struct {
	data [shortTermDepth]byte
	ptr  int
}

func (s *srl) push(v byte) {
	s.ptr = ((s.ptr-1)%shortTermDepth + shortTermDepth) % shortTermDepth
	s.data[s.ptr] = v
}

func (s *srl) get(index int) byte {
	idx := ((s.ptr+index)%shortTermDepth + shortTermDepth) % shortTermDepth
	return s.data[idx]
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Datapath materializes commands into decompressed output lines (spec §4.5).
// It holds the short-term shift-register history (one srl per byte column),
// the long-term random-access history (one flat bank addressed by even/odd
// line split, per CmdGen2's addressing scheme), and an output holding
// register that accumulates a line's bytes across however many commands it
// takes to fill it.
func Datapath(in iter.Seq2[Command, error]) iter.Seq2[Decompressed, error] {
	return func(yield func(Decompressed, error) bool) {
		var st [W]srl
		ltBuf := acquireLtBank()
		defer releaseLtBank(ltBuf)
		lt := *ltBuf
		wrPtr := 0

		var ohValid [W]bool
		var ohData [W]byte

		for cm, err := range in {
			if err != nil {
				yield(Decompressed{}, err)
				return
			}

			var cpSel, rolSel, mux [W]int
			var liLa, stLa [W]bool

			for byte := 0; byte < W; byte++ {
				var m int
				switch {
				case byte < cm.CpEnd-W:
					m = 1
				case byte < cm.LiEnd-W:
					m = 0
				case byte < cm.CpEnd:
					m = 1
				default:
					m = 0
				}

				cpRolByte := cm.CpRol
				if cm.CpRle {
					cpRolByte = (cm.CpRol - byte) & (2*W - 1)
				}

				rol := cm.LiRol
				if m != 0 {
					rol = cpRolByte
				}

				prec := max(0, cm.LiEnd-W)

				cpl := ((byte-cm.CpRol-prec)&(2*W-1) >= W)
				lil := ((byte-cm.LiRol-prec)&(2*W-1) >= W)
				if cm.CpRle {
					cpl = false
				}

				cps := 2 * b2i(cm.LtVal)
				cps += b2i(cpl != cm.LtSwap)

				cpSel[byte] = cps
				rolSel[byte] = rol
				mux[byte] = m
				liLa[byte] = lil
				stLa[byte] = cpl
			}

			var liData, stData, cpData, muxData [W]byte
			for byte := 0; byte < W; byte++ {
				liData[byte] = cm.PyData[byte+W*b2i(liLa[byte])]
				stData[byte] = st[byte].get(int(cm.StAddr) - b2i(stLa[byte]) + b2i(ohValid[byte]))
			}
			leData := lt[cm.LtAdev*2]
			loData := lt[cm.LtAdod*2+1]

			for byte := 0; byte < W; byte++ {
				switch cpSel[byte] {
				case 2:
					cpData[byte] = leData[byte]
				case 3:
					cpData[byte] = loData[byte]
				default:
					cpData[byte] = stData[byte]
				}
			}

			for byte := 0; byte < W; byte++ {
				srcData := &liData
				if mux[byte] != 0 {
					srcData = &cpData
				}
				muxData[byte] = srcData[(rolSel[byte]+byte)&(W-1)]
			}

			for byte := 0; byte < W; byte++ {
				if !ohValid[byte] && byte < cm.LiEnd {
					ohData[byte] = muxData[byte]
					ohValid[byte] = true
					st[byte].push(muxData[byte])
				}
			}

			if cm.LiEnd >= W || cm.Last {
				data := ohData

				if cm.LiEnd != 0 {
					lt[wrPtr] = data
					wrPtr++
				}

				if cm.Last {
					if !yield(Decompressed{Data: data, Last: cm.LiEnd <= W, Cnt: min(W, cm.LiEnd)}, nil) {
						return
					}
				} else {
					if !yield(Decompressed{Data: data, Last: false, Cnt: W}, nil) {
						return
					}
				}

				for byte := 0; byte < W; byte++ {
					ohValid[byte] = false
				}

				if cm.Last {
					wrPtr = 0
				}
			}

			for byte := 0; byte < W-1; byte++ {
				if byte+W < cm.LiEnd {
					ohData[byte] = muxData[byte]
					ohValid[byte] = true
					st[byte].push(muxData[byte])
				}
			}

			if cm.Last && cm.LiEnd > W {
				if !yield(Decompressed{Data: ohData, Last: true, Cnt: cm.LiEnd - W}, nil) {
					return
				}
				for byte := 0; byte < W; byte++ {
					ohValid[byte] = false
				}
			}
		}
	}
}
