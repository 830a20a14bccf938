// SPDX-License-Identifier: MIT
// Source: github.com/go-snunzip/snunzip

package snunzip

import "iter"

// CmdGen2 is stage two of the command generator (spec §4.4). It resolves
// the short-term/long-term memory addresses, the rotation amounts the
// datapath's byte-rotator needs, and the output-line write budget each
// partial command is allowed to consume, carrying any literal remainder
// across commands until it is fully placed.
//
// In strict underflow mode it additionally rejects a copy whose offset
// reaches before the start of the chunk's output (the Python reference this
// stage is modeled on has no such check; it silently reads zero-initialized
// memory instead).
func CmdGen2(in iter.Seq2[PartialCommand, error], opts *Options) iter.Seq2[Command, error] {
	return func(yield func(Command, error) bool) {
		next, stop := iter.Pull2(in)
		defer stop()

		off := 0
		ltCnt := 0
		c1hValid := false
		var c1h PartialCommand
		c1Pend := false

		cpLen := -1
		liLen := -1
		liOff := 0

		for {
			if !c1hValid {
				p, err, ok := next()
				if !ok {
					return
				}
				if err != nil {
					yield(Command{}, err)
					return
				}
				c1h = p
				c1hValid = true
				c1Pend = c1h.CpLen >= 0 || c1h.LiVal
			}

			if liLen < 0 && c1Pend {
				cpLen = int(c1h.CpLen)
				if cpLen >= 0 && opts != nil && opts.Underflow == Strict {
					written := ltCnt*W + off
					if int(c1h.CpOff) > written {
						yield(Command{}, ErrUnderflowInWindow)
						return
					}
				}
				if c1h.LiVal {
					liLen = int(c1h.LiLen)
				}
				liOff = c1h.LiOff
				c1Pend = false
			}

			pyStart := off

			cpSrcRel := off - int(c1h.CpOff)
			cpSrcLine := cpSrcRel >> WB
			cpSrcOffs := cpSrcRel & (W - 1)

			stAddr := (^cpSrcLine) & 31

			ltVal := cpSrcLine < -31 && cpLen >= 0
			ltAddr := ltCnt + cpSrcLine

			ltSwap := ltAddr&1 != 0
			ltAdev := ((ltAddr + 1) >> 1) & (32767 >> WB)
			ltAdod := (ltAddr >> 1) & (32767 >> WB)

			var cpRol int
			if c1h.CpRle {
				cpRol = cpSrcOffs
			} else {
				cpRol = (cpSrcOffs - off) & (2*W - 1)
			}

			budget := (cpLen & (2*W - 1)) ^ (W - 1)

			off += cpLen + 1
			cpLen = -1
			cpEnd := off

			liChunkLen := min3(liLen+1, 2*W-liOff, budget)
			if liOff >= W {
				liChunkLen = 0
			}

			liRol := (liOff - off) & (2*W - 1)

			off += liChunkLen
			liOff += liChunkLen
			liLen -= liChunkLen

			liEnd := off

			if off >= W {
				ltCnt++
			}
			off &= W - 1

			ldPend := liLen >= 0 && liOff < W
			finishing := c1h.Last && (liLen >= 0 || cpLen >= 0)

			var ldPop, last bool
			if c1hValid && !(cpLen >= 0 || c1Pend || ldPend || finishing) {
				c1hValid = false
				ldPop = c1h.LdPop
				last = c1h.Last
				liOff -= W
				if last {
					off = 0
					ltCnt = 0
				}
			}

			cmd := Command{
				LtVal:   ltVal,
				LtAdev:  uint16(ltAdev),
				LtAdod:  uint16(ltAdod),
				LtSwap:  ltSwap,
				StAddr:  uint8(stAddr),
				CpRol:   cpRol,
				CpRle:   c1h.CpRle,
				CpEnd:   cpEnd,
				LiRol:   liRol,
				LiEnd:   liEnd,
				LdPop:   ldPop,
				Last:    last,
				PyData:  c1h.PyData,
				PyStart: pyStart,
			}
			if !yield(cmd, nil) {
				return
			}
		}
	}
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
