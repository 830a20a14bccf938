// SPDX-License-Identifier: MIT
// Source: github.com/go-snunzip/snunzip

package snunzip

import (
	"bufio"
	"bytes"
	"io"
	"iter"
)

// ldPopRecord is implemented by every stage record downstream of the
// element decoder that carries an ld_pop flag (Element, PartialCommand,
// Command).
type ldPopRecord interface {
	ldPopped() bool
}

// WithLdPopCounter wraps a stage, incrementing *count once per record with
// ld_pop set. The count is only meaningful once the wrapped sequence has
// been fully drained or has failed; it exists to check the
// stream-count-equality invariant (spec §8): the number of ld_pop-marked
// records out of the element decoder, cmd_gen_1, and cmd_gen_2 must each
// equal the count of compressed-single input records (see WithCounterSeq).
func WithLdPopCounter[T ldPopRecord](in iter.Seq2[T, error], count *int) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for v, err := range in {
			if err == nil && v.ldPopped() {
				*count++
			}
			if !yield(v, err) {
				return
			}
			if err != nil {
				return
			}
		}
	}
}

// WithCounterSeq tallies every record of the two earliest stages (Source,
// PreDecoder), which cannot fail locally and so are modeled as plain
// iter.Seq rather than iter.Seq2. Its count is the stream-count-equality
// invariant's baseline: the number of compressed-single input records.
func WithCounterSeq[T any](in iter.Seq[T], count *int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range in {
			*count++
			if !yield(v) {
				return
			}
		}
	}
}

// WithVerifier wraps a Decompressed stage and checks it byte-for-byte
// against a sequence of expected chunks, raising ErrPipelineDesync on the
// first mismatch. A chunk ends at a Last record; the bytes accumulated by
// then must match the expected chunk's length exactly, and the stream must
// end after exactly len(expected) chunks.
func WithVerifier(in iter.Seq2[Decompressed, error], expected [][]byte) iter.Seq2[Decompressed, error] {
	return func(yield func(Decompressed, error) bool) {
		chunkIdx, pos := 0, 0
		for v, err := range in {
			if err != nil {
				yield(v, err)
				return
			}
			if chunkIdx >= len(expected) {
				yield(v, ErrPipelineDesync)
				return
			}
			want := expected[chunkIdx]
			got := v.Data[:v.Cnt]
			if pos+len(got) > len(want) || !bytes.Equal(want[pos:pos+len(got)], got) {
				yield(v, ErrPipelineDesync)
				return
			}
			pos += len(got)
			if v.Last {
				if pos != len(want) {
					yield(v, ErrPipelineDesync)
					return
				}
				chunkIdx++
				pos = 0
			}
			if !yield(v, nil) {
				return
			}
		}
		if chunkIdx != len(expected) {
			yield(Decompressed{}, ErrPipelineDesync)
		}
	}
}

// serializable is implemented by every stream record via its Serialize
// method.
type serializable interface {
	Serialize() string
}

// Dump wraps a stage, writing one serialized line per record to w
// (mirroring operators.py's writer), and passes records through unchanged.
// Errors from the wrapped stage are forwarded but not written.
func Dump[T serializable](in iter.Seq2[T, error], w io.Writer) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		bw := bufio.NewWriter(w)
		defer bw.Flush()
		for v, err := range in {
			if err == nil {
				bw.WriteString(v.Serialize())
				bw.WriteByte('\n')
			}
			if !yield(v, err) {
				return
			}
			if err != nil {
				return
			}
		}
	}
}
