// SPDX-License-Identifier: MIT
// Source: github.com/go-snunzip/snunzip

package snunzip

import (
	"io"
	"iter"
)

// Decompress decodes a single raw Snappy chunk through the five-stage
// pipeline. The caller is responsible for supplying exactly one chunk's
// worth of compressed bytes; framing multiple chunks within a byte stream
// is out of scope for the core (use DecompressAll with a pre-split source).
func Decompress(compressed []byte, opts *Options) ([]byte, error) {
	if opts == nil {
		return nil, ErrOptionsRequired
	}
	if len(compressed) == 0 {
		return nil, ErrEmptyInput
	}

	out := make([]byte, 0, opts.OutLen)
	pipeline := runPipeline(oneChunk(compressed), opts)

	for dec, err := range pipeline {
		if err != nil {
			return nil, err
		}
		out = append(out, dec.Data[:dec.Cnt]...)
		if len(out) > opts.maxChunkLen() {
			return nil, ErrChunkTooLarge
		}
		if dec.Last {
			if opts.OutLen > 0 && len(out) != opts.OutLen {
				return nil, ErrBoundsViolation
			}
			return out, nil
		}
	}
	return nil, ErrInputOverrun
}

// DecompressAll decodes a sequence of independently-framed raw chunks, using
// the caller's own chunking (the Source stage's boundary, spec §4.6). Each
// chunk gets a fresh pipeline, matching the reference model's per-chunk
// state reset.
func DecompressAll(chunks iter.Seq[[]byte], opts *Options) iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		for chunk := range chunks {
			out, err := Decompress(chunk, opts)
			if !yield(out, err) {
				return
			}
			if err != nil {
				return
			}
		}
	}
}

// DecompressFromReader reads r to completion (bounded by opts.MaxInputSize,
// when set) and decodes the result as a single chunk.
func DecompressFromReader(r io.Reader, opts *Options) ([]byte, error) {
	if opts == nil {
		return nil, ErrOptionsRequired
	}

	src := r
	if opts.MaxInputSize > 0 {
		src = io.LimitReader(r, int64(opts.MaxInputSize)+1)
	}
	buf, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}
	if opts.MaxInputSize > 0 && len(buf) > opts.MaxInputSize {
		return nil, ErrInputTooLarge
	}
	return Decompress(buf, opts)
}

func oneChunk(b []byte) iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		yield(b)
	}
}

// runPipeline wires the five stages together in order: Source, PreDecoder,
// ElementDecoder, CmdGen1, CmdGen2, Datapath.
func runPipeline(chunks iter.Seq[[]byte], opts *Options) iter.Seq2[Decompressed, error] {
	lines := Source(chunks)
	doubles := PreDecoder(lines)
	elements := ElementDecoder(doubles)
	partials := CmdGen1(elements)
	commands := CmdGen2(partials, opts)
	return Datapath(commands)
}
