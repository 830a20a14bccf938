// SPDX-License-Identifier: MIT
// Source: github.com/go-snunzip/snunzip

package snunzip

import "errors"

// Sentinel errors for the decompressor pipeline.
var (
	// ErrMalformedElement is returned when an element's tag encodes the
	// unsupported 5-byte copy form, or a literal length code above 61.
	ErrMalformedElement = errors.New("snunzip: malformed element")
	// ErrUnderflowInWindow is returned (in strict mode) when a copy
	// references an offset greater than the number of bytes emitted so far
	// in the current chunk.
	ErrUnderflowInWindow = errors.New("snunzip: copy offset underflows emitted window")
	// ErrBoundsViolation is returned when a chunk's decompressed length
	// differs from the caller-supplied non-zero OutLen (longer or shorter).
	ErrBoundsViolation = errors.New("snunzip: output length does not match OutLen")
	// ErrPipelineDesync is returned by WithVerifier when the decompressed
	// stream does not match the expected chunks. The record counters
	// (WithCounterSeq, WithLdPopCounter) only tally; they never return it.
	ErrPipelineDesync = errors.New("snunzip: pipeline output disagrees with expected chunks")

	// ErrOptionsRequired is returned when Decompress is called with nil
	// options and an explicit uncompressed length is required.
	ErrOptionsRequired = errors.New("snunzip: options required")
	// ErrEmptyInput is returned when the input byte slice or stream is empty.
	ErrEmptyInput = errors.New("snunzip: empty input")
	// ErrInputOverrun is returned when a stage needs more compressed bytes
	// than the input stream provides.
	ErrInputOverrun = errors.New("snunzip: input overrun")
	// ErrInputTooLarge is returned when DecompressFromReader reads more
	// than opts.MaxInputSize bytes.
	ErrInputTooLarge = errors.New("snunzip: input exceeds MaxInputSize")
	// ErrChunkTooLarge is returned when a chunk's decompressed output grows
	// beyond MaxChunkLen bytes.
	ErrChunkTooLarge = errors.New("snunzip: chunk exceeds max chunk size")
)
