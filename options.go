// SPDX-License-Identifier: MIT
// Source: github.com/go-snunzip/snunzip

package snunzip

// UnderflowMode selects how the element decoder's downstream stages react to
// a copy whose offset reaches back further than the bytes emitted so far in
// the current chunk (spec §7, UnderflowInWindow).
type UnderflowMode int

const (
	// Strict fails the chunk with ErrUnderflowInWindow. This is the
	// reference model's behavior and the default.
	Strict UnderflowMode = iota
	// Relaxed treats an out-of-window copy as reading zero bytes rather
	// than failing. Provided for callers that need to tolerate malformed
	// upstream data; the reference model does not use this mode.
	Relaxed
)

// Options configures decompression.
// OutLen is the expected decompressed size, used for buffer allocation and,
// when non-zero, bounds checking; MaxInputSize limits reads when using
// DecompressFromReader.
type Options struct {
	// OutLen is the expected decompressed size of a single chunk
	// (0 = no length check).
	OutLen int
	// MaxInputSize limits how many bytes DecompressFromReader may read
	// (0 = no limit).
	MaxInputSize int
	// MaxChunkLen caps the decompressed length of a single chunk.
	// 0 selects the default of 65536 bytes (spec Non-goals).
	MaxChunkLen int
	// Underflow selects strict (default) or relaxed handling of
	// out-of-window copy offsets.
	Underflow UnderflowMode
}

// DefaultOptions returns options with the given output length, strict
// underflow handling, the default max chunk length, and no input limit.
func DefaultOptions(outLen int) *Options {
	return &Options{OutLen: outLen, MaxChunkLen: maxChunkLen}
}

func (o *Options) maxChunkLen() int {
	if o.MaxChunkLen <= 0 {
		return maxChunkLen
	}
	return o.MaxChunkLen
}
