// SPDX-License-Identifier: MIT
// Source: github.com/go-snunzip/snunzip

package snunzip

// Pipeline line width. Fixed to 8 in the hardware source; WB is its log2.
// Every stage operates on W-byte "lines" and W*2-byte look-ahead windows.
const (
	W  = 8
	WB = 3 // log2(W)

	// shortTermDepth is the number of most-recently-written lines kept per
	// short-term memory column (a Xilinx SRL of this depth in the hardware).
	shortTermDepth = 32

	// maxChunkLen is the largest uncompressed chunk size this pipeline
	// supports; chunks above this are out of scope (spec Non-goals).
	maxChunkLen = 65536

	// longTermLines is the number of W-byte lines addressable by long-term
	// memory: enough to hold any supported chunk's entire output.
	longTermLines = maxChunkLen / W
)
