// SPDX-License-Identifier: MIT
// Source: github.com/go-snunzip/snunzip

/*
Package snunzip implements a cycle-accurate, five-stage reference model of a
hardware streaming decompressor for raw (headerless, CRC-less) Snappy chunks.

Each stage is a restartable pull-style iterator operating on fixed-width
8-byte "lines": a data source, a pre-decoder (one-line look-ahead), an
element decoder, a two-stage command generator, and a datapath that
materializes commands into output bytes using a short-term shift-register
history and a long-term random-access history. The model exists to be
verified line-for-line against an HDL implementation of the same pipeline.

# Decompress

Options are required; a non-zero OutLen is checked against the decompressed
length. From a byte slice:

	out, err := snunzip.Decompress(compressed, snunzip.DefaultOptions(expectedLen))

From an io.Reader:

	out, err := snunzip.DecompressFromReader(r, snunzip.DefaultOptions(expectedLen))

For a stream of independently-framed chunks (the caller already knows where
each chunk starts and ends; see DecompressAll):

	for out, err := range snunzip.DecompressAll(chunks, snunzip.DefaultOptions(expectedLen)) {
		if err != nil {
			break
		}
		// out is one chunk's decompressed bytes
	}

# Staged pipeline

Callers that want access to the intermediate per-stage streams (for
differential testing against an HDL simulation, or for the serialized
interchange format in Serialize) can compose the stages directly:

	lines := snunzip.Source(chunks)
	doubles := snunzip.PreDecoder(lines)
	elements := snunzip.ElementDecoder(doubles)
	partials := snunzip.CmdGen1(elements)
	commands := snunzip.CmdGen2(partials, opts)
	for rec, err := range snunzip.Datapath(commands) {
		// rec is a Decompressed record
	}
*/
package snunzip
