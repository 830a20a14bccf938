// SPDX-License-Identifier: MIT
// Source: github.com/go-snunzip/snunzip (table-driven generation profile,
// adapted from the teacher's per-level compression parameter table)

package refsnappy

import "math/rand"

// genProfile controls how compressible a generated test chunk is: runProb is
// the chance that the generator repeats an already-written byte (creating a
// copyable run) instead of emitting a fresh random byte; minRun/maxRun bound
// the run length; maxOffset bounds how far back the run may reach.
//
// This mirrors the teacher's per-level compressLevelParams table in shape —
// a small fixed table of named parameter sets indexed by a coarse knob —
// generalized here to the CLI's max_prob knob instead of a compression
// level.
type genProfile struct {
	runProb   float64
	minRun    int
	maxRun    int
	maxOffset int
}

var genProfiles = [...]genProfile{
	{0.05, 4, 8, 64},
	{0.15, 4, 16, 256},
	{0.30, 4, 32, 2048},
	{0.50, 4, 64, 65535},
	{0.70, 1, 64, 65535}, // also allows single-byte runs
}

func pickProfile(maxProb float64) genProfile {
	idx := int(maxProb * float64(len(genProfiles)))
	if idx >= len(genProfiles) {
		idx = len(genProfiles) - 1
	}
	if idx < 0 {
		idx = 0
	}
	return genProfiles[idx]
}

// RandomChunk synthesizes size bytes of pseudo-random data whose
// compressibility is tuned by maxProb in [0,1]: 0 is mostly random bytes
// (runs are started with probability 0.05), values near 1 are heavily
// self-referential. rng is the caller's seeded
// source, so a given seed reproduces the same chunk deterministically.
func RandomChunk(rng *rand.Rand, size int, maxProb float64) []byte {
	if size <= 0 {
		return nil
	}
	profile := pickProfile(maxProb)
	out := make([]byte, 0, size)
	for len(out) < size {
		if len(out) > 0 && rng.Float64() < profile.runProb {
			maxOff := min(profile.maxOffset, len(out))
			if maxOff < 1 {
				maxOff = 1
			}
			off := 1 + rng.Intn(maxOff)
			run := profile.minRun + rng.Intn(profile.maxRun-profile.minRun+1)
			if run > size-len(out) {
				run = size - len(out)
			}
			start := len(out) - off
			for i := 0; i < run; i++ {
				out = append(out, out[start+i%off])
			}
		} else {
			out = append(out, byte(rng.Intn(256)))
		}
	}
	return out[:size]
}

// RandomChunkSize picks a chunk size in [minSize, maxSize], clamped to
// MaxBlockSize, the way the §6 CLI's chunk/min_chunk/max_chunk knobs do.
func RandomChunkSize(rng *rand.Rand, minSize, maxSize int) int {
	if maxSize > MaxBlockSize {
		maxSize = MaxBlockSize
	}
	if minSize < 0 {
		minSize = 0
	}
	if maxSize <= minSize {
		return minSize
	}
	return minSize + rng.Intn(maxSize-minSize+1)
}
