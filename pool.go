package snunzip

import "sync"

// ltBankPool pools the datapath's long-term memory bank: up to 65536 bytes
// (longTermLines W-byte lines) that would otherwise be reallocated on every
// Decompress call.
var ltBankPool = sync.Pool{
	New: func() any {
		buf := make([][W]byte, longTermLines)
		return &buf
	},
}

// acquireLtBank returns a zeroed long-term memory bank from the pool.
func acquireLtBank() *[][W]byte {
	buf := ltBankPool.Get().(*[][W]byte)
	clear(*buf)
	return buf
}

// releaseLtBank returns a long-term memory bank to the pool.
func releaseLtBank(buf *[][W]byte) {
	if buf == nil {
		return
	}
	ltBankPool.Put(buf)
}
