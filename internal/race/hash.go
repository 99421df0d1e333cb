package race

import "hash/fnv"

// fnvAccumulator is a tiny wrapper around hash/fnv used everywhere the
// engine needs a canonical fingerprint over a handful of ints and bools
// (StateHash, the loop-detection signatures, ConfigFingerprint). See
// DESIGN.md for why hash/fnv rather than a third-party hasher.
type fnvAccumulator struct {
	h hash64
}

type hash64 interface {
	Write(p []byte) (int, error)
	Sum64() uint64
}

func newFNVAccumulator() *fnvAccumulator {
	return &fnvAccumulator{h: fnv.New64a()}
}

func (a *fnvAccumulator) writeInt(v int) { a.writeInt64(int64(v)) }

func (a *fnvAccumulator) writeInt64(v int64) {
	var b [8]byte
	u := uint64(v)
	for i := 0; i < 8; i++ {
		b[i] = byte(u >> (8 * i))
	}
	a.h.Write(b[:])
}

func (a *fnvAccumulator) writeBool(v bool) {
	if v {
		a.writeInt(1)
	} else {
		a.writeInt(0)
	}
}

func (a *fnvAccumulator) sum() uint64 { return a.h.Sum64() }
