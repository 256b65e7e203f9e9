package randutil

import (
	rand "math/rand/v2"
	"time"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// NewPCG returns a PCG source seeded deterministically from the provided
// int64. The helper centralises how we derive the two 64-bit seeds required
// by rand/v2 so that all call sites get reproducible sequences.
func NewPCG(seed int64) *rand.PCG {
	u := uint64(seed)
	return rand.NewPCG(mix(u), mix(u+goldenRatio64))
}

// New returns a *rand.Rand seeded deterministically from the provided int64.
func New(seed int64) *rand.Rand {
	return rand.New(NewPCG(seed))
}

// Child derives the index-th child seed from a master seed. The derivation is
// deterministic, so a fixed master seed always fans out to the same children.
func Child(master int64, index uint64) int64 {
	return int64(mix(mix(uint64(master)) + index*goldenRatio64))
}

// RandomSeed returns a fresh nondeterministic seed for components constructed
// without one.
func RandomSeed() int64 {
	return int64(mix(uint64(time.Now().UnixNano())))
}

// Fork returns an independent copy of src with identical state, so a caller
// can look ahead in the sequence without consuming from the live source.
func Fork(src *rand.PCG) *rand.PCG {
	state, err := src.MarshalBinary()
	if err != nil {
		panic("randutil: marshal PCG state: " + err.Error())
	}
	clone := new(rand.PCG)
	if err := clone.UnmarshalBinary(state); err != nil {
		panic("randutil: unmarshal PCG state: " + err.Error())
	}
	return clone
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
