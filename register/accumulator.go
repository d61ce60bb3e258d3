// accumulator.go - the per-block 1024-bit accumulator ACC from the spec's
// data model: sixteen big-endian 64-bit limbs, modular-added to within the
// round function and discarded after keystream emission.
package register

// AccumulatorSize is the width of an Accumulator in bytes (1024 bits).
const AccumulatorSize = 128

// Accumulator is a 1024-bit unsigned integer, big-endian limb 0 most
// significant, initialised to zero at the start of every block.
type Accumulator [16]uint64

// Add adds v (interpreted as an unsigned integer 0..255) into the
// accumulator modulo 2^1024.
func (a *Accumulator) Add(v byte) {
	addModLimbs(a[:], uint64(v))
}

// Bytes renders the accumulator as 128 big-endian bytes.
func (a Accumulator) Bytes() [AccumulatorSize]byte {
	var out [AccumulatorSize]byte
	limbsToBytes(out[:], a[:])
	return out
}
