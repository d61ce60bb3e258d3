// register.go - the 512-bit state register (StateRegisters R[0..6] in the
// spec's data model). Represented as eight big-endian 64-bit limbs, limb 0
// most significant, so that XOR, rotate, and GF(2^8) register-multiply are
// all defined directly on the limb array without ever touching a bignum
// library.
package register

import "github.com/ruc-crypto/ruc/gf"

// Size is the width of a Register in bytes (512 bits).
const Size = 64

// Register is a 512-bit value, conceptually eight 64-bit limbs, big-endian
// within the register (limb 0 is most significant).
type Register [8]uint64

// FromBytes interprets a 64-byte big-endian buffer as a Register.
func FromBytes(b []byte) Register {
	if len(b) != Size {
		panic("register: FromBytes requires exactly 64 bytes")
	}
	var r Register
	bytesToLimbs(r[:], b)
	return r
}

// Bytes renders the Register as 64 big-endian bytes.
func (r Register) Bytes() [Size]byte {
	var out [Size]byte
	limbsToBytes(out[:], r[:])
	return out
}

// Xor returns r XOR other.
func (r Register) Xor(other Register) Register {
	var out Register
	out = r
	xorLimbs(out[:], other[:])
	return out
}

// Rol returns r rotated left by n bits, modulo 512.
func (r Register) Rol(n uint) Register {
	var out Register
	rotateLeftLimbs(out[:], r[:], n)
	return out
}

// Shl returns r shifted left by n bits, discarding bits shifted past bit
// 511 and filling with zero from the bottom. Used to lift an 8-bit value
// into the register at an arbitrary bit offset (spec §4.6 step 6b).
func (r Register) Shl(n uint) Register {
	var out Register
	shiftLeftLimbs(out[:], r[:], n)
	return out
}

// LiftByte places v at bit offset `shift` (counted from bit 0, the least
// significant bit of the register) and returns the resulting 512-bit
// register, with any overflow past bit 511 discarded.
func LiftByte(v byte, shift uint) Register {
	var r Register
	r[7] = uint64(v)
	return r.Shl(shift)
}

// LiftBytes interprets v (at most Size bytes) as a big-endian unsigned
// integer, places it at bit offset `shift`, and returns the resulting
// 512-bit register, with any overflow past bit 511 discarded. Used by the
// round engine's feedback step (spec §4.6 step E) to lift a 256-bit
// ciphertext block into a 512-bit register.
func LiftBytes(v []byte, shift uint) Register {
	if len(v) > Size {
		panic("register: LiftBytes value wider than a register")
	}
	var buf [Size]byte
	copy(buf[Size-len(v):], v)
	return FromBytes(buf[:]).Shl(shift)
}

// TopByte returns bits 504..511: the most significant byte of the register.
func (r Register) TopByte() byte {
	return byte(r[0] >> 56)
}

// LowByte returns the register value modulo 256: its least significant
// byte.
func (r Register) LowByte() byte {
	return byte(r[7])
}

// Low32 returns the low 32 bits of the register.
func (r Register) Low32() uint32 {
	return uint32(r[7])
}

// XorLowByte XORs v into the register's single least significant byte,
// leaving every other byte untouched.
func (r Register) XorLowByte(v byte) Register {
	out := r
	out[7] ^= uint64(v)
	return out
}

// GFMulRegister returns a register whose i-th byte (big-endian, i in
// [0,63]) equals gf.Mul(byte_i(r), m): the register-wide GF(2^8)
// multiply used by the round engine to diffuse a single result byte
// across an entire register.
func (r Register) GFMulRegister(m byte) Register {
	in := r.Bytes()
	var outBytes [Size]byte
	gf.MulBytes(outBytes[:], in[:], m)
	return FromBytes(outBytes[:])
}

// Equal reports whether r and other hold the same 512-bit value.
func (r Register) Equal(other Register) bool {
	return r == other
}
