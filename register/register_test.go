package register

import (
	"bytes"
	"testing"
)

func seqBytes() [Size]byte {
	var b [Size]byte
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

func TestRoundTripBytes(t *testing.T) {
	b := seqBytes()
	r := FromBytes(b[:])
	out := r.Bytes()
	if !bytes.Equal(b[:], out[:]) {
		t.Fatalf("round trip mismatch: got %x, want %x", out, b)
	}
}

func TestTopAndLowByte(t *testing.T) {
	b := seqBytes()
	r := FromBytes(b[:])
	if got := r.TopByte(); got != b[0] {
		t.Fatalf("TopByte() = %d, want %d", got, b[0])
	}
	if got := r.LowByte(); got != b[63] {
		t.Fatalf("LowByte() = %d, want %d", got, b[63])
	}
}

func TestRolIsIdentityOverFullWidth(t *testing.T) {
	b := seqBytes()
	r := FromBytes(b[:])
	rotated := r.Rol(512)
	if rotated != r {
		t.Fatalf("Rol(512) must be identity")
	}
	back := r.Rol(200).Rol(312)
	if back != r {
		t.Fatalf("Rol(200) then Rol(312) must return to original")
	}
}

func TestRolMovesTopBitToBottom(t *testing.T) {
	var r Register
	r[0] = 1 << 63 // top bit set
	got := r.Rol(1)
	if got[7] != 1 {
		t.Fatalf("rotating the top bit left by 1 should set the bottom bit, got %x", got)
	}
}

func TestXorIsSelfInverse(t *testing.T) {
	b := seqBytes()
	r := FromBytes(b[:])
	var zero Register
	if r.Xor(r) != zero {
		t.Fatalf("r XOR r must be zero")
	}
}

func TestLiftByteNoOverflow(t *testing.T) {
	r := LiftByte(0xAB, 4)
	want := uint64(0xAB) << 4
	if r[7] != want || r[6] != 0 {
		t.Fatalf("LiftByte(0xAB, 4) = %x, want low limb %x", r, want)
	}
}

func TestGFMulRegisterBytewise(t *testing.T) {
	b := seqBytes()
	r := FromBytes(b[:])
	out := r.GFMulRegister(0x02).Bytes()
	for i, v := range b {
		// gf.Mul(v, 2) is a left shift with conditional reduction; every
		// byte here is below 0x80, so no reduction applies and the
		// expected value is v<<1, without re-deriving gf here.
		if out[i] != v<<1 {
			t.Fatalf("byte %d: GFMulRegister(0x02) = %#x, want %#x", i, out[i], v<<1)
		}
	}
}

func TestAccumulatorAddCarries(t *testing.T) {
	var acc Accumulator
	acc[15] = ^uint64(0) // all ones in the least significant limb
	acc.Add(1)
	if acc[15] != 0 || acc[14] != 1 {
		t.Fatalf("carry did not propagate: %v", acc)
	}
}

func TestAccumulatorWrapsModulo(t *testing.T) {
	var acc Accumulator
	for i := range acc {
		acc[i] = ^uint64(0)
	}
	acc.Add(1)
	var zero Accumulator
	if acc != zero {
		t.Fatalf("accumulator should wrap to zero modulo 2^1024, got %v", acc)
	}
}
