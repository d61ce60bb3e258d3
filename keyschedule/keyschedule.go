// keyschedule.go - derives all per-key material from a 64-byte master key
// (spec §4.4): the seven key-expanded registers, the odd-valued selector
// sequence, the 24 round keys, and the 24 round S-boxes. Everything here
// is a pure function of the master key; Expand never consults any other
// state, and two calls with the same key must produce byte-identical
// Material (spec §8.3, "key schedule purity").
package keyschedule

import (
	"github.com/fxamacker/cbor/v2"

	"github.com/ruc-crypto/ruc/chacha20"
	"github.com/ruc-crypto/ruc/register"
	"github.com/ruc-crypto/ruc/rucerr"
	"github.com/ruc-crypto/ruc/sbox"
	"github.com/ruc-crypto/ruc/shake"
)

// KeySize is the required length of a master key, in bytes (512 bits).
const KeySize = 64

const (
	minSelectors = 16
	maxSelectors = 31 // inclusive: 16 + (K[1] mod 16) ranges over [16,31]
	roundCount   = 24
)

// Material holds every piece of key-derived state a session needs for the
// lifetime of a key: the seven key-expanded registers, the permuted
// selector sequence, the round keys, the round S-boxes, and a
// precomputed key_const lookup for every selector value that appears in
// the sequence. It retains its own copy of the master key, as spec §5's
// resource policy expects ("keying material should be stored in a single
// owning structure per session").
type Material struct {
	key       [KeySize]byte
	Registers [7]register.Register
	Selectors []uint16
	RoundKeys [roundCount]register.Register
	SBoxes    [roundCount]sbox.Box
	keyConst  map[uint16]byte
}

// Key returns the master key this Material was derived from. Callers must
// not retain or mutate the returned slice beyond the Material's lifetime.
func (m *Material) Key() []byte {
	return m.key[:]
}

// KeyConst returns the precomputed key_const(sel) value for selector sel,
// as defined in spec §4.6 step 4: the first byte of
// SHAKE256(K || "RUC-CONST" || u16be(sel), 1).
func (m *Material) KeyConst(sel uint16) byte {
	if v, ok := m.keyConst[sel]; ok {
		return v
	}
	return computeKeyConst(m.key[:], sel)
}

// Wipe zeroes the retained copy of the master key. Callers should call
// Wipe once a Material is no longer needed (spec §5: "wipes on drop are
// recommended"). Wipe does not zero derived round material, which is not
// secret-equivalent to the master key on its own.
func (m *Material) Wipe() {
	for i := range m.key {
		m.key[i] = 0
	}
}

// Expand derives a Material from a 64-byte master key under the given
// S-box acceptance policy (spec §4.3's strict policy in production; a
// relaxed policy is permitted only for test suites, see sbox.Policy).
func Expand(key []byte, policy sbox.Policy) (*Material, error) {
	if len(key) != KeySize {
		return nil, rucerr.ErrInvalidKeyLength
	}

	m := &Material{}
	copy(m.key[:], key)

	for i := 0; i < 7; i++ {
		var buf [register.Size]byte
		shake.Derive(buf[:], m.key[:], shake.TagRegisters, []byte{byte(i)})
		m.Registers[i] = register.FromBytes(buf[:])
	}

	n := minSelectors + int(m.key[1]%16)
	m.Selectors = deriveSelectors(m.key[:], n)
	permuteSelectors(m.key[:], m.Selectors)

	for r := 0; r < roundCount; r++ {
		var buf [register.Size]byte
		shake.Derive(buf[:], m.key[:], shake.TagRoundKeys, shake.U16BE(uint16(r)))
		m.RoundKeys[r] = register.FromBytes(buf[:])
	}

	for r := 0; r < roundCount; r++ {
		box, err := sbox.Build(m.key[:], uint16(r), policy)
		if err != nil {
			return nil, err
		}
		m.SBoxes[r] = box
	}

	m.keyConst = make(map[uint16]byte, len(m.Selectors))
	for _, sel := range m.Selectors {
		if _, ok := m.keyConst[sel]; !ok {
			m.keyConst[sel] = computeKeyConst(m.key[:], sel)
		}
	}

	return m, nil
}

func computeKeyConst(key []byte, sel uint16) byte {
	var out [1]byte
	shake.Derive(out[:], key, shake.TagConst, shake.U16BE(sel))
	return out[0]
}

// deriveSelectors produces the pre-shuffle selector multiset: n odd,
// non-zero 16-bit values, one SHAKE256 call per slot.
func deriveSelectors(key []byte, n int) []uint16 {
	sel := make([]uint16, n)
	for j := 0; j < n; j++ {
		var buf [2]byte
		shake.Derive(buf[:], key, shake.TagSelectors, shake.U16BE(uint16(j)))
		s := uint16(buf[0])<<8 | uint16(buf[1])
		if s%2 == 0 {
			s++
		}
		if s == 0 {
			s = 1
		}
		sel[j] = s
	}
	return sel
}

// permuteSelectors Fisher-Yates shuffles sel in place, driven by a
// ChaCha20 stream keyed by SHAKE256(K || "RUC-PERM", 32) with a zero
// nonce.
func permuteSelectors(key []byte, sel []uint16) {
	var streamKey [32]byte
	shake.Derive(streamKey[:], key, shake.TagPermute)
	stream := chacha20.New(streamKey[:], make([]byte, chacha20.NonceSize))

	for i := len(sel) - 1; i >= 1; i-- {
		u := stream.ReadUint32BE()
		j := int(u % uint32(i+1))
		sel[i], sel[j] = sel[j], sel[i]
	}
}

// snapshot is the CBOR-encodable view of Material used to build a
// deterministic fingerprint (spec §8.3's key-schedule-purity property):
// two independent Expand calls over the same key must fingerprint
// identically.
type snapshot struct {
	Registers [7][register.Size]byte
	Selectors []uint16
	RoundKeys [roundCount][register.Size]byte
	SBoxes    [roundCount]sbox.Box
}

// Fingerprint returns a 32-byte SHAKE256 digest of a canonical CBOR
// encoding of every field Expand derives (excluding the retained master
// key, which is never meant to be compared this way). Two Materials
// derived from the same key must have equal fingerprints; this is used
// by the determinism and key-schedule-purity test suites instead of
// hand-rolling a byte comparison of every field.
func (m *Material) Fingerprint() ([]byte, error) {
	snap := snapshot{Selectors: m.Selectors, SBoxes: m.SBoxes}
	for i, r := range m.Registers {
		snap.Registers[i] = r.Bytes()
	}
	for i, r := range m.RoundKeys {
		snap.RoundKeys[i] = r.Bytes()
	}

	encoded, err := cbor.Marshal(snap)
	if err != nil {
		return nil, err
	}
	digest := make([]byte, 32)
	shake.Sum(digest, encoded)
	return digest, nil
}
