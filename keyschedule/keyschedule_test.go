package keyschedule

import (
	"bytes"
	"testing"

	"github.com/ruc-crypto/ruc/sbox"
)

func testKey(seed byte) []byte {
	key := make([]byte, KeySize)
	for i := range key {
		key[i] = seed + byte(i)
	}
	return key
}

func TestExpandRejectsWrongKeyLength(t *testing.T) {
	if _, err := Expand(make([]byte, KeySize-1), sbox.RelaxedPolicy()); err == nil {
		t.Fatalf("expected an error for a short key")
	}
}

func TestExpandIsPure(t *testing.T) {
	key := testKey(1)
	a, err := Expand(key, sbox.RelaxedPolicy())
	if err != nil {
		t.Fatalf("Expand failed: %v", err)
	}
	b, err := Expand(key, sbox.RelaxedPolicy())
	if err != nil {
		t.Fatalf("Expand failed: %v", err)
	}

	fa, err := a.Fingerprint()
	if err != nil {
		t.Fatalf("Fingerprint failed: %v", err)
	}
	fb, err := b.Fingerprint()
	if err != nil {
		t.Fatalf("Fingerprint failed: %v", err)
	}
	if !bytes.Equal(fa, fb) {
		t.Fatalf("Expand(K) must be a pure function of K")
	}
}

func TestDifferentKeysProduceDifferentFingerprints(t *testing.T) {
	a, err := Expand(testKey(1), sbox.RelaxedPolicy())
	if err != nil {
		t.Fatalf("Expand failed: %v", err)
	}
	b, err := Expand(testKey(2), sbox.RelaxedPolicy())
	if err != nil {
		t.Fatalf("Expand failed: %v", err)
	}

	fa, err := a.Fingerprint()
	if err != nil {
		t.Fatalf("Fingerprint failed: %v", err)
	}
	fb, err := b.Fingerprint()
	if err != nil {
		t.Fatalf("Fingerprint failed: %v", err)
	}
	if bytes.Equal(fa, fb) {
		t.Fatalf("distinct keys must not fingerprint identically")
	}
}

func TestSelectorsAreOddAndInRange(t *testing.T) {
	m, err := Expand(testKey(3), sbox.RelaxedPolicy())
	if err != nil {
		t.Fatalf("Expand failed: %v", err)
	}
	if len(m.Selectors) < minSelectors || len(m.Selectors) > maxSelectors {
		t.Fatalf("selector count %d out of range [%d,%d]", len(m.Selectors), minSelectors, maxSelectors)
	}
	for _, sel := range m.Selectors {
		if sel%2 == 0 {
			t.Fatalf("selector %d must be odd", sel)
		}
		if sel == 0 {
			t.Fatalf("selector must not be zero")
		}
	}
}

func TestKeyConstIsStableAcrossCalls(t *testing.T) {
	m, err := Expand(testKey(4), sbox.RelaxedPolicy())
	if err != nil {
		t.Fatalf("Expand failed: %v", err)
	}
	for _, sel := range m.Selectors {
		if m.KeyConst(sel) != m.KeyConst(sel) {
			t.Fatalf("KeyConst must be stable for the same selector")
		}
	}
}

func TestWipeZeroesKey(t *testing.T) {
	m, err := Expand(testKey(5), sbox.RelaxedPolicy())
	if err != nil {
		t.Fatalf("Expand failed: %v", err)
	}
	m.Wipe()
	for _, b := range m.Key() {
		if b != 0 {
			t.Fatalf("Wipe must zero every byte of the retained key")
		}
	}
}
