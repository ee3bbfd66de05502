package multisig

import (
	"bytes"
	"testing"
)

func TestCommitSecretGeneration(t *testing.T) {
	for _, curve := range testCurves(t) {
		t.Run(curve.Name(), func(t *testing.T) {
			secret, err := NewCommitSecret(curve)
			if err != nil {
				t.Fatalf("NewCommitSecret failed: %v", err)
			}
			if !secret.Initialized() {
				t.Fatal("fresh secret not initialized")
			}
			if secret.s.IsZero() {
				t.Fatal("fresh secret is zero")
			}

			other, err := NewCommitSecret(curve)
			if err != nil {
				t.Fatalf("NewCommitSecret failed: %v", err)
			}
			if secret.Equal(other) {
				t.Fatal("two fresh secrets are equal")
			}
		})
	}

	if _, err := NewCommitSecret(nil); err == nil {
		t.Fatal("expected error for nil curve")
	}
}

func TestCommitSecretRoundTrip(t *testing.T) {
	for _, curve := range testCurves(t) {
		t.Run(curve.Name(), func(t *testing.T) {
			secret, err := NewCommitSecret(curve)
			if err != nil {
				t.Fatalf("NewCommitSecret failed: %v", err)
			}

			buf := make([]byte, 8+curve.ScalarSize())
			n, err := secret.Serialize(buf, 8)
			if err != nil {
				t.Fatalf("Serialize failed: %v", err)
			}
			if n != curve.ScalarSize() {
				t.Fatalf("expected %d bytes written, got %d", curve.ScalarSize(), n)
			}

			loaded, err := NewCommitSecretFromBytes(curve, buf, 8)
			if err != nil {
				t.Fatalf("NewCommitSecretFromBytes failed: %v", err)
			}
			if !loaded.Equal(secret) {
				t.Fatal("secret changed across serialize/deserialize")
			}
		})
	}
}

func TestCommitSecretDeserializeRejectsBadInput(t *testing.T) {
	for _, curve := range testCurves(t) {
		t.Run(curve.Name(), func(t *testing.T) {
			// Too short for the payload.
			if _, err := NewCommitSecretFromBytes(curve, make([]byte, curve.ScalarSize()-1), 0); err == nil {
				t.Fatal("expected error for short buffer")
			}

			// Offset beyond the buffer.
			if _, err := NewCommitSecretFromBytes(curve, make([]byte, curve.ScalarSize()), 1); err == nil {
				t.Fatal("expected error for bad offset")
			}

			// Zero is outside [1, n-1].
			if _, err := NewCommitSecretFromBytes(curve, make([]byte, curve.ScalarSize()), 0); err == nil {
				t.Fatal("expected error for zero secret")
			}

			// Out of range.
			overflow := bytes.Repeat([]byte{0xff}, curve.ScalarSize())
			if _, err := NewCommitSecretFromBytes(curve, overflow, 0); err == nil {
				t.Fatal("expected error for out-of-range secret")
			}

			// A failed deserialize must not leave a usable value behind.
			cs := &CommitSecret{curve: curve}
			if err := cs.Deserialize(make([]byte, curve.ScalarSize()), 0); err == nil {
				t.Fatal("expected error for zero secret")
			}
			if cs.Initialized() {
				t.Fatal("failed deserialize left secret initialized")
			}
		})
	}
}

func TestCommitSecretZeroize(t *testing.T) {
	curve := NewSecp256k1Curve()
	secret, err := NewCommitSecret(curve)
	if err != nil {
		t.Fatalf("NewCommitSecret failed: %v", err)
	}

	clone := secret.Clone()
	secret.Zeroize()

	if secret.Initialized() {
		t.Fatal("zeroized secret still initialized")
	}
	if !clone.Initialized() {
		t.Fatal("clone affected by zeroizing the original")
	}
	if _, err := secret.Serialize(make([]byte, curve.ScalarSize()), 0); err == nil {
		t.Fatal("expected error serializing a zeroized secret")
	}
}

func TestCommitPointDerivation(t *testing.T) {
	for _, curve := range testCurves(t) {
		t.Run(curve.Name(), func(t *testing.T) {
			secret, err := NewCommitSecret(curve)
			if err != nil {
				t.Fatalf("NewCommitSecret failed: %v", err)
			}

			point, err := NewCommitPoint(secret)
			if err != nil {
				t.Fatalf("NewCommitPoint failed: %v", err)
			}
			if !point.Point().Equal(curve.BasePoint().Mul(secret.s)) {
				t.Fatal("commit point is not s*G")
			}

			// Re-deriving from the same secret is deterministic.
			again, err := NewCommitPoint(secret)
			if err != nil {
				t.Fatalf("NewCommitPoint failed: %v", err)
			}
			if !again.Equal(point) {
				t.Fatal("re-derivation produced a different point")
			}
		})
	}
}

func TestCommitPointFromUninitializedSecret(t *testing.T) {
	if _, err := NewCommitPoint(&CommitSecret{}); err == nil {
		t.Fatal("expected error for uninitialized secret")
	}
	if _, err := NewCommitPoint(nil); err == nil {
		t.Fatal("expected error for nil secret")
	}
}

func TestCommitPointSetOverwrites(t *testing.T) {
	curve := NewEd25519Curve()
	first, err := NewCommitSecret(curve)
	if err != nil {
		t.Fatalf("NewCommitSecret failed: %v", err)
	}
	second, err := NewCommitSecret(curve)
	if err != nil {
		t.Fatalf("NewCommitSecret failed: %v", err)
	}

	point, err := NewCommitPoint(first)
	if err != nil {
		t.Fatalf("NewCommitPoint failed: %v", err)
	}
	if err := point.Set(second); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if !point.Point().Equal(curve.BasePoint().Mul(second.s)) {
		t.Fatal("Set did not re-derive from the new secret")
	}
}

func TestCommitPointRoundTrip(t *testing.T) {
	for _, curve := range testCurves(t) {
		t.Run(curve.Name(), func(t *testing.T) {
			secret, err := NewCommitSecret(curve)
			if err != nil {
				t.Fatalf("NewCommitSecret failed: %v", err)
			}
			point, err := NewCommitPoint(secret)
			if err != nil {
				t.Fatalf("NewCommitPoint failed: %v", err)
			}

			buf := make([]byte, curve.PointSize())
			if _, err := point.Serialize(buf, 0); err != nil {
				t.Fatalf("Serialize failed: %v", err)
			}

			loaded, err := NewCommitPointFromBytes(curve, buf, 0)
			if err != nil {
				t.Fatalf("NewCommitPointFromBytes failed: %v", err)
			}
			if !loaded.Equal(point) {
				t.Fatal("commit point changed across serialize/deserialize")
			}
		})
	}
}

func TestCommitPointDeserializeRejectsIdentity(t *testing.T) {
	curve := NewEd25519Curve()

	// Canonical encoding of the edwards25519 identity element.
	identity := curve.PointIdentity().Bytes()
	if _, err := NewCommitPointFromBytes(curve, identity, 0); err == nil {
		t.Fatal("expected error for identity commit point")
	}
}

func TestCommitPointDeserializeRejectsGarbage(t *testing.T) {
	for _, curve := range testCurves(t) {
		t.Run(curve.Name(), func(t *testing.T) {
			garbage := bytes.Repeat([]byte{0xff}, curve.PointSize())
			if _, err := NewCommitPointFromBytes(curve, garbage, 0); err == nil {
				t.Fatal("expected error for off-curve encoding")
			}
		})
	}
}
