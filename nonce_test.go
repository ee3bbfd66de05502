package multisig

import (
	"testing"
)

func TestNonceGeneratorRandom(t *testing.T) {
	for _, curve := range testCurves(t) {
		t.Run(curve.Name(), func(t *testing.T) {
			ng := NewNonceGenerator(curve)

			first, err := ng.Generate()
			if err != nil {
				t.Fatalf("Generate failed: %v", err)
			}
			second, err := ng.Generate()
			if err != nil {
				t.Fatalf("Generate failed: %v", err)
			}
			if first.Equal(second) {
				t.Fatal("two random nonces are equal")
			}
		})
	}
}

func TestDeterministicNonceStability(t *testing.T) {
	for _, curve := range testCurves(t) {
		t.Run(curve.Name(), func(t *testing.T) {
			ng := NewNonceGenerator(curve)
			seed := []byte("signer-seed-material")
			context := []byte("round-42")

			first, err := ng.Deterministic(seed, context)
			if err != nil {
				t.Fatalf("Deterministic failed: %v", err)
			}
			second, err := ng.Deterministic(seed, context)
			if err != nil {
				t.Fatalf("Deterministic failed: %v", err)
			}
			if !first.Equal(second) {
				t.Fatal("same seed and context produced different nonces")
			}

			// Either input changing changes the nonce.
			otherContext, err := ng.Deterministic(seed, []byte("round-43"))
			if err != nil {
				t.Fatalf("Deterministic failed: %v", err)
			}
			if otherContext.Equal(first) {
				t.Fatal("different context produced the same nonce")
			}

			otherSeed, err := ng.Deterministic([]byte("other-seed"), context)
			if err != nil {
				t.Fatalf("Deterministic failed: %v", err)
			}
			if otherSeed.Equal(first) {
				t.Fatal("different seed produced the same nonce")
			}
		})
	}
}

func TestDeterministicNonceRejectsEmptySeed(t *testing.T) {
	ng := NewNonceGenerator(NewSecp256k1Curve())
	if _, err := ng.Deterministic(nil, []byte("round-1")); err == nil {
		t.Fatal("expected error for empty seed")
	}
}

func TestDeterministicNonceUsableInRound(t *testing.T) {
	curve := NewEd25519Curve()
	ng := NewNonceGenerator(curve)

	secret, err := ng.Deterministic([]byte("seed"), []byte("round-7"))
	if err != nil {
		t.Fatalf("Deterministic failed: %v", err)
	}
	point, err := NewCommitPoint(secret)
	if err != nil {
		t.Fatalf("NewCommitPoint failed: %v", err)
	}

	priv, pub := testKeyPair(t, curve)
	pubAgg, err := AggregatePubKeys(curve, []Point{pub})
	if err != nil {
		t.Fatalf("AggregatePubKeys failed: %v", err)
	}
	challenge, err := NewChallenge(point, pubAgg, []byte("block-123"))
	if err != nil {
		t.Fatalf("NewChallenge failed: %v", err)
	}
	response, err := NewResponse(secret, challenge, priv)
	if err != nil {
		t.Fatalf("NewResponse failed: %v", err)
	}
	if !VerifyResponse(response, challenge, pub, point) {
		t.Fatal("response built from a deterministic nonce did not verify")
	}
}
