package multisig

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

const (
	nonceSalt = "SCHNORR_MULTISIG_NONCE_v1"
	nonceInfo = "round:"
)

// NonceGenerator produces commit secrets for signing rounds. The random path
// is the default; the deterministic path lets a signer re-derive the same
// commit secret from durable seed material after a crash, as long as the
// (seed, context) pair is unique per round. Reusing a pair across two rounds
// with different challenges leaks the private key.
type NonceGenerator struct {
	curve Curve
}

// NewNonceGenerator creates a nonce generator for the given curve.
func NewNonceGenerator(curve Curve) *NonceGenerator {
	return &NonceGenerator{curve: curve}
}

// Generate draws a fresh random commit secret.
func (ng *NonceGenerator) Generate() (*CommitSecret, error) {
	return NewCommitSecret(ng.curve)
}

// Deterministic derives a commit secret from seed material via HKDF-SHA256.
// The context identifies the round (e.g. a round number or message digest)
// and is length-prefixed into the HKDF info to keep derivations distinct.
func (ng *NonceGenerator) Deterministic(seed, context []byte) (*CommitSecret, error) {
	if ng.curve == nil {
		return nil, ErrNoCurve
	}
	if len(seed) == 0 {
		return nil, fmt.Errorf("deterministic nonce: empty seed")
	}

	info := make([]byte, 0, len(nonceInfo)+len(ng.curve.Name())+4+len(context))
	info = append(info, nonceInfo...)
	info = append(info, ng.curve.Name()...)
	info = binary.BigEndian.AppendUint32(info, uint32(len(context)))
	info = append(info, context...)

	// 64 bytes of HKDF output so the reduction mod n is uniform.
	reader := hkdf.New(sha256.New, seed, []byte(nonceSalt), info)
	material := make([]byte, 64)
	if _, err := io.ReadFull(reader, material); err != nil {
		return nil, fmt.Errorf("derive nonce material: %w", err)
	}
	defer ZeroizeBytes(material)

	s, err := ng.curve.ScalarFromUniformBytes(material)
	if err != nil {
		return nil, fmt.Errorf("derive commit secret: %w", err)
	}
	if s.IsZero() {
		// Cannot redraw deterministically; the caller must vary the context.
		return nil, ErrScalarZero
	}

	return &CommitSecret{curve: ng.curve, s: s}, nil
}
