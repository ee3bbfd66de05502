package multisig

import "fmt"

// Signature is the aggregated (challenge, response) scalar pair produced at
// the end of a signing round. It verifies like an ordinary Schnorr signature
// against the aggregated public key, so verifiers need no knowledge of the
// committee or the multisignature rounds.
type Signature struct {
	curve Curve
	c     Scalar // challenge
	r     Scalar // aggregated response
}

// NewSignatureFromBytes loads a signature from src at offset. The wire form
// is the challenge scalar followed by the response scalar.
func NewSignatureFromBytes(curve Curve, src []byte, offset int) (*Signature, error) {
	if curve == nil {
		return nil, ErrNoCurve
	}

	sig := &Signature{curve: curve}
	if err := sig.Deserialize(src, offset); err != nil {
		return nil, err
	}
	return sig, nil
}

// Initialized reports whether the signature holds both scalars.
func (sig *Signature) Initialized() bool {
	return sig != nil && sig.c != nil && sig.r != nil
}

// Challenge returns the challenge scalar.
func (sig *Signature) Challenge() Scalar {
	if sig == nil {
		return nil
	}
	return sig.c
}

// Response returns the aggregated response scalar.
func (sig *Signature) Response() Scalar {
	if sig == nil {
		return nil
	}
	return sig.r
}

// Size returns the wire size of the signature.
func (sig *Signature) Size() int {
	if sig == nil || sig.curve == nil {
		return 0
	}
	return 2 * sig.curve.ScalarSize()
}

// Serialize writes the signature into dst at offset.
func (sig *Signature) Serialize(dst []byte, offset int) (int, error) {
	if !sig.Initialized() {
		return 0, ErrNotInitialized
	}

	size := sig.curve.ScalarSize()
	if err := checkSlice(dst, offset, 2*size); err != nil {
		return 0, err
	}

	copy(dst[offset:], sig.c.Bytes())
	copy(dst[offset+size:], sig.r.Bytes())
	return 2 * size, nil
}

// Deserialize reads the signature from src at offset, rejecting scalars
// outside [0, n). The receiver is unchanged on failure.
func (sig *Signature) Deserialize(src []byte, offset int) error {
	if sig.curve == nil {
		return ErrNoCurve
	}

	size := sig.curve.ScalarSize()
	if err := checkSlice(src, offset, 2*size); err != nil {
		return err
	}

	c, err := sig.curve.ScalarFromBytes(src[offset : offset+size])
	if err != nil {
		return fmt.Errorf("decode signature challenge: %w", err)
	}
	r, err := sig.curve.ScalarFromBytes(src[offset+size : offset+2*size])
	if err != nil {
		return fmt.Errorf("decode signature response: %w", err)
	}

	sig.c = c
	sig.r = r
	return nil
}

// Equal reports whether both signatures are initialized and equal.
func (sig *Signature) Equal(other *Signature) bool {
	if !sig.Initialized() || !other.Initialized() {
		return false
	}
	if !sameCurve(sig.curve, other.curve) {
		return false
	}
	return sig.c.Equal(other.c) && sig.r.Equal(other.r)
}

// Verify checks the signature against the aggregated public key and message
// using the default SHA-256 challenge profile.
func (sig *Signature) Verify(pubKey Point, message []byte) bool {
	return sig.VerifyWithAlgo(ChallengeSHA256, pubKey, message)
}

// VerifyWithAlgo checks the standalone Schnorr equation under the given
// challenge hash profile: it recomputes R' = r*G - c*P and accepts iff
// H(R' || P || message) equals the signature's challenge.
func (sig *Signature) VerifyWithAlgo(algo ChallengeAlgo, pubKey Point, message []byte) bool {
	if !sig.Initialized() || pubKey == nil || pubKey.IsIdentity() {
		return false
	}

	commit := sig.curve.BasePoint().Mul(sig.r).Sub(pubKey.Mul(sig.c))
	if commit.IsIdentity() {
		return false
	}

	expected, err := challengeScalar(sig.curve, algo, commit.Bytes(), pubKey.Bytes(), message)
	if err != nil {
		return false
	}
	return expected.Equal(sig.c)
}
