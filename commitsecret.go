package multisig

import "fmt"

// CommitSecret is a signer's ephemeral secret scalar for one signing round,
// drawn fresh per round and never reused. It must stay private: the matching
// CommitPoint is what gets published.
type CommitSecret struct {
	curve Curve
	s     Scalar
}

// NewCommitSecret generates a fresh commit secret in [1, n-1].
func NewCommitSecret(curve Curve) (*CommitSecret, error) {
	if curve == nil {
		return nil, ErrNoCurve
	}

	for {
		s, err := curve.ScalarRandom()
		if err != nil {
			return nil, fmt.Errorf("draw commit secret: %w", err)
		}
		if !s.IsZero() {
			return &CommitSecret{curve: curve, s: s}, nil
		}
	}
}

// NewCommitSecretFromBytes loads a commit secret from src at offset.
func NewCommitSecretFromBytes(curve Curve, src []byte, offset int) (*CommitSecret, error) {
	if curve == nil {
		return nil, ErrNoCurve
	}

	cs := &CommitSecret{curve: curve}
	if err := cs.Deserialize(src, offset); err != nil {
		return nil, err
	}
	return cs, nil
}

// Initialized reports whether the secret holds a valid scalar.
func (cs *CommitSecret) Initialized() bool {
	return cs != nil && cs.s != nil
}

// Serialize writes the secret scalar into dst at offset.
func (cs *CommitSecret) Serialize(dst []byte, offset int) (int, error) {
	if !cs.Initialized() {
		return 0, ErrNotInitialized
	}

	size := cs.curve.ScalarSize()
	if err := checkSlice(dst, offset, size); err != nil {
		return 0, err
	}

	copy(dst[offset:], cs.s.Bytes())
	return size, nil
}

// Deserialize reads the secret scalar from src at offset, rejecting values
// outside [1, n-1]. The receiver is unchanged on failure.
func (cs *CommitSecret) Deserialize(src []byte, offset int) error {
	if cs.curve == nil {
		return ErrNoCurve
	}

	size := cs.curve.ScalarSize()
	if err := checkSlice(src, offset, size); err != nil {
		return err
	}

	s, err := cs.curve.ScalarFromBytes(src[offset : offset+size])
	if err != nil {
		return fmt.Errorf("decode commit secret: %w", err)
	}
	if s.IsZero() {
		return ErrScalarZero
	}

	cs.s = s
	return nil
}

// Equal reports whether both secrets are initialized and hold the same scalar.
func (cs *CommitSecret) Equal(other *CommitSecret) bool {
	if !cs.Initialized() || !other.Initialized() {
		return false
	}
	if !sameCurve(cs.curve, other.curve) {
		return false
	}
	return cs.s.Equal(other.s)
}

// Clone returns an independent copy of the secret.
func (cs *CommitSecret) Clone() *CommitSecret {
	if !cs.Initialized() {
		return &CommitSecret{}
	}
	return &CommitSecret{curve: cs.curve, s: cs.s.Clone()}
}

// Zeroize clears the secret scalar. The secret is uninitialized afterwards.
func (cs *CommitSecret) Zeroize() {
	if cs == nil || cs.s == nil {
		return
	}
	cs.s.Zeroize()
	cs.s = nil
}
