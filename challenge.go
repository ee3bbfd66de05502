package multisig

import "fmt"

// Challenge is the round-wide scalar c = H(aggregateCommit || aggregatePubKey
// || message) every signer responds to. It is a deterministic function of
// public round data, so any party can recompute and cross-check it.
type Challenge struct {
	curve Curve
	c     Scalar
	algo  ChallengeAlgo
}

// NewChallenge computes a challenge with the default SHA-256 profile.
func NewChallenge(aggCommit *CommitPoint, aggPubKey Point, message []byte) (*Challenge, error) {
	return NewChallengeWithAlgo(ChallengeSHA256, aggCommit, aggPubKey, message)
}

// NewChallengeWithAlgo computes a challenge under the given hash profile.
// The aggregated commit point must be initialized and must not be the
// identity element; a degenerate round must not produce a usable challenge.
func NewChallengeWithAlgo(algo ChallengeAlgo, aggCommit *CommitPoint, aggPubKey Point, message []byte) (*Challenge, error) {
	ch := &Challenge{algo: algo}
	if err := ch.Set(aggCommit, aggPubKey, message); err != nil {
		return nil, err
	}
	return ch, nil
}

// NewChallengeFromBytes loads a challenge scalar from src at offset.
func NewChallengeFromBytes(curve Curve, src []byte, offset int) (*Challenge, error) {
	if curve == nil {
		return nil, ErrNoCurve
	}

	ch := &Challenge{curve: curve}
	if err := ch.Deserialize(src, offset); err != nil {
		return nil, err
	}
	return ch, nil
}

// Set recomputes the challenge from the given round data, overwriting any
// prior value. The hash profile of the receiver is kept.
func (ch *Challenge) Set(aggCommit *CommitPoint, aggPubKey Point, message []byte) error {
	if !aggCommit.Initialized() {
		return fmt.Errorf("aggregated commit: %w", ErrNotInitialized)
	}
	if aggCommit.p.IsIdentity() {
		return fmt.Errorf("aggregated commit: %w", ErrIdentityPoint)
	}
	if aggPubKey == nil {
		return fmt.Errorf("aggregated public key: %w", ErrNotInitialized)
	}
	if aggPubKey.IsIdentity() {
		return fmt.Errorf("aggregated public key: %w", ErrIdentityPoint)
	}

	curve := aggCommit.curve
	c, err := challengeScalar(curve, ch.algo, aggCommit.p.Bytes(), aggPubKey.Bytes(), message)
	if err != nil {
		return err
	}

	ch.curve = curve
	ch.c = c
	return nil
}

// Initialized reports whether the challenge holds a valid scalar.
func (ch *Challenge) Initialized() bool {
	return ch != nil && ch.c != nil
}

// Scalar returns the challenge scalar.
func (ch *Challenge) Scalar() Scalar {
	if ch == nil {
		return nil
	}
	return ch.c
}

// Algo returns the hash profile the challenge was computed under.
func (ch *Challenge) Algo() ChallengeAlgo {
	return ch.algo
}

// Serialize writes the challenge scalar into dst at offset.
func (ch *Challenge) Serialize(dst []byte, offset int) (int, error) {
	if !ch.Initialized() {
		return 0, ErrNotInitialized
	}

	size := ch.curve.ScalarSize()
	if err := checkSlice(dst, offset, size); err != nil {
		return 0, err
	}

	copy(dst[offset:], ch.c.Bytes())
	return size, nil
}

// Deserialize reads the challenge scalar from src at offset, rejecting
// values outside [0, n). The receiver is unchanged on failure.
func (ch *Challenge) Deserialize(src []byte, offset int) error {
	if ch.curve == nil {
		return ErrNoCurve
	}

	size := ch.curve.ScalarSize()
	if err := checkSlice(src, offset, size); err != nil {
		return err
	}

	c, err := ch.curve.ScalarFromBytes(src[offset : offset+size])
	if err != nil {
		return fmt.Errorf("decode challenge: %w", err)
	}

	ch.c = c
	return nil
}

// Equal reports whether both challenges are initialized and hold the same
// scalar.
func (ch *Challenge) Equal(other *Challenge) bool {
	if !ch.Initialized() || !other.Initialized() {
		return false
	}
	if !sameCurve(ch.curve, other.curve) {
		return false
	}
	return ch.c.Equal(other.c)
}

// Clone returns an independent copy of the challenge.
func (ch *Challenge) Clone() *Challenge {
	if !ch.Initialized() {
		return &Challenge{algo: ch.algo}
	}
	return &Challenge{curve: ch.curve, c: ch.c.Clone(), algo: ch.algo}
}
