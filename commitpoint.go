package multisig

import "fmt"

// CommitPoint is the public point P = s*G derived from a CommitSecret. It is
// what a signer broadcasts in the commitment phase; discrete-log hardness
// keeps the secret hidden.
type CommitPoint struct {
	curve Curve
	p     Point
}

// NewCommitPoint derives the commit point from a secret.
func NewCommitPoint(secret *CommitSecret) (*CommitPoint, error) {
	cp := &CommitPoint{}
	if err := cp.Set(secret); err != nil {
		return nil, err
	}
	return cp, nil
}

// NewCommitPointFromBytes loads a commit point from src at offset.
func NewCommitPointFromBytes(curve Curve, src []byte, offset int) (*CommitPoint, error) {
	if curve == nil {
		return nil, ErrNoCurve
	}

	cp := &CommitPoint{curve: curve}
	if err := cp.Deserialize(src, offset); err != nil {
		return nil, err
	}
	return cp, nil
}

// Set re-derives the point from the given secret, overwriting any prior value.
func (cp *CommitPoint) Set(secret *CommitSecret) error {
	if !secret.Initialized() {
		return ErrNotInitialized
	}

	cp.curve = secret.curve
	cp.p = secret.curve.BasePoint().Mul(secret.s)
	return nil
}

// Initialized reports whether the commit point holds a valid point.
func (cp *CommitPoint) Initialized() bool {
	return cp != nil && cp.p != nil
}

// Point returns the underlying curve point.
func (cp *CommitPoint) Point() Point {
	if cp == nil {
		return nil
	}
	return cp.p
}

// Serialize writes the point into dst at offset.
func (cp *CommitPoint) Serialize(dst []byte, offset int) (int, error) {
	if !cp.Initialized() {
		return 0, ErrNotInitialized
	}

	size := cp.curve.PointSize()
	if err := checkSlice(dst, offset, size); err != nil {
		return 0, err
	}

	copy(dst[offset:], cp.p.Bytes())
	return size, nil
}

// Deserialize reads the point from src at offset, rejecting encodings that
// are off-curve or the identity element. The receiver is unchanged on failure.
func (cp *CommitPoint) Deserialize(src []byte, offset int) error {
	if cp.curve == nil {
		return ErrNoCurve
	}

	size := cp.curve.PointSize()
	if err := checkSlice(src, offset, size); err != nil {
		return err
	}

	p, err := cp.curve.PointFromBytes(src[offset : offset+size])
	if err != nil {
		return fmt.Errorf("decode commit point: %w", err)
	}
	if p.IsIdentity() {
		return ErrIdentityPoint
	}

	cp.p = p
	return nil
}

// Equal reports whether both commit points are initialized and equal.
func (cp *CommitPoint) Equal(other *CommitPoint) bool {
	if !cp.Initialized() || !other.Initialized() {
		return false
	}
	if !sameCurve(cp.curve, other.curve) {
		return false
	}
	return cp.p.Equal(other.p)
}

// Clone returns an independent copy of the commit point.
func (cp *CommitPoint) Clone() *CommitPoint {
	if !cp.Initialized() {
		return &CommitPoint{}
	}
	return &CommitPoint{curve: cp.curve, p: cp.p}
}
