package multisig

import (
	"crypto/rand"
	"fmt"
)

// Curve supplies the group arithmetic the multisignature scheme is built on:
// the generator, the scalar field, validity checks and secure randomness.
// Implementations must be safe for concurrent use.
type Curve interface {
	Name() string

	// ScalarSize and PointSize are the fixed wire widths of the canonical
	// scalar and point encodings, in bytes.
	ScalarSize() int
	PointSize() int

	// ScalarFromBytes decodes a canonical big-endian scalar and rejects
	// values outside [0, n).
	ScalarFromBytes([]byte) (Scalar, error)

	// ScalarFromUniformBytes reduces hash output to a scalar. Input must be
	// at least ScalarSize bytes; longer input improves uniformity.
	ScalarFromUniformBytes([]byte) (Scalar, error)

	// ScalarRandom draws a uniformly random scalar in [0, n) from a
	// cryptographically secure source.
	ScalarRandom() (Scalar, error)

	ScalarZero() Scalar

	// PointFromBytes decodes a canonical point encoding, rejecting anything
	// not on the curve.
	PointFromBytes([]byte) (Point, error)

	BasePoint() Point
	PointIdentity() Point
}

// Scalar is an element of the curve's scalar field. All arithmetic is
// performed modulo the group order; operations return new values.
type Scalar interface {
	// Bytes returns the canonical fixed-width big-endian encoding.
	Bytes() []byte
	String() string

	Add(Scalar) Scalar
	Mul(Scalar) Scalar
	Negate() Scalar

	Equal(Scalar) bool
	IsZero() bool

	// Clone returns an independent copy, so that Zeroize on one owner
	// cannot clear another's payload.
	Clone() Scalar

	// Zeroize clears the scalar material in place.
	Zeroize()
}

// Point is an element of the group generated by the curve's base point.
// Operations return new values; implementations never mutate the receiver.
type Point interface {
	// Bytes returns the canonical fixed-width point encoding.
	Bytes() []byte
	String() string

	Add(Point) Point
	Sub(Point) Point
	Mul(Scalar) Point
	Negate() Point

	Equal(Point) bool
	IsIdentity() bool
}

// CurveType selects a curve backend.
type CurveType string

const (
	Secp256k1 CurveType = "secp256k1"
	Ed25519   CurveType = "ed25519"
)

// NewCurve creates a curve engine for the given type.
func NewCurve(curveType CurveType) (Curve, error) {
	switch curveType {
	case Secp256k1:
		return NewSecp256k1Curve(), nil
	case Ed25519:
		return NewEd25519Curve(), nil
	default:
		return nil, fmt.Errorf("unsupported curve type: %s", curveType)
	}
}

// SecureRandom generates cryptographically secure random bytes.
func SecureRandom(size int) ([]byte, error) {
	bytes := make([]byte, size)
	_, err := rand.Read(bytes)
	return bytes, err
}

func sameCurve(a, b Curve) bool {
	return a != nil && b != nil && a.Name() == b.Name()
}
