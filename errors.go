package multisig

import "errors"

var (
	// Curve engine errors.
	ErrInvalidScalarLength = errors.New("invalid scalar length")
	ErrInvalidPointLength  = errors.New("invalid point length")
	ErrInvalidScalar       = errors.New("invalid scalar value")
	ErrInvalidPoint        = errors.New("invalid point")
	ErrScalarZero          = errors.New("scalar is zero")
	ErrIdentityPoint       = errors.New("point is the identity element")

	// Value type errors.
	ErrNoCurve        = errors.New("no curve configured")
	ErrNotInitialized = errors.New("value not initialized")
	ErrCurveMismatch  = errors.New("operands use different curves")
	ErrBufferTooShort = errors.New("buffer too short")

	// Aggregation errors.
	ErrEmptyAggregation  = errors.New("nothing to aggregate")
	ErrIdentityAggregate = errors.New("aggregate collapsed to the identity element")
	ErrUnsupportedHash   = errors.New("unsupported challenge hash algorithm")
)
