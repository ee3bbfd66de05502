package multisig

import "fmt"

// Response is a signer's scalar r = s + c*x mod n combining its commit
// secret s, the round challenge c and its private key x. Responses are
// published and summed into the aggregated response of the round.
type Response struct {
	curve Curve
	r     Scalar
}

// NewResponse computes a signer's response from its commit secret, the round
// challenge and its private key.
func NewResponse(secret *CommitSecret, challenge *Challenge, privKey Scalar) (*Response, error) {
	resp := &Response{}
	if err := resp.Set(secret, challenge, privKey); err != nil {
		return nil, err
	}
	return resp, nil
}

// NewResponseFromBytes loads a response scalar from src at offset.
func NewResponseFromBytes(curve Curve, src []byte, offset int) (*Response, error) {
	if curve == nil {
		return nil, ErrNoCurve
	}

	resp := &Response{curve: curve}
	if err := resp.Deserialize(src, offset); err != nil {
		return nil, err
	}
	return resp, nil
}

// Set recomputes the response from the given inputs, overwriting any prior
// value.
func (resp *Response) Set(secret *CommitSecret, challenge *Challenge, privKey Scalar) error {
	if !secret.Initialized() {
		return fmt.Errorf("commit secret: %w", ErrNotInitialized)
	}
	if !challenge.Initialized() {
		return fmt.Errorf("challenge: %w", ErrNotInitialized)
	}
	if privKey == nil {
		return fmt.Errorf("private key: %w", ErrNotInitialized)
	}
	if !sameCurve(secret.curve, challenge.curve) {
		return ErrCurveMismatch
	}

	resp.curve = secret.curve
	resp.r = secret.s.Add(challenge.c.Mul(privKey))
	return nil
}

// Initialized reports whether the response holds a valid scalar.
func (resp *Response) Initialized() bool {
	return resp != nil && resp.r != nil
}

// Scalar returns the response scalar.
func (resp *Response) Scalar() Scalar {
	if resp == nil {
		return nil
	}
	return resp.r
}

// Serialize writes the response scalar into dst at offset.
func (resp *Response) Serialize(dst []byte, offset int) (int, error) {
	if !resp.Initialized() {
		return 0, ErrNotInitialized
	}

	size := resp.curve.ScalarSize()
	if err := checkSlice(dst, offset, size); err != nil {
		return 0, err
	}

	copy(dst[offset:], resp.r.Bytes())
	return size, nil
}

// Deserialize reads the response scalar from src at offset, rejecting values
// outside [0, n). The receiver is unchanged on failure.
func (resp *Response) Deserialize(src []byte, offset int) error {
	if resp.curve == nil {
		return ErrNoCurve
	}

	size := resp.curve.ScalarSize()
	if err := checkSlice(src, offset, size); err != nil {
		return err
	}

	r, err := resp.curve.ScalarFromBytes(src[offset : offset+size])
	if err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	resp.r = r
	return nil
}

// Equal reports whether both responses are initialized and hold the same
// scalar.
func (resp *Response) Equal(other *Response) bool {
	if !resp.Initialized() || !other.Initialized() {
		return false
	}
	if !sameCurve(resp.curve, other.curve) {
		return false
	}
	return resp.r.Equal(other.r)
}

// Clone returns an independent copy of the response.
func (resp *Response) Clone() *Response {
	if !resp.Initialized() {
		return &Response{}
	}
	return &Response{curve: resp.curve, r: resp.r.Clone()}
}
