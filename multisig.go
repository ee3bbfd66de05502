package multisig

import "fmt"

// The aggregation and verification operations below are pure functions of
// their arguments; there is no round state at this layer. Group addition is
// commutative, so input order never affects an aggregate.

// AggregatePubKeys sums the participating public keys into the round's
// aggregated key. It fails on empty input, on a nil key, and when the sum
// collapses to the identity element, which would indicate key cancellation
// and must not silently succeed.
//
// Duplicate keys are summed as distinct contributions; deduplication, like
// all committee-membership policy, belongs to the caller.
func AggregatePubKeys(curve Curve, pubKeys []Point) (Point, error) {
	if curve == nil {
		return nil, ErrNoCurve
	}
	if len(pubKeys) == 0 {
		return nil, ErrEmptyAggregation
	}

	sum := curve.PointIdentity()
	for i, pk := range pubKeys {
		if pk == nil {
			return nil, fmt.Errorf("public key %d: %w", i, ErrNotInitialized)
		}
		sum = sum.Add(pk)
	}

	if sum.IsIdentity() {
		return nil, ErrIdentityAggregate
	}
	return sum, nil
}

// AggregateCommits sums the published commit points into the round's
// aggregated commitment, under the same empty-input and identity-result
// policy as key aggregation.
func AggregateCommits(curve Curve, commits []*CommitPoint) (*CommitPoint, error) {
	if curve == nil {
		return nil, ErrNoCurve
	}
	if len(commits) == 0 {
		return nil, ErrEmptyAggregation
	}

	sum := curve.PointIdentity()
	for i, commit := range commits {
		if !commit.Initialized() {
			return nil, fmt.Errorf("commit point %d: %w", i, ErrNotInitialized)
		}
		if !sameCurve(curve, commit.curve) {
			return nil, fmt.Errorf("commit point %d: %w", i, ErrCurveMismatch)
		}
		sum = sum.Add(commit.p)
	}

	if sum.IsIdentity() {
		return nil, ErrIdentityAggregate
	}
	return &CommitPoint{curve: curve, p: sum}, nil
}

// AggregateResponses sums the signers' response scalars modulo the group
// order. A single uninitialized response fails the whole aggregation; callers
// wanting to drop bad signers filter with VerifyResponse first.
func AggregateResponses(curve Curve, responses []*Response) (*Response, error) {
	if curve == nil {
		return nil, ErrNoCurve
	}
	if len(responses) == 0 {
		return nil, ErrEmptyAggregation
	}

	sum := curve.ScalarZero()
	for i, resp := range responses {
		if !resp.Initialized() {
			return nil, fmt.Errorf("response %d: %w", i, ErrNotInitialized)
		}
		if !sameCurve(curve, resp.curve) {
			return nil, fmt.Errorf("response %d: %w", i, ErrCurveMismatch)
		}
		sum = sum.Add(resp.r)
	}

	return &Response{curve: curve, r: sum}, nil
}

// AggregateSign packages the challenge and the aggregated response as the
// final signature of the round.
func AggregateSign(challenge *Challenge, aggResponse *Response) (*Signature, error) {
	if !challenge.Initialized() {
		return nil, fmt.Errorf("challenge: %w", ErrNotInitialized)
	}
	if !aggResponse.Initialized() {
		return nil, fmt.Errorf("aggregated response: %w", ErrNotInitialized)
	}
	if !sameCurve(challenge.curve, aggResponse.curve) {
		return nil, ErrCurveMismatch
	}

	return &Signature{
		curve: challenge.curve,
		c:     challenge.c.Clone(),
		r:     aggResponse.r.Clone(),
	}, nil
}

// VerifyResponse checks a signer's response against its public key and
// commit point: r*G == R + c*P. This is the gate to run before trusting a
// contribution in AggregateResponses. Any uninitialized operand is a
// verification failure, not an error.
func VerifyResponse(response *Response, challenge *Challenge, pubKey Point, commitPoint *CommitPoint) bool {
	if !response.Initialized() || !challenge.Initialized() || !commitPoint.Initialized() {
		return false
	}
	if pubKey == nil || pubKey.IsIdentity() {
		return false
	}
	if !sameCurve(response.curve, challenge.curve) || !sameCurve(response.curve, commitPoint.curve) {
		return false
	}

	curve := response.curve
	lhs := curve.BasePoint().Mul(response.r)
	rhs := commitPoint.p.Add(pubKey.Mul(challenge.c))
	return lhs.Equal(rhs)
}

// VerifySignature checks a final aggregated signature against the aggregated
// public key and message with the default challenge profile.
func VerifySignature(sig *Signature, aggPubKey Point, message []byte) bool {
	if sig == nil {
		return false
	}
	return sig.Verify(aggPubKey, message)
}
