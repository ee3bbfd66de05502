package multisig

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"hash"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// ChallengeAlgo selects the hash function used to derive round challenges.
// Deployments standardizing on an EVM- or BLAKE2b-based transcript pick the
// matching profile; everything else uses SHA-256.
type ChallengeAlgo int

const (
	ChallengeSHA256 ChallengeAlgo = iota
	ChallengeBLAKE2b256
	ChallengeKeccak256
)

func (a ChallengeAlgo) String() string {
	switch a {
	case ChallengeSHA256:
		return "sha256"
	case ChallengeBLAKE2b256:
		return "blake2b-256"
	case ChallengeKeccak256:
		return "keccak-256"
	default:
		return fmt.Sprintf("ChallengeAlgo(%d)", int(a))
	}
}

func (a ChallengeAlgo) newHash() (hash.Hash, error) {
	switch a {
	case ChallengeSHA256:
		return sha256.New(), nil
	case ChallengeBLAKE2b256:
		return blake2b.New256(nil)
	case ChallengeKeccak256:
		return sha3.NewLegacyKeccak256(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedHash, a)
	}
}

const (
	hashToScalarTag = "SCHNORR_MULTISIG_HASH_v1"
	challengeTag    = "SCHNORR_MULTISIG_CHALLENGE_v1"
)

// HashToScalar hashes arbitrary data to a scalar with domain separation.
func HashToScalar(curve Curve, data ...[]byte) (Scalar, error) {
	hasher := sha256.New()
	hasher.Write([]byte(hashToScalarTag))
	hasher.Write([]byte(curve.Name()))

	for _, d := range data {
		hasher.Write(d)
	}

	return curve.ScalarFromUniformBytes(hasher.Sum(nil))
}

// challengeScalar derives the round challenge from the transcript elements.
// Each element is length-prefixed to keep the transcript unambiguous.
func challengeScalar(curve Curve, algo ChallengeAlgo, transcript ...[]byte) (Scalar, error) {
	hasher, err := algo.newHash()
	if err != nil {
		return nil, err
	}

	hasher.Write([]byte(challengeTag))
	hasher.Write([]byte(curve.Name()))

	for _, data := range transcript {
		var length [4]byte
		binary.BigEndian.PutUint32(length[:], uint32(len(data)))
		hasher.Write(length[:])
		hasher.Write(data)
	}

	return curve.ScalarFromUniformBytes(hasher.Sum(nil))
}

// ZeroizeBytes clears a byte slice holding secret material.
func ZeroizeBytes(data []byte) {
	for i := range data {
		data[i] = 0
	}
}
