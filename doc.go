/*
Package multisig implements an EC-Schnorr multisignature scheme in which a
committee of signers jointly produces one compact signature over a shared
message, verifiable against the sum of the committee's public keys.

A signing round has three phases:

1. Commitment: each signer i draws a random secret scalar s_i (CommitSecret)
and publishes the point P_i = s_i*G (CommitPoint).

2. Challenge: the aggregator sums the published commit points and the
participating public keys and computes the round challenge
c = H(aggregateCommit || aggregatePubKey || message), identical for every
signer.

3. Response: each signer computes r_i = s_i + c*x_i mod n from its own secret
and private key x_i and publishes it. The aggregator verifies every response
against the signer's public key and commit point with VerifyResponse, sums the
surviving responses, and packages (c, sum) as the final Signature. The result
verifies like an ordinary Schnorr signature against the aggregated public key.

All operations are pure functions of their inputs: the value types are
immutable once constructed and the aggregation functions keep no state, so
any number of rounds may run concurrently. Round sequencing, committee
membership, transport of commit points and responses, and retry policy for
absent or misbehaving signers belong to the caller.

Group arithmetic is supplied by a Curve engine; secp256k1 and ed25519
backends are provided.
*/
package multisig
