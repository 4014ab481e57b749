package sm2

import (
	"crypto/rand"
	"errors"
	"math/big"

	"github.com/Hyperledger-TWGC/node-gm/internal/sm2curve"
)

// maxSignAttempts bounds the signing retry loop below. Each retry condition
// (r == 0, r+k == n, or s == 0) occurs with probability roughly 1/n, so this
// cap exists only as a sanity backstop against a broken random source; it is
// never expected to be reached in practice.
const maxSignAttempts = 100

// Sign produces an SM2 signature over message, using the GB/T 32918.2-2016
// §5.5 convention of prefixing the message with Z_A (the ZA preamble, §4.F)
// before hashing. uid may be nil to use the default identity.
func (kp *KeyPair) Sign(message, uid []byte) (r, s *big.Int, err error) {
	if !kp.HasPrivateKey() {
		return nil, nil, MissingKeyError{Err: errors.New("sign requires a private key")}
	}
	e := digest(kp.pubX, kp.pubY, uid, message)
	return signDigest(kp.pri, e)
}

// SignRaw signs SM3(message), skipping the Z_A preamble. Used when the
// caller has already domain-separated the message elsewhere.
func (kp *KeyPair) SignRaw(message []byte) (r, s *big.Int, err error) {
	if !kp.HasPrivateKey() {
		return nil, nil, MissingKeyError{Err: errors.New("sign requires a private key")}
	}
	e := hashToInt(sm3Sum(message))
	return signDigest(kp.pri, e)
}

// SignDigest signs a pre-computed 32-byte digest e directly, with no
// additional hashing or Z_A preamble. Returns HashStateError if digest is
// not exactly 32 bytes.
func (kp *KeyPair) SignDigest(digest []byte) (r, s *big.Int, err error) {
	if !kp.HasPrivateKey() {
		return nil, nil, MissingKeyError{Err: errors.New("sign requires a private key")}
	}
	if len(digest) != coordLen {
		return nil, nil, HashStateError{Err: errors.New("digest must be 32 bytes")}
	}
	e := new(big.Int).SetBytes(digest)
	return signDigest(kp.pri, e)
}

// signDigest implements the GM/T 0003.2-2012 §6.1 signing algorithm with the
// full retry loop: draw k, compute r, retry if r == 0 or r+k == n; compute
// s, retry if s == 0.
func signDigest(d, e *big.Int) (r, s *big.Int, err error) {
	c := curve()
	params := c.Params()
	n := params.N

	dPlus1Inv := new(big.Int).ModInverse(new(big.Int).Add(d, big.NewInt(1)), n)

	for attempt := 0; attempt < maxSignAttempts; attempt++ {
		k, kErr := sm2curve.RandScalar(c, rand.Reader)
		if kErr != nil {
			return nil, nil, kErr
		}

		x1, _ := c.ScalarBaseMult(k.Bytes())

		r = new(big.Int).Add(e, x1)
		r.Mod(r, n)
		if r.Sign() == 0 {
			continue
		}
		if rPlusK := new(big.Int).Add(r, k); rPlusK.Cmp(n) == 0 {
			continue
		}

		rd := new(big.Int).Mul(r, d)
		rd.Mod(rd, n)
		kMinusRd := new(big.Int).Sub(k, rd)
		kMinusRd.Mod(kMinusRd, n)

		s = new(big.Int).Mul(dPlus1Inv, kMinusRd)
		s.Mod(s, n)
		if s.Sign() == 0 {
			continue
		}

		return r, s, nil
	}

	return nil, nil, errors.New("sm2: exhausted signing attempts, check random source")
}
