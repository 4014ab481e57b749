package sm2

import (
	"errors"
	"math/big"
)

// Verify checks an SM2 signature (r, s) over message, using the same Z_A
// preamble convention as Sign. uid must match the uid used when signing.
func (kp *KeyPair) Verify(message, uid []byte, r, s *big.Int) (bool, error) {
	if kp.pubX == nil || kp.pubY == nil {
		return false, MissingKeyError{Err: errors.New("verify requires a public key")}
	}
	e := digest(kp.pubX, kp.pubY, uid, message)
	return verifyDigest(kp.pubX, kp.pubY, e, r, s), nil
}

// VerifyRaw checks a signature produced by SignRaw: no Z_A preamble, just
// SM3(message).
func (kp *KeyPair) VerifyRaw(message []byte, r, s *big.Int) (bool, error) {
	if kp.pubX == nil || kp.pubY == nil {
		return false, MissingKeyError{Err: errors.New("verify requires a public key")}
	}
	e := hashToInt(sm3Sum(message))
	return verifyDigest(kp.pubX, kp.pubY, e, r, s), nil
}

// VerifyDigest checks a signature over a pre-computed 32-byte digest, with
// no additional hashing or Z_A preamble.
func (kp *KeyPair) VerifyDigest(digest []byte, r, s *big.Int) (bool, error) {
	if kp.pubX == nil || kp.pubY == nil {
		return false, MissingKeyError{Err: errors.New("verify requires a public key")}
	}
	if len(digest) != coordLen {
		return false, HashStateError{Err: errors.New("digest must be 32 bytes")}
	}
	e := new(big.Int).SetBytes(digest)
	return verifyDigest(kp.pubX, kp.pubY, e, r, s), nil
}

// verifyDigest implements the GM/T 0003.2-2012 §6.1 verification algorithm:
// t = (r+s) mod n, (x1,y1) = s·G + t·P, accept iff (e+x1) mod n == r.
func verifyDigest(pubX, pubY, e, r, s *big.Int) bool {
	c := curve()
	params := c.Params()
	n := params.N

	if r == nil || s == nil {
		return false
	}
	if r.Sign() <= 0 || r.Cmp(n) >= 0 {
		return false
	}
	if s.Sign() <= 0 || s.Cmp(n) >= 0 {
		return false
	}

	t := new(big.Int).Add(r, s)
	t.Mod(t, n)
	if t.Sign() == 0 {
		return false
	}

	x1, y1 := c.ScalarBaseMult(s.Bytes())
	x2, y2 := c.ScalarMult(pubX, pubY, t.Bytes())
	x1, y1 = c.Add(x1, y1, x2, y2)
	if x1 == nil || y1 == nil {
		return false
	}

	v := new(big.Int).Add(e, x1)
	v.Mod(v, n)
	return v.Cmp(r) == 0
}
