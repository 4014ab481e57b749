package sm2

import (
	"encoding/hex"
	"errors"
	"math/big"
)

// KeyPair holds an SM2 public point and, optionally, the private scalar it
// derives from. A KeyPair built with only a public point can verify but not
// sign; Sign returns MissingKeyError when the private scalar is absent.
type KeyPair struct {
	pubX, pubY *big.Int
	pri        *big.Int
}

// NewKeyPair constructs and validates a KeyPair from a private scalar, a
// public point, or both, per GM/T 0003.1-2012 key-pair validation:
//   - if pri is non-nil, it must lie in [1, n-2]
//   - if pub is absent and pri is present, pub is derived as [pri]·G
//   - pub (given or derived) must be on the curve, not the point at infinity,
//     and satisfy [n]·pub = O
//   - if both pub and pri are given, pub must equal [pri]·G
//
// Either pubX/pubY or pri may be nil, but not both.
func NewKeyPair(pubX, pubY, pri *big.Int) (*KeyPair, error) {
	if pubX == nil && pubY == nil && pri == nil {
		return nil, InvalidKeyError{Err: errors.New("no public point or private scalar supplied")}
	}

	c := curve()
	params := c.Params()
	n := params.N

	if pri != nil {
		if pri.Sign() <= 0 || pri.Cmp(new(big.Int).Sub(n, big.NewInt(1))) >= 0 {
			return nil, InvalidKeyError{Err: errors.New("private scalar out of range [1, n-2]")}
		}
	}

	if pubX == nil || pubY == nil {
		if pri == nil {
			return nil, InvalidKeyError{Err: errors.New("no public point or private scalar supplied")}
		}
		pubX, pubY = c.ScalarBaseMult(pri.Bytes())
	} else {
		if !c.IsOnCurve(pubX, pubY) {
			return nil, NotOnCurveError{Err: errors.New("public point does not satisfy the curve equation")}
		}
		ox, oy := c.ScalarMult(pubX, pubY, n.Bytes())
		if ox != nil || oy != nil {
			return nil, NotOnCurveError{Err: errors.New("public point does not have order n")}
		}
		if pri != nil {
			dx, dy := c.ScalarBaseMult(pri.Bytes())
			if dx.Cmp(pubX) != 0 || dy.Cmp(pubY) != 0 {
				return nil, InvalidKeyError{Err: errors.New("public point does not match [private]*G")}
			}
		}
	}

	return &KeyPair{pubX: pubX, pubY: pubY, pri: pri}, nil
}

// NewKeyPairFromPublicBytes constructs a verify-only KeyPair from an encoded
// public point (any of the compressed/uncompressed/mixed forms of §4.C).
func NewKeyPairFromPublicBytes(data []byte) (*KeyPair, error) {
	x, y, err := decodePoint(data)
	if err != nil {
		return nil, err
	}
	return NewKeyPair(x, y, nil)
}

// NewKeyPairFromPrivateBytes constructs a full KeyPair from a 32-byte
// big-endian private scalar, deriving the public point as [pri]*G.
func NewKeyPairFromPrivateBytes(data []byte) (*KeyPair, error) {
	if len(data) != coordLen {
		return nil, InvalidKeyError{Err: errors.New("private scalar must be 32 bytes")}
	}
	d := new(big.Int).SetBytes(data)
	return NewKeyPair(nil, nil, d)
}

// HasPrivateKey reports whether kp can sign.
func (kp *KeyPair) HasPrivateKey() bool {
	return kp != nil && kp.pri != nil
}

// PublicBytes encodes the public point per mode (Uncompressed by default).
func (kp *KeyPair) PublicBytes(mode Encoding) []byte {
	return encodePoint(kp.pubX, kp.pubY, mode)
}

// PublicHex encodes the public point as a hex string per mode.
func (kp *KeyPair) PublicHex(mode Encoding) string {
	return encodePointHex(kp.pubX, kp.pubY, mode)
}

// PrivateBytes encodes the private scalar as a fixed-width 32-byte
// big-endian value. Returns nil if kp has no private scalar.
func (kp *KeyPair) PrivateBytes() []byte {
	if kp.pri == nil {
		return nil
	}
	return padLeft(kp.pri.Bytes(), coordLen)
}

// PrivateHex encodes the private scalar as a hex string.
func (kp *KeyPair) PrivateHex() string {
	b := kp.PrivateBytes()
	if b == nil {
		return ""
	}
	return hex.EncodeToString(b)
}
