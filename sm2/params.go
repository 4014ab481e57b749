package sm2

import (
	"crypto/elliptic"

	"github.com/Hyperledger-TWGC/node-gm/internal/sm2curve"
)

// coordLen is the byte width of a field element / scalar for SM2-P-256.
const coordLen = 32

// curve returns a fresh SM2-P-256 elliptic.Curve instance.
func curve() elliptic.Curve {
	return sm2curve.New()
}

// Params exposes the named SM2 curve constants (p, b, n, Gx, Gy) described
// in GM/T 0003.1-2012. elliptic.CurveParams has no field for a; it is p - 3.
func Params() *elliptic.CurveParams {
	return curve().Params()
}

// padLeft left-pads b with zeros to reach size bytes. Used for the
// fixed-width 32-byte big-endian encodings this package produces.
func padLeft(b []byte, size int) []byte {
	if len(b) >= size {
		return b
	}
	out := make([]byte, size)
	copy(out[size-len(b):], b)
	return out
}
