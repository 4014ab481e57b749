package sm2

import (
	"encoding/hex"
	"errors"
	"math/big"
)

// Encoding mode selects how a public-key point is serialized, mirroring the
// mode parameter of the pubToBytes/pubToString API.
type Encoding int

const (
	// Uncompressed is the default: 0x04 || X || Y.
	Uncompressed Encoding = iota
	// Compressed drops Y, recoverable from X and a parity bit: 0x02/0x03 || X.
	Compressed
	// Mixed sends both X and Y but tags the prefix with Y's parity: 0x06/0x07 || X || Y.
	Mixed
)

const (
	prefixInfinity     = 0x00
	prefixCompressEven = 0x02
	prefixCompressOdd  = 0x03
	prefixUncompressed = 0x04
	prefixMixedEven    = 0x06
	prefixMixedOdd     = 0x07
)

// encodePoint serializes (x, y) per mode, with X/Y left-padded to coordLen
// bytes each.
func encodePoint(x, y *big.Int, mode Encoding) []byte {
	xb := padLeft(x.Bytes(), coordLen)
	switch mode {
	case Compressed:
		prefix := byte(prefixCompressEven)
		if y.Bit(0) == 1 {
			prefix = prefixCompressOdd
		}
		out := make([]byte, 0, 1+coordLen)
		out = append(out, prefix)
		return append(out, xb...)
	case Mixed:
		prefix := byte(prefixMixedEven)
		if y.Bit(0) == 1 {
			prefix = prefixMixedOdd
		}
		yb := padLeft(y.Bytes(), coordLen)
		out := make([]byte, 0, 1+2*coordLen)
		out = append(out, prefix)
		out = append(out, xb...)
		return append(out, yb...)
	default: // Uncompressed
		yb := padLeft(y.Bytes(), coordLen)
		out := make([]byte, 0, 1+2*coordLen)
		out = append(out, prefixUncompressed)
		out = append(out, xb...)
		return append(out, yb...)
	}
}

// encodePointHex is encodePoint rendered as lowercase hex.
func encodePointHex(x, y *big.Int, mode Encoding) string {
	return hex.EncodeToString(encodePoint(x, y, mode))
}

// decodePoint parses a public-key point encoded per §4.C: a one-byte prefix
// followed by a 32-byte X and, for uncompressed/mixed forms, a 32-byte Y.
// The returned point is always validated to lie on the curve and not be the
// point at infinity.
func decodePoint(data []byte) (x, y *big.Int, err error) {
	if len(data) == 0 {
		return nil, nil, InvalidEncodingError{Err: errors.New("empty point encoding")}
	}

	prefix := data[0]
	body := data[1:]

	switch prefix {
	case prefixInfinity:
		return nil, nil, InvalidEncodingError{Err: errors.New("point at infinity is not a valid public key")}

	case prefixCompressEven, prefixCompressOdd:
		if len(body) != coordLen {
			return nil, nil, InvalidEncodingError{Err: errors.New("compressed point has wrong length")}
		}
		x = new(big.Int).SetBytes(body)
		y, err = recoverY(x, prefix == prefixCompressOdd)
		if err != nil {
			return nil, nil, err
		}

	case prefixUncompressed:
		if len(body) != 2*coordLen {
			return nil, nil, InvalidEncodingError{Err: errors.New("uncompressed point has wrong length")}
		}
		x = new(big.Int).SetBytes(body[:coordLen])
		y = new(big.Int).SetBytes(body[coordLen:])

	case prefixMixedEven, prefixMixedOdd:
		if len(body) != 2*coordLen {
			return nil, nil, InvalidEncodingError{Err: errors.New("mixed point has wrong length")}
		}
		x = new(big.Int).SetBytes(body[:coordLen])
		y = new(big.Int).SetBytes(body[coordLen:])
		wantOdd := prefix == prefixMixedOdd
		if (y.Bit(0) == 1) != wantOdd {
			return nil, nil, InvalidEncodingError{Err: errors.New("mixed point Y parity does not match prefix")}
		}

	default:
		return nil, nil, InvalidEncodingError{Err: errors.New("unrecognized point encoding prefix")}
	}

	c := curve()
	if !c.IsOnCurve(x, y) {
		return nil, nil, NotOnCurveError{Err: errors.New("decoded point does not satisfy the curve equation")}
	}
	return x, y, nil
}

// decodePointHex is decodePoint over the bytes of a lowercase/uppercase hex string.
func decodePointHex(s string) (x, y *big.Int, err error) {
	data, decErr := hex.DecodeString(s)
	if decErr != nil {
		return nil, nil, InvalidEncodingError{Err: decErr}
	}
	return decodePoint(data)
}

// recoverY computes Y^2 = X^3 + aX + b (mod p), takes the modular square
// root, and selects the root whose parity matches wantOdd. p ≡ 3 (mod 4) for
// the SM2 prime, so big.Int.ModSqrt always terminates for quadratic residues.
func recoverY(x *big.Int, wantOdd bool) (*big.Int, error) {
	params := Params()
	p := params.P

	x3 := new(big.Int).Mul(x, x)
	x3.Mul(x3, x)

	a := new(big.Int).Sub(p, big.NewInt(3)) // SM2: a = p - 3
	term := new(big.Int).Mul(a, x)
	y2 := new(big.Int).Add(x3, term)
	y2.Add(y2, params.B)
	y2.Mod(y2, p)

	y := new(big.Int).ModSqrt(y2, p)
	if y == nil {
		return nil, NotOnCurveError{Err: errors.New("x has no corresponding point on the curve")}
	}
	if (y.Bit(0) == 1) != wantOdd {
		y = new(big.Int).Sub(p, y)
	}
	if (y.Bit(0) == 1) != wantOdd {
		return nil, InvalidEncodingError{Err: errors.New("no square root matches the requested parity")}
	}
	return y, nil
}
