package sm2

import "fmt"

// InvalidEncodingError reports a malformed public-key encoding (wrong prefix
// byte, wrong length, non-hex characters, the point-at-infinity prefix, or a
// parity mismatch after square-root recovery of a compressed point) or a
// malformed raw, hex, base64 or ASN.1 signature encoding.
type InvalidEncodingError struct {
	Err error
}

func (e InvalidEncodingError) Error() string {
	return fmt.Sprintf("sm2: invalid encoding: %v", e.Err)
}

// NotOnCurveError reports a decoded point that fails the curve equation or
// whose order check ([n]P = O) fails.
type NotOnCurveError struct {
	Err error
}

func (e NotOnCurveError) Error() string {
	return fmt.Sprintf("sm2: point is not on the curve: %v", e.Err)
}

// InvalidKeyError reports a scalar out of range, or pub != [pri]*G.
type InvalidKeyError struct {
	Err error
}

func (e InvalidKeyError) Error() string {
	return fmt.Sprintf("sm2: invalid key: %v", e.Err)
}

// MissingKeyError reports signing without a private key or verifying
// without a public key.
type MissingKeyError struct {
	Err error
}

func (e MissingKeyError) Error() string {
	return fmt.Sprintf("sm2: missing key: %v", e.Err)
}

// HashStateError reports internal misuse of the hash/compression state,
// such as a digest argument of the wrong length.
type HashStateError struct {
	Err error
}

func (e HashStateError) Error() string {
	return fmt.Sprintf("sm2: invalid hash state: %v", e.Err)
}
