package sm2

import (
	"encoding/asn1"
	"errors"
	"math/big"
)

// asn1Signature is the DER-encoded SEQUENCE { r INTEGER, s INTEGER } form of
// an SM2 signature, the wire format most SM2 toolchains exchange.
type asn1Signature struct {
	R, S *big.Int
}

// MarshalSignatureASN1 encodes (r, s) as an ASN.1 DER SEQUENCE.
func MarshalSignatureASN1(r, s *big.Int) ([]byte, error) {
	return asn1.Marshal(asn1Signature{R: r, S: s})
}

// UnmarshalSignatureASN1 decodes an ASN.1 DER SEQUENCE into (r, s).
func UnmarshalSignatureASN1(data []byte) (r, s *big.Int, err error) {
	var sig asn1Signature
	rest, err := asn1.Unmarshal(data, &sig)
	if err != nil {
		return nil, nil, InvalidEncodingError{Err: err}
	}
	if len(rest) != 0 {
		return nil, nil, InvalidEncodingError{Err: errors.New("trailing data after ASN.1 signature")}
	}
	return sig.R, sig.S, nil
}

// MarshalSignatureRaw encodes (r, s) as two fixed-width 32-byte big-endian
// values concatenated: r || s. This is the form produced by
// crypto.Signer.ToRawBytes and accepted by crypto.Verifier.WithRawSign.
func MarshalSignatureRaw(r, s *big.Int) []byte {
	out := make([]byte, 0, 2*coordLen)
	out = append(out, padLeft(r.Bytes(), coordLen)...)
	out = append(out, padLeft(s.Bytes(), coordLen)...)
	return out
}

// UnmarshalSignatureRaw decodes the r || s raw form produced by
// MarshalSignatureRaw.
func UnmarshalSignatureRaw(data []byte) (r, s *big.Int, err error) {
	if len(data) != 2*coordLen {
		return nil, nil, InvalidEncodingError{Err: errors.New("raw signature must be 64 bytes")}
	}
	r = new(big.Int).SetBytes(data[:coordLen])
	s = new(big.Int).SetBytes(data[coordLen:])
	return r, s, nil
}
