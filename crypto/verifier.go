package crypto

import (
	"encoding/base64"
	"encoding/hex"
	"io"
	"io/fs"

	"github.com/Hyperledger-TWGC/node-gm/sm2"
	"github.com/Hyperledger-TWGC/node-gm/utils"
)

// Verifier is a fluent builder for checking SM2 signatures: the message via
// From*, the signature via With*Sign, the key via By*.
type Verifier struct {
	src    []byte
	reader io.Reader
	uid    []byte
	sign   []byte
	Error  error
}

// NewVerifier returns a new Verifier instance.
func NewVerifier() Verifier {
	return Verifier{}
}

// FromString verifies a signature over the given string.
func (v Verifier) FromString(str string) Verifier {
	v.src = utils.String2Bytes(str)
	return v
}

// FromBytes verifies a signature over the given byte slice.
func (v Verifier) FromBytes(b []byte) Verifier {
	v.src = b
	return v
}

// FromFile verifies a signature over the contents of a file.
func (v Verifier) FromFile(f fs.File) Verifier {
	v.reader = f
	return v
}

// WithUID sets the identity string folded into the Z_A preamble. If not
// called, the default "1234567812345678" is used.
func (v Verifier) WithUID(uid []byte) Verifier {
	v.uid = uid
	return v
}

// WithRawSign sets the signature from its raw r || s encoding.
func (v Verifier) WithRawSign(sign []byte) Verifier {
	v.sign = sign
	return v
}

// WithHexSign sets the signature from a hex-encoded r || s string.
func (v Verifier) WithHexSign(sign []byte) Verifier {
	decoded, err := hex.DecodeString(string(sign))
	if err != nil {
		v.Error = sm2.InvalidEncodingError{Err: err}
		return v
	}
	v.sign = decoded
	return v
}

// WithBase64Sign sets the signature from a base64-encoded r || s string.
func (v Verifier) WithBase64Sign(sign []byte) Verifier {
	decoded, err := base64.StdEncoding.DecodeString(string(sign))
	if err != nil {
		v.Error = sm2.InvalidEncodingError{Err: err}
		return v
	}
	v.sign = decoded
	return v
}

// WithASN1Sign sets the signature from an ASN.1 DER SEQUENCE { r, s }.
func (v Verifier) WithASN1Sign(sign []byte) Verifier {
	r, s, err := sm2.UnmarshalSignatureASN1(sign)
	if err != nil {
		v.Error = err
		return v
	}
	v.sign = sm2.MarshalSignatureRaw(r, s)
	return v
}

// BySm2 verifies the signature against the given public key, returning
// whether it is valid.
func (v Verifier) BySm2(kp *sm2.KeyPair) (bool, error) {
	if v.Error != nil {
		return false, v.Error
	}

	data := v.src
	if v.reader != nil {
		if seeker, ok := v.reader.(io.Seeker); ok {
			seeker.Seek(0, io.SeekStart)
		}
		read, err := readAll(v.reader)
		if err != nil {
			return false, err
		}
		data = read
	}

	if len(data) == 0 || len(v.sign) == 0 {
		return false, nil
	}

	r, s, err := sm2.UnmarshalSignatureRaw(v.sign)
	if err != nil {
		return false, err
	}

	return kp.Verify(data, v.uid, r, s)
}
