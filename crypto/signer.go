package crypto

import (
	"encoding/base64"
	"encoding/hex"
	"io"
	"io/fs"

	"github.com/Hyperledger-TWGC/node-gm/sm2"
	"github.com/Hyperledger-TWGC/node-gm/utils"
)

// Signer is a fluent builder for producing SM2 signatures: the message is
// supplied via From*, the signing key via By*, and the result drained via
// To* in the chosen encoding.
type Signer struct {
	src    []byte
	reader io.Reader
	uid    []byte
	r, s   []byte
	Error  error
}

// NewSigner returns a new Signer instance.
func NewSigner() Signer {
	return Signer{}
}

// FromString signs from string.
func (s Signer) FromString(str string) Signer {
	s.src = utils.String2Bytes(str)
	return s
}

// FromBytes signs from byte slice.
func (s Signer) FromBytes(b []byte) Signer {
	s.src = b
	return s
}

// FromFile signs from file. The file is fully read before signing, since SM2
// signs over the whole message rather than a running digest.
func (s Signer) FromFile(f fs.File) Signer {
	s.reader = f
	return s
}

// WithUID sets the identity string folded into the Z_A preamble (GB/T
// 32918.2-2016 §5.5). If not called, the default "1234567812345678" is used.
func (s Signer) WithUID(uid []byte) Signer {
	s.uid = uid
	return s
}

// BySm2 signs the source with the given key pair.
func (s Signer) BySm2(kp *sm2.KeyPair) Signer {
	if s.Error != nil {
		return s
	}

	data := s.src
	if s.reader != nil {
		if seeker, ok := s.reader.(io.Seeker); ok {
			seeker.Seek(0, io.SeekStart)
		}
		read, err := readAll(s.reader)
		if err != nil {
			s.Error = err
			return s
		}
		data = read
	}

	if len(data) == 0 {
		return s
	}

	r, sig, err := kp.Sign(data, s.uid)
	if err != nil {
		s.Error = err
		return s
	}
	s.r, s.s = r.Bytes(), sig.Bytes()
	return s
}

// ToRawBytes outputs the signature as r || s, each left-padded to 32 bytes.
func (s Signer) ToRawBytes() []byte {
	if len(s.r) == 0 {
		return []byte{}
	}
	return sm2.MarshalSignatureRaw(bigFromBytes(s.r), bigFromBytes(s.s))
}

// ToRawString is ToRawBytes as a string.
func (s Signer) ToRawString() string {
	return utils.Bytes2String(s.ToRawBytes())
}

// ToHexBytes outputs the signature as lowercase hex bytes.
func (s Signer) ToHexBytes() []byte {
	if len(s.r) == 0 {
		return []byte{}
	}
	return []byte(hex.EncodeToString(s.ToRawBytes()))
}

// ToHexString is ToHexBytes as a string.
func (s Signer) ToHexString() string {
	if len(s.r) == 0 {
		return ""
	}
	return hex.EncodeToString(s.ToRawBytes())
}

// ToBase64Bytes outputs the signature as base64 bytes.
func (s Signer) ToBase64Bytes() []byte {
	if len(s.r) == 0 {
		return []byte{}
	}
	return []byte(base64.StdEncoding.EncodeToString(s.ToRawBytes()))
}

// ToBase64String is ToBase64Bytes as a string.
func (s Signer) ToBase64String() string {
	if len(s.r) == 0 {
		return ""
	}
	return base64.StdEncoding.EncodeToString(s.ToRawBytes())
}

// ToASN1Bytes outputs the signature as an ASN.1 DER SEQUENCE { r, s }.
func (s Signer) ToASN1Bytes() []byte {
	if len(s.r) == 0 {
		return []byte{}
	}
	data, err := sm2.MarshalSignatureASN1(bigFromBytes(s.r), bigFromBytes(s.s))
	if err != nil {
		return []byte{}
	}
	return data
}
