package hash

import (
	"hash"

	"github.com/Hyperledger-TWGC/node-gm/sm3"
)

// BySm3 hashes the Hasher's source with SM3, or computes HMAC-SM3 if WithKey
// was called first.
func (h Hasher) BySm3() Hasher {
	if h.Error != nil {
		return h
	}

	if len(h.key) > 0 {
		return h.hmac(func() hash.Hash { return sm3.New() })
	}

	if h.reader != nil {
		dst, err := h.stream(func() hash.Hash { return sm3.New() })
		if err != nil {
			h.Error = err
			return h
		}
		h.dst = dst
		return h
	}

	if len(h.src) > 0 {
		sum := sm3.Sum256(h.src)
		h.dst = sum[:]
	}

	return h
}
