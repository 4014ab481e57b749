package sm2

import (
	"crypto/rand"
	"io"
	"math/big"
)

// GenerateKeyPair draws a private scalar uniformly from [1, n-2] using the
// package's DRBG (crypto/rand) and returns the corresponding key pair with
// pub = [pri]*G, per GM/T 0003.1-2012 §6.1.
func GenerateKeyPair() (*KeyPair, error) {
	return GenerateKeyPairWithReader(rand.Reader)
}

// GenerateKeyPairWithReader is GenerateKeyPair, drawing randomness from r
// instead of crypto/rand.Reader. Exposed for deterministic testing.
func GenerateKeyPairWithReader(r io.Reader) (*KeyPair, error) {
	c := curve()
	n := c.Params().N
	limit := new(big.Int).Sub(n, big.NewInt(1)) // exclusive upper bound: n-1

	buf := make([]byte, coordLen)
	for {
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, err
		}
		d := new(big.Int).SetBytes(buf)
		if d.Sign() == 0 || d.Cmp(limit) >= 0 {
			continue
		}
		return NewKeyPair(nil, nil, d)
	}
}
