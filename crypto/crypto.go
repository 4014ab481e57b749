// Package crypto provides the Signer/Verifier fluent builders for SM2
// digital signatures, mirroring the streaming construction style used
// throughout this module: a builder is built up with From* calls and
// drained with By*/To* calls.
package crypto

import (
	"bytes"
	"io"
	"math/big"
)

// BufferSize is the chunk size used when draining a FromFile reader. SM2
// signs over the whole message rather than a running digest, so the file
// is still fully materialized before signing; this only bounds how much
// is copied per read.
var BufferSize = 4096

// bigFromBytes interprets b as a big-endian unsigned integer.
func bigFromBytes(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

// readAll drains r in BufferSize chunks into a single byte slice.
func readAll(r io.Reader) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := io.CopyBuffer(&buf, r, make([]byte, BufferSize)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
