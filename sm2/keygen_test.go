package sm2

import (
	"bytes"
	"crypto/rand"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateKeyPairProducesValidPair(t *testing.T) {
	kp, err := GenerateKeyPair()
	assert.NoError(t, err)
	assert.True(t, kp.HasPrivateKey())

	msg := []byte("hello sm2")
	r, s, err := kp.Sign(msg, nil)
	assert.NoError(t, err)

	ok, err := kp.Verify(msg, nil, r, s)
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestGenerateKeyPairWithReaderPropagatesReadError(t *testing.T) {
	_, err := GenerateKeyPairWithReader(iotest{err: io.ErrClosedPipe})
	assert.Equal(t, io.ErrClosedPipe, err)
}

func TestGenerateKeyPairWithReaderRejectsZeroAndRetries(t *testing.T) {
	// A scalar of all-zero bytes must be rejected and re-drawn; prefix one
	// all-zero draw onto a real random stream to exercise the retry path.
	zero := make([]byte, coordLen)
	rest := make([]byte, 4096)
	_, err := rand.Read(rest)
	assert.NoError(t, err)

	r := io.MultiReader(bytes.NewReader(zero), bytes.NewReader(rest))
	kp, err := GenerateKeyPairWithReader(r)
	assert.NoError(t, err)
	assert.True(t, kp.HasPrivateKey())
}

type iotest struct {
	err error
}

func (r iotest) Read(p []byte) (int, error) {
	return 0, r.err
}
