package mock

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorHasher(t *testing.T) {
	testErr := errors.New("hash write error")
	hasher := NewErrorHasher(testErr)

	n, err := hasher.Write([]byte("test data"))
	assert.Equal(t, 0, n)
	assert.Equal(t, testErr, err)

	ok := NewErrorHasher(nil)
	n, err = ok.Write([]byte("test data"))
	assert.Equal(t, len("test data"), n)
	assert.NoError(t, err)

	assert.Equal(t, []byte("mock hash"), ok.Sum([]byte("prefix")))
	assert.Equal(t, 32, ok.Size())
	assert.Equal(t, 64, ok.BlockSize())
	ok.Reset() // must not panic
}
