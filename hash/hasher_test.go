package hash

import (
	"errors"
	"hash"
	"strings"
	"testing"

	"github.com/Hyperledger-TWGC/node-gm/mock"
	"github.com/Hyperledger-TWGC/node-gm/sm3"
	"github.com/stretchr/testify/assert"
)

func TestHasher_FromString(t *testing.T) {
	t.Run("normal string", func(t *testing.T) {
		hasher := NewHasher().FromString("hello")
		assert.Equal(t, []byte("hello"), hasher.src)
	})

	t.Run("empty string", func(t *testing.T) {
		hasher := NewHasher().FromString("")
		assert.Equal(t, []byte{}, hasher.src)
	})

	t.Run("unicode string", func(t *testing.T) {
		hasher := NewHasher().FromString("你好世界")
		assert.Equal(t, []byte("你好世界"), hasher.src)
	})
}

func TestHasher_FromBytes(t *testing.T) {
	t.Run("normal bytes", func(t *testing.T) {
		data := []byte("hello")
		hasher := NewHasher().FromBytes(data)
		assert.Equal(t, data, hasher.src)
	})

	t.Run("nil bytes", func(t *testing.T) {
		hasher := NewHasher().FromBytes(nil)
		assert.Nil(t, hasher.src)
	})

	t.Run("binary data", func(t *testing.T) {
		data := []byte{0x00, 0x01, 0x02, 0x03}
		hasher := NewHasher().FromBytes(data)
		assert.Equal(t, data, hasher.src)
	})
}

func TestHasher_FromFile(t *testing.T) {
	t.Run("normal file", func(t *testing.T) {
		file := mock.NewFile([]byte("hello"), "test.txt")
		hasher := NewHasher().FromFile(file)
		assert.Equal(t, file, hasher.reader)
	})

	t.Run("nil file", func(t *testing.T) {
		hasher := NewHasher().FromFile(nil)
		assert.Nil(t, hasher.reader)
	})
}

func TestHasher_WithKey(t *testing.T) {
	t.Run("normal key", func(t *testing.T) {
		key := []byte("secret")
		hasher := NewHasher().WithKey(key)
		assert.Equal(t, key, hasher.key)
		assert.Nil(t, hasher.Error)
	})

	t.Run("empty key", func(t *testing.T) {
		hasher := NewHasher().WithKey([]byte{})
		assert.NotNil(t, hasher.Error)
		assert.Contains(t, hasher.Error.Error(), "hmac: key cannot be empty")
	})

	t.Run("nil key", func(t *testing.T) {
		hasher := NewHasher().WithKey(nil)
		assert.NotNil(t, hasher.Error)
	})
}

func TestHasher_ToOutputs(t *testing.T) {
	t.Run("raw", func(t *testing.T) {
		hasher := &Hasher{dst: []byte("hello")}
		assert.Equal(t, "hello", hasher.ToRawString())
		assert.Equal(t, []byte("hello"), hasher.ToRawBytes())
	})

	t.Run("empty dst", func(t *testing.T) {
		hasher := &Hasher{dst: []byte{}}
		assert.Equal(t, []byte{}, hasher.ToRawBytes())
		assert.Equal(t, "", hasher.ToBase64String())
		assert.Equal(t, "", hasher.ToHexString())
	})

	t.Run("base64", func(t *testing.T) {
		hasher := &Hasher{dst: []byte("hello")}
		assert.Equal(t, "aGVsbG8=", hasher.ToBase64String())
		assert.Equal(t, []byte("aGVsbG8="), hasher.ToBase64Bytes())
	})

	t.Run("hex preserves leading zero bytes", func(t *testing.T) {
		hasher := &Hasher{dst: []byte{0x00, 0x01, 0x02, 0x03}}
		assert.Equal(t, "00010203", hasher.ToHexString())
		assert.Equal(t, []byte("00010203"), hasher.ToHexBytes())
	})
}

func TestHasher_BySm3(t *testing.T) {
	t.Run("from string", func(t *testing.T) {
		h := NewHasher().FromString("abc").BySm3()
		assert.Nil(t, h.Error)
		assert.Equal(t, "66c7f0f462eeedd9d1f2d46bdc10e4e24167c4875cf2f7a2297da02b8f4ba8e0", h.ToHexString())
	})

	t.Run("empty source", func(t *testing.T) {
		h := NewHasher().FromBytes(nil).BySm3()
		assert.Nil(t, h.Error)
		assert.Equal(t, "", h.ToHexString())
	})

	t.Run("from file", func(t *testing.T) {
		file := mock.NewFile([]byte("abc"), "test.txt")
		h := NewHasher().FromFile(file).BySm3()
		assert.Nil(t, h.Error)
		assert.Equal(t, "66c7f0f462eeedd9d1f2d46bdc10e4e24167c4875cf2f7a2297da02b8f4ba8e0", h.ToHexString())
	})

	t.Run("hmac-sm3 with key", func(t *testing.T) {
		h := NewHasher().FromString("abc").WithKey([]byte("secret")).BySm3()
		assert.Nil(t, h.Error)
		assert.Len(t, h.ToRawBytes(), sm3.Size)
	})

	t.Run("propagates existing error", func(t *testing.T) {
		h := Hasher{Error: errors.New("boom")}
		result := h.BySm3()
		assert.Equal(t, "boom", result.Error.Error())
	})
}

func TestHasher_stream(t *testing.T) {
	t.Run("normal stream", func(t *testing.T) {
		file := mock.NewFile([]byte("abc"), "test.txt")
		hasher := &Hasher{reader: file}
		result, err := hasher.stream(func() hash.Hash { return sm3.New() })
		assert.Nil(t, err)
		assert.Len(t, result, sm3.Size)
	})

	t.Run("empty stream", func(t *testing.T) {
		file := mock.NewFile([]byte{}, "empty.txt")
		hasher := &Hasher{reader: file}
		result, err := hasher.stream(func() hash.Hash { return sm3.New() })
		assert.Nil(t, err)
		assert.Equal(t, []byte{}, result)
	})

	t.Run("read error", func(t *testing.T) {
		file := mock.NewErrorFile(errors.New("read error"))
		hasher := &Hasher{reader: file}
		result, err := hasher.stream(func() hash.Hash { return sm3.New() })
		assert.NotNil(t, err)
		assert.Contains(t, err.Error(), "read error")
		assert.Equal(t, []byte{}, result)
	})

	t.Run("large stream", func(t *testing.T) {
		data := strings.Repeat("a", 200*1024)
		file := mock.NewFile([]byte(data), "large.txt")
		hasher := &Hasher{reader: file}
		result, err := hasher.stream(func() hash.Hash { return sm3.New() })
		assert.Nil(t, err)
		assert.Len(t, result, sm3.Size)
	})
}

func TestHasher_hmac(t *testing.T) {
	sm3New := func() hash.Hash { return sm3.New() }

	t.Run("with source data", func(t *testing.T) {
		hasher := &Hasher{src: []byte("hello"), key: []byte("secret")}
		result := hasher.hmac(sm3New)
		assert.Nil(t, result.Error)
		assert.Len(t, result.dst, sm3.Size)
	})

	t.Run("with reader data", func(t *testing.T) {
		file := mock.NewFile([]byte("hello"), "test.txt")
		hasher := &Hasher{reader: file, key: []byte("secret")}
		result := hasher.hmac(sm3New)
		assert.Nil(t, result.Error)
		assert.Len(t, result.dst, sm3.Size)
	})

	t.Run("key not set", func(t *testing.T) {
		hasher := &Hasher{src: []byte("hello")}
		result := hasher.hmac(sm3New)
		assert.NotNil(t, result.Error)
		assert.Contains(t, result.Error.Error(), "key not set")
	})

	t.Run("read error", func(t *testing.T) {
		file := mock.NewErrorFile(errors.New("read error"))
		hasher := &Hasher{reader: file, key: []byte("secret")}
		result := hasher.hmac(sm3New)
		assert.NotNil(t, result.Error)
		assert.Contains(t, result.Error.Error(), "read error")
	})

	t.Run("existing error short-circuits", func(t *testing.T) {
		hasher := &Hasher{src: []byte("hello"), key: []byte("secret"), Error: errors.New("existing error")}
		result := hasher.hmac(sm3New)
		assert.Equal(t, "existing error", result.Error.Error())
		assert.Nil(t, result.dst)
	})
}
