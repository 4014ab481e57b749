package gm

import (
	"testing"

	"github.com/Hyperledger-TWGC/node-gm/sm2"
	"github.com/stretchr/testify/assert"
)

func TestHashBySm3(t *testing.T) {
	out := Hash.FromString("abc").BySm3().ToHexString()
	assert.Equal(t, "66c7f0f462eeedd9d1f2d46bdc10e4e24167c4875cf2f7a2297da02b8f4ba8e0", out)
}

func TestSignVerifyRoundTrip(t *testing.T) {
	kp, err := sm2.GenerateKeyPair()
	assert.NoError(t, err)

	sig := Sign.FromString("top level facade").BySm2(kp)
	assert.NoError(t, sig.Error)

	ok, err := Verify.FromString("top level facade").WithRawSign(sig.ToRawBytes()).BySm2(kp)
	assert.NoError(t, err)
	assert.True(t, ok)
}
