// Package gm is a simple, semantic, developer-friendly SM2/SM3 crypto
// package implementing the GM/T 0003 (SM2) and GM/T 0004 (SM3) standards of
// China's State Cryptography Administration.
package gm

import (
	"github.com/Hyperledger-TWGC/node-gm/crypto"
	"github.com/Hyperledger-TWGC/node-gm/hash"
)

const Version = "0.1.0"

var (
	// Hash defines a Hasher instance.
	Hash = hash.NewHasher()

	// Sign defines a Signer instance.
	Sign = crypto.NewSigner()
	// Verify defines a Verifier instance.
	Verify = crypto.NewVerifier()
)
