package sm2

import (
	"math/big"

	"github.com/Hyperledger-TWGC/node-gm/sm3"
)

// defaultUID is the conventional 16-byte identity string used when a caller
// does not supply one, matching the value embedded in reference SM2
// toolchains and test vectors: two copies of "12345678". With its ENTL_A
// prefix 0x0080 it forms an 18-byte preamble.
var defaultUID = []byte("1234567812345678")

// za computes the Z_A preamble of GB/T 32918.2-2016 §5.5:
//
//	Z_A = SM3(ENTL_A || ID_A || a || b || Gx || Gy || x_A || y_A)
//
// ENTL_A is the bit length of ID_A as a big-endian uint16. If uid is empty,
// defaultUID is used in its place.
func za(pubX, pubY *big.Int, uid []byte) []byte {
	if len(uid) == 0 {
		uid = defaultUID
	}

	params := Params()
	entl := uint16(len(uid)) * 8

	buf := make([]byte, 0, 2+len(uid)+6*coordLen)
	buf = append(buf, byte(entl>>8), byte(entl))
	buf = append(buf, uid...)
	buf = append(buf, padLeft(new(big.Int).Sub(params.P, big.NewInt(3)).Bytes(), coordLen)...)
	buf = append(buf, padLeft(params.B.Bytes(), coordLen)...)
	buf = append(buf, padLeft(params.Gx.Bytes(), coordLen)...)
	buf = append(buf, padLeft(params.Gy.Bytes(), coordLen)...)
	buf = append(buf, padLeft(pubX.Bytes(), coordLen)...)
	buf = append(buf, padLeft(pubY.Bytes(), coordLen)...)

	sum := sm3.Sum256(buf)
	return sum[:]
}

// digest computes e = SM3(Z_A || M), the value that SM2 signing and
// verification actually operate on.
func digest(pubX, pubY *big.Int, uid, message []byte) *big.Int {
	zaVal := za(pubX, pubY, uid)
	input := make([]byte, 0, len(zaVal)+len(message))
	input = append(input, zaVal...)
	input = append(input, message...)
	return hashToInt(sm3Sum(input))
}

// sm3Sum is a thin wrapper over sm3.Sum256 returning a slice instead of a
// fixed-size array, for convenient concatenation elsewhere in the package.
func sm3Sum(data []byte) []byte {
	sum := sm3.Sum256(data)
	return sum[:]
}

// hashToInt interprets a digest as a big-endian unsigned integer, the final
// step before it enters the signing/verification arithmetic.
func hashToInt(digest []byte) *big.Int {
	return new(big.Int).SetBytes(digest)
}
