// Package sm3 implements the SM3 cryptographic hash algorithm as defined in
// GB/T 32918.1-2016 / GM/T 0004-2012. SM3 is a Merkle-Damgard hash with a
// dedicated 64-round compression function and produces a 256-bit digest.
package sm3

import (
	"encoding/binary"
	"encoding/hex"
	"hash"
)

const (
	// Size is the size of an SM3 checksum in bytes.
	Size = 32
	// BlockSize is the block size of SM3 in bytes.
	BlockSize = 64
)

var (
	// initialHash is the standard SM3 IV.
	initialHash = [8]uint32{
		0x7380166f, 0x4914b2b9, 0x172442d7, 0xda8a0600,
		0xa96f30bc, 0x163138aa, 0xe38dee4d, 0xb0fb0e4e,
	}

	// Round constants, different for the first 16 and the last 48 rounds.
	tj0 = uint32(0x79cc4519)
	tj1 = uint32(0x7a879d8a)
)

// digest represents the partial evaluation of an SM3 checksum.
type digest struct {
	h      [8]uint32 // hash registers
	length uint64    // total message length in bits
	data   []byte    // unprocessed tail, always 0 <= len(data) < BlockSize
}

// New returns a new hash.Hash computing the SM3 checksum.
func New() hash.Hash {
	d := &digest{}
	d.Reset()
	return d
}

// Reset resets the digest to its initial state. Sum does not call Reset;
// Engine.Sum does.
func (d *digest) Reset() {
	copy(d.h[:], initialHash[:])
	d.length = 0
	d.data = d.data[:0]
}

// Size returns the number of bytes Sum will return.
func (d *digest) Size() int { return Size }

// BlockSize returns the hash's underlying block size.
func (d *digest) BlockSize() int { return BlockSize }

// Write adds more data to the running hash. It never returns an error.
func (d *digest) Write(p []byte) (int, error) {
	toWrite := len(p)
	d.length += uint64(len(p)) * 8
	data := append(d.data, p...)
	d.compressBlocks(data, false)
	d.data = data[len(data)/BlockSize*BlockSize:]
	return toWrite, nil
}

// Sum appends the current hash to b and returns the resulting slice. The
// digest is not modified: padding and the final compression operate on a
// copy of the unprocessed tail, so the state remains reusable.
func (d *digest) Sum(in []byte) []byte {
	padded := d.pad()
	h := d.compressBlocks(padded, true)

	needed := Size
	if cap(in)-len(in) < needed {
		newIn := make([]byte, len(in), len(in)+needed)
		copy(newIn, in)
		in = newIn
	}
	out := in[len(in) : len(in)+needed]
	for i := 0; i < 8; i++ {
		binary.BigEndian.PutUint32(out[i*4:], h[i])
	}
	return in[:len(in)+needed]
}

// pad returns the unprocessed tail with SM3 padding appended: a single 0x80
// byte, zero bytes up to a 56-mod-64 boundary, then the bit length of the
// whole message as a 64-bit big-endian integer.
func (d *digest) pad() []byte {
	data := make([]byte, len(d.data), len(d.data)+BlockSize+8)
	copy(data, d.data)
	data = append(data, 0x80)
	for len(data)%BlockSize != 56 {
		data = append(data, 0x00)
	}
	var lengthBytes [8]byte
	binary.BigEndian.PutUint64(lengthBytes[:], d.length)
	return append(data, lengthBytes[:]...)
}

// compressBlocks runs the compression function over every complete block in
// msg. When final is false, the running digest registers are updated in
// place and the return value is meaningless. When final is true, the
// registers are left untouched and the resulting state after processing msg
// is returned directly, so a call to Sum never disturbs a live digest.
func (d *digest) compressBlocks(msg []byte, final bool) [8]uint32 {
	var w [68]uint32
	var w1 [64]uint32

	a, b, c, dd, e, f, g, h := d.h[0], d.h[1], d.h[2], d.h[3], d.h[4], d.h[5], d.h[6], d.h[7]

	for len(msg) >= BlockSize {
		for i := 0; i < 16; i++ {
			w[i] = binary.BigEndian.Uint32(msg[4*i : 4*(i+1)])
		}
		for i := 16; i < 68; i++ {
			w[i] = p1(w[i-16]^w[i-9]^rol(w[i-3], 15)) ^ rol(w[i-13], 7) ^ w[i-6]
		}
		for i := 0; i < 64; i++ {
			w1[i] = w[i] ^ w[i+4]
		}

		A, B, C, D, E, F, G, H := a, b, c, dd, e, f, g, h

		for i := 0; i < 16; i++ {
			ss1 := rol(rol(A, 12)+E+rol(tj0, uint32(i)), 7)
			ss2 := ss1 ^ rol(A, 12)
			tt1 := ff0(A, B, C) + D + ss2 + w1[i]
			tt2 := gg0(E, F, G) + H + ss1 + w[i]
			D, C, B, A = C, rol(B, 9), A, tt1
			H, G, F, E = G, rol(F, 19), E, p0(tt2)
		}
		for i := 16; i < 64; i++ {
			ss1 := rol(rol(A, 12)+E+rol(tj1, uint32(i)), 7)
			ss2 := ss1 ^ rol(A, 12)
			tt1 := ff1(A, B, C) + D + ss2 + w1[i]
			tt2 := gg1(E, F, G) + H + ss1 + w[i]
			D, C, B, A = C, rol(B, 9), A, tt1
			H, G, F, E = G, rol(F, 19), E, p0(tt2)
		}

		a ^= A
		b ^= B
		c ^= C
		dd ^= D
		e ^= E
		f ^= F
		g ^= G
		h ^= H

		msg = msg[BlockSize:]
	}

	if final {
		return [8]uint32{a, b, c, dd, e, f, g, h}
	}
	d.h[0], d.h[1], d.h[2], d.h[3], d.h[4], d.h[5], d.h[6], d.h[7] = a, b, c, dd, e, f, g, h
	return [8]uint32{}
}

func rol(x uint32, n uint32) uint32 {
	n %= 32
	return x<<n | x>>(32-n)
}

func ff0(x, y, z uint32) uint32 { return x ^ y ^ z }
func ff1(x, y, z uint32) uint32 { return (x & y) | (x & z) | (y & z) }
func gg0(x, y, z uint32) uint32 { return x ^ y ^ z }
func gg1(x, y, z uint32) uint32 { return (x & y) | (^x & z) }

func p0(x uint32) uint32 { return x ^ rol(x, 9) ^ rol(x, 17) }
func p1(x uint32) uint32 { return x ^ rol(x, 15) ^ rol(x, 23) }

// Engine is the construct/write/sum lifecycle described by the SM3 API
// contract: unlike the hash.Hash returned by New, Sum implicitly resets the
// engine so it is immediately ready for the next stream.
type Engine struct {
	h hash.Hash
}

// NewEngine returns a ready-to-write Engine.
func NewEngine() *Engine {
	return &Engine{h: New()}
}

// Reset discards any written data and returns the engine to its initial state.
func (e *Engine) Reset() {
	e.h.Reset()
}

// Write adds more data to the running hash.
func (e *Engine) Write(p []byte) (int, error) {
	return e.h.Write(p)
}

// Sum returns the 32-byte digest of everything written since construction or
// the last Reset/Sum, then resets the engine.
func (e *Engine) Sum() []byte {
	sum := e.h.Sum(nil)
	e.h.Reset()
	return sum
}

// SumHex is Sum rendered as lowercase, zero-padded hex.
func (e *Engine) SumHex() string {
	return hex.EncodeToString(e.Sum())
}

// SumMessage is equivalent to Reset(); Write(msg); Sum().
func (e *Engine) SumMessage(msg []byte) []byte {
	e.Reset()
	e.Write(msg)
	return e.Sum()
}

// SumMessageHex is SumMessage rendered as lowercase, zero-padded hex.
func (e *Engine) SumMessageHex(msg []byte) string {
	return hex.EncodeToString(e.SumMessage(msg))
}

// Sum256 returns the SM3 checksum of data.
func Sum256(data []byte) [Size]byte {
	var out [Size]byte
	d := New()
	d.Write(data)
	copy(out[:], d.Sum(nil))
	return out
}

// SumHex returns the lowercase, zero-padded 64-character hex encoding of the
// SM3 checksum of data. Unlike a naive per-word toString(16) rendering, this
// never drops leading zero bytes.
func SumHex(data []byte) string {
	sum := Sum256(data)
	return hex.EncodeToString(sum[:])
}
