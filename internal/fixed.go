package internal

import (
	"encoding/binary"
	"math"
)

// Binary STL layout sizes. The prologue is the 80-byte header plus the
// 4-byte declared triangle count; every triangle record after it is exactly
// TriangleLen bytes with no padding.
const (
	HeaderLen   = 80
	PrologueLen = 84
	TriangleLen = 50
)

// All multi-byte fields in binary STL are little-endian.

func U16(b []byte) uint16 {
	return binary.LittleEndian.Uint16(b)
}

func PutU16(b []byte, v uint16) {
	binary.LittleEndian.PutUint16(b, v)
}

func U32(b []byte) uint32 {
	return binary.LittleEndian.Uint32(b)
}

func PutU32(b []byte, v uint32) {
	binary.LittleEndian.PutUint32(b, v)
}

// F32 reads an IEEE-754 single from b. The bit pattern is preserved
// exactly, so NaN payloads survive a decode/encode pair.
func F32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}

func PutF32(b []byte, v float32) {
	binary.LittleEndian.PutUint32(b, math.Float32bits(v))
}
