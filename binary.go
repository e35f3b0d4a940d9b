package stlconv

import (
	"bytes"
	"fmt"

	intr "github.com/erlete/stlconv/internal"
)

// DecodeBinary parses bytes known to hold binary STL.
//
// The declared triangle count at offset 80 is advisory; files in the wild
// routinely disagree with it. The authoritative count is derived from the
// byte length, which must be exactly 84 + 50n.
func DecodeBinary(data []byte) (*Mesh, error) {
	if len(data) < intr.PrologueLen {
		return nil, &Error{
			Kind:   ErrMalformedInput,
			Detail: fmt.Sprintf("binary STL is %d bytes, shorter than the %d-byte prologue", len(data), intr.PrologueLen),
		}
	}
	body := len(data) - intr.PrologueLen
	if rem := body % intr.TriangleLen; rem != 0 {
		return nil, &Error{
			Offset: int64(len(data) - rem),
			Kind:   ErrMalformedInput,
			Detail: fmt.Sprintf("trailing %d bytes do not form a full %d-byte triangle record", rem, intr.TriangleLen),
		}
	}

	header, err := decodeHeader(data[:intr.HeaderLen])
	if err != nil {
		return nil, err
	}

	n := body / intr.TriangleLen
	m := &Mesh{
		Header:    header,
		Triangles: make([]Triangle, n),
	}
	for i := 0; i < n; i++ {
		rec := data[intr.PrologueLen+i*intr.TriangleLen:][:intr.TriangleLen]
		t := &m.Triangles[i]
		t.Normal = decodeVec3(rec[0:12])
		t.Vertex[0] = decodeVec3(rec[12:24])
		t.Vertex[1] = decodeVec3(rec[24:36])
		t.Vertex[2] = decodeVec3(rec[36:48])
		t.Attr = intr.U16(rec[48:50])
	}
	return m, nil
}

// EncodeBinary renders m as binary STL: the NUL-padded 80-byte header, the
// triangle count, then one 50-byte record per triangle.
func EncodeBinary(m *Mesh) ([]byte, error) {
	if len(m.Header) > intr.HeaderLen {
		return nil, &Error{
			Kind:   ErrHeaderTooLong,
			Detail: fmt.Sprintf("header is %d bytes, the binary header field holds %d", len(m.Header), intr.HeaderLen),
		}
	}

	out := make([]byte, intr.PrologueLen+len(m.Triangles)*intr.TriangleLen)
	copy(out[:intr.HeaderLen], m.Header)
	intr.PutU32(out[intr.HeaderLen:intr.PrologueLen], uint32(len(m.Triangles)))
	for i := range m.Triangles {
		t := &m.Triangles[i]
		rec := out[intr.PrologueLen+i*intr.TriangleLen:][:intr.TriangleLen]
		encodeVec3(rec[0:12], t.Normal)
		encodeVec3(rec[12:24], t.Vertex[0])
		encodeVec3(rec[24:36], t.Vertex[1])
		encodeVec3(rec[36:48], t.Vertex[2])
		intr.PutU16(rec[48:50], t.Attr)
	}
	return out, nil
}

// decodeHeader trims trailing NUL padding and requires the rest to be
// 7-bit ASCII, the only charset the header field is defined for.
func decodeHeader(b []byte) (string, error) {
	trimmed := bytes.TrimRight(b, "\x00")
	for i := 0; i < len(trimmed); i++ {
		if trimmed[i] >= 0x80 {
			return "", &Error{
				Offset: int64(i),
				Kind:   ErrMalformedInput,
				Detail: "header is not ASCII",
			}
		}
	}
	return string(trimmed), nil
}

func decodeVec3(b []byte) Vec3 {
	return Vec3{
		X: intr.F32(b[0:4]),
		Y: intr.F32(b[4:8]),
		Z: intr.F32(b[8:12]),
	}
}

func encodeVec3(b []byte, v Vec3) {
	intr.PutF32(b[0:4], v.X)
	intr.PutF32(b[4:8], v.Y)
	intr.PutF32(b[8:12], v.Z)
}
