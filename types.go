package stlconv

// Encoding identifies one of the two STL representations. It is decided
// once by Detect and threaded explicitly through reader/writer selection.
type Encoding int

const (
	EncodingBinary Encoding = iota + 1
	EncodingASCII
)

func (e Encoding) String() string {
	switch e {
	case EncodingBinary:
		return "binary"
	case EncodingASCII:
		return "ASCII"
	default:
		return "unknown"
	}
}

// Vec3 is a point or direction with 32-bit float components. Values are
// carried as read; NaN and Inf pass through without rejection.
type Vec3 struct {
	X, Y, Z float32
}

// Triangle is one facet record. Vertex order is preserved exactly as read.
// Attr is the attribute byte count of the binary form; it is always 0 when
// the source was ASCII.
type Triangle struct {
	Normal Vec3
	Vertex [3]Vec3
	Attr   uint16
}

// Mesh is the canonical in-memory model shared by both representations.
// Triangle order is significant and survives every conversion.
type Mesh struct {
	Header    string
	Triangles []Triangle
}
