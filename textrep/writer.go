package textrep

import (
	"bytes"
	"strconv"
)

// Encode renders the document. Facet bodies indent two spaces per nesting
// level and numbers use the shortest decimal form that round-trips at
// float32 precision. The closing endsolid line has no trailing newline.
func Encode(s *Solid) []byte {
	var buf bytes.Buffer
	buf.WriteString("solid ")
	buf.WriteString(s.Name)
	buf.WriteByte('\n')
	for i := range s.Facets {
		f := &s.Facets[i]
		buf.WriteString("  facet normal ")
		writeTriple(&buf, f.Normal)
		buf.WriteString("    outer loop\n")
		for _, v := range f.Vertex {
			buf.WriteString("      vertex ")
			writeTriple(&buf, v)
		}
		buf.WriteString("    endloop\n")
		buf.WriteString("  endfacet\n")
	}
	buf.WriteString("endsolid ")
	buf.WriteString(s.Name)
	return buf.Bytes()
}

func writeTriple(buf *bytes.Buffer, v [3]float32) {
	for i, c := range v {
		if i > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(strconv.FormatFloat(float64(c), 'g', -1, 32))
	}
	buf.WriteByte('\n')
}
