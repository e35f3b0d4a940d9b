package stlconv

import (
	"github.com/erlete/stlconv/textrep"
)

// DecodeASCII parses text known to hold ASCII STL. The ASCII form carries
// no attribute field, so Attr is 0 on every triangle.
func DecodeASCII(data []byte) (*Mesh, error) {
	sol, err := textrep.Parse(data)
	if err != nil {
		return nil, &Error{Kind: ErrMalformedInput, Detail: err.Error()}
	}
	m := &Mesh{
		Header:    sol.Name,
		Triangles: make([]Triangle, len(sol.Facets)),
	}
	for i := range sol.Facets {
		f := &sol.Facets[i]
		t := &m.Triangles[i]
		t.Normal = vecFromTriple(f.Normal)
		for v := 0; v < 3; v++ {
			t.Vertex[v] = vecFromTriple(f.Vertex[v])
		}
	}
	return m, nil
}

// EncodeASCII renders m as an ASCII STL document. Attribute values have no
// place in the text form and are dropped.
func EncodeASCII(m *Mesh) ([]byte, error) {
	sol := &textrep.Solid{
		Name:   m.Header,
		Facets: make([]textrep.Facet, len(m.Triangles)),
	}
	for i := range m.Triangles {
		t := &m.Triangles[i]
		f := &sol.Facets[i]
		f.Normal = tripleFromVec(t.Normal)
		for v := 0; v < 3; v++ {
			f.Vertex[v] = tripleFromVec(t.Vertex[v])
		}
	}
	return textrep.Encode(sol), nil
}

func vecFromTriple(v [3]float32) Vec3 {
	return Vec3{X: v[0], Y: v[1], Z: v[2]}
}

func tripleFromVec(v Vec3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}
