// Package textrep implements the ASCII ("solid ... endsolid") text
// representation of STL. It works below the mesh level: a Solid mirrors the
// document structure and carries bare float triples, and the root package
// adapts between Solid and its canonical mesh type.
package textrep

// Facet is one "facet normal ... endfacet" block.
type Facet struct {
	Normal [3]float32
	Vertex [3][3]float32
}

// Solid is a whole ASCII STL document.
type Solid struct {
	Name   string
	Facets []Facet
}
