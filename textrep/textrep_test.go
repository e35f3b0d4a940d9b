package textrep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSingleFacet(t *testing.T) {
	src := []byte(`solid demo
  facet normal 0 0 1
    outer loop
      vertex 0 0 0
      vertex 1 0 0
      vertex 0 1 0
    endloop
  endfacet
endsolid demo`)
	sol, err := Parse(src)
	require.NoError(t, err)
	assert.Equal(t, "demo", sol.Name)
	require.Len(t, sol.Facets, 1)
	assert.Equal(t, [3]float32{0, 0, 1}, sol.Facets[0].Normal)
	assert.Equal(t, [3]float32{0, 0, 0}, sol.Facets[0].Vertex[0])
	assert.Equal(t, [3]float32{1, 0, 0}, sol.Facets[0].Vertex[1])
	assert.Equal(t, [3]float32{0, 1, 0}, sol.Facets[0].Vertex[2])
}

func TestParseHeaderWithSpaces(t *testing.T) {
	sol, err := Parse([]byte("solid my part v2\nendsolid my part v2"))
	require.NoError(t, err)
	assert.Equal(t, "my part v2", sol.Name)
	assert.Empty(t, sol.Facets)
}

func TestParseLenientClosers(t *testing.T) {
	// endloop/endfacet/endsolid missing entirely; both facets still parse.
	src := []byte("solid x\n" +
		"facet normal 0 0 1\nouter loop\nvertex 0 0 0\nvertex 1 0 0\nvertex 0 1 0\n" +
		"facet normal 0 0 -1\nouter loop\nvertex 0 0 0\nvertex 0 1 0\nvertex 1 0 0\n")
	sol, err := Parse(src)
	require.NoError(t, err)
	require.Len(t, sol.Facets, 2)
	assert.Equal(t, [3]float32{0, 0, -1}, sol.Facets[1].Normal)
}

func TestParseScientificNotation(t *testing.T) {
	src := []byte("solid sci\n" +
		"facet normal 0 0 1\nouter loop\n" +
		"vertex 1.5e-3 -2E2 0.25\nvertex 0 0 0\nvertex 1 1 1\n" +
		"endloop\nendfacet\nendsolid sci")
	sol, err := Parse(src)
	require.NoError(t, err)
	require.Len(t, sol.Facets, 1)
	assert.Equal(t, [3]float32{1.5e-3, -200, 0.25}, sol.Facets[0].Vertex[0])
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"missing solid", "facet normal 0 0 1\n"},
		{"truncated facet", "solid x\nfacet normal 0 0 1\nouter loop\nvertex 0 0 0"},
		{"bad number", "solid x\nfacet normal 0 0 z\nouter loop\nvertex 0 0 0\nvertex 0 0 0\nvertex 0 0 0\n"},
		{"wrong field count", "solid x\nfacet normal 0 1\nouter loop\nvertex 0 0 0\nvertex 0 0 0\nvertex 0 0 0\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse([]byte(c.src))
			assert.Error(t, err)
		})
	}
}

func TestEncodeFormat(t *testing.T) {
	sol := &Solid{
		Name: "demo",
		Facets: []Facet{{
			Normal: [3]float32{0, 0, 1},
			Vertex: [3][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		}},
	}
	want := "solid demo\n" +
		"  facet normal 0 0 1\n" +
		"    outer loop\n" +
		"      vertex 0 0 0\n" +
		"      vertex 1 0 0\n" +
		"      vertex 0 1 0\n" +
		"    endloop\n" +
		"  endfacet\n" +
		"endsolid demo"
	assert.Equal(t, want, string(Encode(sol)))
}

func TestEncodeParseRoundTrip(t *testing.T) {
	sol := &Solid{
		Name: "roundtrip",
		Facets: []Facet{
			{
				Normal: [3]float32{0.26726124, 0.5345225, 0.8017837},
				Vertex: [3][3]float32{{0.1, 0.2, 0.3}, {-1.25, 2.5, -3.75}, {1e-7, 1e7, 0}},
			},
			{
				Normal: [3]float32{0, -1, 0},
				Vertex: [3][3]float32{{4, 5, 6}, {7, 8, 9}, {10, 11, 12}},
			},
		},
	}
	got, err := Parse(Encode(sol))
	require.NoError(t, err)
	assert.Equal(t, sol, got)
}
