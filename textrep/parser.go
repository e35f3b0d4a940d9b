package textrep

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads an ASCII STL document.
//
// The grammar is deliberately lenient, matching what the common tools
// accept: lines are trimmed and located by keyword prefix, the solid name
// is whatever follows the first "solid" line, and a facet is the five lines
// "facet normal", "outer loop" and three "vertex" lines. The closing
// endloop/endfacet/endsolid lines are skipped without validation.
func Parse(src []byte) (*Solid, error) {
	lines := strings.Split(string(src), "\n")

	sol := &Solid{}
	haveSolid := false
	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if !haveSolid {
			if rest, ok := strings.CutPrefix(line, "solid"); ok {
				sol.Name = strings.TrimSpace(rest)
				haveSolid = true
			}
			continue
		}
		if !strings.HasPrefix(line, "facet normal") {
			continue
		}

		var f Facet
		n, err := parseTriple(strings.TrimPrefix(line, "facet normal"))
		if err != nil {
			return nil, fmt.Errorf("facet %d: normal: %w", len(sol.Facets), err)
		}
		f.Normal = n

		// Line i+1 is the outer loop marker; the vertices follow it.
		if i+4 >= len(lines) {
			return nil, fmt.Errorf("facet %d: truncated record", len(sol.Facets))
		}
		for v := 0; v < 3; v++ {
			vline := strings.TrimSpace(lines[i+2+v])
			vert, err := parseTriple(strings.TrimPrefix(vline, "vertex"))
			if err != nil {
				return nil, fmt.Errorf("facet %d: vertex %d: %w", len(sol.Facets), v+1, err)
			}
			f.Vertex[v] = vert
		}
		sol.Facets = append(sol.Facets, f)
		i += 4
	}

	if !haveSolid {
		return nil, fmt.Errorf("missing solid keyword line")
	}
	return sol, nil
}

func parseTriple(s string) ([3]float32, error) {
	var out [3]float32
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return out, fmt.Errorf("want 3 numeric fields, got %d", len(fields))
	}
	for i, tok := range fields {
		v, err := strconv.ParseFloat(tok, 32)
		if err != nil {
			return out, fmt.Errorf("bad number %q", tok)
		}
		out[i] = float32(v)
	}
	return out, nil
}
