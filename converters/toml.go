package converters

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"

	"github.com/katalvlaran/mstree/core"
)

// ArcDoc is the TOML form of one arc.
type ArcDoc struct {
	From   string  `toml:"from"`
	To     string  `toml:"to"`
	Weight float64 `toml:"weight"`
}

// GraphDoc is the TOML form of a graph.
type GraphDoc struct {
	Vertices []string `toml:"vertices"`
	Arcs     []ArcDoc `toml:"arcs"`
}

// ResultDoc is the TOML form of an MST result.
type ResultDoc struct {
	Method      string   `toml:"method"`
	Vertices    int      `toml:"vertices"`
	TotalWeight float64  `toml:"total_weight"`
	Arcs        []ArcDoc `toml:"arcs"`
}

func arcDocs(arcs []*core.Arc) []ArcDoc {
	out := make([]ArcDoc, len(arcs))
	for i, a := range arcs {
		out[i] = ArcDoc{From: a.From.ID, To: a.To.ID, Weight: a.Weight}
	}

	return out
}

// DecodeTOML parses a GraphDoc into a new multigraph. Vertices listed under
// "vertices" come first, in order; arc endpoints must be listed there.
func DecodeTOML(r io.Reader, opts ...core.GraphOption) (*core.Graph, error) {
	var doc GraphDoc
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode graph: %w: %w", ErrSyntax, err)
	}

	g := core.NewGraph(append([]core.GraphOption{core.WithMultiArcs()}, opts...)...)
	for _, id := range doc.Vertices {
		if g.HasVertex(id) {
			return nil, fmt.Errorf("duplicate vertex %q: %w", id, ErrSyntax)
		}
		if err := g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("vertex %q: %w", id, err)
		}
	}
	for i, a := range doc.Arcs {
		for _, id := range []string{a.From, a.To} {
			if !g.HasVertex(id) {
				return nil, fmt.Errorf("arcs[%d]: %q: %w", i, id, core.ErrVertexNotFound)
			}
		}
		if _, err := g.AddArc(a.From, a.To, a.Weight); err != nil {
			return nil, fmt.Errorf("arcs[%d]: %w", i, err)
		}
	}

	return g, nil
}

// EncodeTOML writes g as a GraphDoc.
func EncodeTOML(w io.Writer, g *core.Graph) error {
	doc := GraphDoc{Vertices: g.VertexIDs(), Arcs: arcDocs(g.Arcs())}

	return toml.NewEncoder(w).Encode(doc)
}

// EncodeResultTOML writes an MST result as a ResultDoc.
func EncodeResultTOML(w io.Writer, method string, vertices int, arcs []*core.Arc) error {
	doc := ResultDoc{
		Method:      method,
		Vertices:    vertices,
		TotalWeight: core.TotalWeight(arcs),
		Arcs:        arcDocs(arcs),
	}

	return toml.NewEncoder(w).Encode(doc)
}
