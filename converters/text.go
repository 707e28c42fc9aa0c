package converters

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/mstree/core"
)

// ErrSyntax indicates malformed graph input.
var ErrSyntax = errors.New("converters: syntax error")

// ReadText parses the text adjacency format into a new multigraph.
// opts are applied after core.WithMultiArcs.
// Complexity: O(V + E).
func ReadText(r io.Reader, opts ...core.GraphOption) (*core.Graph, error) {
	g := core.NewGraph(append([]core.GraphOption{core.WithMultiArcs()}, opts...)...)

	sc := bufio.NewScanner(r)
	line := 0
	next := func() (string, bool) {
		for sc.Scan() {
			line++
			s := strings.TrimSpace(sc.Text())
			if s == "" || strings.HasPrefix(s, "#") {
				continue
			}
			return s, true
		}
		return "", false
	}

	// 1) Vertex count.
	head, ok := next()
	if !ok {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("missing vertex count: %w", ErrSyntax)
	}
	n, err := strconv.Atoi(head)
	if err != nil || n < 0 {
		return nil, fmt.Errorf("line %d: bad vertex count %q: %w", line, head, ErrSyntax)
	}

	// 2) Vertex names.
	for i := 0; i < n; i++ {
		name, ok := next()
		if !ok {
			if err := sc.Err(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("expected %d vertices, got %d: %w", n, i, ErrSyntax)
		}
		if strings.ContainsAny(name, " \t") {
			return nil, fmt.Errorf("line %d: vertex name %q has whitespace: %w", line, name, ErrSyntax)
		}
		if g.HasVertex(name) {
			return nil, fmt.Errorf("line %d: duplicate vertex %q: %w", line, name, ErrSyntax)
		}
		if err := g.AddVertex(name); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}

	// 3) Arcs until EOF.
	for {
		s, ok := next()
		if !ok {
			break
		}
		fields := strings.Fields(s)
		if len(fields) != 3 {
			return nil, fmt.Errorf("line %d: want \"from to weight\", got %q: %w", line, s, ErrSyntax)
		}
		w, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad weight %q: %w", line, fields[2], ErrSyntax)
		}
		for _, id := range fields[:2] {
			if !g.HasVertex(id) {
				return nil, fmt.Errorf("line %d: %q: %w", line, id, core.ErrVertexNotFound)
			}
		}
		if _, err := g.AddArc(fields[0], fields[1], w); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return g, nil
}

// WriteText writes g in the text adjacency format, vertices and arcs in
// insertion order.
func WriteText(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	ids := g.VertexIDs()
	fmt.Fprintln(bw, len(ids))
	for _, id := range ids {
		fmt.Fprintln(bw, id)
	}
	for _, a := range g.Arcs() {
		fmt.Fprintf(bw, "%s %s %s\n", a.From.ID, a.To.ID, formatWeight(a.Weight))
	}

	return bw.Flush()
}

// WriteArcs writes one "from to weight" line per arc followed by the total.
func WriteArcs(w io.Writer, arcs []*core.Arc) error {
	bw := bufio.NewWriter(w)
	for _, a := range arcs {
		fmt.Fprintf(bw, "%s %s %s\n", a.From.ID, a.To.ID, formatWeight(a.Weight))
	}
	fmt.Fprintf(bw, "total %s\n", formatWeight(core.TotalWeight(arcs)))

	return bw.Flush()
}

func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'g', -1, 64)
}
