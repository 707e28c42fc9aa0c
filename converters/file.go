package converters

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/mstree/core"
)

// ReadFile loads a graph from path: TOML for a ".toml" extension, the text
// adjacency format otherwise.
func ReadFile(path string, opts ...core.GraphOption) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var g *core.Graph
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		g, err = DecodeTOML(f, opts...)
	} else {
		g, err = ReadText(f, opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}
