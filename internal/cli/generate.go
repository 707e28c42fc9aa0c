package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/mstree/builder"
	"github.com/katalvlaran/mstree/converters"
	"github.com/katalvlaran/mstree/core"
)

// ErrUnknownKind indicates an unsupported --kind value.
var ErrUnknownKind = errors.New("cli: unknown graph kind")

// Graph kinds accepted by generate.
const (
	kindPath      = "path"
	kindCycle     = "cycle"
	kindStar      = "star"
	kindComplete  = "complete"
	kindSparse    = "sparse"
	kindConnected = "connected"
)

type generateFlags struct {
	kind      string
	n, m      int
	p         float64
	seed      int64
	minWeight int
	maxWeight int
	format    string
	output    string
}

func newGenerateCmd(v *viper.Viper) *cobra.Command {
	var gf generateFlags
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random or structured weighted graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, v, gf)
		},
	}

	f := cmd.Flags()
	f.StringVar(&gf.kind, "kind", kindConnected, "path, cycle, star, complete, sparse or connected")
	f.IntVarP(&gf.n, "vertices", "n", 10, "number of vertices")
	f.IntVarP(&gf.m, "arcs", "m", 0, "number of arcs for connected (default 2n)")
	f.Float64VarP(&gf.p, "probability", "p", 0.3, "arc probability for sparse")
	f.Int64Var(&gf.seed, "seed", 1, "random seed")
	f.IntVar(&gf.minWeight, "min-weight", 1, "smallest arc weight")
	f.IntVar(&gf.maxWeight, "max-weight", 100, "largest arc weight")
	f.StringVar(&gf.format, "format", formatText, "output format: text or toml")
	f.StringVarP(&gf.output, "output", "o", "", "output file (default stdout)")

	return cmd
}

func runGenerate(cmd *cobra.Command, v *viper.Viper, gf generateFlags) error {
	logger := newLogger(cmd.ErrOrStderr(), v.GetBool(keyVerbose))

	if gf.format != formatText && gf.format != formatTOML {
		return fmt.Errorf("%q: %w", gf.format, ErrUnknownFormat)
	}
	if gf.minWeight < 0 || gf.maxWeight < gf.minWeight {
		return fmt.Errorf("weights [%d,%d]: %w", gf.minWeight, gf.maxWeight, core.ErrNegativeWeight)
	}

	var con builder.Constructor
	switch gf.kind {
	case kindPath:
		con = builder.Path(gf.n)
	case kindCycle:
		con = builder.Cycle(gf.n)
	case kindStar:
		con = builder.Star(gf.n)
	case kindComplete:
		con = builder.Complete(gf.n)
	case kindSparse:
		con = builder.RandomSparse(gf.n, gf.p)
	case kindConnected:
		m := gf.m
		if m == 0 {
			m = min(2*gf.n, gf.n*(gf.n-1)/2)
			m = max(m, gf.n-1)
		}
		con = builder.RandomConnected(gf.n, m)
	default:
		return fmt.Errorf("%q: %w", gf.kind, ErrUnknownKind)
	}

	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(gf.seed), builder.WithIntWeight(gf.minWeight, gf.maxWeight)},
		con)
	if err != nil {
		return err
	}
	logger.Printf("Generated %s: %d vertices, %d arcs", gf.kind, g.VertexCount(), g.ArcCount())

	var out io.Writer = cmd.OutOrStdout()
	if gf.output != "" {
		f, err := os.Create(gf.output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	if gf.format == formatTOML {
		return converters.EncodeTOML(out, g)
	}

	return converters.WriteText(out, g)
}
