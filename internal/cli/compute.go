package cli

import (
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/mstree/converters"
	"github.com/katalvlaran/mstree/mst"
)

// ErrUnknownFormat indicates an unsupported --format value.
var ErrUnknownFormat = errors.New("cli: unknown output format")

func newComputeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compute <graph-file>",
		Short: "Compute the MST of a graph file",
		Long: "Compute reads a graph (text adjacency format, or TOML for .toml files) and prints\n" +
			"the arcs of its minimum spanning tree followed by the total weight.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompute(cmd, v, args[0])
		},
	}

	f := cmd.Flags()
	f.String(keyMethod, mst.MethodPartialTrees, "solver: "+strings.Join(mst.Methods(), ", "))
	f.String(keyRoot, "", "start vertex for prim (default first vertex)")
	f.String(keyFormat, formatText, "output format: text or toml")
	f.Bool(keyWatch, false, "recompute whenever the graph file changes")
	f.String(keyCPUProfile, "", "write a CPU profile into this directory")
	for _, k := range []string{keyMethod, keyRoot, keyFormat, keyWatch, keyCPUProfile} {
		_ = v.BindPFlag(k, f.Lookup(k))
	}

	return cmd
}

func runCompute(cmd *cobra.Command, v *viper.Viper, path string) error {
	logger := newLogger(cmd.ErrOrStderr(), v.GetBool(keyVerbose))

	format := v.GetString(keyFormat)
	if format != formatText && format != formatTOML {
		return fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}

	if dir := v.GetString(keyCPUProfile); dir != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(dir), profile.Quiet, profile.NoShutdownHook).Stop()
	}

	opts := []mst.Option{mst.WithMethod(v.GetString(keyMethod)), mst.WithRoot(v.GetString(keyRoot))}
	out := cmd.OutOrStdout()

	if !v.GetBool(keyWatch) {
		return computeOnce(out, logger, path, format, opts)
	}

	// Watch mode: failures are reported and the next change retried.
	if err := computeOnce(out, logger, path, format, opts); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
	}
	w, err := NewWatcher(path)
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		return err
	}
	defer w.Stop()
	logger.Printf("Watching %s", filepath.Clean(path))

	ctx := cmd.Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-w.Changes:
			if !ok {
				return nil
			}
			if err := computeOnce(out, logger, path, format, opts); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
			}
		}
	}
}

func computeOnce(out io.Writer, logger *log.Logger, path, format string, opts []mst.Option) error {
	start := time.Now()
	logger.Printf("Loading graph from %s...", path)
	g, err := converters.ReadFile(path)
	if err != nil {
		return err
	}
	logger.Printf("Loaded: %d vertices, %d arcs", g.VertexCount(), g.ArcCount())

	res, err := mst.Compute(g, opts...)
	if err != nil {
		if errors.Is(err, mst.ErrDisconnected) {
			logger.Printf("%d connected components", len(mst.Components(g)))
		}
		return fmt.Errorf("%s: %w", path, err)
	}
	logger.Printf("%s: %d arcs, total %g in %s",
		res.Method, len(res.Arcs), res.TotalWeight, time.Since(start).Round(time.Microsecond))

	if format == formatTOML {
		return converters.EncodeResultTOML(out, res.Method, g.VertexCount(), res.Arcs)
	}

	return converters.WriteArcs(out, res.Arcs)
}
