// Package cli wires the mstree command line: cobra commands, viper-backed
// configuration and the progress logger.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Configuration keys shared by flags, env (MSTREE_*) and the config file.
const (
	keyMethod     = "method"
	keyRoot       = "root"
	keyFormat     = "format"
	keyVerbose    = "verbose"
	keyWatch      = "watch"
	keyCPUProfile = "cpuprofile"
)

// Output formats.
const (
	formatText = "text"
	formatTOML = "toml"
)

// Execute runs the root command and exits non-zero on error.
func Execute(ctx context.Context) {
	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree with its own viper instance.
func NewRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:           "mstree",
		Short:         "Minimum spanning trees by partial-tree merging",
		Long:          "mstree reads a weighted undirected graph and prints its minimum spanning tree.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(cmd, v)
		},
	}

	root.PersistentFlags().String("config", "", "config file (default .mstree.toml)")
	root.PersistentFlags().BoolP(keyVerbose, "v", false, "verbose output")
	_ = v.BindPFlag(keyVerbose, root.PersistentFlags().Lookup(keyVerbose))

	root.AddCommand(newComputeCmd(v), newGenerateCmd(v), newVersionCmd())

	return root
}

// initConfig loads the config file and environment into v. A missing default
// config file is fine; an explicit --config that cannot be read is an error.
func initConfig(cmd *cobra.Command, v *viper.Viper) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".mstree")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	v.SetEnvPrefix("MSTREE")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) && cfgFile == "" {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}

	return nil
}

// newLogger returns a progress logger writing to w, or discarding when quiet.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	if !verbose {
		w = io.Discard
	}

	return log.New(w, "mstree: ", log.LstdFlags)
}
