package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/meshpath/heuristics"
	"github.com/katalvlaran/meshpath/internal/config"
	"github.com/katalvlaran/meshpath/internal/logger"
	"github.com/katalvlaran/meshpath/pathfinder"
)

// defaultConfigFile is read from the working directory when --config is unset.
const defaultConfigFile = "meshpath.yaml"

// app carries what PersistentPreRunE prepared for the subcommands.
type app struct {
	cfg        *config.Config
	log        *zap.Logger
	configPath string
}

func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}

	root := &cobra.Command{
		Use:           "meshpath",
		Short:         "Shortest paths across the faces of a triangle mesh",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config file (default ./"+defaultConfigFile+" when present)")
	config.BindFlags(root.PersistentFlags())

	root.AddCommand(
		newFindCmd(a),
		newBatchCmd(a),
		newRenderCmd(a),
		newInfoCmd(a),
	)

	return root
}

// setup loads the configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	path := a.configPath
	if path == "" && config.Exists(defaultConfigFile) {
		path = defaultConfigFile
	}

	cfg, err := config.Load(path, cmd.Flags())
	if err != nil {
		return err
	}
	a.cfg = cfg

	file := logger.FileConfig{
		Path:       cfg.Logging.File,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
		Compress:   cfg.Logging.Compress,
	}
	if err := logger.Init(cfg.Logging.Level, file, cmd.ErrOrStderr()); err != nil {
		return err
	}
	a.log = logger.Log.Named("meshpath")
	a.log.Debug("config loaded", zap.String("file", path), zap.String("heuristic", cfg.Search.Heuristic))

	return nil
}

func (a *app) heuristic() (heuristics.Heuristic, error) {
	return heuristics.ByName(a.cfg.Search.Heuristic, a.cfg.Search.Scale)
}

// queryOptions translates the search section into pathfinder options.
func (a *app) queryOptions(vertices bool) []pathfinder.QueryOption {
	opts := []pathfinder.QueryOption{
		pathfinder.WithVertices(vertices),
		pathfinder.WithMaxExpansions(a.cfg.Search.MaxExpansions),
		pathfinder.WithTolerance(a.cfg.Search.Tolerance),
	}
	if a.cfg.Search.Workers > 0 {
		opts = append(opts, pathfinder.WithWorkers(a.cfg.Search.Workers))
	}

	return opts
}

// withTimeout applies search.timeout to ctx.
func (a *app) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.cfg.Search.Timeout > 0 {
		return context.WithTimeout(ctx, a.cfg.Search.Timeout)
	}

	return context.WithCancel(ctx)
}

func printf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
