package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/leengari/datagrid/internal/domain/grid"
	"github.com/leengari/datagrid/internal/engine"
	"github.com/leengari/datagrid/internal/infrastructure/config"
	"github.com/leengari/datagrid/internal/infrastructure/logging"
	"github.com/leengari/datagrid/internal/network"
	"github.com/leengari/datagrid/internal/repl"
	"github.com/leengari/datagrid/internal/storage"
)

// version is set at build time
var version = "development version"

// setup resolves the configuration and installs the default logger.
// The returned function flushes the log sinks.
func setup(cmd *cobra.Command, configFile string) (config.Config, func(), error) {
	cfg, err := config.Load(cmd, configFile)
	if err != nil {
		return config.Config{}, nil, err
	}

	logger, closeFn := logging.SetupLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.SeqURL)
	slog.SetDefault(logger)
	return cfg, closeFn, nil
}

func newRootCmd() *cobra.Command {
	var configFile string
	def := config.Defaults()

	cobra.EnableCommandSorting = false

	rootCmd := &cobra.Command{
		Use:           "datagrid",
		Short:         "Build, sort and print small tables as ASCII grids",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.SetVersionTemplate(`{{.Version}}` + "\n")

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to a config file (yaml, json or toml)")
	rootCmd.PersistentFlags().String("log-level", def.LogLevel.String(), "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("seq-url", def.SeqURL, "Seq server URL for shipping logs")
	rootCmd.PersistentFlags().String("data-dir", def.DataDir, "base directory for datasets")

	rootCmd.AddCommand(newShowCmd(&configFile))
	rootCmd.AddCommand(newReplCmd(&configFile))
	rootCmd.AddCommand(newServeCmd(&configFile, def.Port))

	return rootCmd
}

func newShowCmd(configFile *string) *cobra.Command {
	var sortCol string
	var desc bool

	cmd := &cobra.Command{
		Use:   "show DATASET",
		Short: "Load a dataset directory and print it",
		Long: "Load a dataset directory (meta.json + data.json) and print it as a grid.\n" +
			"Relative paths are resolved against --data-dir when they do not exist as given.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, closeFn, err := setup(cmd, *configFile)
			if err != nil {
				return err
			}
			defer closeFn()

			g, err := storage.LoadGrid(resolveDataset(args[0], cfg.DataDir))
			if err != nil {
				return err
			}

			if sortCol != "" {
				dir := grid.Ascending
				if desc {
					dir = grid.Descending
				}
				if err := g.SortBy(sortCol, dir); err != nil {
					return err
				}
			}

			return show(cmd.OutOrStdout(), g)
		},
	}
	cmd.Flags().SortFlags = false
	cmd.Flags().StringVarP(&sortCol, "sort", "s", "", "column to sort by")
	cmd.Flags().BoolVarP(&desc, "desc", "d", false, "sort in descending order")

	return cmd
}

func show(w io.Writer, g *grid.Grid) error {
	if err := g.RenderTo(w); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

// resolveDataset prefers path as given and falls back to dataDir/path
func resolveDataset(path, dataDir string) string {
	if _, err := os.Stat(path); err == nil || dataDir == "" {
		return path
	}
	return filepath.Join(dataDir, path)
}

func newReplCmd(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive grid console",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, closeFn, err := setup(cmd, *configFile)
			if err != nil {
				return err
			}
			defer closeFn()

			eng := engine.New(cfg.DataDir)
			eng.AddObserver(engine.NewLoggingObserver())

			slog.Info("Starting REPL mode...", "data_dir", cfg.DataDir)
			repl.Start(eng, cmd.InOrStdin(), cmd.OutOrStdout())
			return nil
		},
	}
}

func newServeCmd(configFile *string, defaultPort int) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve grid sessions over TCP (newline-delimited JSON)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, closeFn, err := setup(cmd, *configFile)
			if err != nil {
				return err
			}
			defer closeFn()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			slog.Info("Starting Server mode...", "port", cfg.Port, "data_dir", cfg.DataDir)
			return network.Start(ctx, cfg.Port, cfg.DataDir)
		},
	}
	cmd.Flags().IntP("port", "p", defaultPort, "port to listen on")

	return cmd
}
