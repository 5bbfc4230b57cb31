package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/statidx/statidx/internal/config"
	"github.com/statidx/statidx/internal/docmodel"
	"github.com/statidx/statidx/internal/lock"
	"github.com/statidx/statidx/internal/progress"
	"github.com/statidx/statidx/internal/source"
	"github.com/statidx/statidx/internal/watch"
	"github.com/statidx/statidx/pkg/statidx"
)

func newBuildCmd() *cobra.Command {
	var (
		configPath string
		noTUI      bool
		noColor    bool
		watchMode  bool
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a search index from the configured input documents",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			reporterCfg := progress.NewConfig(cmd.OutOrStdout(),
				progress.WithForcePlain(noTUI), progress.WithNoColor(noColor))

			if err := runBuild(cmd.Context(), cfg, reporterCfg); err != nil {
				return err
			}

			if !watchMode {
				return nil
			}
			return runWatch(cmd.Context(), cfg, reporterCfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "statidx.yaml", "Path to the build config file")
	cmd.Flags().BoolVar(&noTUI, "no-tui", false, "Force plain line-oriented progress output")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable ANSI color in progress output")
	cmd.Flags().BoolVar(&watchMode, "watch", false, "Rebuild the index whenever an input document changes")

	return cmd
}

func runBuild(ctx context.Context, cfg *config.Config, reporterCfg progress.Config) error {
	fileLock := lock.New(cfg.Output.Path)
	if err := fileLock.Lock(); err != nil {
		return fmt.Errorf("locking output path: %w", err)
	}
	defer fileLock.Unlock()

	inputs, err := gatherInputs(cfg)
	if err != nil {
		return err
	}

	slog.Info("index_build_started", slog.Int("documents", len(inputs)), slog.String("output", cfg.Output.Path))

	reporter := progress.New(reporterCfg)
	idx, stats, err := statidx.BuildIndex(ctx, cfg.Build.ToContainerConfig(), inputs, reporter)
	if err != nil {
		return fmt.Errorf("building index: %w", err)
	}

	data, err := statidx.EncodeIndex(idx)
	if err != nil {
		return fmt.Errorf("encoding index: %w", err)
	}

	if err := os.WriteFile(cfg.Output.Path, data, 0o644); err != nil {
		return fmt.Errorf("writing index to %s: %w", cfg.Output.Path, err)
	}

	slog.Info("index_build_completed",
		slog.String("build_id", stats.BuildID),
		slog.Int("documents", stats.Documents),
		slog.Int("containers", stats.Containers),
		slog.Duration("duration", stats.Duration),
		slog.Int("warnings", stats.Warnings),
	)

	return nil
}

func gatherInputs(cfg *config.Config) ([]docmodel.InputDocument, error) {
	var inputs []docmodel.InputDocument

	for _, in := range cfg.Input {
		stemAlg, err := config.ParseStemAlgorithm(in.StemAlgorithm)
		if err != nil {
			return nil, err
		}

		paths, err := source.Discover(in.Path, nil)
		if err != nil {
			return nil, err
		}

		for _, p := range paths {
			doc, err := source.Read(p, stemAlg)
			if err != nil {
				return nil, err
			}
			if in.URL != "" {
				doc.URL = in.URL
			}
			for k, v := range in.Fields {
				if doc.Fields == nil {
					doc.Fields = map[string]string{}
				}
				doc.Fields[k] = v
			}
			inputs = append(inputs, doc)
		}
	}

	return inputs, nil
}

func runWatch(ctx context.Context, cfg *config.Config, reporterCfg progress.Config) error {
	w, err := watch.New(500 * time.Millisecond)
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Stop()

	for _, in := range cfg.Input {
		if err := w.Start(ctx, in.Path); err != nil {
			return fmt.Errorf("watching %s: %w", in.Path, err)
		}
	}

	slog.Info("watch_mode_started")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-w.Errors():
			slog.Error("watch_error", slog.String("error", err.Error()))
		case events := <-w.Events():
			slog.Info("watch_rebuild_triggered", slog.Int("changed_files", len(events)))
			if err := runBuild(ctx, cfg, reporterCfg); err != nil {
				slog.Error("watch_rebuild_failed", slog.String("error", err.Error()))
			}
		}
	}
}
