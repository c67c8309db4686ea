package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"ProseCorpusBuilder/internal/config"
	"ProseCorpusBuilder/internal/infrastructure/fetch"
	"ProseCorpusBuilder/internal/infrastructure/output"
	"ProseCorpusBuilder/internal/infrastructure/storage"
	"ProseCorpusBuilder/internal/logging"
	"ProseCorpusBuilder/internal/manifest"
	"ProseCorpusBuilder/internal/ports"
	"ProseCorpusBuilder/internal/source"
	"ProseCorpusBuilder/internal/ui"
	"ProseCorpusBuilder/internal/usecase"
)

// Application wires config to the pipeline and run lifecycle.
type Application struct {
	cfg      config.Config
	logger   *slog.Logger
	pipeline *usecase.Pipeline
	cache    ports.TextCache
}

// New builds a runnable application instance.
func New(cfg config.Config, baseLogger *slog.Logger) *Application {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	var cache ports.TextCache
	sqliteCache, err := storage.NewSQLiteCache(cfg.Cache.Dir)
	if err != nil {
		baseLogger.Warn("text cache unavailable, fetching without cache", "error", err)
	} else {
		baseLogger.Info("text cache ready", "path", sqliteCache.Path())
		cache = sqliteCache
	}

	manifestDir := filepath.Dir(cfg.Manifest)
	fetchLogger := baseLogger.With("component", "fetch")

	registry := source.NewRegistry()
	registry.Register(fetch.NewGutenbergSource(nil, cache, fetchLogger))
	registry.Register(fetch.NewURLSource(nil, cache, fetchLogger))
	registry.Register(fetch.NewFileSource(manifestDir))

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Registry: registry,
		Writer:   output.NewJSONLWriter(cfg.Output.Dir, cfg.Output.Prefix),
		Units:    cfg.Units,
		Logger:   baseLogger.With("component", "pipeline"),
	})

	return &Application{cfg: cfg, logger: baseLogger, pipeline: pipeline, cache: cache}
}

// Run executes one full corpus build: manifest load, per-work processing,
// tiering, and output.
func (a *Application) Run(ctx context.Context) error {
	defer a.closeCache()

	works, err := manifest.Load(a.cfg.Manifest)
	if err != nil {
		return err
	}
	if len(works) == 0 {
		return fmt.Errorf("no works found in manifest %s", a.cfg.Manifest)
	}

	a.logger.Info("manifest loaded", "works", len(works),
		"target_words", a.cfg.Units.TargetWords,
		"max_words", a.cfg.Units.MaxWords,
		"min_words", a.cfg.Units.MinWords)

	tiered, files, err := a.pipeline.Run(ctx, works)
	if err != nil {
		return err
	}

	ui.RenderSummary(os.Stdout, tiered, files)
	return nil
}

func (a *Application) closeCache() {
	if a.cache == nil {
		return
	}
	if err := a.cache.Close(); err != nil {
		a.logger.Warn("closing text cache", "error", err)
	}
}
