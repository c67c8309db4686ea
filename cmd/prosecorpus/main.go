package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ProseCorpusBuilder/internal/app"
	"ProseCorpusBuilder/internal/config"
	"ProseCorpusBuilder/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "prosecorpus",
	Short: "Build tiered drill-unit corpora from long-form prose",
	Long: `prosecorpus converts public-domain texts and local files into
bounded-size drill units for speed-reading training, tiered per author into
easy/medium/hard line-delimited JSON corpus files.`,
}

var buildFlags struct {
	configPath      string
	manifest        string
	cacheDir        string
	outputDir       string
	outputPrefix    string
	logLevel        string
	targetWords     int
	maxWords        int
	minWords        int
	minSectionWords int
	minUnitWords    int
	shuffleSeed     int64
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Run one full corpus build",
	RunE:  runBuild,
}

func init() {
	f := buildCmd.Flags()
	f.StringVar(&buildFlags.configPath, "config", "", "YAML config path (default: $PROSECORPUS_CONFIG)")
	f.StringVar(&buildFlags.manifest, "manifest", "", "work manifest path")
	f.StringVar(&buildFlags.cacheDir, "cache-dir", "", "cache directory for downloaded source text")
	f.StringVar(&buildFlags.outputDir, "output-dir", "", "directory for tier files")
	f.StringVar(&buildFlags.outputPrefix, "output-prefix", "", "output prefix for tier files")
	f.StringVar(&buildFlags.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	f.IntVar(&buildFlags.targetWords, "target-words", 0, "soft per-unit word target")
	f.IntVar(&buildFlags.maxWords, "max-words", 0, "hard per-unit word limit")
	f.IntVar(&buildFlags.minWords, "min-words", 0, "preferred minimum unit size before merge")
	f.IntVar(&buildFlags.minSectionWords, "min-section-words", 0, "minimum section size retained after heading split")
	f.IntVar(&buildFlags.minUnitWords, "min-unit-words", 0, "minimum output unit size")
	f.Int64Var(&buildFlags.shuffleSeed, "shuffle-seed", 0, "deterministic shuffle seed before tiering")

	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, _ []string) error {
	cfg := config.Load(buildFlags.configPath)
	applyFlagOverrides(cmd, &cfg)

	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.New(cfg.Logging.Level)
	application := app.New(cfg, logger)

	if err := application.Run(context.Background()); err != nil {
		logger.Error("corpus build failed", "error", err)
		return err
	}
	return nil
}

// applyFlagOverrides layers explicitly set flags over config-file and env
// values; unset flags leave the loaded config untouched.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("manifest") {
		cfg.Manifest = buildFlags.manifest
	}
	if f.Changed("cache-dir") {
		cfg.Cache.Dir = buildFlags.cacheDir
	}
	if f.Changed("output-dir") {
		cfg.Output.Dir = buildFlags.outputDir
	}
	if f.Changed("output-prefix") {
		cfg.Output.Prefix = buildFlags.outputPrefix
	}
	if f.Changed("log-level") {
		cfg.Logging.Level = buildFlags.logLevel
	}
	if f.Changed("target-words") {
		cfg.Units.TargetWords = buildFlags.targetWords
	}
	if f.Changed("max-words") {
		cfg.Units.MaxWords = buildFlags.maxWords
	}
	if f.Changed("min-words") {
		cfg.Units.MinWords = buildFlags.minWords
	}
	if f.Changed("min-section-words") {
		cfg.Units.MinSectionWords = buildFlags.minSectionWords
	}
	if f.Changed("min-unit-words") {
		cfg.Units.MinUnitWords = buildFlags.minUnitWords
	}
	if f.Changed("shuffle-seed") {
		seed := buildFlags.shuffleSeed
		cfg.Units.ShuffleSeed = &seed
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
