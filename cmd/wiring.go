package cmd

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/eykd/fmlint/internal/config"
	"github.com/eykd/fmlint/internal/fs"
	"github.com/eykd/fmlint/internal/lint"
)

// Linter abstracts the lint.Service methods used by commands.
type Linter interface {
	Run(ctx context.Context) (*lint.Report, error)
	Tags(ctx context.Context) (*lint.TagUsage, error)
}

// LinterFactory builds a Linter for a resolved configuration.
type LinterFactory func(cfg config.Config, logger zerolog.Logger) Linter

// newLinter wires a lint.Service to the filesystem.
func newLinter(cfg config.Config, logger zerolog.Logger) Linter {
	return lint.NewService(
		&fs.DocumentWalker{Root: cfg.Root, Ext: cfg.Ext, Log: logger},
		fs.OSContentReader{},
		lint.WithJobs(cfg.Jobs),
		lint.WithLogger(logger),
	)
}

// newLogger returns a console logger on w. Debug output is enabled only
// when verbose is set.
func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: !isTerminal(w)}).
		Level(level).
		With().Timestamp().Logger()
}

// sweepFlags holds the flags shared by commands that walk the collection.
type sweepFlags struct {
	ext        string
	jobs       int
	jsonOutput bool
}

func (f *sweepFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.ext, "ext", config.DefaultExt, "File extension of documents to check")
	cmd.Flags().IntVarP(&f.jobs, "jobs", "j", config.DefaultJobs, "Number of documents to check concurrently")
	cmd.Flags().BoolVar(&f.jsonOutput, "json", false, "Output results as JSON")
}

// resolveConfig merges .env, the environment, flags and the optional root
// argument, in increasing precedence, and validates the result.
func (f *sweepFlags) resolveConfig(cmd *cobra.Command, args []string) (config.Config, error) {
	if err := config.LoadDotenv(); err != nil {
		return config.Config{}, err
	}
	cfg, err := config.FromEnv(os.Getenv)
	if err != nil {
		return config.Config{}, err
	}
	if len(args) > 0 {
		cfg.Root = args[0]
	}
	if cmd.Flags().Changed("ext") {
		cfg.Ext = f.ext
	}
	if cmd.Flags().Changed("jobs") {
		cfg.Jobs = f.jobs
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// linterFor resolves configuration and builds a Linter for cmd.
func (f *sweepFlags) linterFor(cmd *cobra.Command, args []string, factory LinterFactory) (Linter, error) {
	cfg, err := f.resolveConfig(cmd, args)
	if err != nil {
		return nil, err
	}
	logger := newLogger(cmd.ErrOrStderr(), GetVerbose())
	logger.Debug().Str("root", cfg.Root).Str("ext", cfg.Ext).Int("jobs", cfg.Jobs).Msg("resolved configuration")
	return factory(cfg, logger), nil
}
