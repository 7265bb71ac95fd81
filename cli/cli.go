// Package cli implements the shapecheck command line.
package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/reoring/shapecheck/i18n"
	"github.com/reoring/shapecheck/internal/config"
	"github.com/reoring/shapecheck/internal/logger"
	"github.com/reoring/shapecheck/registry"
)

const name = "shapecheck"

// ErrInvalidDocuments is returned by check when at least one document fails
// validation or cannot be loaded.
var ErrInvalidDocuments = errors.New("one or more documents are invalid")

// Option configures the command built by New.
type Option func(*app)

// WithConfig replaces the default configuration. Flags still override it.
func WithConfig(cfg config.Config) Option {
	return func(a *app) { a.cfg = cfg }
}

// WithLogOutput sends log records to w instead of stderr.
func WithLogOutput(w io.Writer) Option {
	return func(a *app) { a.logOut = w }
}

type app struct {
	reg    *registry.Registry
	cfg    config.Config
	logOut io.Writer
	log    *slog.Logger
}

// New builds the root command over the schemas in reg.
func New(reg *registry.Registry, version string, opts ...Option) *cli.Command {
	a := &app{reg: reg, cfg: config.Default(), log: slog.Default()}
	for _, opt := range opts {
		opt(a)
	}
	return &cli.Command{
		Name:                  name,
		Version:               version,
		Usage:                 "Validate JSON and YAML documents against named structural schemas",
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Value: a.cfg.LogLevel,
				Usage: "log level (debug, info, warn, error)",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Value: a.cfg.LogFormat,
				Usage: "log format (text, json)",
			},
			&cli.StringFlag{
				Name:  "lang",
				Value: a.cfg.Lang,
				Usage: "language of validation messages (BCP 47 tag)",
			},
		},
		Before: a.before,
		Commands: []*cli.Command{
			a.checkCmd(),
			a.schemasCmd(),
		},
	}
}

func (a *app) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	level, err := logger.ParseLevel(cmd.String("log-level"))
	if err != nil {
		return ctx, err
	}
	format, err := logger.ParseFormat(cmd.String("log-format"))
	if err != nil {
		return ctx, err
	}
	a.log = logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(a.logOut),
		logger.WithAttr(slog.String("app", name)),
	)
	i18n.SetLanguage(cmd.String("lang"))
	return ctx, nil
}
