package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/reoring/shapecheck"
	"github.com/reoring/shapecheck/internal/watch"
	"github.com/reoring/shapecheck/source"
)

const stdinPath = "-"

type outputFormat string

const (
	outputText outputFormat = "text"
	outputJSON outputFormat = "json"
)

// report is the outcome for one document, or for a file that failed to load.
type report struct {
	File     string   `json:"file"`
	Document int      `json:"document"`
	OK       bool     `json:"ok"`
	Message  string   `json:"message,omitempty"`
	Code     string   `json:"code,omitempty"`
	Pointer  string   `json:"pointer,omitempty"`
	Hints    []string `json:"hints,omitempty"`
	Error    string   `json:"error,omitempty"`
}

func (a *app) checkCmd() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Validate documents against a registered schema",
		ArgsUsage: "FILE... (use - for standard input)",
		Description: `Validate every document of every FILE against the schema named by --schema.

YAML files may hold several documents; each is reported separately.
The exit status is non-zero when any document fails.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "schema",
				Aliases:  []string{"s"},
				Required: true,
				Usage:    "registered schema name (see 'shapecheck schemas')",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "input format (json, yaml); detected from the file extension when empty",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   string(outputText),
				Usage:   "output format (text, json)",
			},
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "reject JSON documents with duplicate object keys",
			},
			&cli.BoolFlag{
				Name:    "watch",
				Aliases: []string{"w"},
				Usage:   "re-validate files when they change",
			},
		},
		Action: a.check,
	}
}

func (a *app) check(ctx context.Context, cmd *cli.Command) error {
	schema := cmd.String("schema")
	v, err := a.reg.Lookup(schema)
	if err != nil {
		return err
	}
	v = shapecheck.Traced(a.log, schema, v)

	var format source.Format
	if s := cmd.String("format"); s != "" {
		if format, err = source.ParseFormat(s); err != nil {
			return err
		}
	}

	out := outputFormat(cmd.String("output"))
	if out != outputText && out != outputJSON {
		return fmt.Errorf("unknown output format: %q, valid formats are: text, json", out)
	}

	files := cmd.Args().Slice()
	if len(files) == 0 {
		return errors.New("at least one FILE is required")
	}
	for _, f := range files {
		if f == stdinPath && format == "" {
			return errors.New("--format is required when reading standard input")
		}
	}

	c := &checker{
		validator: v,
		format:    format,
		jobs:      a.cfg.Jobs,
		stdin:     cmd.Root().Reader,
	}
	if cmd.Bool("strict") {
		c.opts = append(c.opts, source.Strict())
	}
	w := cmd.Root().Writer

	var mu sync.Mutex
	runOnce := func(files []string) (bool, error) {
		runID := uuid.NewString()
		log := a.log.With("run_id", runID, "schema", schema)
		start := time.Now()
		log.Debug("check started", "files", len(files))

		reports, err := c.run(ctx, files)
		if err != nil {
			return false, err
		}
		mu.Lock()
		defer mu.Unlock()
		failed, err := writeReports(w, out, reports)
		if err != nil {
			return failed, err
		}
		log.Info("check finished",
			"documents", len(reports),
			"failed", failed,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return failed, nil
	}

	failed, err := runOnce(files)
	if err != nil {
		return err
	}
	if !cmd.Bool("watch") {
		if failed {
			return ErrInvalidDocuments
		}
		return nil
	}

	watched := make([]string, 0, len(files))
	for _, f := range files {
		if f != stdinPath {
			watched = append(watched, f)
		}
	}
	if len(watched) == 0 {
		return errors.New("--watch needs at least one file that is not standard input")
	}

	return watch.Files(ctx, watched, a.cfg.Debounce, a.log, func(changed []string) {
		if _, err := runOnce(changed); err != nil && ctx.Err() == nil {
			a.log.Error("re-validation failed", "error", err)
		}
	})
}

type checker struct {
	validator shapecheck.Validator
	format    source.Format
	jobs      int
	stdin     io.Reader
	opts      []source.Option
}

// run validates files concurrently and returns their reports in argument
// order. Load failures become reports; only context cancellation is an error.
func (c *checker) run(ctx context.Context, files []string) ([]report, error) {
	results := make([][]report, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(c.jobs, 1))
	for i, f := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = c.file(f)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	var out []report
	for _, r := range results {
		out = append(out, r...)
	}
	return out, nil
}

func (c *checker) file(path string) []report {
	docs, err := c.load(path)
	if err != nil {
		return []report{{File: path, Error: err.Error()}}
	}
	reports := make([]report, len(docs))
	for i, d := range docs {
		res := c.validator.Validate(d.Value, nil)
		reports[i] = report{
			File:     path,
			Document: d.Index,
			OK:       res.OK,
			Message:  res.Message,
			Code:     res.Code,
			Pointer:  res.Path,
			Hints:    res.Hints,
		}
	}
	return reports
}

func (c *checker) load(path string) ([]source.Document, error) {
	if path != stdinPath {
		return source.Load(path, c.format, c.opts...)
	}
	values, err := source.Decode(c.format, c.stdin, c.opts...)
	if err != nil {
		return nil, fmt.Errorf("source: stdin: %w", err)
	}
	docs := make([]source.Document, len(values))
	for i, v := range values {
		docs[i] = source.Document{Path: path, Index: i, Value: v}
	}
	return docs, nil
}

// writeReports prints reports and reports whether any of them failed.
func writeReports(w io.Writer, format outputFormat, reports []report) (bool, error) {
	failed := false
	enc := json.NewEncoder(w)
	for _, r := range reports {
		if !r.OK {
			failed = true
		}
		if format == outputJSON {
			if err := enc.Encode(r); err != nil {
				return failed, fmt.Errorf("failed to encode report: %w", err)
			}
			continue
		}
		if _, err := io.WriteString(w, r.text()+"\n"); err != nil {
			return failed, err
		}
	}
	return failed, nil
}

func (r report) text() string {
	if r.Error != "" {
		return fmt.Sprintf("%s: error: %s", r.File, r.Error)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s#%d: ", r.File, r.Document)
	if r.OK {
		b.WriteString("ok")
		return b.String()
	}
	b.WriteString("FAIL")
	if r.Message != "" {
		b.WriteString(" " + r.Message)
	}
	if r.Pointer != "" {
		b.WriteString(" at " + r.Pointer)
	}
	for _, h := range r.Hints {
		b.WriteString(" (" + h + ")")
	}
	return b.String()
}
