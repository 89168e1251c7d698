package docgen

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/aymanbagabas/go-udiff"
	"github.com/jingkaihe/gha-docgen/pkg/action"
	"github.com/jingkaihe/gha-docgen/pkg/logger"
	"github.com/jingkaihe/gha-docgen/pkg/render"
	"github.com/pkg/errors"
	"github.com/rogpeppe/go-internal/lockedfile"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds how many documents are processed at once.
const DefaultConcurrency = 4

// Options configures a Runner.
type Options struct {
	// Dir is the directory relative paths are resolved against.
	Dir string
	// ActionPath is the metadata file. Empty means action.yml, then action.yaml.
	ActionPath string
	Style      render.Style
	// Files are target documents or glob patterns. Empty means README.md.
	Files    []string
	Excludes []string
	// Check reports out-of-date documents instead of writing them.
	Check bool
	// Diff records a unified diff for every changed document.
	Diff        bool
	Concurrency int
}

// DocumentResult describes what happened to one target document.
type DocumentResult struct {
	Path    string
	Markers int
	Changed bool
	Diff    string
}

// Result is the outcome of a successful run.
type Result struct {
	ActionPath string
	Action     *action.Action
	Documents  []DocumentResult
}

// Changed returns the paths of documents whose content changed.
func (r *Result) Changed() []string {
	var paths []string
	for _, d := range r.Documents {
		if d.Changed {
			paths = append(paths, d.Path)
		}
	}
	return paths
}

// Runner performs one documentation generation pass per Run call.
type Runner struct {
	opts Options
}

// NewRunner validates opts and fills in defaults.
func NewRunner(opts Options) (*Runner, error) {
	if opts.Dir == "" {
		opts.Dir = "."
	}
	if opts.Style == "" {
		opts.Style = render.DefaultStyle
	}
	if _, err := render.ParseStyle(string(opts.Style)); err != nil {
		return nil, err
	}
	if len(opts.Files) == 0 {
		opts.Files = []string{DefaultTarget}
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}

	return &Runner{opts: opts}, nil
}

// Options returns the effective options of the runner.
func (r *Runner) Options() Options {
	return r.opts
}

// Run loads the action metadata, renders it once and updates every target
// document. Documents are processed concurrently; the first failure cancels
// the remaining work and is returned.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	a, actionPath, err := r.loadAction(ctx)
	if err != nil {
		return nil, err
	}

	fragments := render.Render(a, r.opts.Style)

	targets, err := ExpandTargets(r.opts.Dir, r.opts.Files, r.opts.Excludes)
	if err != nil {
		return nil, &Error{Kind: ErrReadDocument, Err: err}
	}

	result := &Result{
		ActionPath: actionPath,
		Action:     a,
		Documents:  make([]DocumentResult, len(targets)),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.Concurrency)
	for i, target := range targets {
		g.Go(func() error {
			doc, err := r.processDocument(gctx, target, fragments)
			if err != nil {
				return err
			}
			result.Documents[i] = *doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if r.opts.Check {
		if stale := result.Changed(); len(stale) > 0 {
			return result, &Error{Kind: ErrStaleDocuments, Err: errors.New(strings.Join(stale, ", "))}
		}
	}

	return result, nil
}

func (r *Runner) loadAction(ctx context.Context) (*action.Action, string, error) {
	data, path, err := action.Load(ctx, r.opts.Dir, r.opts.ActionPath)
	if err != nil {
		return nil, "", &Error{Kind: ErrReadAction, Path: r.opts.ActionPath, Err: err}
	}
	logger.G(ctx).WithField("path", path).Debug("found action file")

	a, err := action.Parse(data)
	if err != nil {
		logger.G(ctx).WithError(err).Debug("action file rejected")
		return nil, "", &Error{Kind: ErrParseAction, Path: path, Err: err}
	}

	return a, path, nil
}

func (r *Runner) resolve(target string) string {
	if filepath.IsAbs(target) {
		return target
	}
	return filepath.Join(r.opts.Dir, target)
}

func (r *Runner) processDocument(ctx context.Context, target string, f render.Fragments) (*DocumentResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := r.resolve(target)
	log := logger.G(ctx).WithField("document", path)

	log.Debug("reading markdown file")
	data, err := lockedfile.Read(path)
	if err != nil {
		return nil, &Error{Kind: ErrReadDocument, Path: target, Err: errors.WithStack(err)}
	}

	before := string(data)
	after := Generate(before, f)
	res := &DocumentResult{
		Path:    target,
		Markers: CountMarkers(before),
		Changed: after != before,
	}

	log.WithFields(logrus.Fields{
		"markers":      res.Markers,
		"before_bytes": len(before),
		"after_bytes":  len(after),
		"changed":      res.Changed,
	}).Debug("generated docs")

	if !res.Changed {
		return res, nil
	}
	if r.opts.Diff || r.opts.Check {
		res.Diff = udiff.Unified(target, target, before, after)
	}
	if r.opts.Check {
		return res, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := writeDocument(path, after); err != nil {
		return nil, &Error{Kind: ErrWriteDocument, Path: target, Err: err}
	}
	log.Debug("wrote markdown file")

	return res, nil
}

// writeDocument replaces the content of an existing document, keeping its
// permissions.
func writeDocument(path, content string) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.WithStack(err)
	}
	if err := lockedfile.Write(path, strings.NewReader(content), info.Mode().Perm()); err != nil {
		return errors.WithStack(err)
	}
	return nil
}
