// Package initt scaffolds new projects from a catalog of named templates:
// collect a few parameters, materialize a directory/file skeleton (rendering
// file contents from optional fragments), then run the template's
// post-creation shell hooks.
package initt

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/inizio/initt/pkg/catalog"
	"github.com/inizio/initt/pkg/logging"
	"github.com/inizio/initt/pkg/render"
	"github.com/inizio/initt/pkg/render/fragments"
	"github.com/inizio/initt/pkg/render/pongo"
	"github.com/inizio/initt/pkg/scaffold"
)

// Version is the tool version reported by the CLI.
const Version = "0.1.0"

// Option configures project creation.
type Option func(*config)

type config struct {
	catalog     *catalog.Catalog
	fragmentsFS fs.FS
	logger      logging.Logger
	shell       string
}

// WithCatalog replaces the builtin template catalog.
func WithCatalog(c *catalog.Catalog) Option {
	return func(cfg *config) {
		if c != nil {
			cfg.catalog = c
		}
	}
}

// WithFragmentsFS replaces the builtin fragment bundle.
func WithFragmentsFS(fsys fs.FS) Option {
	return func(cfg *config) {
		if fsys != nil {
			cfg.fragmentsFS = fsys
		}
	}
}

// WithLogger sets the sink progress is reported to.
func WithLogger(logger logging.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logging.OrNop(logger)
	}
}

// WithShell overrides the shell hook commands run through.
func WithShell(shell string) Option {
	return func(cfg *config) {
		cfg.shell = shell
	}
}

// DefaultCatalog returns the compiled-in template table.
func DefaultCatalog() *catalog.Catalog {
	return catalog.Builtin()
}

// NewCreator wires a scaffold.Creator over the configured fragment bundle.
func NewCreator(opts ...Option) (*scaffold.Creator, error) {
	cfg := apply(opts)
	engine, err := pongo.New(pongo.WithFS(cfg.fragmentsFS))
	if err != nil {
		return nil, fmt.Errorf("initt: build render engine: %w", err)
	}
	store := render.NewFragmentStore(cfg.fragmentsFS, engine, render.WithLogger(cfg.logger))
	return scaffold.NewCreator(
		scaffold.WithFragments(store),
		scaffold.WithLogger(cfg.logger),
		scaffold.WithShell(cfg.shell),
	), nil
}

// CreateProject materializes the named template under basePath with the
// given parameter values and runs its hooks. It is the simplest entry point
// for callers that already hold a parameter context.
func CreateProject(ctx context.Context, template, basePath string, values catalog.Context, opts ...Option) (scaffold.ProjectResult, error) {
	cfg := apply(opts)
	def, ok := cfg.catalog.Lookup(template)
	if !ok {
		return scaffold.ProjectResult{}, fmt.Errorf("initt: unsupported template type: %q", template)
	}
	creator, err := NewCreator(opts...)
	if err != nil {
		return scaffold.ProjectResult{}, err
	}
	return creator.Create(ctx, def, basePath, values), nil
}

func apply(opts []Option) *config {
	cfg := &config{
		catalog:     catalog.Builtin(),
		fragmentsFS: fragments.FS(),
		logger:      logging.Nop{},
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(cfg)
	}
	return cfg
}
