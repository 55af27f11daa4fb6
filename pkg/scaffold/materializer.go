// Package scaffold materializes a template's path entries into a target
// directory and runs its post-creation hooks. Failures are scoped to the
// smallest unit possible: one path entry or one hook command never aborts
// its siblings.
package scaffold

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/inizio/initt/pkg/catalog"
	"github.com/inizio/initt/pkg/logging"
)

// FragmentRenderer is the slice of the content-rendering capability the
// materializer needs. A nil renderer (or one without a fragment set for the
// template) means file entries are created empty.
type FragmentRenderer interface {
	HasSet(template string) bool
	Render(template, basename string, data any) string
}

// Option configures a Creator.
type Option func(*Creator)

// WithFragments sets the fragment renderer consulted for file content.
func WithFragments(fragments FragmentRenderer) Option {
	return func(c *Creator) {
		c.fragments = fragments
	}
}

// WithLogger sets the sink progress is reported to.
func WithLogger(logger logging.Logger) Option {
	return func(c *Creator) {
		c.logger = logging.OrNop(logger)
	}
}

// WithShell overrides the shell hooks run through (default "sh").
func WithShell(shell string) Option {
	return func(c *Creator) {
		if strings.TrimSpace(shell) != "" {
			c.shell = shell
		}
	}
}

// Creator materializes template definitions.
type Creator struct {
	fragments FragmentRenderer
	logger    logging.Logger
	shell     string
}

// NewCreator builds a Creator with the given options.
func NewCreator(opts ...Option) *Creator {
	c := &Creator{
		logger: logging.Nop{},
		shell:  "sh",
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

// Create materializes the template under basePath and, when at least one
// entry succeeded, runs its hooks. Hook failures degrade the result but
// never fail it.
func (c *Creator) Create(ctx context.Context, def catalog.Definition, basePath string, values catalog.Context) ProjectResult {
	result := ProjectResult{
		Template: def.Name,
		BasePath: basePath,
		Entries:  c.Materialize(def, basePath, values),
		HooksOK:  true,
	}
	if result.Success() {
		result.Hooks, result.HooksOK = c.RunHooks(ctx, def, basePath, values)
		if !result.HooksOK {
			logging.Warningf(c.logger, "Hooks", "Some hooks failed to execute")
		}
	}
	return result
}

// Materialize processes the template's path entries in declared order.
// Entries resolve independently: a missing parameter or I/O failure records
// a failure for that entry and processing continues.
func (c *Creator) Materialize(def catalog.Definition, basePath string, values catalog.Context) []CreationResult {
	results := make([]CreationResult, 0, len(def.Project))
	hasSet := c.fragments != nil && c.fragments.HasSet(def.Name)

	for _, pattern := range def.Project {
		entry := CreationResult{Pattern: pattern}

		relative, err := expand(pattern, values)
		if err != nil {
			entry.Status = StatusFailed
			entry.Err = err
			logging.Errorf(c.logger, "Format", "%v", err)
			results = append(results, entry)
			continue
		}
		entry.Path = filepath.Join(basePath, relative)
		entry.Dir = isDirEntry(entry.Path)

		if entry.Dir {
			if err := os.MkdirAll(entry.Path, 0o755); err != nil {
				entry.Status = StatusFailed
				entry.Err = fmt.Errorf("scaffold: create directory %s: %w", entry.Path, err)
				logging.Errorf(c.logger, "Create", "%v", entry.Err)
			} else {
				entry.Status = StatusCreated
				logging.Directory(c.logger, entry.Path)
			}
			results = append(results, entry)
			continue
		}

		entry.Status, entry.Err = c.createFile(def.Name, entry.Path, values, hasSet)
		results = append(results, entry)
	}
	return results
}

func (c *Creator) createFile(template, path string, values catalog.Context, hasSet bool) (CreationStatus, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		wrapped := fmt.Errorf("scaffold: create parent directory for %s: %w", path, err)
		logging.Errorf(c.logger, "Create", "%v", wrapped)
		return StatusFailed, wrapped
	}

	// Templates without a fragment set offer a bare skeleton: every file
	// entry becomes an empty file.
	if !hasSet {
		if err := os.WriteFile(path, nil, 0o644); err != nil {
			wrapped := fmt.Errorf("scaffold: create file %s: %w", path, err)
			logging.Errorf(c.logger, "Create", "%v", wrapped)
			return StatusFailed, wrapped
		}
		logging.File(c.logger, path)
		return StatusCreated, nil
	}

	content := c.fragments.Render(template, filepath.Base(path), map[string]any(values))
	if content == "" {
		return StatusSkipped, nil
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		wrapped := fmt.Errorf("scaffold: write file %s: %w", path, err)
		logging.Errorf(c.logger, "Create", "%v", wrapped)
		return StatusFailed, wrapped
	}
	logging.File(c.logger, path)
	return StatusCreated, nil
}

// isDirEntry applies the classification heuristic: a final path segment
// without a "." is a directory. Directory names containing a literal dot
// misclassify as files; kept for compatibility with existing templates.
func isDirEntry(path string) bool {
	return !strings.Contains(filepath.Base(path), ".")
}
