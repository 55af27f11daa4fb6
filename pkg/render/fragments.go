// Package render resolves optional content fragments for scaffolded files.
// Each template may ship a fragment directory named after it; a file entry's
// content comes from "<template>/<basename>.tpl". Absence of a fragment is
// never an error: the caller treats empty output as "nothing to render".
package render

import (
	"io/fs"
	"strings"

	"github.com/inizio/initt/pkg/logging"
)

// DefaultExtension is the suffix appended to a file's basename when looking
// up its fragment.
const DefaultExtension = ".tpl"

// StoreOption configures a FragmentStore.
type StoreOption func(*FragmentStore)

// WithExtension overrides the fragment filename suffix.
func WithExtension(ext string) StoreOption {
	return func(s *FragmentStore) {
		trimmed := strings.TrimSpace(ext)
		if trimmed == "" {
			return
		}
		if !strings.HasPrefix(trimmed, ".") {
			trimmed = "." + trimmed
		}
		s.ext = trimmed
	}
}

// WithLogger sets the sink render warnings are reported to.
func WithLogger(logger logging.Logger) StoreOption {
	return func(s *FragmentStore) {
		s.logger = logging.OrNop(logger)
	}
}

// FragmentStore looks up and renders fragments from a filesystem laid out as
// one directory per template name. The engine is expected to load templates
// from the same filesystem.
type FragmentStore struct {
	fsys   fs.FS
	engine TemplateRenderer
	ext    string
	logger logging.Logger
}

// NewFragmentStore builds a store over fsys rendering through engine.
func NewFragmentStore(fsys fs.FS, engine TemplateRenderer, opts ...StoreOption) *FragmentStore {
	s := &FragmentStore{
		fsys:   fsys,
		engine: engine,
		ext:    DefaultExtension,
		logger: logging.Nop{},
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

// HasSet reports whether a fragment directory exists for the template.
// Templates without one offer a bare skeleton: their file entries are
// created empty instead of being rendered.
func (s *FragmentStore) HasSet(template string) bool {
	if s == nil || s.fsys == nil {
		return false
	}
	info, err := fs.Stat(s.fsys, template)
	return err == nil && info.IsDir()
}

// Render resolves the fragment for basename within the template's fragment
// directory and renders it with data. A missing fragment yields ""; a
// rendering failure is logged as a warning and also yields "". Errors never
// propagate to the caller.
func (s *FragmentStore) Render(template, basename string, data any) string {
	if s == nil || s.fsys == nil || s.engine == nil {
		return ""
	}
	name := template + "/" + basename + s.ext
	if _, err := fs.Stat(s.fsys, name); err != nil {
		logging.Warningf(s.logger, "Skip", "Fragment not found: %s", name)
		return ""
	}
	content, err := s.engine.RenderTemplate(template+"/"+basename, data)
	if err != nil {
		logging.Errorf(s.logger, "Render", "Failed to render fragment %s: %v", name, err)
		return ""
	}
	return content
}
