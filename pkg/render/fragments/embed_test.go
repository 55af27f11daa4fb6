package fragments

import (
	"io/fs"
	"testing"
)

func TestBuiltinBundleLayout(t *testing.T) {
	fsys := FS()

	for _, name := range []string{
		"python/__init__.py.tpl",
		"python/cmdline.py.tpl",
		"python/pyproject.toml.tpl",
		"python/README.md.tpl",
		"python/requirements.txt.tpl",
		"python/.gitignore.tpl",
		"nodejs/tsconfig.json.tpl",
		"nodejs/package.json.tpl",
		"nodejs/index.ts.tpl",
		"nodejs/.gitignore.tpl",
	} {
		if _, err := fs.Stat(fsys, name); err != nil {
			t.Errorf("missing builtin fragment %s: %v", name, err)
		}
	}

	// Directory-skeleton templates ship no fragments.
	for _, template := range []string{"swift", "react", "flutter", "android"} {
		if _, err := fs.Stat(fsys, template); err == nil {
			t.Errorf("unexpected fragment directory for %s", template)
		}
	}
}
