package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const overlayYAML = `templates:
  rust:
    project:
      - src/main.rs
      - Cargo.toml
      - .gitignore
    params:
      - type: text
        name: project_name
        message: What is your project named?
        default: my-app
    hook:
      - cargo build
  nodejs:
    project:
      - package.json
  deno:
    project:
      - main.ts
`

func TestParseOverlayKeepsFileOrder(t *testing.T) {
	defs, err := parseOverlay([]byte(overlayYAML))
	require.NoError(t, err)
	require.Len(t, defs, 3)

	assert.Equal(t, "rust", defs[0].Name)
	assert.Equal(t, "nodejs", defs[1].Name)
	assert.Equal(t, "deno", defs[2].Name)

	assert.Equal(t, []string{"src/main.rs", "Cargo.toml", ".gitignore"}, defs[0].Project)
	assert.Equal(t, []string{"cargo build"}, defs[0].Hooks)
	require.Len(t, defs[0].Params, 1)
	assert.Equal(t, KindText, defs[0].Params[0].Kind)
	assert.Equal(t, "my-app", defs[0].Params[0].Default)
}

func TestParseOverlayDefaultsParamKindToText(t *testing.T) {
	defs, err := parseOverlay([]byte(`templates:
  demo:
    project: [README.md]
    params:
      - name: project_name
`))
	require.NoError(t, err)
	require.Len(t, defs, 1)
	require.Len(t, defs[0].Params, 1)
	assert.Equal(t, KindText, defs[0].Params[0].Kind)
}

func TestParseOverlayRejectsNonMapping(t *testing.T) {
	_, err := parseOverlay([]byte("templates: [a, b]"))
	require.Error(t, err)
}

func TestParseOverlayEmptyDocument(t *testing.T) {
	defs, err := parseOverlay([]byte(""))
	require.NoError(t, err)
	assert.Empty(t, defs)
}

func TestLoadOverlayMissingFile(t *testing.T) {
	_, err := LoadOverlay(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadOverlayFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.yaml")
	require.NoError(t, os.WriteFile(path, []byte(overlayYAML), 0o644))

	defs, err := LoadOverlay(path)
	require.NoError(t, err)
	assert.Len(t, defs, 3)
}

func TestMergeReplacesInPlaceAndAppends(t *testing.T) {
	defs, err := parseOverlay([]byte(overlayYAML))
	require.NoError(t, err)

	merged, err := Merge(Builtin(), defs)
	require.NoError(t, err)

	want := []string{"python", "nodejs", "swift", "react", "flutter", "android", "rust", "deno"}
	assert.Equal(t, want, merged.Names())

	// The overlaid nodejs keeps its position but carries the user
	// definition.
	def, ok := merged.Lookup("nodejs")
	require.True(t, ok)
	assert.Equal(t, []string{"package.json"}, def.Project)
	assert.Empty(t, def.Hooks)
}

func TestMergeWithoutOverlays(t *testing.T) {
	merged, err := Merge(Builtin(), nil)
	require.NoError(t, err)
	assert.Equal(t, Builtin().Names(), merged.Names())
}
