package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	initt "github.com/inizio/initt"
)

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	rootCmd.SetArgs([]string{"version"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), initt.Version)
}

func TestLoadCatalogWithoutOverlay(t *testing.T) {
	templatesFile = ""
	cat, err := loadCatalog()
	require.NoError(t, err)
	assert.Equal(t, initt.DefaultCatalog().Names(), cat.Names())
}

func TestLoadCatalogWithOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`templates:
  rust:
    project: [Cargo.toml, src/main.rs]
`), 0o644))

	templatesFile = path
	t.Cleanup(func() { templatesFile = "" })

	cat, err := loadCatalog()
	require.NoError(t, err)
	assert.Contains(t, cat.Names(), "rust")

	def, ok := cat.Lookup("rust")
	require.True(t, ok)
	assert.Equal(t, []string{"Cargo.toml", "src/main.rs"}, def.Project)
}

func TestLoadCatalogOverlayMissingFile(t *testing.T) {
	templatesFile = filepath.Join(t.TempDir(), "nope.yaml")
	t.Cleanup(func() { templatesFile = "" })

	_, err := loadCatalog()
	require.Error(t, err)
}
