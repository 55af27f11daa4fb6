package initt_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	initt "github.com/inizio/initt"
	"github.com/inizio/initt/pkg/catalog"
	"github.com/inizio/initt/pkg/testsupport"
)

func TestCreateProjectNodejsScenario(t *testing.T) {
	base := t.TempDir()

	// Same skeleton as the builtin nodejs template, with the yarn hooks
	// swapped for commands that are safe to execute in a test run.
	cat, err := catalog.New(catalog.Definition{
		Name:    "nodejs",
		Project: []string{"tsconfig.json", "package.json", "src/index.ts", ".gitignore"},
		Hooks:   []string{"pwd", "echo install {project_name}", "echo start"},
	})
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}

	result, err := initt.CreateProject(context.Background(), "nodejs", base,
		catalog.Context{"project_name": "demo"}, initt.WithCatalog(cat))
	if err != nil {
		t.Fatalf("create project: %v", err)
	}

	if !result.Success() {
		t.Fatalf("expected success: %+v", result.Entries)
	}
	for _, name := range []string{"tsconfig.json", "package.json", ".gitignore"} {
		if !testsupport.Exists(base, name) {
			t.Errorf("missing %s", name)
		}
	}
	if !testsupport.Exists(base, "src", "index.ts") {
		t.Errorf("missing src/index.ts")
	}

	if got := testsupport.ReadFile(t, base, "package.json"); !strings.Contains(got, `"name": "demo"`) {
		t.Errorf("package.json not rendered with project name: %q", got)
	}

	if len(result.Hooks) != 3 {
		t.Fatalf("expected 3 hooks, got %d", len(result.Hooks))
	}
	if !result.HooksOK {
		t.Errorf("hooks should pass: %+v", result.Hooks)
	}
	wd, err := filepath.EvalSymlinks(strings.TrimSpace(result.Hooks[0].Stdout))
	if err != nil {
		t.Fatalf("eval hook wd: %v", err)
	}
	want, err := filepath.EvalSymlinks(base)
	if err != nil {
		t.Fatalf("eval base: %v", err)
	}
	if wd != want {
		t.Errorf("hooks ran in %q, want %q", wd, want)
	}
	if got := strings.TrimSpace(result.Hooks[1].Stdout); got != "install demo" {
		t.Errorf("hook output %q", got)
	}
}

func TestCreateProjectPythonRendersFragments(t *testing.T) {
	base := t.TempDir()

	result, err := initt.CreateProject(context.Background(), "python", base,
		catalog.Context{"project_name": "demo"})
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	if !result.Success() {
		t.Fatalf("expected success: %+v", result.Entries)
	}

	if got := testsupport.ReadFile(t, base, "pyproject.toml"); !strings.Contains(got, `name = "demo"`) {
		t.Errorf("pyproject.toml not rendered: %q", got)
	}
	if !testsupport.Exists(base, "demo", "cmdline.py") {
		t.Errorf("missing demo/cmdline.py")
	}
	if !testsupport.Exists(base, "demo", "templates") {
		t.Errorf("missing demo/templates directory")
	}
}

func TestCreateProjectDirectoryOnlyTemplate(t *testing.T) {
	base := t.TempDir()

	result, err := initt.CreateProject(context.Background(), "swift", base, nil)
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	if !result.Success() {
		t.Fatalf("expected success: %+v", result.Entries)
	}
	if !testsupport.Exists(base, "SwiftData", "Models") {
		t.Errorf("missing SwiftData/Models")
	}
	if len(result.Hooks) != 0 {
		t.Errorf("no hooks declared, none should run")
	}
}

func TestCreateProjectUnknownTemplate(t *testing.T) {
	_, err := initt.CreateProject(context.Background(), "rails", t.TempDir(), nil)
	if err == nil {
		t.Fatalf("expected error for unknown template")
	}
	if !strings.Contains(err.Error(), "unsupported template type") {
		t.Errorf("unexpected error %v", err)
	}
}

func TestCreateProjectLookupIgnoresCase(t *testing.T) {
	base := t.TempDir()
	result, err := initt.CreateProject(context.Background(), "React", base, nil)
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	if !result.Success() {
		t.Fatalf("expected success: %+v", result.Entries)
	}
}
