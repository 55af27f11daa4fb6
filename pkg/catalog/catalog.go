package catalog

import (
	"fmt"
	"strings"
)

// Kind selects the prompt style used to collect one parameter.
type Kind string

const (
	KindText    Kind = "text"
	KindSelect  Kind = "select"
	KindConfirm Kind = "confirm"
	KindPath    Kind = "path"
)

// ParamSpec describes one value a template collects before materializing.
// Default must be kind-appropriate: a string for text/select/path, a bool
// for confirm.
type ParamSpec struct {
	Kind    Kind
	Name    string
	Message string
	Default any
	Choices []string // select only
}

// Definition is one named scaffold: the paths to create, the parameters to
// collect, and the shell commands to run afterwards. Definitions are built
// once at startup and never mutated.
//
// Project entries and Hooks may contain {param} tokens that are expanded
// against the collected Context. An entry whose final path segment contains
// no "." is treated as a directory, anything else as a file. The heuristic
// misclassifies directory names that contain a literal dot; it is kept
// as-is for compatibility with existing templates.
type Definition struct {
	Name    string
	Project []string
	Params  []ParamSpec
	Hooks   []string
}

// Context holds the collected parameter values for one run, keyed by
// parameter name. Values are strings or bools depending on the prompt kind.
type Context map[string]any

// Catalog is an ordered, read-only set of template definitions keyed by
// name. Lookup is case-insensitive.
type Catalog struct {
	names  []string
	byName map[string]Definition
}

// New builds a catalog from the given definitions, preserving order and
// rejecting duplicate or empty names.
func New(defs ...Definition) (*Catalog, error) {
	c := &Catalog{byName: make(map[string]Definition, len(defs))}
	for _, def := range defs {
		key := strings.ToLower(strings.TrimSpace(def.Name))
		if key == "" {
			return nil, fmt.Errorf("catalog: definition with empty name")
		}
		if _, exists := c.byName[key]; exists {
			return nil, fmt.Errorf("catalog: duplicate template %q", def.Name)
		}
		c.names = append(c.names, key)
		c.byName[key] = def
	}
	return c, nil
}

// Names returns the template names in declaration order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Lookup resolves a template by name, ignoring case and surrounding
// whitespace.
func (c *Catalog) Lookup(name string) (Definition, bool) {
	def, ok := c.byName[strings.ToLower(strings.TrimSpace(name))]
	return def, ok
}

// Len reports the number of templates in the catalog.
func (c *Catalog) Len() int {
	return len(c.names)
}

// Builtin returns the compiled-in template table.
func Builtin() *Catalog {
	c, err := New(builtinDefs()...)
	if err != nil {
		// builtinDefs is static; a duplicate here is a programming error.
		panic(err)
	}
	return c
}

func builtinDefs() []Definition {
	return []Definition{
		{
			Name: "python",
			Project: []string{
				"{project_name}/__init__.py",
				"{project_name}/cmdline.py",
				"{project_name}/templates",
				".gitignore",
				"pyproject.toml",
				"README.md",
				"requirements.txt",
			},
			Params: []ParamSpec{
				{Kind: KindText, Name: "project_name", Message: "What is your project named?", Default: "my-app"},
			},
		},
		{
			Name: "nodejs",
			Project: []string{
				"tsconfig.json",
				"package.json",
				"src/index.ts",
				".gitignore",
			},
			Params: []ParamSpec{
				{Kind: KindText, Name: "project_name", Message: "What is your project named?", Default: "my-app"},
			},
			Hooks: []string{
				"yarn install",
				"yarn upgrade --latest",
				"yarn start",
			},
		},
		{
			Name: "swift",
			Project: []string{
				"Application",
				"Extensions",
				"Helpers",
				"Models",
				"Services",
				"ViewModels",
				"SwiftData/Models",
				"Views",
			},
		},
		{
			Name: "react",
			Project: []string{
				"models",
				"viewmodels",
				"views",
				"services",
				"hooks",
				"contexts",
				"types",
			},
		},
		{
			Name: "flutter",
			Project: []string{
				"models",
				"viewmodels",
				"views",
				"services",
				"repositories",
				"widgets",
				"utils",
			},
		},
		{
			Name: "android",
			Project: []string{
				"data/model",
				"data/remote",
				"data/local",
				"data/repository",
				"ui/screen",
				"ui/component",
				"ui/navigation",
				"di",
			},
		},
	}
}
