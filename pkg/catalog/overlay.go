package catalog

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// overlayParam mirrors the params entries of the original table format.
type overlayParam struct {
	Type    string   `yaml:"type"`
	Name    string   `yaml:"name"`
	Message string   `yaml:"message"`
	Default any      `yaml:"default"`
	Choices []string `yaml:"choices"`
}

type overlayDef struct {
	Project []string       `yaml:"project"`
	Params  []overlayParam `yaml:"params"`
	Hook    []string       `yaml:"hook"`
}

type overlayFile struct {
	// Decoded as a raw node so user templates keep their file order; a
	// plain map would shuffle them.
	Templates yaml.Node `yaml:"templates"`
}

// LoadOverlay reads user template definitions from a YAML file. The format
// matches the builtin table: a templates mapping keyed by name, each entry
// carrying project, params, and hook lists.
func LoadOverlay(path string) ([]Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read overlay: %w", err)
	}
	return parseOverlay(data)
}

func parseOverlay(data []byte) ([]Definition, error) {
	var file overlayFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("catalog: parse overlay: %w", err)
	}
	if file.Templates.Kind == 0 {
		return nil, nil
	}
	if file.Templates.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("catalog: overlay templates must be a mapping")
	}

	var defs []Definition
	content := file.Templates.Content
	for i := 0; i+1 < len(content); i += 2 {
		name := content[i].Value
		var raw overlayDef
		if err := content[i+1].Decode(&raw); err != nil {
			return nil, fmt.Errorf("catalog: overlay template %q: %w", name, err)
		}
		def := Definition{
			Name:    name,
			Project: raw.Project,
			Hooks:   raw.Hook,
		}
		for _, p := range raw.Params {
			kind := Kind(p.Type)
			if p.Type == "" {
				kind = KindText
			}
			def.Params = append(def.Params, ParamSpec{
				Kind:    kind,
				Name:    p.Name,
				Message: p.Message,
				Default: p.Default,
				Choices: p.Choices,
			})
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// Merge layers overlay definitions over a base catalog. An overlay entry
// whose name matches a base template replaces it in place; new entries are
// appended in overlay order.
func Merge(base *Catalog, overlays []Definition) (*Catalog, error) {
	merged := make([]Definition, 0, base.Len()+len(overlays))
	replaced := make(map[string]Definition, len(overlays))
	var added []Definition
	for _, def := range overlays {
		if _, ok := base.Lookup(def.Name); ok {
			replaced[strings.ToLower(strings.TrimSpace(def.Name))] = def
		} else {
			added = append(added, def)
		}
	}
	for _, name := range base.Names() {
		if def, ok := replaced[name]; ok {
			merged = append(merged, def)
			continue
		}
		def, _ := base.Lookup(name)
		merged = append(merged, def)
	}
	merged = append(merged, added...)
	return New(merged...)
}
