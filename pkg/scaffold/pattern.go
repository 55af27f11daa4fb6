package scaffold

import (
	"fmt"
	"regexp"

	"github.com/inizio/initt/pkg/catalog"
)

var placeholderRe = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// expand substitutes every {name} token in pattern from values. A token
// whose name has no entry fails the whole pattern, so callers can scope the
// failure to a single path entry or hook command.
func expand(pattern string, values catalog.Context) (string, error) {
	var missing string
	out := placeholderRe.ReplaceAllStringFunc(pattern, func(token string) string {
		name := token[1 : len(token)-1]
		value, ok := values[name]
		if !ok {
			if missing == "" {
				missing = name
			}
			return token
		}
		return fmt.Sprintf("%v", value)
	})
	if missing != "" {
		return "", fmt.Errorf("scaffold: missing parameter %q in %q", missing, pattern)
	}
	return out, nil
}
