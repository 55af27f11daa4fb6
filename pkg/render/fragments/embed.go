// Package fragments ships the builtin content fragments, one directory per
// template name, each fragment named "<basename>.tpl".
package fragments

import (
	"embed"
	"io/fs"
)

//go:embed all:templates
var embedded embed.FS

// FS exposes the builtin fragment bundle rooted at the template directories.
func FS() fs.FS {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		return embedded
	}
	return sub
}
