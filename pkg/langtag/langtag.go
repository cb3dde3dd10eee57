// Package langtag is the external-collaborator table lookup that maps a
// file extension to the closed Language set the structural resolver
// consumes.
package langtag

import (
	"path/filepath"
	"strings"

	"github.com/odvcencio/mergeengine/pkg/resolve"
)

// Detect maps path's final extension to a Language tag. An unrecognized
// or absent extension returns resolve.Unknown, which disables the
// structural strategy for that conflict.
func Detect(path string) resolve.Language {
	ext := strings.ToLower(filepath.Ext(path))
	ext = strings.TrimPrefix(ext, ".")

	switch ext {
	case "rs":
		return resolve.Rust
	case "go":
		return resolve.Go
	case "c", "h":
		return resolve.C
	case "java":
		return resolve.Java
	case "kt", "kts":
		return resolve.Kotlin
	case "js", "mjs":
		return resolve.JavaScript
	case "ts", "tsx":
		return resolve.TypeScript
	case "py":
		return resolve.Python
	case "toml":
		return resolve.Toml
	case "yml", "yaml":
		return resolve.Yaml
	default:
		return resolve.Unknown
	}
}
