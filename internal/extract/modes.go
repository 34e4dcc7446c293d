package extract

import (
	"path/filepath"
	"strings"
)

// Mode describes an editing mode a buffer can be in: a name, the file
// extensions that select it, and the extraction dialect it maps to.
type Mode struct {
	Name       string
	Extensions []string
	Dialect    Dialect
}

var registry []Mode

// Register adds a mode to the registry.
func Register(m Mode) {
	registry = append(registry, m)
}

func init() {
	Register(Mode{Name: "org", Extensions: []string{".org"}, Dialect: DialectStructured})
	Register(Mode{Name: "markdown", Extensions: []string{".md", ".markdown"}, Dialect: DialectLightweight})
}

// ModeForFile returns the registered mode name for a filename's extension,
// or "" when no mode claims it.
func ModeForFile(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, m := range registry {
		for _, e := range m.Extensions {
			if ext == e {
				return m.Name
			}
		}
	}
	return ""
}

// DialectFor maps an editing mode name to its extraction dialect. Unknown
// modes are unsupported; dialect is decided by the mode alone, never by
// sniffing content.
func DialectFor(mode string) Dialect {
	for _, m := range registry {
		if m.Name == mode {
			return m.Dialect
		}
	}
	return DialectUnsupported
}

// ModeNames returns the registered mode names with their extensions, for
// help text.
func ModeNames() []string {
	var out []string
	for _, m := range registry {
		out = append(out, m.Name+" ("+strings.Join(m.Extensions, ", ")+")")
	}
	return out
}
