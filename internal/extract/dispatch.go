package extract

import "errors"

// ErrUnsupportedKind reports a document whose editing mode maps to no
// extraction dialect. The command that hit it is aborted with no state
// change.
var ErrUnsupportedKind = errors.New("unsupported document kind")

// Dialect selects the extraction strategy for a document.
type Dialect int

const (
	DialectUnsupported Dialect = iota
	DialectStructured          // element tree parse (Org)
	DialectLightweight         // per-style pattern scans (Markdown)
)

// Extract returns every marked span of text for the given dialect, in the
// dialect's documented order: document order for the structured path,
// style-grouped order for the lightweight path.
func Extract(text string, d Dialect) ([]MarkedSpan, error) {
	switch d {
	case DialectStructured:
		return extractStructured(text), nil
	case DialectLightweight:
		return extractByPattern(text), nil
	default:
		return nil, ErrUnsupportedKind
	}
}
