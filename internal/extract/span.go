// Package extract locates marked (emphasized) text spans in Org and Markdown
// documents and classifies them by style. Org documents go through the
// structural element parse; Markdown documents are scanned with one pattern
// per style.
package extract

// Style is the closed set of marked-text styles.
type Style int

const (
	StyleBold Style = iota
	StyleItalic
	StyleUnderline
	StyleStrike
	StyleCode
)

func (s Style) String() string {
	switch s {
	case StyleBold:
		return "bold"
	case StyleItalic:
		return "italic"
	case StyleUnderline:
		return "underline"
	case StyleStrike:
		return "strikethrough"
	case StyleCode:
		return "code"
	}
	return "unknown"
}

// MarkedSpan is one marked-text occurrence in a source document.
//
// Offset is a zero-based byte offset into the source content as it was at
// extraction time. It is a snapshot: later edits to the source are not
// tracked, and staleness is only discovered when a jump dereferences it.
type MarkedSpan struct {
	Style  Style
	Raw    string
	Clean  string
	Offset int
}
