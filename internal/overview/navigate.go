package overview

import "errors"

// Navigation failures. All three are non-fatal: they are shown to the user
// as a short message and the mode stays active.
var (
	// ErrNoPositionFound: the outline line under point carries no source
	// position tag (the header, a blank line, or a line past the entries).
	ErrNoPositionFound = errors.New("no source position on this line")
	// ErrSourceNotSet: the outline exists but was never bound to a source.
	ErrSourceNotSet = errors.New("source buffer not set")
	// ErrSourceGone: the bound source buffer has been killed since the
	// outline was built.
	ErrSourceGone = errors.New("source buffer no longer exists")
)

// Jump resolves the outline entry on the line containing point (an offset in
// the outline buffer) back to its source offset, moves the source cursor
// there, and asks the host to reveal it.
func (m *Mode) Jump(point int) error {
	out, ok := m.Outline()
	if !ok {
		return ErrNoPositionFound
	}
	lineStart, lineEnd := out.LineBounds(point)
	offset, ok := out.TagWithin(lineStart, lineEnd, TagSourcePos)
	if !ok {
		return ErrNoPositionFound
	}
	if m.sourceName == "" {
		return ErrSourceNotSet
	}
	src, ok := m.reg.Lookup(m.sourceName)
	if !ok || !src.Live() {
		return ErrSourceGone
	}
	src.SetCursor(offset)
	if m.presenter != nil {
		m.presenter.Reveal(src, offset)
	}
	return nil
}
