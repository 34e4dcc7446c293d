// Package overview builds the marked-text outline buffer and resolves
// outline entries back to offsets in the source document.
//
// The outline is a process-wide singleton with a fixed buffer name. Every
// generation fully replaces its content; there is no incremental update.
// The outline's reference to its source buffer is advisory: the source may
// be edited or killed freely, and staleness surfaces only at jump time.
package overview

import (
	"marko/internal/buffer"
	"marko/internal/extract"
)

// Name is the fixed name of the singleton outline buffer.
const Name = "*marked text*"

// TagSourcePos is the tag key carrying an outline entry's source offset.
const TagSourcePos = "marked-source-pos"

// Presenter is the host display surface. Present arranges the source and
// outline side by side after a build; Reveal focuses the source at a jump
// target and uncovers the surrounding context.
type Presenter interface {
	Present(src, outline *buffer.Buffer)
	Reveal(src *buffer.Buffer, offset int)
}

// Options carry the configurable pieces of the rendered outline.
type Options struct {
	Title  string
	Bullet string
}

func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = "Marked text"
	}
	if o.Bullet == "" {
		o.Bullet = "-"
	}
	return o
}

// Mode is the marked-text-overview mode: at most one outline over one
// source buffer at a time.
type Mode struct {
	reg        *buffer.Registry
	presenter  Presenter
	opts       Options
	sourceName string
	enabled    bool
}

// NewMode creates the mode against a buffer registry and a host presenter.
func NewMode(reg *buffer.Registry, p Presenter, opts Options) *Mode {
	return &Mode{reg: reg, presenter: p, opts: opts}
}

// Enabled reports whether the mode currently holds an outline.
func (m *Mode) Enabled() bool { return m.enabled }

// Outline returns the singleton outline buffer if it exists.
func (m *Mode) Outline() (*buffer.Buffer, bool) {
	return m.reg.Lookup(Name)
}

// Enable runs a full extraction over src and builds the outline. On an
// unsupported document kind nothing is created and the error is returned.
func (m *Mode) Enable(src *buffer.Buffer) error {
	if err := m.rebuild(src); err != nil {
		return err
	}
	m.enabled = true
	return nil
}

// Disable destroys the outline singleton and forgets the source binding.
func (m *Mode) Disable() {
	m.reg.Kill(Name)
	m.sourceName = ""
	m.enabled = false
}

// Refresh re-runs extraction over the bound source and regenerates the
// outline in place. Refreshing twice in a row is idempotent.
func (m *Mode) Refresh() error {
	if m.sourceName == "" {
		return ErrSourceNotSet
	}
	src, ok := m.reg.Lookup(m.sourceName)
	if !ok || !src.Live() {
		return ErrSourceGone
	}
	return m.rebuild(src)
}

// rebuild fully regenerates the outline from src. Extraction is
// all-or-nothing: on error no buffer content changes. The read-only flag is
// restored as the final step, after every write.
func (m *Mode) rebuild(src *buffer.Buffer) error {
	spans, err := extract.Extract(src.Contents(), extract.DialectFor(src.Mode()))
	if err != nil {
		return err
	}

	out := m.reg.GetOrCreate(Name)
	out.SetReadOnly(false)
	out.Erase()
	out.SetMode(src.Mode())

	opts := m.opts.withDefaults()
	out.Append(titleLine(src.Mode(), opts.Title))
	for _, sp := range spans {
		lineStart := out.Len()
		out.Append(opts.Bullet + " ")
		out.Append(sp.Clean)
		out.AddTag(lineStart, out.Len(), TagSourcePos, sp.Offset)
		out.Append("\n")
	}

	out.SetCursor(0)
	m.sourceName = src.Name()
	out.SetReadOnly(true)

	if m.presenter != nil {
		m.presenter.Present(src, out)
	}
	return nil
}

// titleLine renders the fixed header in the source's own markup so the
// outline reads consistently next to it.
func titleLine(mode, title string) string {
	if extract.DialectFor(mode) == extract.DialectStructured {
		return "* " + title + "\n\n"
	}
	return "# " + title + "\n\n"
}
