// Package buffer is the small in-process buffer kernel the overview mode runs
// against: named buffers with content, cursor, editing mode, read-only flag,
// and key→value tags attached to character ranges.
package buffer

import (
	"errors"
	"strings"
)

// ErrReadOnly is returned by mutating operations on a read-only buffer.
var ErrReadOnly = errors.New("buffer is read-only")

// Buffer holds a single named document. Offsets are zero-based byte offsets
// into the current content.
type Buffer struct {
	name     string
	mode     string
	content  []byte
	cursor   int
	readOnly bool
	live     bool
	tags     []tag
}

type tag struct {
	start, end int
	key        string
	value      int
}

// Name returns the buffer's fixed name.
func (b *Buffer) Name() string { return b.name }

// Mode returns the buffer's editing mode name (e.g. "org", "markdown").
func (b *Buffer) Mode() string { return b.mode }

// SetMode sets the buffer's editing mode name.
func (b *Buffer) SetMode(mode string) { b.mode = mode }

// Live reports whether the buffer still exists in its registry.
func (b *Buffer) Live() bool { return b.live }

// ReadOnly reports whether the buffer rejects mutation.
func (b *Buffer) ReadOnly() bool { return b.readOnly }

// SetReadOnly flips the buffer's read-only flag.
func (b *Buffer) SetReadOnly(ro bool) { b.readOnly = ro }

// Contents returns the full buffer content.
func (b *Buffer) Contents() string { return string(b.content) }

// Len returns the content length in bytes.
func (b *Buffer) Len() int { return len(b.content) }

// Cursor returns the current cursor offset.
func (b *Buffer) Cursor() int { return b.cursor }

// SetCursor moves the cursor, clamping to the content bounds.
func (b *Buffer) SetCursor(offset int) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(b.content) {
		offset = len(b.content)
	}
	b.cursor = offset
}

// Erase removes all content and tags and resets the cursor.
func (b *Buffer) Erase() error {
	if b.readOnly {
		return ErrReadOnly
	}
	b.content = b.content[:0]
	b.tags = nil
	b.cursor = 0
	return nil
}

// Append writes s at the end of the buffer.
func (b *Buffer) Append(s string) error {
	if b.readOnly {
		return ErrReadOnly
	}
	b.content = append(b.content, s...)
	return nil
}

// SetContents replaces the whole buffer content. Existing tags are dropped
// since their ranges no longer describe anything.
func (b *Buffer) SetContents(s string) error {
	if err := b.Erase(); err != nil {
		return err
	}
	return b.Append(s)
}

// AddTag attaches value under key to the half-open range [start, end).
// A zero-width range is widened to cover one position so it stays queryable.
func (b *Buffer) AddTag(start, end int, key string, value int) {
	if end <= start {
		end = start + 1
	}
	b.tags = append(b.tags, tag{start: start, end: end, key: key, value: value})
}

// TagAt returns the value of the first tag under key covering point.
func (b *Buffer) TagAt(point int, key string) (int, bool) {
	for _, t := range b.tags {
		if t.key == key && point >= t.start && point < t.end {
			return t.value, true
		}
	}
	return 0, false
}

// TagWithin returns the value of the first tag under key that overlaps the
// half-open range [start, end).
func (b *Buffer) TagWithin(start, end int, key string) (int, bool) {
	for _, t := range b.tags {
		if t.key == key && t.start < end && t.end > start {
			return t.value, true
		}
	}
	return 0, false
}

// LineBounds returns the bounds of the line containing point, excluding the
// trailing newline. Point is clamped to the content.
func (b *Buffer) LineBounds(point int) (start, end int) {
	if point < 0 {
		point = 0
	}
	if point > len(b.content) {
		point = len(b.content)
	}
	s := string(b.content)
	start = strings.LastIndexByte(s[:point], '\n') + 1
	rel := strings.IndexByte(s[point:], '\n')
	if rel < 0 {
		end = len(s)
	} else {
		end = point + rel
	}
	return start, end
}

// LineStart returns the offset of the start of line n (zero-based). Lines
// past the end map to the end of the buffer.
func (b *Buffer) LineStart(n int) int {
	off := 0
	s := string(b.content)
	for n > 0 {
		rel := strings.IndexByte(s[off:], '\n')
		if rel < 0 {
			return len(s)
		}
		off += rel + 1
		n--
	}
	return off
}

// LineOf returns the zero-based line index containing offset.
func (b *Buffer) LineOf(offset int) int {
	if offset < 0 {
		offset = 0
	}
	if offset > len(b.content) {
		offset = len(b.content)
	}
	return strings.Count(string(b.content[:offset]), "\n")
}

// Registry owns every live buffer, keyed by fixed name.
type Registry struct {
	bufs map[string]*Buffer
}

// NewRegistry creates an empty buffer registry.
func NewRegistry() *Registry {
	return &Registry{bufs: make(map[string]*Buffer)}
}

// GetOrCreate returns the buffer with the given name, creating it empty
// if it does not exist yet.
func (r *Registry) GetOrCreate(name string) *Buffer {
	if b, ok := r.bufs[name]; ok {
		return b
	}
	b := &Buffer{name: name, live: true}
	r.bufs[name] = b
	return b
}

// Lookup returns the live buffer with the given name, if any.
func (r *Registry) Lookup(name string) (*Buffer, bool) {
	b, ok := r.bufs[name]
	return b, ok
}

// Kill destroys the named buffer. Handles held elsewhere observe Live()
// turning false. Returns whether a buffer was destroyed.
func (r *Registry) Kill(name string) bool {
	b, ok := r.bufs[name]
	if !ok {
		return false
	}
	b.live = false
	delete(r.bufs, name)
	return true
}
