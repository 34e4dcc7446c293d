// Package org provides the structural parse behind the Org dialect: a single
// left-to-right scan of document text into emphasis element nodes, each
// carrying its kind and begin/end byte offsets.
package org

import "strings"

// Kind identifies the emphasis element a node represents.
type Kind int

const (
	KindBold Kind = iota
	KindItalic
	KindUnderline
	KindStrike
	KindCode
)

func (k Kind) String() string {
	switch k {
	case KindBold:
		return "bold"
	case KindItalic:
		return "italic"
	case KindUnderline:
		return "underline"
	case KindStrike:
		return "strike-through"
	case KindCode:
		return "code"
	}
	return "unknown"
}

// Node is one emphasis element. Begin is the offset of the opening marker,
// End is just past the closing marker, so text[Begin:End] includes both
// delimiters.
type Node struct {
	Kind  Kind
	Begin int
	End   int
}

var markers = map[byte]Kind{
	'*': KindBold,
	'/': KindItalic,
	'_': KindUnderline,
	'+': KindStrike,
	'~': KindCode,
}

// Org only treats a marker as an opener after these characters (or at the
// start of text), and as a closer when followed by these (or the end of
// text). This is what keeps "2*3" or "a_b" from reading as emphasis.
const (
	preChars  = " \t\n-('\"{"
	postChars = " \t\n-.,:;!?'\")}["
)

// Parse scans text and returns every emphasis node in document order.
// Nodes never nest: scanning resumes after each closing marker.
func Parse(text string) []Node {
	var nodes []Node
	for i := 0; i < len(text); i++ {
		kind, ok := markers[text[i]]
		if !ok {
			continue
		}
		if i > 0 && !strings.ContainsRune(preChars, rune(text[i-1])) {
			continue
		}
		end := findClose(text, i)
		if end < 0 {
			continue
		}
		nodes = append(nodes, Node{Kind: kind, Begin: i, End: end})
		i = end - 1
	}
	return nodes
}

// findClose returns the offset just past the closing marker for the span
// opened at open, or -1 if the opener has no valid close. A span's border
// characters must be non-whitespace and the span may not cross a blank line.
func findClose(text string, open int) int {
	marker := text[open]
	if open+1 >= len(text) || isSpace(text[open+1]) {
		return -1
	}
	newlines := 0
	for j := open + 2; j < len(text); j++ {
		switch text[j] {
		case '\n':
			newlines++
			if newlines > 1 || text[j-1] == '\n' {
				return -1
			}
		case marker:
			if isSpace(text[j-1]) {
				continue
			}
			if j+1 < len(text) && !strings.ContainsRune(postChars, rune(text[j+1])) {
				continue
			}
			return j + 1
		}
	}
	return -1
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n'
}
