package org

import "testing"

func TestParseDocumentOrder(t *testing.T) {
	text := "Some *bold* and /italic/ words, _under_ ~code~ and +gone+."

	nodes := Parse(text)

	expected := []Node{
		{Kind: KindBold, Begin: 5, End: 11},
		{Kind: KindItalic, Begin: 16, End: 24},
		{Kind: KindUnderline, Begin: 32, End: 39},
		{Kind: KindCode, Begin: 40, End: 46},
		{Kind: KindStrike, Begin: 51, End: 57},
	}

	if len(nodes) != len(expected) {
		t.Fatalf("Expected %d nodes, got %d: %v", len(expected), len(nodes), nodes)
	}
	for i, n := range nodes {
		if n != expected[i] {
			t.Errorf("Node %d: expected %+v, got %+v", i, expected[i], n)
		}
		if text[n.Begin] != text[n.End-1] {
			t.Errorf("Node %d: delimiters disagree in %q", i, text[n.Begin:n.End])
		}
	}

	// Begin offsets must be monotonically increasing
	for i := 1; i < len(nodes); i++ {
		if nodes[i].Begin <= nodes[i-1].Begin {
			t.Errorf("Node %d begins at %d, before node %d at %d",
				i, nodes[i].Begin, i-1, nodes[i-1].Begin)
		}
	}
}

func TestParseRejectsNonEmphasis(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"multiplication asterisks", "2*3 + 4*5"},
		{"snake case underscore", "a_b and c_d"},
		{"unclosed marker", "*dangling to the end"},
		{"space after opener", "* not a span *"},
		{"space before closer", "*not a span *"},
		{"blank line inside", "*first\n\nsecond*"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if nodes := Parse(tt.text); len(nodes) != 0 {
				t.Errorf("Parse(%q) = %v, want no nodes", tt.text, nodes)
			}
		})
	}
}

func TestParseBoundaries(t *testing.T) {
	tests := []struct {
		name string
		text string
		kind Kind
		raw  string
	}{
		{"start of text", "*bold* rest", KindBold, "*bold*"},
		{"end of text", "rest /it/", KindItalic, "/it/"},
		{"whole text", "~code~", KindCode, "~code~"},
		{"after open paren", "(*bold*)", KindBold, "*bold*"},
		{"before punctuation", "see _this_.", KindUnderline, "_this_"},
		{"single newline inside", "+a\nb+", KindStrike, "+a\nb+"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nodes := Parse(tt.text)
			if len(nodes) != 1 {
				t.Fatalf("Parse(%q) = %v, want one node", tt.text, nodes)
			}
			n := nodes[0]
			if n.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", n.Kind, tt.kind)
			}
			if got := tt.text[n.Begin:n.End]; got != tt.raw {
				t.Errorf("Raw = %q, want %q", got, tt.raw)
			}
		})
	}
}

func TestParseNoNesting(t *testing.T) {
	// The scan resumes past a closed span, so markers inside it never open
	// a second node.
	nodes := Parse("~a _b_ c~ after")
	if len(nodes) != 1 {
		t.Fatalf("Expected one node, got %v", nodes)
	}
	if nodes[0].Kind != KindCode {
		t.Errorf("Kind = %v, want %v", nodes[0].Kind, KindCode)
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindBold, "bold"},
		{KindItalic, "italic"},
		{KindUnderline, "underline"},
		{KindStrike, "strike-through"},
		{KindCode, "code"},
		{Kind(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
