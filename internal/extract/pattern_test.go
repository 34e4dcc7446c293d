package extract

import "testing"

func TestExtractByPatternGroupedOrder(t *testing.T) {
	// The document order is bold, italic, code, but the emitted order is
	// grouped by rule: bold first, then code, then italic.
	text := "This is **bold** and *italic* and `code`."

	spans := extractByPattern(text)

	expected := []MarkedSpan{
		{Style: StyleBold, Raw: "bold", Clean: "bold", Offset: 8},
		{Style: StyleCode, Raw: "code", Clean: "code", Offset: 34},
		{Style: StyleItalic, Raw: "italic", Clean: "italic", Offset: 21},
	}

	if len(spans) != len(expected) {
		t.Fatalf("Expected %d spans, got %d: %v", len(expected), len(spans), spans)
	}
	for i, sp := range spans {
		if sp != expected[i] {
			t.Errorf("Span %d: expected %+v, got %+v", i, expected[i], sp)
		}
	}
}

func TestExtractByPatternAllStyles(t *testing.T) {
	text := "**b** __u__ `c` ~~s~~ *i*"

	spans := extractByPattern(text)

	expected := []MarkedSpan{
		{Style: StyleBold, Raw: "b", Clean: "b", Offset: 0},
		{Style: StyleUnderline, Raw: "u", Clean: "u", Offset: 6},
		{Style: StyleCode, Raw: "c", Clean: "c", Offset: 12},
		{Style: StyleStrike, Raw: "s", Clean: "s", Offset: 16},
		{Style: StyleItalic, Raw: "i", Clean: "i", Offset: 22},
	}

	if len(spans) != len(expected) {
		t.Fatalf("Expected %d spans, got %d: %v", len(expected), len(spans), spans)
	}
	for i, sp := range spans {
		if sp != expected[i] {
			t.Errorf("Span %d: expected %+v, got %+v", i, expected[i], sp)
		}
	}
}

func TestExtractByPatternWithinStylePositionOrder(t *testing.T) {
	text := "`one` then `two` then `three`"

	spans := extractByPattern(text)

	if len(spans) != 3 {
		t.Fatalf("Expected 3 spans, got %v", spans)
	}
	wantText := []string{"one", "two", "three"}
	for i, sp := range spans {
		if sp.Style != StyleCode {
			t.Errorf("Span %d style = %v, want code", i, sp.Style)
		}
		if sp.Clean != wantText[i] {
			t.Errorf("Span %d text = %q, want %q", i, sp.Clean, wantText[i])
		}
	}
	for i := 1; i < len(spans); i++ {
		if spans[i].Offset <= spans[i-1].Offset {
			t.Errorf("Spans within a style group out of position order: %v", spans)
		}
	}
}

func TestItalicDoesNotMatchInsideBold(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int // italic span count
	}{
		{"bold only", "This is **bold** text", 0},
		{"bold at start", "**bold** text", 0},
		{"bold at end", "text **bold**", 0},
		{"real italic next to bold", "**b** and *i*", 1},
		{"italic alone", "*i*", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := 0
			for _, sp := range extractByPattern(tt.text) {
				if sp.Style == StyleItalic {
					got++
				}
			}
			if got != tt.want {
				t.Errorf("%q: %d italic spans, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestScanItalicAdjacentSpans(t *testing.T) {
	// The trailing boundary of one match must not eat the character that
	// opens the next.
	spans := scanItalic("*a* *b*")

	if len(spans) != 2 {
		t.Fatalf("Expected 2 italic spans, got %v", spans)
	}
	if spans[0].Clean != "a" || spans[0].Offset != 0 {
		t.Errorf("First span = %+v, want {a 0}", spans[0])
	}
	if spans[1].Clean != "b" || spans[1].Offset != 4 {
		t.Errorf("Second span = %+v, want {b 4}", spans[1])
	}
}

func TestExtractByPatternOffsetCoversDelimiters(t *testing.T) {
	text := "pad **bold** pad"
	spans := extractByPattern(text)
	if len(spans) != 1 {
		t.Fatalf("Expected one span, got %v", spans)
	}
	// Offset points at the first delimiter even though Raw excludes them.
	if spans[0].Offset != 4 {
		t.Errorf("Offset = %d, want 4", spans[0].Offset)
	}
	if spans[0].Raw != "bold" {
		t.Errorf("Raw = %q, want %q", spans[0].Raw, "bold")
	}
}

func TestExtractByPatternEmpty(t *testing.T) {
	for _, text := range []string{"", "no markup at all", "a * b * c"} {
		if spans := extractByPattern(text); len(spans) != 0 {
			t.Errorf("extractByPattern(%q) = %v, want none", text, spans)
		}
	}
}
