package extract

import "marko/internal/org"

var kindStyles = map[org.Kind]Style{
	org.KindBold:      StyleBold,
	org.KindItalic:    StyleItalic,
	org.KindUnderline: StyleUnderline,
	org.KindStrike:    StyleStrike,
	org.KindCode:      StyleCode,
}

// extractStructured walks the Org element nodes in document order and emits
// one span per emphasis node. The node's begin/end offsets bound the raw
// text, delimiters included; Clean strips them.
func extractStructured(text string) []MarkedSpan {
	var spans []MarkedSpan
	for _, n := range org.Parse(text) {
		style, ok := kindStyles[n.Kind]
		if !ok {
			continue
		}
		raw := text[n.Begin:n.End]
		spans = append(spans, MarkedSpan{
			Style:  style,
			Raw:    raw,
			Clean:  Clean(raw, style),
			Offset: n.Begin,
		})
	}
	return spans
}
