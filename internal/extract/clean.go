package extract

import "strings"

// delims maps each style to its literal Org delimiter character. Markdown
// spans are captured without their delimiters and never need cleaning.
var delims = map[Style]string{
	StyleBold:      "*",
	StyleItalic:    "/",
	StyleUnderline: "_",
	StyleStrike:    "+",
	StyleCode:      "~",
}

// Clean removes exactly one delimiter from each end of raw for the given
// style, comparing literally. Most delimiter characters are regexp
// metacharacters, so this must never be a pattern-based strip. A missing
// delimiter on either side is a no-op for that side, and an unmapped style
// returns raw unchanged.
func Clean(raw string, style Style) string {
	d, ok := delims[style]
	if !ok {
		return raw
	}
	raw = strings.TrimPrefix(raw, d)
	return strings.TrimSuffix(raw, d)
}
