package extract

import "regexp"

// One rule per style, each scanned over the whole document before the next
// rule runs. The emitted list is therefore grouped by style in this order
// and ordered by position only within each group. That grouped order is the
// mode's long-standing observable behavior and is kept as-is rather than
// merged into a global document-order sort.
var patternRules = []struct {
	style Style
	re    *regexp.Regexp
}{
	{StyleBold, regexp.MustCompile(`\*\*(.+?)\*\*`)},
	{StyleUnderline, regexp.MustCompile(`__(.+?)__`)},
	{StyleCode, regexp.MustCompile("`([^`\n]+)`")},
	{StyleStrike, regexp.MustCompile(`~~(.+?)~~`)},
}

// italicRe needs a non-asterisk (or text boundary) on both sides of the
// asterisk pair so the single asterisks inside ** pairs never read as
// italic. RE2 has no lookaround, so the boundary characters are matched
// explicitly and scanItalic resumes right after each closing asterisk.
// The inner text must also begin and end with a non-space character, so a
// lone "*" used as a list marker or multiplication sign never pairs up.
var italicRe = regexp.MustCompile(`(?:^|[^*])(\*([^*\s](?:[^*\n]*?[^*\s])?)\*)(?:[^*]|$)`)

// extractByPattern scans Markdown text with the per-style rules. The
// capture groups already exclude the delimiters, so the captured text is
// recorded as both raw and clean; Offset still points at the first
// delimiter of the full match.
func extractByPattern(text string) []MarkedSpan {
	var spans []MarkedSpan
	for _, r := range patternRules {
		for _, loc := range r.re.FindAllStringSubmatchIndex(text, -1) {
			inner := text[loc[2]:loc[3]]
			spans = append(spans, MarkedSpan{
				Style:  r.style,
				Raw:    inner,
				Clean:  inner,
				Offset: loc[0],
			})
		}
	}
	return append(spans, scanItalic(text)...)
}

// scanItalic repeats forward searches for the italic rule. After a match the
// search resumes at the closing asterisk's end, not at the end of the full
// match, so the consumed trailing boundary character can still open the next
// span.
func scanItalic(text string) []MarkedSpan {
	var spans []MarkedSpan
	pos := 0
	for pos < len(text) {
		loc := italicRe.FindStringSubmatchIndex(text[pos:])
		if loc == nil {
			break
		}
		inner := text[pos+loc[4] : pos+loc[5]]
		spans = append(spans, MarkedSpan{
			Style:  StyleItalic,
			Raw:    inner,
			Clean:  inner,
			Offset: pos + loc[2],
		})
		pos += loc[3]
	}
	return spans
}
