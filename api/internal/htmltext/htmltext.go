// Package htmltext turns LeetCode's HTML problem statements into
// prompt-friendly plain text and pulls out likely constraint lines.
package htmltext

import (
	"regexp"
	"strings"
)

// Structural tags are rewritten to plain-text markers before the generic tag
// strip. Opening and closing tags map to the same marker; unbalanced markup
// passes through as literal markers.
var tagMarkers = []struct {
	tag, marker string
}{
	{"<strong>", "**"},
	{"</strong>", "**"},
	{"<b>", "**"},
	{"</b>", "**"},
	{"<em>", "*"},
	{"</em>", "*"},
	{"<i>", "*"},
	{"</i>", "*"},
	{"<code>", "`"},
	{"</code>", "`"},
	{"<pre>", "\n```\n"},
	{"</pre>", "\n```\n"},
	{"<ul>", "\n"},
	{"</ul>", "\n"},
	{"<ol>", "\n"},
	{"</ol>", "\n"},
	{"<li>", "• "},
	{"</li>", "\n"},
	{"<p>", "\n"},
	{"</p>", "\n"},
	{"<div>", "\n"},
	{"</div>", "\n"},
}

var entities = []struct {
	entity, text string
}{
	{"&nbsp;", " "},
	{"&lt;", "<"},
	{"&gt;", ">"},
	{"&amp;", "&"},
	{"&#39;", "'"},
	{"&quot;", "\""},
	{"&le;", "<="},
	{"&ge;", ">="},
	{"&times;", "×"},
	{"&minus;", "-"},
}

var (
	brRe         = regexp.MustCompile(`<br\s*/?>`)
	tagRe        = regexp.MustCompile(`<[^>]*>`)
	blankLinesRe = regexp.MustCompile(`\n\s*\n\s*\n`)
	// Horizontal whitespace only: newlines are kept so constraint
	// extraction can still see line structure.
	hspaceRe = regexp.MustCompile(`[^\S\n]+`)
)

// Clean converts HTML problem content into plain text. Returns "" for empty
// input. The marker substitutions must run before the generic tag strip.
func Clean(html string) string {
	if html == "" {
		return ""
	}

	s := brRe.ReplaceAllString(html, "\n")
	for _, m := range tagMarkers {
		s = strings.ReplaceAll(s, m.tag, m.marker)
	}
	s = tagRe.ReplaceAllString(s, "")
	for _, e := range entities {
		s = strings.ReplaceAll(s, e.entity, e.text)
	}

	s = blankLinesRe.ReplaceAllString(s, "\n\n")
	s = hspaceRe.ReplaceAllString(s, " ")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

var (
	numCompareRe = regexp.MustCompile(`\d+\s*(<=|>=|<|>|\+|\-|\*|/)`)
	digitRe      = regexp.MustCompile(`\d`)
)

// ExtractConstraints scans already-cleaned text line by line and collects
// lines that look like constraints, complexity notes, or input-range hints.
// Three passes, each a looser heuristic than the last; "" when nothing
// matches so the caller can omit the block entirely.
func ExtractConstraints(cleaned string) string {
	if cleaned == "" {
		return ""
	}
	lines := strings.Split(cleaned, "\n")

	var out []string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		lower := strings.ToLower(trimmed)
		if lower == "" {
			continue
		}
		switch {
		case strings.Contains(lower, "constraints"),
			strings.Contains(lower, " <= "),
			numCompareRe.MatchString(lower),
			strings.Contains(lower, "array") && strings.Contains(lower, "length"),
			strings.Contains(lower, "string") && strings.Contains(lower, "length"),
			strings.Contains(lower, "time complexity"),
			strings.Contains(lower, "space complexity"),
			strings.Contains(lower, "follow up"),
			strings.Contains(lower, "note:"),
			strings.Contains(lower, "important:"),
			strings.Contains(lower, "hint:"):
			out = append(out, "• "+trimmed)
		}
	}

	// Fallback: any line with a digit next to a comparison or a size-ish word.
	if len(out) == 0 {
		for _, line := range lines {
			trimmed := strings.TrimSpace(line)
			lower := strings.ToLower(trimmed)
			if !digitRe.MatchString(lower) {
				continue
			}
			if strings.ContainsAny(lower, "<>=") ||
				strings.Contains(lower, "array") ||
				strings.Contains(lower, "string") ||
				strings.Contains(lower, "element") ||
				strings.Contains(lower, "character") ||
				strings.Contains(lower, "digit") {
				out = append(out, "• "+trimmed)
			}
		}
	}

	// Last resort: lines describing the input shape.
	if len(out) == 0 {
		for _, line := range lines {
			trimmed := strings.TrimSpace(line)
			lower := strings.ToLower(trimmed)
			if strings.Contains(lower, "input") &&
				(strings.Contains(lower, "array") ||
					strings.Contains(lower, "string") ||
					strings.Contains(lower, "integer") ||
					strings.Contains(lower, "list")) {
				out = append(out, "• "+trimmed)
			}
		}
	}

	if len(out) == 0 {
		return ""
	}
	return strings.Join(out, "\n")
}
