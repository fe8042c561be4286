// Package htmlmeta makes sure generated pages carry their charset and
// viewport declarations inside <head>.
//
// The transformation works on the raw text with regular expressions, not on
// a parsed DOM: model output is frequently truncated, wrapped in prose, or
// missing <html>/<head> altogether, and the goal is only to move two kinds of
// tags into place without otherwise touching the markup.
package htmlmeta

import (
	"log"
	"regexp"
	"strings"
)

var (
	charsetMetaRe  = regexp.MustCompile(`(?is)<meta\b[^>]*?charset[^>]*>`)
	viewportMetaRe = regexp.MustCompile(`(?is)<meta\b[^>]*?\bname\s*=\s*["']?viewport\b["']?[^>]*>`)

	headOpenRe = regexp.MustCompile(`(?i)<head(?:\s[^>]*)?>`)
	htmlOpenRe = regexp.MustCompile(`(?i)<html(?:\s[^>]*)?>`)
)

// Normalize returns html with every charset and viewport meta tag moved into
// the first <head> element. Tags are deduplicated by exact text, keeping the
// first occurrence; charset tags come before viewport tags.
//
// When the document has no <head>, one is synthesized right after the first
// <html> open tag, or at the very start of the document when <html> is
// missing too. Documents without any such tag are returned unchanged.
func Normalize(html string) string {
	tags := collectTags(html)
	if len(tags) == 0 {
		return html
	}

	out := html
	for _, tag := range tags {
		// A leading line break (and its indentation) goes with the tag so
		// re-running over our own output does not pile up blank lines.
		out = tagPattern(tag).ReplaceAllLiteralString(out, "")
	}

	block := strings.Join(tags, "\n")

	if loc := headOpenRe.FindStringIndex(out); loc != nil {
		return out[:loc[1]] + "\n" + block + out[loc[1]:]
	}

	head := "<head>\n" + block + "\n</head>"
	if loc := htmlOpenRe.FindStringIndex(out); loc != nil {
		return out[:loc[1]] + "\n" + head + out[loc[1]:]
	}
	return head + "\n" + out
}

// SafeNormalize is Normalize for callers that must never fail: if anything
// goes wrong the input is returned as is.
func SafeNormalize(html string) (result string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("WARN: meta normalization skipped: %v", r)
			result = html
		}
	}()
	return Normalize(html)
}

// collectTags lists charset matches then viewport matches, in document order,
// without exact duplicates.
func collectTags(html string) []string {
	var found []string
	found = append(found, charsetMetaRe.FindAllString(html, -1)...)
	found = append(found, viewportMetaRe.FindAllString(html, -1)...)
	if len(found) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(found))
	tags := make([]string, 0, len(found))
	for _, tag := range found {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}

func tagPattern(tag string) *regexp.Regexp {
	return regexp.MustCompile(`(?:\r?\n[ \t]*)?` + regexp.QuoteMeta(tag))
}
