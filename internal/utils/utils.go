package utils

import (
	"path/filepath"
	"strings"
)

// StripCodeFence removes a markdown code fence wrapping the whole output,
// e.g. "```html\n...\n```". Output that is not fully fenced is only trimmed.
func StripCodeFence(s string) string {
	cleaned := strings.TrimSpace(s)
	if !strings.HasPrefix(cleaned, "```") || !strings.HasSuffix(cleaned, "```") || len(cleaned) < 6 {
		return cleaned
	}

	cleaned = strings.TrimSuffix(cleaned, "```")
	// Drop the opening fence together with its language tag.
	if i := strings.IndexByte(cleaned, '\n'); i >= 0 {
		cleaned = cleaned[i+1:]
	} else {
		cleaned = strings.TrimPrefix(cleaned, "```")
	}
	return strings.TrimSpace(cleaned)
}

// DetermineFileType maps a filename to a short type label for logs.
func DetermineFileType(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".html", ".htm":
		return "HTML"
	case ".css":
		return "CSS"
	case ".js", ".mjs":
		return "JavaScript"
	case ".json":
		return "JSON"
	case ".svg":
		return "SVG"
	case ".png", ".jpg", ".jpeg", ".gif", ".webp":
		return "Image"
	default:
		return "Unknown"
	}
}
