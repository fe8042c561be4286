package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"sitegen_server/internal/types"
)

func TestForAsset(t *testing.T) {
	html := ForAsset(types.AssetHTML, "coffee shop", "")
	assert.Contains(t, html, `"coffee shop"`)
	assert.Contains(t, html, "style.css")
	assert.NotContains(t, html, "Design direction")

	js := ForAsset(types.AssetJS, "coffee shop", "")
	assert.Contains(t, js, "coffee shop loaded!")

	css := ForAsset(types.AssetCSS, "coffee shop", "  Theme: Minimalist. Lots of white space.  ")
	assert.True(t, strings.HasSuffix(css, "\n\nDesign direction: Theme: Minimalist. Lots of white space."))
}

func TestForAsset_PromptsDiffer(t *testing.T) {
	seen := map[string]bool{}
	for _, k := range types.AssetKinds {
		seen[ForAsset(k, "x", "")] = true
	}
	assert.Len(t, seen, 3)
}
