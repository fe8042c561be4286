package prompts

import (
	"fmt"
	"strings"

	"sitegen_server/internal/types"
)

const htmlPrompt = `Create the HTML for a modern website matching the theme "%s".
Link a stylesheet named style.css and a script named index.js.
Include <meta charset="UTF-8"> and a responsive viewport meta tag in the <head>.
Respond with the contents of index.html only.`

const cssPrompt = `Create a clean style.css for a website themed "%s".
The colour palette should fit the theme and the layout should be responsive.
Respond with the contents of style.css only.`

const jsPrompt = `Create a simple interactive index.js for a website themed "%s".
When the page loads, log "%s loaded!" to the console.
Respond with the contents of index.js only.`

// ForAsset builds the instruction sent to the model for one asset kind.
// guidance, when not empty, is appended as design direction.
func ForAsset(kind types.AssetKind, userPrompt, guidance string) string {
	var base string
	switch kind {
	case types.AssetHTML:
		base = fmt.Sprintf(htmlPrompt, userPrompt)
	case types.AssetCSS:
		base = fmt.Sprintf(cssPrompt, userPrompt)
	case types.AssetJS:
		base = fmt.Sprintf(jsPrompt, userPrompt, userPrompt)
	default:
		base = userPrompt
	}

	guidance = strings.TrimSpace(guidance)
	if guidance == "" {
		return base
	}
	return base + "\n\nDesign direction: " + guidance
}
