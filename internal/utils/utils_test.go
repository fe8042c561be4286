package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripCodeFence(t *testing.T) {
	cases := map[string]string{
		"```html\n<p>x</p>\n```":   "<p>x</p>",
		"  ```\nbody { }\n```  \n": "body { }",
		"<p>no fence</p>\n":        "<p>no fence</p>",
		"Here:\n```js\nx()\n```":   "Here:\n```js\nx()\n```",
		"```":                      "```",
		"```css\n.a{}\n.b{}\n```":  ".a{}\n.b{}",
		"```console.log(1)```":     "console.log(1)",
	}
	for in, want := range cases {
		assert.Equal(t, want, StripCodeFence(in), in)
	}
}

func TestDetermineFileType(t *testing.T) {
	assert.Equal(t, "HTML", DetermineFileType("index.html"))
	assert.Equal(t, "CSS", DetermineFileType("STYLE.CSS"))
	assert.Equal(t, "JavaScript", DetermineFileType("site/index.js"))
	assert.Equal(t, "Unknown", DetermineFileType("Makefile"))
}
