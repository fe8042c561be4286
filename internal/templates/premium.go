package templates

import (
	"fmt"
	"sort"
)

// PremiumTemplate is a named design direction offered on the premium
// endpoint. It maps onto one of the canned triples.
type PremiumTemplate struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	MapTo       string `json:"map_to"`
}

// DefaultPremiumKey is used when a premium request names no template type.
const DefaultPremiumKey = "minimalist"

var premium = map[string]PremiumTemplate{
	"minimalist": {
		Key:         "minimalist",
		Name:        "Minimalist",
		Description: "Simple, clean and fast-loading pages. A design focused on white space and typography.",
		MapTo:       "modern",
	},
	"kurumsal": {
		Key:         "kurumsal",
		Name:        "Corporate",
		Description: "An orderly, trustworthy and information-focused template for professional businesses.",
		MapTo:       "classic",
	},
	"creative": {
		Key:         "creative",
		Name:        "Creative",
		Description: "A creative template full of colourful, dynamic and interactive elements.",
		MapTo:       "creative",
	},
}

// PremiumKeys returns the premium template keys, sorted.
func PremiumKeys() []string {
	keys := make([]string, 0, len(premium))
	for k := range premium {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// PremiumCatalogue returns every premium template ordered by key.
func PremiumCatalogue() []PremiumTemplate {
	out := make([]PremiumTemplate, 0, len(premium))
	for _, k := range PremiumKeys() {
		out = append(out, premium[k])
	}
	return out
}

func Premium(key string) (PremiumTemplate, bool) {
	p, ok := premium[key]
	return p, ok
}

// Guidance is the text appended to generation instructions for key, or ""
// when key is not a premium template.
func Guidance(key string) string {
	p, ok := premium[key]
	if !ok {
		return ""
	}
	return fmt.Sprintf("Theme: %s. %s", p.Name, p.Description)
}

// MapToTemplate resolves a premium key to a template id.
func MapToTemplate(key string) string {
	if p, ok := premium[key]; ok {
		return p.MapTo
	}
	return DefaultID
}
