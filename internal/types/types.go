package types

// GeneratedFile is one file of a generated site.
type GeneratedFile struct {
	Filename string `json:"filename"`
	Type     string `json:"type"` // e.g., "html", "css", "js"
	Content  string `json:"content"`
}

// AssetKind names one of the three files every site is made of.
type AssetKind string

const (
	AssetHTML AssetKind = "html"
	AssetCSS  AssetKind = "css"
	AssetJS   AssetKind = "js"
)

// AssetKinds is the generation order.
var AssetKinds = []AssetKind{AssetHTML, AssetCSS, AssetJS}

// Filename is the on-disk name of the asset inside a site directory.
func (k AssetKind) Filename() string {
	switch k {
	case AssetHTML:
		return "index.html"
	case AssetCSS:
		return "style.css"
	case AssetJS:
		return "index.js"
	}
	return ""
}

// Assets is the content of one generated site.
type Assets struct {
	HTML string
	CSS  string
	JS   string
}

// Get returns the content for kind.
func (a Assets) Get(kind AssetKind) string {
	switch kind {
	case AssetHTML:
		return a.HTML
	case AssetCSS:
		return a.CSS
	case AssetJS:
		return a.JS
	}
	return ""
}

// Set stores content for kind.
func (a *Assets) Set(kind AssetKind, content string) {
	switch kind {
	case AssetHTML:
		a.HTML = content
	case AssetCSS:
		a.CSS = content
	case AssetJS:
		a.JS = content
	}
}

// Files lists the assets as files in generation order.
func (a Assets) Files() []GeneratedFile {
	files := make([]GeneratedFile, 0, len(AssetKinds))
	for _, k := range AssetKinds {
		files = append(files, GeneratedFile{Filename: k.Filename(), Type: string(k), Content: a.Get(k)})
	}
	return files
}

// GenerateRequest is what the HTTP layer hands to the generator.
type GenerateRequest struct {
	Prompt     string
	TemplateID string
	// Guidance is optional design direction appended to model instructions.
	Guidance string
}

// Site is a generated site on disk.
type Site struct {
	ID  string `json:"site"`
	Dir string `json:"-"`
}
