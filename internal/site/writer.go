// Package site stores generated sites on disk, one directory per site.
package site

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"time"

	"sitegen_server/internal/htmlmeta"
	"sitegen_server/internal/types"
	"sitegen_server/internal/utils"
)

// IDLayout is the time layout used for site ids: site_YYYYMMDD_HHMMSS.
const IDLayout = "20060102_150405"

// Writer creates site directories under a fixed root.
//
// Ids have one-second granularity. Two sites written within the same second
// share an id and the later one overwrites the earlier one's files.
type Writer struct {
	root string
	now  func() time.Time
}

// NewWriter makes sure root exists and returns a writer for it.
func NewWriter(root string) (*Writer, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create sites root %s: %w", root, err)
	}
	return &Writer{root: root, now: time.Now}, nil
}

// WithClock replaces the time source used for ids.
func (w *Writer) WithClock(now func() time.Time) *Writer {
	w.now = now
	return w
}

// Root is the directory holding every site.
func (w *Writer) Root() string { return w.root }

// NewID returns the id a site written now would get.
func (w *Writer) NewID() string {
	return "site_" + w.now().Format(IDLayout)
}

// Write stores assets as index.html, style.css and index.js in a new site
// directory.
func (w *Writer) Write(assets types.Assets) (types.Site, error) {
	id := w.NewID()
	dir := filepath.Join(w.root, id)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return types.Site{}, fmt.Errorf("failed to create site dir %s: %w", dir, err)
	}

	for _, f := range assets.Files() {
		path := filepath.Join(dir, f.Filename)
		if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
			return types.Site{}, fmt.Errorf("failed to write file %s: %w", path, err)
		}
		log.Printf("File saved: %s (%s, %d bytes)", path, utils.DetermineFileType(f.Filename), len(f.Content))
	}

	log.Printf("Successfully stored site %s", id)
	return types.Site{ID: id, Dir: dir}, nil
}

// FixReport lists what FixAll did per index.html.
type FixReport struct {
	Fixed  []string
	OK     []string
	Failed map[string]error
}

// FixAll re-normalizes the index.html of every site under the root. Files
// are only rewritten when normalization changed them; with dryRun set
// nothing is written.
func (w *Writer) FixAll(dryRun bool) (FixReport, error) {
	report := FixReport{Failed: map[string]error{}}

	err := filepath.WalkDir(w.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			report.Failed[path] = err
			return nil
		}
		if d.IsDir() || d.Name() != types.AssetHTML.Filename() {
			return nil
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			report.Failed[path] = err
			return nil
		}
		html := string(raw)
		fixed := htmlmeta.SafeNormalize(html)
		if fixed == html {
			report.OK = append(report.OK, path)
			return nil
		}
		if !dryRun {
			if err := os.WriteFile(path, []byte(fixed), 0o644); err != nil {
				report.Failed[path] = err
				return nil
			}
		}
		report.Fixed = append(report.Fixed, path)
		return nil
	})
	if err != nil {
		return report, fmt.Errorf("failed to walk %s: %w", w.root, err)
	}
	return report, nil
}
