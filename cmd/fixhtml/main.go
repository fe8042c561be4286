// Command fixhtml re-normalizes the index.html of already generated sites so
// their charset and viewport meta tags sit inside <head>.
package main

import (
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/urfave/cli/v2"

	"sitegen_server/internal/site"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "fixhtml",
		Usage: "move charset/viewport meta tags into <head> for every generated site",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "root",
				Aliases: []string{"r"},
				Value:   "backend/generated_sites",
				EnvVars: []string{"SITES_DIR"},
				Usage:   "directory holding site_<timestamp> folders",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "report what would change without writing",
			},
		},
		Action: fixAction,
	}
}

func fixAction(c *cli.Context) error {
	root := c.String("root")
	if _, err := os.Stat(root); err != nil {
		return fmt.Errorf("sites root %s: %w", root, err)
	}

	writer, err := site.NewWriter(root)
	if err != nil {
		return err
	}

	report, err := writer.FixAll(c.Bool("dry-run"))
	if err != nil {
		return err
	}

	out := c.App.Writer
	if len(report.Fixed)+len(report.OK)+len(report.Failed) == 0 {
		fmt.Fprintln(out, "No generated index.html files found.")
		return nil
	}
	for _, p := range report.Fixed {
		fmt.Fprintf(out, "Fixed: %s\n", p)
	}
	for _, p := range report.OK {
		fmt.Fprintf(out, "OK: %s\n", p)
	}

	failed := make([]string, 0, len(report.Failed))
	for p := range report.Failed {
		failed = append(failed, p)
	}
	sort.Strings(failed)
	for _, p := range failed {
		fmt.Fprintf(out, "Error processing %s: %v\n", p, report.Failed[p])
	}
	if len(failed) > 0 {
		return fmt.Errorf("%d file(s) could not be processed", len(failed))
	}
	return nil
}
