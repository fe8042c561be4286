package ai

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os/exec"
	"strings"
)

// CLICompleter runs a local text-generation tool once per call:
//
//	<binary> run <model> <prompt>
//
// and returns what it printed on stdout.
type CLICompleter struct {
	binaryPath string
	model      string
}

func NewCLICompleter(binaryPath, model string) *CLICompleter {
	return &CLICompleter{
		binaryPath: binaryPath,
		model:      model,
	}
}

// Available reports whether the binary can be found on this machine.
func (c *CLICompleter) Available() bool {
	_, err := exec.LookPath(c.binaryPath)
	return err == nil
}

func (c *CLICompleter) Complete(ctx context.Context, prompt string) (string, error) {
	path, err := exec.LookPath(c.binaryPath)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrToolNotFound, c.binaryPath)
	}

	cmd := exec.CommandContext(ctx, path, "run", c.model, prompt)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log.Printf("Running %s run %s (%d byte prompt)", c.binaryPath, c.model, len(prompt))
	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", fmt.Errorf("%w: %s", ErrToolNotFound, c.binaryPath)
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", fmt.Errorf("%s run aborted: %w", c.binaryPath, ctxErr)
		}
		log.Printf("%s stderr: %s", c.binaryPath, stderr.String())
		return "", fmt.Errorf("%s run failed: %w (stderr: %s)", c.binaryPath, err, strings.TrimSpace(stderr.String()))
	}

	return strings.TrimSpace(stdout.String()), nil
}
