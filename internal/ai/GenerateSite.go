package ai

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"sitegen_server/internal/ai/prompts"
	"sitegen_server/internal/htmlmeta"
	"sitegen_server/internal/templates"
	"sitegen_server/internal/types"
	"sitegen_server/internal/utils"
)

// GenerateSite produces the HTML, CSS and JS for req. The HTML is always
// passed through meta normalization before being returned.
func (g *Generator) GenerateSite(ctx context.Context, req types.GenerateRequest) (types.Assets, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return types.Assets{}, ErrEmptyPrompt
	}

	genID := uuid.New().String()
	var (
		assets types.Assets
		err    error
	)
	if g.useMock {
		log.Printf("Generating site %s from template %q (mock mode)", genID, req.TemplateID)
		assets = g.fromTemplate(req)
	} else {
		log.Printf("Generating site %s with external backend", genID)
		assets, err = g.fromCompleter(ctx, genID, req)
		if err != nil {
			return types.Assets{}, err
		}
	}

	assets.HTML = htmlmeta.SafeNormalize(assets.HTML)
	log.Printf("Generation %s finished: html=%dB css=%dB js=%dB", genID, len(assets.HTML), len(assets.CSS), len(assets.JS))
	return assets, nil
}

func (g *Generator) fromTemplate(req types.GenerateRequest) types.Assets {
	t := templates.Get(req.TemplateID).Substitute(req.Prompt)
	return types.Assets{HTML: t.HTML, CSS: t.CSS, JS: t.JS}
}

// fromCompleter makes one independent call per asset kind. The first failure
// aborts the whole generation.
func (g *Generator) fromCompleter(ctx context.Context, genID string, req types.GenerateRequest) (types.Assets, error) {
	if g.completer == nil {
		return types.Assets{}, &GenerationError{Stage: "setup", Err: ErrToolNotFound}
	}

	var assets types.Assets
	for _, kind := range types.AssetKinds {
		instruction := prompts.ForAsset(kind, req.Prompt, req.Guidance)

		out, err := g.complete(ctx, instruction)
		if err != nil {
			log.Printf("ERROR: generation %s failed on %s: %v", genID, kind, err)
			return types.Assets{}, &GenerationError{Stage: string(kind), Err: err}
		}
		assets.Set(kind, utils.StripCodeFence(out))
	}
	return assets, nil
}

func (g *Generator) complete(ctx context.Context, instruction string) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}
	out, err := g.completer.Complete(ctx, instruction)
	if err != nil {
		return "", fmt.Errorf("completer: %w", err)
	}
	return out, nil
}
