package api

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"sitegen_server/internal/ai"
	"sitegen_server/internal/templates"
	"sitegen_server/internal/types"
)

// SiteGenerator produces the three assets of a site.
type SiteGenerator interface {
	GenerateSite(ctx context.Context, req types.GenerateRequest) (types.Assets, error)
}

// SiteWriter persists generated assets.
type SiteWriter interface {
	Write(assets types.Assets) (types.Site, error)
}

// APIHandler holds dependencies for API endpoints.
type APIHandler struct {
	generator SiteGenerator
	writer    SiteWriter
	baseURL   string // e.g. http://localhost:8000, no trailing slash
}

// NewAPIHandler initializes a new API handler with its dependencies.
func NewAPIHandler(generator SiteGenerator, writer SiteWriter, baseURL string) *APIHandler {
	return &APIHandler{
		generator: generator,
		writer:    writer,
		baseURL:   strings.TrimRight(baseURL, "/"),
	}
}

// SitesPrefix is the URL prefix generated sites are served under.
const SitesPrefix = "/sites"

// --- Structs for API Responses ---

type GenerateResponse struct {
	Status       string `json:"status"`
	Site         string `json:"site"`
	URL          string `json:"url"`
	TemplateType string `json:"template_type,omitempty"`
}

type TemplatesResponse struct {
	Templates []string                    `json:"templates"`
	Premium   []templates.PremiumTemplate `json:"premium"`
}

const toolMissingHint = "The generation tool is not available. Install it and make sure it is on PATH, or set USE_MOCK=true to serve template sites."

// --- API Handlers ---

// POST /generate
func (h *APIHandler) GenerateSite(c *gin.Context) {
	prompt := strings.TrimSpace(c.PostForm("prompt"))
	if prompt == "" {
		h.writeError(c, ai.ErrEmptyPrompt)
		return
	}
	templateID := strings.TrimSpace(c.DefaultPostForm("template", templates.DefaultID))
	if templateID == "" {
		templateID = templates.DefaultID
	}

	req := types.GenerateRequest{
		Prompt:     prompt,
		TemplateID: templateID,
		Guidance:   templates.Get(templateID).Style,
	}
	log.Printf("Received generation request (template %s)", templateID)

	resp, err := h.generate(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// POST /generate/premium
func (h *APIHandler) GeneratePremiumSite(c *gin.Context) {
	prompt := strings.TrimSpace(c.PostForm("prompt"))
	if prompt == "" {
		h.writeError(c, ai.ErrEmptyPrompt)
		return
	}
	templateType := strings.TrimSpace(c.DefaultPostForm("template_type", templates.DefaultPremiumKey))
	if templateType == "" {
		templateType = templates.DefaultPremiumKey
	}

	req := types.GenerateRequest{
		Prompt:     prompt,
		TemplateID: templates.MapToTemplate(templateType),
		Guidance:   templates.Guidance(templateType),
	}
	log.Printf("Received premium generation request (template_type %s -> %s)", templateType, req.TemplateID)

	resp, err := h.generate(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	resp.TemplateType = templateType
	c.JSON(http.StatusOK, resp)
}

// GET /templates
func (h *APIHandler) ListTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, TemplatesResponse{
		Templates: templates.IDs(),
		Premium:   templates.PremiumCatalogue(),
	})
}

func (h *APIHandler) generate(ctx context.Context, req types.GenerateRequest) (GenerateResponse, error) {
	assets, err := h.generator.GenerateSite(ctx, req)
	if err != nil {
		return GenerateResponse{}, err
	}

	site, err := h.writer.Write(assets)
	if err != nil {
		return GenerateResponse{}, &ai.GenerationError{Stage: "site", Err: err}
	}

	log.Printf("Site generation successful. Site ID: %s", site.ID)
	return GenerateResponse{
		Status: "ok",
		Site:   site.ID,
		URL:    fmt.Sprintf("%s%s/%s/%s", h.baseURL, SitesPrefix, site.ID, types.AssetHTML.Filename()),
	}, nil
}

// writeError is the only place pipeline errors become HTTP statuses.
func (h *APIHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ai.ErrEmptyPrompt):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Prompt must not be empty"})
	case errors.Is(err, ai.ErrToolNotFound):
		log.Printf("ERROR: generation tool unavailable: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": toolMissingHint})
	default:
		log.Printf("ERROR: site generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Site generation failed: " + err.Error()})
	}
}
