package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up the API endpoints and the static site mount.
func RegisterRoutes(router *gin.Engine, h *APIHandler, sitesDir string) {

	// --- Site Generation ---
	router.POST("/generate", h.GenerateSite)                // Generate a site from a prompt and template id
	router.POST("/generate/premium", h.GeneratePremiumSite) // Generate a site from a premium template type
	router.GET("/templates", h.ListTemplates)               // List template ids and the premium catalogue

	// --- Generated Sites ---
	// Read-only, no directory listings; index.html is the entry document.
	router.Static(SitesPrefix, sitesDir)

	// --- Simple Health Check ---
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// CORS builds the CORS middleware for the given origins. A "*" entry allows
// every origin.
func CORS(origins []string) gin.HandlerFunc {
	config := cors.DefaultConfig()
	config.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	config.MaxAge = 12 * time.Hour

	allowAll := len(origins) == 0
	for _, o := range origins {
		if o == "*" {
			allowAll = true
			break
		}
	}
	if allowAll {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = origins
	}
	return cors.New(config)
}

// NewRouter returns a gin engine with logging, recovery, CORS and every route
// registered.
func NewRouter(h *APIHandler, sitesDir string, origins []string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(CORS(origins))

	RegisterRoutes(router, h, sitesDir)
	return router
}
