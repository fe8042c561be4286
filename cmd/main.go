package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"sitegen_server/config"
	"sitegen_server/internal/ai"
	"sitegen_server/internal/api"
	"sitegen_server/internal/site"
)

func main() {
	// --- Load .env file ---
	// Must run before viper reads the environment.
	err := godotenv.Load()
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		} else {
			log.Println("Info: .env file not found, relying on system environment variables.")
		}
	} else {
		log.Println("Info: Loaded environment variables from .env file.")
	}

	// --- Configuration Loading ---
	cfg, err := config.LoadConfig(".") // Load from config.yaml or env vars
	if err != nil {
		log.Fatalf("Cannot load config: %v", err)
	}

	// --- Dependency Initialization ---
	writer, err := site.NewWriter(cfg.SitesDir)
	if err != nil {
		log.Fatalf("Cannot prepare sites directory: %v", err)
	}
	log.Printf("Serving generated sites from %s", writer.Root())

	generator := ai.NewGenerator(newCompleter(cfg), cfg.UseMock, cfg.GenerationTimeout)

	apiHandler := api.NewAPIHandler(generator, writer, cfg.PublicBaseURL)

	// --- Start API Server ---
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
		log.Println("Running in Gin Debug Mode")
	}

	router := api.NewRouter(apiHandler, writer.Root(), cfg.AllowedOrigins)

	server := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: router,
		// Generation runs inside the request, so writes get a long budget.
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 10 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting API server on %s\n", cfg.ServerAddress)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("API server listen error: %s\n", err)
		}
		log.Println("API server has stopped listening.")
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Printf("Received signal: %s. Shutting down server...", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("API server forced shutdown error: %v", err)
	} else {
		log.Println("API server gracefully stopped.")
	}

	log.Println("Application exiting.")
}

// newCompleter picks the generation backend. Mock mode needs none.
func newCompleter(cfg config.Config) ai.Completer {
	if cfg.UseMock {
		log.Println("Info: USE_MOCK is set, sites are built from canned templates.")
		return nil
	}

	switch cfg.GeneratorBackend {
	case config.BackendOpenAI:
		c := ai.NewOpenAICompleter(cfg.OpenAIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL)
		if c == nil {
			log.Println("WARN: OPENAI_API_KEY is empty; generation will fail until it is set or USE_MOCK=true.")
			return nil
		}
		log.Printf("Using OpenAI backend (model %s)", cfg.OpenAIModel)
		return c
	default:
		c := ai.NewCLICompleter(cfg.GeneratorCLIPath, cfg.GeneratorModel)
		if !c.Available() {
			log.Printf("WARN: %s not found on PATH; install it or set USE_MOCK=true.", cfg.GeneratorCLIPath)
		}
		log.Printf("Using CLI backend %s (model %s)", cfg.GeneratorCLIPath, cfg.GeneratorModel)
		return c
	}
}
