package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"songbookapi/internal/httpx"
	"songbookapi/internal/songbook"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	_ = godotenv.Load(".env.local")

	configureLogging()

	serverAddress := getEnv("APP_ADDR", ":8080")
	catalogPath := getEnv("CATALOG_PATH", "data/catalog.json")
	corsOrigins := splitAndTrim(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:8080"))

	catalog, err := songbook.LoadFile(catalogPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", catalogPath).Msg("cannot load catalog")
	}
	log.Info().Int("entries", len(catalog)).Str("path", catalogPath).Msg("catalog loaded")

	router := newRouter(catalog)

	rateLimit := httpx.NewRateLimitMiddleware(20, 40)
	handler := httpx.RequestIDMiddleware(
		httpx.RecoveryMiddleware(
			httpx.AccessLogMiddleware(
				httpx.SecurityHeadersMiddleware(
					httpx.CORSMiddleware(corsOrigins)(
						rateLimit.Middleware(router))))))

	httpServer := &http.Server{
		Addr:         serverAddress,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Info().Str("addr", serverAddress).Msg("starting server")
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server error")
	}
}

// newRouter wires the songbook routes onto a fresh mux. The catalog is loaded
// before this point and never changes, so handlers share it without locks.
func newRouter(catalog songbook.Catalog) *http.ServeMux {
	songbookHandler := songbook.NewHTTPHandler(catalog)

	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "ready: %d entries", len(catalog))
	})

	router.HandleFunc("GET /api/{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("This is the API root address."))
	})
	router.HandleFunc("GET /api/search", songbookHandler.Search)
	router.HandleFunc("GET /api/random", songbookHandler.Random)
	router.HandleFunc("GET /api/volumes", songbookHandler.Volumes)

	return router
}

func configureLogging() {
	zerolog.TimeFieldFormat = time.RFC3339
	if getEnv("APP_ENV", "development") == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	if level, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(level)
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
