// Command searchserver is a reference host for the suffix-tree search core:
// it loads a text file once at startup, builds a suffix tree over it, and
// serves the search API's two routes, plus a static-asset directory for
// everything else.
package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/AntonChernev/suffix-tree-search/internal/api"
	"github.com/AntonChernev/suffix-tree-search/internal/config"
	"github.com/AntonChernev/suffix-tree-search/internal/corpus"
	"github.com/AntonChernev/suffix-tree-search/internal/cors"
	"github.com/AntonChernev/suffix-tree-search/internal/suffixtree"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML configuration file (optional; falls back to environment variables)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := run(*configPath, logger); err != nil {
		logger.Error("searchserver exited", "error", err)
		os.Exit(1)
	}
}

func run(configPath string, logger *slog.Logger) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	text, err := corpus.Load(cfg.TextPath)
	if err != nil {
		return err
	}

	buildStart := time.Now()
	tree, err := suffixtree.Build(text)
	if err != nil {
		return err
	}
	logger.Info("built suffix tree",
		"text_path", cfg.TextPath,
		"code_points", tree.Len(),
		"duration", time.Since(buildStart))

	middleware, err := cors.NewMiddleware(cors.Config{Origins: cfg.AllowedOrigins})
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	api.NewHandler(tree, cfg.DefaultContextLen, logger).Routes(mux)
	mux.Handle("/", noCache(http.FileServer(http.Dir(cfg.PublicDir))))

	logger.Info("listening", "addr", cfg.ListenAddr)
	return http.ListenAndServe(cfg.ListenAddr, middleware.Wrap(mux))
}

// noCache sets Cache-Control: no-cache on every response from next, the same
// policy the original reference host applied to its static assets.
func noCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-cache")
		next.ServeHTTP(w, r)
	})
}
