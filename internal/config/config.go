// Package config loads the reference search server's configuration from an
// optional YAML file and from environment variables, grounded on the same
// github.com/ilyakaznacheev/cleanenv usage a retrieved full-text-search
// engine relies on for exactly this purpose.
package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds everything cmd/searchserver needs to start: where the
// indexed text lives, how to listen, the default search context length, and
// which origins the search API's CORS layer should allow.
type Config struct {
	// ListenAddr is the address the HTTP server binds to.
	ListenAddr string `yaml:"listen_addr" env:"LISTEN_ADDR" env-default:"127.0.0.1:8000"`

	// TextPath is the path to the file holding the text to index.
	TextPath string `yaml:"text_path" env:"TEXT_PATH" env-default:"text/text.txt"`

	// PublicDir is the directory served verbatim for any path that does not
	// match one of the API routes, mirroring the original reference host's
	// static-asset directory.
	PublicDir string `yaml:"public_dir" env:"PUBLIC_DIR" env-default:"public"`

	// DefaultContextLen is the number of trailing code points appended to
	// each search hit when a request does not override it.
	DefaultContextLen int `yaml:"default_context_len" env:"DEFAULT_CONTEXT_LEN" env-default:"30"`

	// AllowedOrigins configures the search API's CORS layer. Each entry is
	// an origin pattern as accepted by the cors package's Config.Origins
	// field (e.g. "https://example.com" or "https://*.example.com").
	AllowedOrigins []string `yaml:"allowed_origins" env:"ALLOWED_ORIGINS" env-separator:"," env-default:"http://localhost"`
}

// Load reads configuration from the YAML file at path, if path is non-empty
// (a missing file is an error), and then applies environment variables, which
// take precedence over values from the file, and the defaults for any field
// still unset.
func Load(path string) (Config, error) {
	var cfg Config
	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
