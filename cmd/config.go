package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const configName = ".decomment.yaml"

// config holds user overrides loaded from .decomment.yaml in the current
// directory or the home directory. Dialects maps extra file extensions to
// dialect names, e.g. "  .mjs: c_style".
type config struct {
	Dialects map[string]string `yaml:"dialects"`
}

// loadConfig reads the first config file found, searching the working
// directory then the home directory. A missing or unreadable file yields
// an empty config; the tool must keep working without one.
func loadConfig() config {
	paths := []string{configName}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, configName))
	}

	for _, p := range paths {
		raw, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		var cfg config
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			warnColor.Fprintf(os.Stderr, "warning: ignoring malformed config %s: %v\n", p, err)
			continue
		}
		return normalizeConfig(cfg)
	}
	return config{}
}

// normalizeConfig lowercases extension keys and ensures a leading dot, so
// config entries match the extensions Resolve works with.
func normalizeConfig(cfg config) config {
	if len(cfg.Dialects) == 0 {
		return cfg
	}
	out := make(map[string]string, len(cfg.Dialects))
	for ext, name := range cfg.Dialects {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out[ext] = name
	}
	return config{Dialects: out}
}
