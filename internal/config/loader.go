package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// PathEnv names the variable that points Load at a specific config file.
const PathEnv = "CONFIG_PATH"

// defaultCandidates are tried in order when PathEnv is unset.
var defaultCandidates = []string{"./config.yaml", "./config.yml", "./.env"}

// Load builds the server configuration. Values resolve as
// ENV > file > env-default tags. An explicit CONFIG_PATH must exist;
// otherwise the first existing default candidate is used, and with none
// present only ENV and defaults apply.
func Load() (*Config, error) {
	path, err := resolvePath(os.Getenv(PathEnv), defaultCandidates)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return LoadFrom(path)
}

// LoadFrom reads the given file (YAML or dotenv, by extension) overlaid
// with ENV. An empty path reads ENV only.
func LoadFrom(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	} else if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func resolvePath(explicit string, candidates []string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("file %s: %w", explicit, err)
		}
		return explicit, nil
	}

	for _, c := range candidates {
		info, err := os.Stat(c)
		switch {
		case err == nil && !info.IsDir():
			return c, nil
		case err != nil && !errors.Is(err, fs.ErrNotExist):
			return "", fmt.Errorf("file %s: %w", c, err)
		}
	}
	return "", nil
}
