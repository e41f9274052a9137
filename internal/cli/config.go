package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/archdraw/pkg/errors"
)

// Config holds user defaults loaded from config.toml. Command-line flags
// take precedence over every field.
//
//	outdir = "docs/diagrams"
//	formats = ["png", "svg"]
//	icon_dir = "~/icons"
//	show = false
type Config struct {
	OutDir  string   `toml:"outdir"`
	Formats []string `toml:"formats"`
	IconDir string   `toml:"icon_dir"`
	Show    *bool    `toml:"show"`
}

// defaultConfigPath returns $XDG_CONFIG_HOME/archdraw/config.toml, falling
// back to ~/.config/archdraw/config.toml.
func defaultConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// loadConfig reads the config at path. A missing file yields the zero
// Config; unknown keys are an error.
func loadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	meta, err := toml.DecodeFile(path, &cfg)
	if os.IsNotExist(err) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "config %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidInput, "config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	cfg.IconDir = expandHome(cfg.IconDir)
	cfg.OutDir = expandHome(cfg.OutDir)
	return cfg, nil
}

// config loads the user config from the --config path or the default one.
func (c *CLI) config() (Config, error) {
	path := c.ConfigPath
	if path == "" {
		p, err := defaultConfigPath()
		if err != nil {
			return Config{}, nil
		}
		path = p
	}
	return loadConfig(path)
}

// resolveIconDir picks the icon directory: flag, then $ARCHDRAW_ICON_DIR,
// then the config file.
func resolveIconDir(flag string, cfg Config) string {
	if flag != "" {
		return expandHome(flag)
	}
	if env := os.Getenv(iconDirEnv); env != "" {
		return expandHome(env)
	}
	return cfg.IconDir
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
