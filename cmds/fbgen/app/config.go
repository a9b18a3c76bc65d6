package app

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/drone/envsubst"
	"github.com/mandelsoft/vfs/pkg/vfs"
	"sigs.k8s.io/yaml"

	"github.com/mandelsoft/formbuilder/pkg/utils"
)

const CONFIG_FILE = ".fbgen"

const (
	ENV_RESOURCES = "FBGEN_RESOURCES"
	ENV_LANGUAGES = "FBGEN_LANGUAGES"
)

type Config struct {
	Resources      *string  `json:"resources,omitempty"`
	ToolkitVersion *string  `json:"toolkitVersion,omitempty"`
	Languages      []string `json:"languages,omitempty"`
	LogLevel       *string  `json:"logLevel,omitempty"`
}

// GetConfig merges the configuration files found in the home
// directory, the user config directory and the working directory.
// Environment variables override the file settings.
func GetConfig(fs vfs.FileSystem) *Config {
	var cfg Config

	dir, err := os.UserHomeDir()
	if err == nil {
		MergeConfig(&cfg, ReadConfig(fs, filepath.Join(dir, CONFIG_FILE)))
	}
	dir, err = os.UserConfigDir()
	if err == nil {
		MergeConfig(&cfg, ReadConfig(fs, filepath.Join(dir, CONFIG_FILE)))
	}
	MergeConfig(&cfg, ReadConfig(fs, CONFIG_FILE))

	if v := os.Getenv(ENV_RESOURCES); v != "" {
		cfg.Resources = utils.Pointer(v)
	}
	if v := os.Getenv(ENV_LANGUAGES); v != "" {
		cfg.Languages = utils.SplitTrim(v, ",")
	}
	if err := cfg.Expand(os.Getenv); err != nil {
		log.LogError(err, "cannot expand configuration")
	}
	return &cfg
}

// ReadConfig reads a configuration file. Missing or invalid files
// yield nil.
func ReadConfig(fs vfs.FileSystem, path string) *Config {
	data, err := vfs.ReadFile(fs, path)
	if err != nil {
		return nil
	}

	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		log.LogError(err, "invalid config file {{file}}", "file", path)
		return nil
	}
	return &cfg
}

func MergeConfig(cfg *Config, add *Config) {
	if add == nil {
		return
	}
	if add.Resources != nil {
		cfg.Resources = add.Resources
	}
	if add.ToolkitVersion != nil {
		cfg.ToolkitVersion = add.ToolkitVersion
	}
	if add.Languages != nil {
		cfg.Languages = add.Languages
	}
	if add.LogLevel != nil {
		cfg.LogLevel = add.LogLevel
	}
}

// Expand resolves ${VAR} references in the configured paths.
func (c *Config) Expand(mapping func(string) string) error {
	if c.Resources == nil || !strings.Contains(*c.Resources, "$") {
		return nil
	}
	v, err := envsubst.Eval(*c.Resources, mapping)
	if err != nil {
		return err
	}
	c.Resources = &v
	return nil
}
