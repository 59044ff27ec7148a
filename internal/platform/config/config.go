package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const DefaultClient = "General"

type Config struct {
	DataDir       string
	DBPath        string
	ExportDir     string
	DefaultClient string
}

// fileConfig is the optional config.yaml inside the data directory.
type fileConfig struct {
	DefaultClient string `yaml:"default_client"`
	ExportDir     string `yaml:"export_dir"`
}

func New(dataDir string) (Config, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home dir: %w", err)
		}
		dataDir = filepath.Join(home, ".hourly")
	}
	cfg := Config{
		DataDir:       dataDir,
		DBPath:        filepath.Join(dataDir, "index.db"),
		ExportDir:     ".",
		DefaultClient: DefaultClient,
	}

	raw, err := os.ReadFile(filepath.Join(dataDir, "config.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	overrides := fileConfig{}
	if err := yaml.Unmarshal(raw, &overrides); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if overrides.DefaultClient != "" {
		cfg.DefaultClient = overrides.DefaultClient
	}
	if overrides.ExportDir != "" {
		cfg.ExportDir = overrides.ExportDir
	}
	return cfg, nil
}
