package config

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

// Load loads the configuration from the directory.
func Load(fsys afero.Fs, path string) (*Configuration, error) {
	// If given the path to a config.yaml file, move back up a level.
	if filepath.Base(path) == ConfigurationName {
		path = filepath.Dir(path)
	}

	configContents, err := afero.ReadFile(fsys, filepath.Join(path, ConfigurationName))
	if err != nil {
		return nil, err
	}
	var out Configuration
	if err := yaml.UnmarshalStrict(configContents, &out); err != nil {
		return nil, err
	}
	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &out, nil
}

// Initialize writes the default configuration to the directory, skipping it
// if one already exists. It returns the configuration in effect afterwards.
func Initialize(fsys afero.Fs, path string, logger *log.Logger) (*Configuration, error) {
	configPath := filepath.Join(path, ConfigurationName)

	exists, err := afero.Exists(fsys, configPath)
	if err != nil {
		return nil, err
	}
	if exists {
		logger.Printf("Config already exists at %q, skipping", configPath)
		return Load(fsys, path)
	}

	if err := fsys.MkdirAll(path, 0700); err != nil {
		return nil, err
	}
	if err := afero.WriteFile(fsys, configPath, defaultConfigData, 0600); err != nil {
		return nil, err
	}
	logger.Printf("Wrote default config to %q", configPath)

	return Load(fsys, path)
}
