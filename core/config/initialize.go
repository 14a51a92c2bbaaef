package config

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/spf13/afero"
)

// Initialize writes the commented default configuration into the directory.
// An existing config.yaml is left alone.
func Initialize(fsys afero.Fs, dir string, logger *log.Logger) error {
	configPath := filepath.Join(dir, ConfigurationName)

	exists, err := afero.Exists(fsys, configPath)
	if err != nil {
		return err
	}
	if exists {
		logger.Printf("%s already exists, skipping", configPath)
		return nil
	}

	if err := fsys.MkdirAll(dir, 0700); err != nil {
		return err
	}
	if err := afero.WriteFile(fsys, configPath, defaultConfigData, 0600); err != nil {
		return fmt.Errorf("couldn't write %s: %w", configPath, err)
	}
	logger.Printf("wrote %s", configPath)
	return nil
}
