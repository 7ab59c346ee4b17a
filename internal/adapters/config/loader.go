// Package config provides the configuration loader for scorebook.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/scorebook/internal/core/domain"
	"go.trai.ch/scorebook/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load searches cwd and its parents for scorebook.yaml.
// Without a file, the defaults apply and the book lives below cwd.
func (l *Loader) Load(cwd string) (domain.Config, error) {
	absCwd, err := filepath.Abs(cwd)
	if err != nil {
		return domain.Config{}, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "cwd", cwd)
	}

	configPath, found, err := findConfiguration(absCwd)
	if err != nil {
		return domain.Config{}, err
	}

	if !found {
		cfg := domain.DefaultConfig()
		cfg.Book = resolveBook(absCwd, cfg.Book)
		if l.Logger != nil {
			l.Logger.Debug("no " + domain.ConfigFileName + " found, using defaults")
		}
		return cfg, nil
	}

	var bookfile Bookfile
	if err := readAndUnmarshalYAML(configPath, &bookfile); err != nil {
		return domain.Config{}, zerr.With(err, "path", configPath)
	}

	cfg, err := buildConfig(&bookfile, filepath.Dir(configPath))
	if err != nil {
		return domain.Config{}, zerr.With(err, "path", configPath)
	}
	cfg.Path = configPath

	if l.Logger != nil {
		l.Logger.Debug("config: " + configPath)
	}
	return cfg, nil
}

func findConfiguration(cwd string) (string, bool, error) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		info, err := os.Stat(candidate)
		switch {
		case err == nil && !info.IsDir():
			return candidate, true, nil
		case err != nil && !errors.Is(err, fs.ErrNotExist):
			return "", false, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", candidate)
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", false, nil
		}
		currentDir = parentDir
	}
}

func buildConfig(bookfile *Bookfile, configDir string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	if bookfile.Version != "" && bookfile.Version != SupportedVersion {
		return cfg, zerr.With(domain.ErrInvalidConfig, "version", bookfile.Version)
	}

	if bookfile.Book != "" {
		cfg.Book = bookfile.Book
	}
	cfg.Book = resolveBook(configDir, cfg.Book)

	cfg.LogJSON = bookfile.Log.JSON
	if bookfile.Log.Level != "" {
		level := domain.LogLevel(bookfile.Log.Level)
		switch level {
		case domain.LogDebug, domain.LogInfo, domain.LogWarn, domain.LogError:
			cfg.LogLevel = level
		default:
			return cfg, zerr.With(domain.ErrInvalidConfig, "log.level", bookfile.Log.Level)
		}
	}

	switch {
	case bookfile.Flush.Concurrency < 0:
		return cfg, zerr.With(domain.ErrInvalidConfig, "flush.concurrency", bookfile.Flush.Concurrency)
	case bookfile.Flush.Concurrency > 0:
		cfg.FlushConcurrency = bookfile.Flush.Concurrency
	}

	return cfg, nil
}

// resolveBook makes a configured book directory absolute relative to dir.
func resolveBook(dir, book string) string {
	if filepath.IsAbs(book) {
		return filepath.Clean(book)
	}
	return filepath.Clean(filepath.Join(dir, book))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is found by walking up from cwd
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
