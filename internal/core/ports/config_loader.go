package ports

import "go.trai.ch/scorebook/internal/core/domain"

// ConfigLoader defines the interface for loading the configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load searches cwd and its parents for a config file.
	// It returns domain.DefaultConfig when none exists.
	Load(cwd string) (domain.Config, error)
}
