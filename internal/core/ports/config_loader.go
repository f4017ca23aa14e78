package ports

import "github.com/tanji-dg/cmt/internal/core/domain"

// ConfigLoader loads the project configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration from the given working directory.
	Load(cwd string) (*domain.ProjectConfig, error)
}

// VariantLoader loads the named build variants declared next to the
// project configuration.
type VariantLoader interface {
	// Load returns the declared variants keyed by name. A missing
	// variants file is not an error and yields an empty map.
	Load(cwd string) (map[string]domain.VariantOptions, error)
}
