package driving

import "github.com/eshwarmore1993/invoice-generator/internal/core/domain"

// ConfigService resolves the render configuration.
type ConfigService interface {
	// Get returns the effective configuration: stored values over defaults.
	Get() (*domain.Config, error)

	// GetDefaults returns the built-in configuration.
	GetDefaults() domain.Config

	// Set validates and persists one value. Nothing is written when the
	// resulting configuration would not validate.
	Set(key, value string) error

	// Path returns where the configuration is stored.
	Path() string
}
