package driven

// ConfigStore holds the user's render configuration as dotted keys
// ("issuer.name", "layout.columns.rate"). Arrays of tables such as
// tax_components come back from Get as []any of map[string]any.
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value.
	// Returns empty string if key doesn't exist or isn't a string.
	GetString(key string) string

	// GetFloat retrieves a numeric configuration value as float64.
	// Integers are converted. Returns 0 if key doesn't exist or isn't numeric.
	GetFloat(key string) float64

	// Set stores a value under key and persists it.
	Set(key string, value any) error

	// Path returns the configuration file path.
	Path() string
}
