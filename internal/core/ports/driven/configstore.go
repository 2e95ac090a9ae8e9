package driven

// ConfigStore provides access to application configuration stored under
// dotted keys such as "build.source_root".
type ConfigStore interface {
	// Get returns the raw value and whether the key is set.
	Get(key string) (any, bool)

	// GetString returns the value as a string, or "" when unset or mistyped.
	GetString(key string) string

	// GetInt returns the value as an int, or 0 when unset or mistyped.
	GetInt(key string) int

	// GetBool returns the value as a bool, or false when unset or mistyped.
	GetBool(key string) bool

	// GetStringSlice returns the value as a string slice, or nil.
	GetStringSlice(key string) []string

	// Keys returns every key currently set, sorted.
	Keys() []string

	// Set stores a value and persists immediately.
	Set(key string, value any) error

	// Save persists the current configuration.
	Save() error

	// Load re-reads configuration from storage.
	Load() error

	// Path returns the configuration file path.
	Path() string
}
