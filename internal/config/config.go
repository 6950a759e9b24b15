// Package config provides configuration loading.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/nebulahq/chainpulse/internal/colors"
)

// EnvConfigPath overrides the configuration file location when set.
const EnvConfigPath = "CHAINPULSE_CONFIG"

// Validator validates and normalizes a configuration value.
// Returns the normalized value and an error if validation fails.
type Validator func(key, value, defaultValue string) (normalized string, err error)

// validatorRegistry manages the set of registered validators.
type validatorRegistry struct {
	mu         sync.RWMutex
	validators map[string]Validator
}

// registry is the global validator registry.
var registry = &validatorRegistry{
	validators: make(map[string]Validator),
}

// RegisterValidator registers a validator for a configuration key.
// Panics if a validator is already registered for the key.
func RegisterValidator(key string, validator Validator) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	if _, exists := registry.validators[key]; exists {
		panic(fmt.Sprintf("validator already registered for key: %s", key))
	}
	registry.validators[key] = validator
}

// getValidator returns the validator for a key, or nil if not registered.
func getValidator(key string) Validator {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	return registry.validators[key]
}

// PositiveIntValidator returns a validator that ensures a value is a positive integer.
func PositiveIntValidator() Validator {
	return func(key, value, defaultValue string) (string, error) {
		if value == "" {
			return defaultValue, nil
		}
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			colors.Warning(fmt.Sprintf("invalid %s value '%s': must be a positive integer, using default: %s", key, value, defaultValue))
			return defaultValue, nil
		}
		return value, nil
	}
}

// NonNegativeIntValidator returns a validator that ensures a value is an integer >= 0.
func NonNegativeIntValidator() Validator {
	return func(key, value, defaultValue string) (string, error) {
		if value == "" {
			return defaultValue, nil
		}
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			colors.Warning(fmt.Sprintf("invalid %s value '%s': must be a non-negative integer, using default: %s", key, value, defaultValue))
			return defaultValue, nil
		}
		return value, nil
	}
}

// PercentValidator returns a validator that ensures a value is an integer in [0,100].
func PercentValidator() Validator {
	return func(key, value, defaultValue string) (string, error) {
		if value == "" {
			return defaultValue, nil
		}
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 || n > 100 {
			colors.Warning(fmt.Sprintf("invalid %s value '%s': must be an integer between 0 and 100, using default: %s", key, value, defaultValue))
			return defaultValue, nil
		}
		return value, nil
	}
}

// EnumValidator returns a validator that ensures a value is one of the allowed enum values.
func EnumValidator(allowed map[string]bool) Validator {
	return func(key, value, defaultValue string) (string, error) {
		if value == "" {
			return defaultValue, nil
		}
		valueLower := strings.ToLower(value)
		if !allowed[valueLower] {
			colors.Warning(fmt.Sprintf("invalid %s value '%s': must be one of: %s; using default: %s", key, value, allowedValues(allowed), defaultValue))
			return defaultValue, nil
		}
		return valueLower, nil
	}
}

// BoolValidator returns a validator that normalizes and validates boolean values.
func BoolValidator() Validator {
	return func(key, value, defaultValue string) (string, error) {
		if value == "" {
			return defaultValue, nil
		}
		normalized := normalizeBool(value)
		if normalized != "true" && normalized != "false" {
			colors.Warning(fmt.Sprintf("invalid boolean value for %s: '%s', must be one of: 1, true, yes, on, 0, false, no, off; using default: %s", key, value, defaultValue))
			return defaultValue, nil
		}
		return normalized, nil
	}
}

func allowedValues(allowed map[string]bool) string {
	values := make([]string, 0, len(allowed))
	for v := range allowed {
		values = append(values, v)
	}
	// Stable order for warning messages
	for i := 0; i < len(values); i++ {
		for j := i + 1; j < len(values); j++ {
			if values[j] < values[i] {
				values[i], values[j] = values[j], values[i]
			}
		}
	}
	return strings.Join(values, ", ")
}

func normalizeBool(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return "true"
	case "0", "false", "no", "off":
		return "false"
	default:
		return value
	}
}

var (
	values map[string]string
	loaded bool
	mu     sync.RWMutex
)

func init() {
	initValidators()
}

// Load initializes configuration from the TOML config file. Missing files are
// fine: every key falls back to its default. Load is idempotent; use Reload
// to force a re-read.
func Load() {
	mu.Lock()
	defer mu.Unlock()
	if loaded {
		return
	}
	loadLocked()
}

// Reload re-reads the configuration file unconditionally.
func Reload() {
	mu.Lock()
	defer mu.Unlock()
	loadLocked()
}

func loadLocked() {
	values = make(map[string]string)
	loaded = true

	path := configPath()
	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			colors.Warning(fmt.Sprintf("failed to read config file %s: %v", path, err))
		}
		return
	}

	var doc map[string]any
	if err := toml.Unmarshal(raw, &doc); err != nil {
		colors.Warning(fmt.Sprintf("failed to parse config file %s: %v", path, err))
		return
	}

	for key, v := range doc {
		switch val := v.(type) {
		case string:
			values[key] = val
		case bool:
			values[key] = strconv.FormatBool(val)
		case int64:
			values[key] = strconv.FormatInt(val, 10)
		case float64:
			values[key] = strconv.FormatFloat(val, 'f', -1, 64)
		default:
			colors.Warning(fmt.Sprintf("ignoring config key %s: unsupported value type", key))
		}
	}
}

// configPath returns the configuration file location.
func configPath() string {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "chainpulse", "config.toml")
}

// Get returns the configured value for key, validated and normalized, or the
// default when unset.
func Get(key, defaultValue string) string {
	mu.RLock()
	if !loaded {
		mu.RUnlock()
		Load()
		mu.RLock()
	}
	value := values[key]
	mu.RUnlock()

	if validator := getValidator(key); validator != nil {
		normalized, err := validator(key, value, defaultValue)
		if err != nil {
			return defaultValue
		}
		return normalized
	}
	if value == "" {
		return defaultValue
	}
	return value
}

// GetBool returns a boolean configuration value.
func GetBool(key string, defaultValue bool) bool {
	value := Get(key, strconv.FormatBool(defaultValue))
	return normalizeBool(value) == "true"
}

// GetInt returns an integer configuration value.
func GetInt(key string, defaultValue int) int {
	value := Get(key, strconv.Itoa(defaultValue))
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

// Reset clears loaded state so the next Get re-reads the file. Used by tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	values = nil
	loaded = false
}
