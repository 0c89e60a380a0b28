// Package flags provides an environment-backed feature flag adapter.
package flags

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// EnvPrefix is prepended to the normalized flag name when looking up
// environment variables.
const EnvPrefix = "APP_FLAG_"

// Env evaluates feature flags from environment variables. The flag
// "auto-mark-paid" is read from APP_FLAG_AUTO_MARK_PAID. Values are
// resolved at call time, so a restart is never needed for tests that
// set flags per-process.
type Env struct{}

// NewEnv creates an environment-backed flag evaluator.
func NewEnv() *Env {
	return &Env{}
}

// envName normalizes a flag name to its environment variable.
func envName(flag string) string {
	normalized := strings.ToUpper(strings.ReplaceAll(strings.ReplaceAll(flag, "-", "_"), ".", "_"))
	return EnvPrefix + normalized
}

// IsEnabled checks a boolean flag, falling back to defaultValue when the
// variable is unset or unparseable.
func (e *Env) IsEnabled(_ context.Context, flag string, defaultValue bool) bool {
	raw, ok := os.LookupEnv(envName(flag))
	if !ok {
		return defaultValue
	}

	enabled, err := strconv.ParseBool(raw)
	if err != nil {
		return defaultValue
	}

	return enabled
}

// GetString retrieves a string flag value.
func (e *Env) GetString(_ context.Context, flag string, defaultValue string) string {
	if raw, ok := os.LookupEnv(envName(flag)); ok {
		return raw
	}

	return defaultValue
}

// GetInt retrieves an integer flag value.
func (e *Env) GetInt(_ context.Context, flag string, defaultValue int) int {
	raw, ok := os.LookupEnv(envName(flag))
	if !ok {
		return defaultValue
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}

	return v
}

// GetFloat retrieves a float flag value.
func (e *Env) GetFloat(_ context.Context, flag string, defaultValue float64) float64 {
	raw, ok := os.LookupEnv(envName(flag))
	if !ok {
		return defaultValue
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return defaultValue
	}

	return v
}

// GetJSON unmarshals a JSON flag value into target.
func (e *Env) GetJSON(_ context.Context, flag string, target any) error {
	raw, ok := os.LookupEnv(envName(flag))
	if !ok {
		return fmt.Errorf("flag %q is not set", flag)
	}

	if err := json.Unmarshal([]byte(raw), target); err != nil {
		return fmt.Errorf("unmarshalling flag %q: %w", flag, err)
	}

	return nil
}
