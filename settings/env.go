package settings

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix prefixes every environment variable read by FromEnv,
// e.g. HYPOTHESIS_MAX_ITERATIONS.
const EnvPrefix = "HYPOTHESIS_"

// FromEnv overlays HYPOTHESIS_* environment variables on base.
// Unset variables leave base untouched.
func FromEnv(base Settings) (Settings, error) {
	if err := env.ParseWithOptions(&base, env.Options{Prefix: EnvPrefix}); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	if err := base.Validate(); err != nil {
		return Settings{}, fmt.Errorf("env: %w", err)
	}
	return base, nil
}
