package strategy

import (
	"fmt"

	"github.com/soopyv/bazscan/internal/market"
)

// ValidationError is a preset constraint violation. Fatal: a broken preset
// must never silently run with partial settings.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks all required preset constraints.
func Validate(cfg *Config) error {
	if cfg.Meta.PresetID == "" {
		return ValidationError{"meta.preset_id", "required"}
	}

	if _, err := market.ParseMethod(cfg.Method); err != nil {
		return ValidationError{"method", err.Error()}
	}

	if err := cfg.Criteria().Validate(); err != nil {
		return ValidationError{"filter", err.Error()}
	}

	return nil
}
