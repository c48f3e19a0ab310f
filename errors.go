package scratch

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is the sentinel wrapped by every *ConfigError.
var ErrInvalidConfig = errors.New("scratch: invalid card configuration")

// ErrSurfaceUnavailable reports that the scratch surface could not be set up.
// A card carrying this error stays fully covered and never reveals.
var ErrSurfaceUnavailable = errors.New("scratch: surface unavailable")

// ConfigError describes a single rejected Config field.
type ConfigError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("scratch: invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// Unwrap makes errors.Is(err, ErrInvalidConfig) hold.
func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}
