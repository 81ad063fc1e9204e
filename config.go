package liquid

import (
	"errors"
	"fmt"
	"math"

	"github.com/BurntSushi/toml"
)

// Config holds the tunables of a cascade. Durations are in seconds.
type Config struct {
	// OpeningDuration is the time each cell takes to travel to its target.
	OpeningDuration float64 `toml:"opening_duration"`

	// ClosingDuration is the budget for retracting the whole chain; each
	// cell gets an equal share of it.
	ClosingDuration float64 `toml:"closing_duration"`

	Direction Direction `toml:"direction"`

	// InternalRadiusRatio insets icons and the "+" glyph within a circle.
	InternalRadiusRatio float64 `toml:"internal_radius_ratio"`

	// CellSizeRatio is the cell radius relative to the root radius.
	CellSizeRatio float64 `toml:"cell_size_ratio"`

	SplitPoint float64 `toml:"split_point"`

	// MovementRatio, when positive, is the uniform center distance between
	// neighbors once settled. Zero derives it from the data source's
	// spacing ratio.
	MovementRatio float64 `toml:"movement_ratio"`

	// TapPulseDuration is how long the root's tap pulse plays before the
	// cascade opens. Zero opens immediately.
	TapPulseDuration float64 `toml:"tap_pulse_duration"`

	// IconFadeDuration is the fade-in time of a cell icon once its cell
	// settles. Zero reveals it immediately.
	IconFadeDuration float64 `toml:"icon_fade_duration"`

	EnableShadow bool `toml:"enable_shadow"`
}

// DefaultConfig returns the stock configuration: open upward over half a
// second per cell, close within a fifth of a second.
func DefaultConfig() Config {
	return Config{
		OpeningDuration:     0.5,
		ClosingDuration:     0.2,
		Direction:           DirectionUp,
		InternalRadiusRatio: 0.8,
		CellSizeRatio:       0.8,
		SplitPoint:          DefaultSplitPoint,
		TapPulseDuration:    0.3,
		IconFadeDuration:    0.15,
		EnableShadow:        true,
	}
}

// Validate reports every field outside its documented range. The returned
// error joins one *ConfigError per violation.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, field string, v float64, reason string) {
		if !ok || math.IsNaN(v) {
			errs = append(errs, &ConfigError{Field: field, Value: v, Reason: reason})
		}
	}
	check(c.OpeningDuration > 0, "opening_duration", c.OpeningDuration, "must be > 0")
	check(c.ClosingDuration > 0, "closing_duration", c.ClosingDuration, "must be > 0")
	check(c.InternalRadiusRatio >= 0 && c.InternalRadiusRatio <= 1,
		"internal_radius_ratio", c.InternalRadiusRatio, "must be in [0, 1]")
	check(c.CellSizeRatio > 0, "cell_size_ratio", c.CellSizeRatio, "must be > 0")
	check(c.SplitPoint > 0 && c.SplitPoint < 1, "split_point", c.SplitPoint, "must be in (0, 1)")
	check(c.MovementRatio >= 0, "movement_ratio", c.MovementRatio, "must be >= 0")
	check(c.TapPulseDuration >= 0, "tap_pulse_duration", c.TapPulseDuration, "must be >= 0")
	check(c.IconFadeDuration >= 0, "icon_fade_duration", c.IconFadeDuration, "must be >= 0")
	if !c.Direction.valid() {
		errs = append(errs, &ConfigError{Field: "direction", Value: float64(c.Direction), Reason: "must be up, right, down or left"})
	}
	return errors.Join(errs...)
}

// validateMovement checks that settled neighbors of the given radii do not
// overlap. Exactly touching neighbors are allowed; they never show a
// membrane.
func validateMovement(movement, ra, rb float64) error {
	if movement < ra+rb || math.IsNaN(movement) {
		return &ConfigError{
			Field:  "movement_ratio",
			Value:  movement,
			Reason: fmt.Sprintf("must be at least the sum of radii %v", ra+rb),
		}
	}
	return nil
}

// DecodeConfig parses TOML over DefaultConfig and validates the result.
// Fields absent from the document keep their defaults.
func DecodeConfig(data string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.Decode(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads a TOML config file over DefaultConfig and validates it.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
