package liquid

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is the error every *ConfigError unwraps to.
var ErrInvalidConfig = errors.New("liquid: invalid configuration")

// ErrMissingCell is logged when the data source returns no cell for an index
// it reported as available. The cascade settles with a partial chain.
var ErrMissingCell = errors.New("liquid: data source returned no cell")

// ConfigError reports a configuration value outside its documented range.
type ConfigError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("liquid: invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidConfig.
func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// SequencingViolation is the panic value raised when the cascade controller
// finds its own invariants broken, such as a second node being activated
// while another still holds the frame subscription. It indicates a bug in
// the controller, not a recoverable runtime condition.
type SequencingViolation struct {
	Op        string
	Active    int
	Requested int
}

func (v SequencingViolation) Error() string {
	return fmt.Sprintf("liquid: sequencing violation in %s: node %d is active, node %d requested",
		v.Op, v.Active, v.Requested)
}
