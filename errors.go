package tooltip

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidContainer reports a container that cannot bound placement:
	// disposed, detached from the scene, or without area.
	ErrInvalidContainer = errors.New("invalid container")
	// ErrInvalidSelector reports a trigger selector that cannot be compiled.
	ErrInvalidSelector = errors.New("invalid selector")
)

// ConfigError is returned when a configuration cannot be used. It fails
// controller construction rather than surfacing later.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("tooltip config: %s: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// ProducerError wraps a failure raised by a trigger's content function,
// either as a returned error or a recovered panic. It is reported, never
// propagated to the event loop.
type ProducerError struct {
	Selector string
	Index    int
	Err      error
}

func (e *ProducerError) Error() string {
	return fmt.Sprintf("tooltip content for %q (index %d): %v", e.Selector, e.Index, e.Err)
}

func (e *ProducerError) Unwrap() error { return e.Err }
