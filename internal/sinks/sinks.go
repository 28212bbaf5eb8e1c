// Package sinks pushes palettes into the color configuration of chart
// rendering libraries. Each sink accepts an ordered color sequence; the
// palette registry itself knows nothing about any of them.
package sinks

import (
	"errors"
	"fmt"

	"github.com/KrOnAsK/swatch/internal/palette"
)

// Sink is a destination for an ordered color sequence.
type Sink interface {
	// Name identifies the backing library.
	Name() string
	// Available reports whether the sink can be applied right now. An
	// UnavailableError means the backing capability is missing.
	Available() error
	// Apply pushes the colors into the sink's configuration. Returns an
	// UnavailableError when the sink is unavailable.
	Apply(colors []string) error
}

// UnavailableError reports that a sink's backing library or capability is
// missing.
type UnavailableError struct {
	Library string
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("missing optional dependency: %s", e.Library)
}

// Status is the per-sink outcome of ApplyAll.
type Status struct {
	Sink    string
	Skipped bool
	Err     error
}

// Defaults returns the sinks with process-global configuration: the
// terminal chart color cycle and the go-chart series styles.
func Defaults() []Sink {
	return []Sink{&Terminal{}, &GoChart{}}
}

// ApplyAll resolves the named palette once, then applies it to every sink.
// Unknown palette names fail immediately. Unavailable sinks are recorded as
// skipped and the remaining sinks are still attempted; other apply errors
// are recorded per sink without stopping the walk.
func ApplyAll(name string, sinks ...Sink) ([]Status, error) {
	colors, err := palette.Colors(name)
	if err != nil {
		return nil, err
	}

	statuses := make([]Status, 0, len(sinks))
	for _, s := range sinks {
		status := Status{Sink: s.Name(), Err: s.Apply(colors)}
		var unavailable *UnavailableError
		if errors.As(status.Err, &unavailable) {
			status.Skipped = true
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}
