package palette

import (
	"fmt"
	"strings"
)

// UnknownPaletteError is returned when a palette name is not registered.
type UnknownPaletteError struct {
	Name  string
	Valid []string
}

func (e *UnknownPaletteError) Error() string {
	return fmt.Sprintf("unknown palette %q (valid: %s)", e.Name, strings.Join(e.Valid, ", "))
}

// UnknownColormapError is returned when a colormap name is not in the
// allow-list.
type UnknownColormapError struct {
	Name  string
	Valid []string
}

func (e *UnknownColormapError) Error() string {
	return fmt.Sprintf("unknown colormap %q (valid: %s)", e.Name, strings.Join(e.Valid, ", "))
}
