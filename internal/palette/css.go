package palette

import (
	"fmt"
	"strings"
)

// CSSVariables renders the named palette as CSS custom property
// declarations, one per color, indexed from 1:
//
//	  --color-1: #E69F00;
//	  --color-2: #56B4E9;
//
// Lines are joined with newlines without a trailing newline.
func CSSVariables(name string, prefix string) (string, error) {
	colors, err := Colors(name)
	if err != nil {
		return "", err
	}
	lines := make([]string, 0, len(colors))
	for i, color := range colors {
		lines = append(lines, fmt.Sprintf("  --%s-%d: %s;", prefix, i+1, color))
	}
	return strings.Join(lines, "\n"), nil
}
