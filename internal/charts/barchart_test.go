package charts

import (
	"strings"
	"testing"
)

func TestBarchart(t *testing.T) {
	tests := []struct {
		name   string
		colors []string
		width  int
	}{
		{
			name:   "no colors",
			colors: []string{},
			width:  80,
		},
		{
			name:   "single color",
			colors: []string{"#E69F00"},
			width:  80,
		},
		{
			name:   "full palette",
			colors: []string{"#EE7733", "#0077BB", "#33BBEE", "#EE3377"},
			width:  100,
		},
		{
			name:   "narrow width",
			colors: []string{"#CC6677", "#332288"},
			width:  40,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Barchart(tt.colors, tt.width)

			if len(tt.colors) > 0 && len(result) == 0 {
				t.Errorf("Barchart() returned empty string for non-empty palette")
			}

			for _, color := range tt.colors {
				if !strings.Contains(result, color) {
					t.Errorf("Barchart() output does not contain color %s", color)
				}
			}
		})
	}
}
