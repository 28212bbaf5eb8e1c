package tables

import (
	"strings"
	"testing"

	"github.com/KrOnAsK/swatch/internal/palette"
)

func TestPaletteList(t *testing.T) {
	t.Run("model renders all registered palettes", func(t *testing.T) {
		m, err := PaletteList()
		if err != nil {
			t.Fatalf("PaletteList() returned error: %v", err)
		}

		view := m.View()
		if len(view) == 0 {
			t.Fatal("View() returned empty string")
		}
		for _, name := range palette.Names() {
			if !strings.Contains(view, name) {
				t.Errorf("View() does not contain palette %q", name)
			}
		}
	})

	t.Run("view mentions filtering help", func(t *testing.T) {
		m, err := PaletteList()
		if err != nil {
			t.Fatalf("PaletteList() returned error: %v", err)
		}
		if !strings.Contains(m.View(), "filtering") {
			t.Error("View() should mention how to filter")
		}
	})
}

func TestSwatchRow(t *testing.T) {
	row := swatchRow([]string{"#E69F00", "#56B4E9"})
	if len(row) == 0 {
		t.Error("swatchRow() returned empty string")
	}
}
