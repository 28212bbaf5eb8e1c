package commands

import (
	"strings"
	"testing"

	"github.com/KrOnAsK/swatch/internal/charts"
	"github.com/KrOnAsK/swatch/internal/palette"
)

func TestMassagePalettes(t *testing.T) {
	data, err := massagePalettes()
	if err != nil {
		t.Fatalf("massagePalettes() returned error: %v", err)
	}
	if len(data) != 4 {
		t.Fatalf("massagePalettes() returned %d entries, want 4", len(data))
	}

	for _, entry := range data {
		name, ok := entry["palette"].(string)
		if !ok || name == "" {
			t.Errorf("entry missing palette name: %v", entry)
		}
		colors, ok := entry["colors"].([]string)
		if !ok || len(colors) == 0 {
			t.Errorf("entry for %q missing colors", name)
		}
	}
}

func TestMassagePalettesJSON(t *testing.T) {
	data, err := massagePalettes()
	if err != nil {
		t.Fatalf("massagePalettes() returned error: %v", err)
	}
	out, err := toJSON(data)
	if err != nil {
		t.Fatalf("toJSON() returned error: %v", err)
	}
	if !strings.Contains(string(out), "\"okabe_ito\"") {
		t.Error("JSON output should contain okabe_ito")
	}
	if !strings.Contains(string(out), "#E69F00") {
		t.Error("JSON output should contain the palette colors")
	}
}

func TestMassageColormapsYAML(t *testing.T) {
	out, err := toYAML(massageColormaps())
	if err != nil {
		t.Fatalf("toYAML() returned error: %v", err)
	}
	for _, want := range []string{"viridis", "coolwarm", "continuous", "diverging"} {
		if !strings.Contains(string(out), want) {
			t.Errorf("YAML output should contain %q", want)
		}
	}
}

func TestShowCmdResolve(t *testing.T) {
	tests := []struct {
		name    string
		cmd     ShowCmd
		wantLen int
		wantErr bool
	}{
		{
			name:    "full palette by default",
			cmd:     ShowCmd{Name: "okabe_ito", N: -1},
			wantLen: 8,
		},
		{
			name:    "truncated",
			cmd:     ShowCmd{Name: "okabe_ito", N: 3},
			wantLen: 3,
		},
		{
			name:    "cycled past palette length",
			cmd:     ShowCmd{Name: "paul_tol_vibrant", N: 12},
			wantLen: 12,
		},
		{
			name:    "unknown palette",
			cmd:     ShowCmd{Name: "bogus", N: -1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			colors, err := tt.cmd.resolve()
			if (err != nil) != tt.wantErr {
				t.Fatalf("resolve() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && len(colors) != tt.wantLen {
				t.Errorf("resolve() returned %d colors, want %d", len(colors), tt.wantLen)
			}
		})
	}
}

func TestShowCmdChartInstallsCycle(t *testing.T) {
	original := charts.SeriesPalette()
	defer charts.SetSeriesPalette(original)

	cmd := ShowCmd{Name: "colorbrewer_dark2", N: -1, Output: "chart"}
	if err := cmd.Run(&Context{Width: 60}); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}

	want, err := palette.Colors("colorbrewer_dark2")
	if err != nil {
		t.Fatalf("Colors() returned error: %v", err)
	}
	got := charts.SeriesPalette()
	if len(got) != len(want) || got[0] != want[0] {
		t.Errorf("SeriesPalette() = %v after chart output, want %v", got, want)
	}
}

func TestShowCmdBarchartOutput(t *testing.T) {
	cmd := ShowCmd{Name: "okabe_ito", N: 3, Output: "barchart"}
	if err := cmd.Run(&Context{Width: 60}); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
}

func TestApplyCmdUnknownPalette(t *testing.T) {
	cmd := ApplyCmd{Name: "bogus"}
	if err := cmd.Run(&Context{}); err == nil {
		t.Fatal("Run() with unknown palette should return an error")
	}
}

func TestCssCmdUnknownPalette(t *testing.T) {
	cmd := CssCmd{Name: "bogus", Prefix: "color"}
	if err := cmd.Run(&Context{}); err == nil {
		t.Fatal("Run() with unknown palette should return an error")
	}
}
