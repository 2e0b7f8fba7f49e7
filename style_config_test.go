package okulus

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadStyleYAML(t *testing.T) {
	src := `
cornerRadius: 12
fullCircle: true
borderWidth: 8
borderColor: "#FFFFFF"
shadowWidth: 2
shadowColor: "#00000080"
shadowRadius: 1.5
touchSelectorColor: "#FF000066"
touchSelectorEnabled: true
scaleType: fitCenter
`
	s, err := LoadStyleYAML(strings.NewReader(src))
	if err != nil {
		t.Fatalf("LoadStyleYAML: %v", err)
	}
	want := StyleSpec{
		CornerRadius:        12,
		FullCircle:          true,
		BorderWidth:         MaxBorderWidth,
		BorderColor:         White,
		ShadowWidth:         2,
		ShadowColor:         Hex("#00000080"),
		ShadowBlurRadius:    1.5,
		TouchOverlayColor:   Hex("#FF000066"),
		TouchOverlayEnabled: true,
		ScalePolicy:         FitCenter,
		Density:             1,
	}
	if s != want {
		t.Errorf("LoadStyleYAML() = %+v\nwant %+v", s, want)
	}
}

func TestLoadStyleYAMLDefaults(t *testing.T) {
	s, err := LoadStyleYAML(strings.NewReader(""))
	if err != nil {
		t.Fatalf("LoadStyleYAML(empty): %v", err)
	}
	if s != DefaultStyle() {
		t.Errorf("empty table = %+v, want defaults", s)
	}

	s, err = LoadStyleYAML(strings.NewReader("borderWidth: 2\n"))
	if err != nil {
		t.Fatal(err)
	}
	if s.BorderWidth != 2 || s.ScalePolicy != CenterCrop || s.ShadowColor != DefaultShadowColor {
		t.Errorf("partial table = %+v", s)
	}
}

func TestLoadStyleYAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unknown key", "cornerRadiusX: 3\n"},
		{"bad color", "borderColor: \"#GG0000\"\n"},
		{"bad policy", "scaleType: matrix\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadStyleYAML(strings.NewReader(tt.src)); err == nil {
				t.Errorf("LoadStyleYAML(%q) succeeded, want error", tt.src)
			}
		})
	}
}

func TestLoadStyleTOML(t *testing.T) {
	src := `
cornerRadius = 6.5
borderWidth = 1.0
borderColor = "#0000FF"
scaleType = "FIT_START"
touchSelectorEnabled = true
`
	s, err := LoadStyleTOML(strings.NewReader(src))
	if err != nil {
		t.Fatalf("LoadStyleTOML: %v", err)
	}
	if s.CornerRadius != 6.5 || s.BorderWidth != 1 || s.BorderColor != RGB(0, 0, 1) {
		t.Errorf("LoadStyleTOML() = %+v", s)
	}
	if s.ScalePolicy != FitStart || !s.TouchOverlayEnabled || s.TouchOverlayColor != DefaultTouchOverlayColor {
		t.Errorf("LoadStyleTOML() = %+v", s)
	}

	if _, err := LoadStyleTOML(strings.NewReader("unknown = 1\n")); err == nil {
		t.Error("LoadStyleTOML accepted an unknown key")
	}
	if _, err := LoadStyleTOML(strings.NewReader(`scaleType = "MATRIX"`)); err == nil {
		t.Errorf("LoadStyleTOML bad policy error = %v", err)
	}
}

func TestLoadStyleFile(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
			t.Fatal(err)
		}
		return p
	}

	yml := write("avatar.yml", "fullCircle: true\n")
	toml := write("card.toml", "cornerRadius = 9.0\n")
	txt := write("style.txt", "cornerRadius: 9\n")

	if s, err := LoadStyleFile(yml); err != nil || !s.FullCircle {
		t.Errorf("LoadStyleFile(yml) = %+v, %v", s, err)
	}
	if s, err := LoadStyleFile(toml); err != nil || s.CornerRadius != 9 {
		t.Errorf("LoadStyleFile(toml) = %+v, %v", s, err)
	}
	if _, err := LoadStyleFile(txt); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("LoadStyleFile(txt) error = %v, want ErrUnknownFormat", err)
	}
	if _, err := LoadStyleFile(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadStyleFile(missing) error = %v, want not exist", err)
	}
}
