package okulus

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// styleAttrs is the declarative attribute table for a style. Keys are the
// okulus_* styleable attribute names without the prefix. Colors are hex
// strings; YAML requires them to be quoted because of the leading '#'.
//
//	cornerRadius: 12
//	borderWidth: 3
//	borderColor: "#FFFFFF"
//	scaleType: centerCrop
type styleAttrs struct {
	CornerRadius         float64     `yaml:"cornerRadius" toml:"cornerRadius"`
	FullCircle           bool        `yaml:"fullCircle" toml:"fullCircle"`
	BorderWidth          float64     `yaml:"borderWidth" toml:"borderWidth"`
	BorderColor          RGBA        `yaml:"borderColor" toml:"borderColor"`
	ShadowWidth          float64     `yaml:"shadowWidth" toml:"shadowWidth"`
	ShadowColor          RGBA        `yaml:"shadowColor" toml:"shadowColor"`
	ShadowRadius         float64     `yaml:"shadowRadius" toml:"shadowRadius"`
	TouchSelectorColor   RGBA        `yaml:"touchSelectorColor" toml:"touchSelectorColor"`
	TouchSelectorEnabled bool        `yaml:"touchSelectorEnabled" toml:"touchSelectorEnabled"`
	ScaleType            ScalePolicy `yaml:"scaleType" toml:"scaleType"`
	Density              float64     `yaml:"density" toml:"density"`
}

func attrsFromStyle(s StyleSpec) styleAttrs {
	return styleAttrs{
		CornerRadius:         s.CornerRadius,
		FullCircle:           s.FullCircle,
		BorderWidth:          s.BorderWidth,
		BorderColor:          s.BorderColor,
		ShadowWidth:          s.ShadowWidth,
		ShadowColor:          s.ShadowColor,
		ShadowRadius:         s.ShadowBlurRadius,
		TouchSelectorColor:   s.TouchOverlayColor,
		TouchSelectorEnabled: s.TouchOverlayEnabled,
		ScaleType:            s.ScalePolicy,
		Density:              s.Density,
	}
}

func (a styleAttrs) style() (StyleSpec, error) {
	s := StyleSpec{
		CornerRadius:        a.CornerRadius,
		FullCircle:          a.FullCircle,
		BorderWidth:         a.BorderWidth,
		BorderColor:         a.BorderColor,
		ShadowWidth:         a.ShadowWidth,
		ShadowColor:         a.ShadowColor,
		ShadowBlurRadius:    a.ShadowRadius,
		TouchOverlayColor:   a.TouchSelectorColor,
		TouchOverlayEnabled: a.TouchSelectorEnabled,
		ScalePolicy:         a.ScaleType,
		Density:             a.Density,
	}
	if err := s.Validate(); err != nil {
		return StyleSpec{}, err
	}
	return s.Normalize(), nil
}

// LoadStyleYAML reads a YAML attribute table. Attributes that are not
// present keep their DefaultStyle values; unknown keys are rejected.
func LoadStyleYAML(r io.Reader) (StyleSpec, error) {
	attrs := attrsFromStyle(DefaultStyle())
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&attrs); err != nil && !errors.Is(err, io.EOF) {
		return StyleSpec{}, fmt.Errorf("okulus: decode yaml style: %w", err)
	}
	return attrs.style()
}

// LoadStyleTOML reads a TOML attribute table. Attributes that are not
// present keep their DefaultStyle values; unknown keys are rejected.
func LoadStyleTOML(r io.Reader) (StyleSpec, error) {
	attrs := attrsFromStyle(DefaultStyle())
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&attrs); err != nil {
		return StyleSpec{}, fmt.Errorf("okulus: decode toml style: %w", err)
	}
	return attrs.style()
}

// LoadStyleFile reads an attribute table, choosing the format from the
// file extension (.yaml, .yml or .toml).
func LoadStyleFile(path string) (StyleSpec, error) {
	var load func(io.Reader) (StyleSpec, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		load = LoadStyleYAML
	case ".toml":
		load = LoadStyleTOML
	default:
		return StyleSpec{}, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return StyleSpec{}, err
	}
	defer f.Close()

	s, err := load(f)
	if err != nil {
		return StyleSpec{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
