package okulus

import "errors"

// ErrUnsupportedScalePolicy is returned when a style names a scale policy
// outside the seven supported values. It is a configuration error and is
// reported by SetStyle, never during drawing.
var ErrUnsupportedScalePolicy = errors.New("okulus: unsupported scale policy")

// ErrUnknownFormat is returned by LoadStyleFile for a file extension that
// is neither YAML nor TOML.
var ErrUnknownFormat = errors.New("okulus: unknown style file format")
