// Package configs provides the embedded default aircraft presets.
//
// Presets are embedded at build time with go:embed so every distribution
// of the binary ships the same reference aircraft. Users can add or
// override aircraft with a YAML file at ~/.loadsheet/aircraft.yaml; see
// internal/preset.Load for the overlay rules.
package configs

import _ "embed"

// DefaultAircraft is the embedded default aircraft preset file.
//
//go:embed aircraft.yaml
var DefaultAircraft []byte
