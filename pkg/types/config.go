package types

// DefaultDiameter is the target dome diameter in millimeters used when none is given.
const DefaultDiameter = 360.0

// ConversionConfig holds the per-invocation settings for a conversion.
type ConversionConfig struct {
	// Diameter is the target dome diameter in millimeters (default 360).
	Diameter float64 `json:"diameter" yaml:"diameter"`

	// Metric reports whether the input measurement is already in millimeters.
	// When false the measurement is read as inches.
	Metric bool `json:"metric" yaml:"metric"`
}

// DefaultConfig returns the settings used when no flags are given.
func DefaultConfig() ConversionConfig {
	return ConversionConfig{Diameter: DefaultDiameter}
}
