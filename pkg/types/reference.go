// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Reference describes the blueprint object that measurements are taken from.
// All dimensions are in millimeters.
type Reference struct {
	// Name identifies the blueprint (e.g. "CSR").
	Name string `json:"name" yaml:"name"`

	// DomeDiameter anchors the conversion ratio. It must be positive.
	DomeDiameter float64 `json:"dome_diameter" yaml:"dome_diameter"`

	// DomeHeight is kept as reference data; conversions never use it.
	DomeHeight float64 `json:"dome_height" yaml:"dome_height"`
}

// CSR is the original blueprint the converter scales from.
var CSR = Reference{
	Name:         "CSR",
	DomeDiameter: 461.264,
	DomeHeight:   247.269,
}

// Target describes the custom object measurements are scaled to.
type Target struct {
	DomeDiameter float64 `json:"dome_diameter" yaml:"dome_diameter"`

	// DomeHeight is the reference dome height scaled by Ratio.
	DomeHeight float64 `json:"dome_height" yaml:"dome_height"`
}

// Scaling pairs a reference with a target and the factor between them.
type Scaling struct {
	Reference Reference `json:"reference" yaml:"reference"`
	Target    Target    `json:"target" yaml:"target"`

	// Ratio is Target.DomeDiameter / Reference.DomeDiameter.
	Ratio float64 `json:"ratio" yaml:"ratio"`

	// InchFactor is the millimeters of target per inch of blueprint.
	InchFactor float64 `json:"inch_factor" yaml:"inch_factor"`
}
