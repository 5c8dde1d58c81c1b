// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/dratasich/r2d2/pkg/types"
)

// Describe builds the scaling between ref and a target with targetDiameter.
// The target dome height is the reference dome height scaled by the ratio.
func Describe(ref types.Reference, targetDiameter float64) types.Scaling {
	ratio := Ratio(targetDiameter, ref.DomeDiameter)
	return types.Scaling{
		Reference: ref,
		Target: types.Target{
			DomeDiameter: targetDiameter,
			DomeHeight:   Convert(ref.DomeHeight, targetDiameter, true, ref.DomeDiameter),
		},
		Ratio:      ratio,
		InchFactor: Convert(1, targetDiameter, false, ref.DomeDiameter),
	}
}

// WriteScaling serializes s as YAML to w.
func WriteScaling(w io.Writer, s types.Scaling) error {
	data, err := yaml.Marshal(&s)
	if err != nil {
		return fmt.Errorf("marshaling scaling: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing scaling: %w", err)
	}
	return nil
}
