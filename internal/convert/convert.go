// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert scales blueprint measurements to a custom dome diameter.
// A measurement is normalized to millimeters and multiplied by the ratio of
// the target dome diameter to the reference dome diameter.
package convert

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/dratasich/r2d2/pkg/types"
)

// MillimetersPerInch converts blueprint inches to millimeters.
const MillimetersPerInch = 25.4

// Convert scales measurement from an object with referenceDiameter to one
// with targetDiameter. Unless metric is set, measurement is read as inches
// and converted to millimeters first. The result is in millimeters.
//
// A zero referenceDiameter produces an IEEE-754 infinity or NaN.
func Convert(measurement, targetDiameter float64, metric bool, referenceDiameter float64) float64 {
	return toMillimeters(measurement, metric) * targetDiameter / referenceDiameter
}

// toMillimeters returns measurement in millimeters, reading it as inches
// unless metric is set.
func toMillimeters(measurement float64, metric bool) float64 {
	if metric {
		return measurement
	}
	return measurement * MillimetersPerInch
}

// Ratio returns the linear scale factor between the two diameters.
func Ratio(targetDiameter, referenceDiameter float64) float64 {
	return targetDiameter / referenceDiameter
}

// Format renders v as a fixed-point number with two decimals.
func Format(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// Run converts measurement against ref using cfg and writes the formatted
// result followed by a newline to w.
func Run(w io.Writer, ref types.Reference, cfg types.ConversionConfig, measurement float64) error {
	res := Convert(measurement, cfg.Diameter, cfg.Metric, ref.DomeDiameter)
	slog.Debug("converted measurement",
		"reference", ref.Name,
		"input", measurement,
		"metric", cfg.Metric,
		"input_mm", toMillimeters(measurement, cfg.Metric),
		"ratio", Ratio(cfg.Diameter, ref.DomeDiameter),
		"result", res,
	)

	if _, err := fmt.Fprintln(w, Format(res)); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}
	return nil
}
