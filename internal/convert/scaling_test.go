// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/dratasich/r2d2/pkg/types"
)

func TestDescribe(t *testing.T) {
	s := Describe(types.CSR, 360)

	assert.Equal(t, types.CSR, s.Reference)
	assert.Equal(t, 360.0, s.Target.DomeDiameter)
	assert.InDelta(t, 192.98, s.Target.DomeHeight, 0.005)
	assert.InDelta(t, 0.78047, s.Ratio, 1e-5)
	assert.InDelta(t, 19.82, s.InchFactor, 0.005)
}

func TestDescribe_Reference(t *testing.T) {
	s := Describe(types.CSR, types.CSR.DomeDiameter)

	assert.Equal(t, 1.0, s.Ratio)
	assert.InDelta(t, types.CSR.DomeHeight, s.Target.DomeHeight, 1e-9)
	assert.InDelta(t, MillimetersPerInch, s.InchFactor, 1e-9)
}

func TestWriteScaling(t *testing.T) {
	want := Describe(types.CSR, 400)

	var out bytes.Buffer
	require.NoError(t, WriteScaling(&out, want))

	text := out.String()
	assert.Contains(t, text, "name: CSR")
	assert.Contains(t, text, "dome_diameter: 461.264")
	assert.Contains(t, text, "dome_height: 247.269")

	var got types.Scaling
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, want, got)
}
