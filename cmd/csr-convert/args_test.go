package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "no negatives unchanged",
			args: []string{"-m", "10"},
			want: []string{"-m", "10"},
		},
		{
			name: "lone negative moved behind terminator",
			args: []string{"-3"},
			want: []string{"--", "-3"},
		},
		{
			name: "negative after bool flag",
			args: []string{"-m", "-2.5"},
			want: []string{"-m", "--", "-2.5"},
		},
		{
			name: "diameter value stays with its flag",
			args: []string{"-d", "-400", "-7"},
			want: []string{"-d", "-400", "--", "-7"},
		},
		{
			name: "long diameter value stays with its flag",
			args: []string{"--diameter", "-400", "1"},
			want: []string{"--diameter", "-400", "1"},
		},
		{
			name: "grouped shorthand ending in d takes a value",
			args: []string{"-vd", "-1", "-1"},
			want: []string{"-vd", "-1", "--", "-1"},
		},
		{
			name: "existing terminator keeps trailing args",
			args: []string{"-3", "--", "4"},
			want: []string{"--", "-3", "4"},
		},
		{
			name: "existing terminator without negatives unchanged",
			args: []string{"-m", "--", "-3"},
			want: []string{"-m", "--", "-3"},
		},
		{
			name: "out of range negative moved",
			args: []string{"-1e400"},
			want: []string{"--", "-1e400"},
		},
		{
			name: "unknown flags are left for cobra",
			args: []string{"-x", "--inches"},
			want: []string{"-x", "--inches"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeArgs(tt.args))
		})
	}
}

func TestParseNumber(t *testing.T) {
	v, err := parseNumber("12.5")
	require.NoError(t, err)
	assert.Equal(t, 12.5, v)

	v, err = parseNumber("1e400")
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, 1))

	v, err = parseNumber("-1e400")
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, -1))

	_, err = parseNumber("ten")
	assert.Error(t, err)
}

func TestFloatValue(t *testing.T) {
	f := floatValue(360)
	assert.Equal(t, "360", f.String())
	assert.Equal(t, "float64", f.Type())

	require.NoError(t, f.Set("1e400"))
	assert.Equal(t, "+Inf", f.String())

	require.NoError(t, f.Set("-12.5"))
	assert.Equal(t, -12.5, float64(f))

	assert.Error(t, f.Set("wide"))
	assert.Equal(t, -12.5, float64(f))
}
