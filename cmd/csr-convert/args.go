package main

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

// parseNumber parses s as a float64. Values outside the float64 range
// become ±Inf instead of failing.
func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, err
	}
	return v, nil
}

// floatValue is a pflag.Value for float flags parsed with parseNumber.
type floatValue float64

func (f *floatValue) Set(s string) error {
	v, err := parseNumber(s)
	if err != nil {
		return err
	}
	*f = floatValue(v)
	return nil
}

func (f *floatValue) String() string { return strconv.FormatFloat(float64(*f), 'g', -1, 64) }
func (f *floatValue) Type() string   { return "float64" }

// takesValue reports whether flag token a consumes the next argument as
// its value: --diameter, -d, or a shorthand group ending in d (e.g. -md).
func takesValue(a string) bool {
	if a == "--diameter" {
		return true
	}
	if len(a) < 2 || a[0] != '-' || a[1] == '-' || !strings.HasSuffix(a, "d") {
		return false
	}
	for _, r := range a[1:] {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// isNegativeNumber reports whether a looks like a flag but is a number.
func isNegativeNumber(a string) bool {
	if len(a) < 2 || a[0] != '-' || a[1] == '-' {
		return false
	}
	_, err := parseNumber(a)
	return err == nil
}

// normalizeArgs moves negative numbers that are not flag values behind a
// "--" terminator so they are read as positional arguments.
func normalizeArgs(args []string) []string {
	var kept, moved []string
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--":
			if len(moved) == 0 {
				return args
			}
			out := append(kept, "--")
			out = append(out, moved...)
			return append(out, args[i+1:]...)
		case takesValue(a) && i+1 < len(args):
			kept = append(kept, a, args[i+1])
			i++
		case isNegativeNumber(a):
			moved = append(moved, a)
		default:
			kept = append(kept, a)
		}
	}
	if len(moved) == 0 {
		return args
	}
	return append(append(kept, "--"), moved...)
}
