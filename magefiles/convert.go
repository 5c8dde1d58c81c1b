//go:build mage

package main

import (
	"fmt"
	"strings"

	"github.com/magefile/mage/sh"
)

// smokeCases are invocations with their expected stdout.
var smokeCases = []struct {
	args []string
	want string
}{
	{[]string{"10"}, "198.24"},
	{[]string{"-d", "461.264", "-m", "100"}, "100.00"},
	{[]string{"-m", "100"}, "78.05"},
	{[]string{"-m", "-2.5"}, "-1.95"},
	{[]string{"1e400"}, "+Inf"},
}

// smoke runs bin against smokeCases and checks that a missing measurement fails.
func smoke(bin string) error {
	for _, c := range smokeCases {
		out, err := sh.Output(bin, c.args...)
		if err != nil {
			return fmt.Errorf("%s %s: %w", bin, strings.Join(c.args, " "), err)
		}
		if out != c.want {
			return fmt.Errorf("%s %s: got %q, want %q", bin, strings.Join(c.args, " "), out, c.want)
		}
		fmt.Printf("  ok  %s -> %s\n", strings.Join(c.args, " "), out)
	}

	ran, err := sh.Exec(nil, nil, nil, bin)
	if err == nil || !ran {
		return fmt.Errorf("%s without a measurement: expected failure", bin)
	}
	if code := sh.ExitStatus(err); code != 2 {
		return fmt.Errorf("%s without a measurement: exit status %d, want 2", bin, code)
	}
	fmt.Println("  ok  missing measurement -> exit 2")
	return nil
}
