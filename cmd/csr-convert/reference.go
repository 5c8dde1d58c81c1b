package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dratasich/r2d2/internal/convert"
	"github.com/dratasich/r2d2/pkg/types"
)

func newReferenceCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "reference",
		Short: "Print the CSR reference dimensions and the scale for --diameter",
		Long: `Reference prints the CSR blueprint dome dimensions together with the
target dome at --diameter, the scale ratio between them, and the number of
target millimeters per blueprint inch. Output is YAML.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := convert.Describe(types.CSR, v.GetFloat64("diameter"))
			return convert.WriteScaling(cmd.OutOrStdout(), s)
		},
	}
}
