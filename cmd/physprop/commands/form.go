package commands

import (
	"os"

	"github.com/spf13/cobra"

	"physprop/internal/form"
)

// form: the interactive prediction loop.
func formCmd() *cobra.Command {
	var vaporUnit string

	cmd := &cobra.Command{
		Use:   "form",
		Short: "Interactive prediction form",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := form.New(appWire.Validator, appWire.Predictor, appWire.Logger, form.Options{
				In:        os.Stdin,
				Out:       os.Stdout,
				VaporUnit: vaporUnit,
			})
			return f.Run()
		},
	}
	cmd.Flags().StringVar(&vaporUnit, "vapor-unit", "mmHg", "vapor pressure display unit (mmHg, kPa, bar, atm, psi, torr)")
	return cmd
}
