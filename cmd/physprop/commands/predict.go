package commands

import (
	"os"

	"github.com/spf13/cobra"

	"physprop/internal/form"
	"physprop/internal/validate"
)

// predict: one validate → predict → render cycle, inputs from flags.
func predictCmd() *cobra.Command {
	var in validate.Input
	var vaporUnit string

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict properties for one concentration/temperature pair",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := appWire.Validator.Request(in)
			if err != nil {
				return err
			}
			res, err := appWire.Predictor.Predict(req)
			if err != nil {
				return err
			}
			return form.NewRenderer(os.Stdout, vaporUnit).Result(res)
		},
	}

	cmd.Flags().StringVarP(&in.Solution, "solution", "s", "", "solution type: NaOH, NaCl, HCl or all")
	cmd.Flags().StringVarP(&in.Concentration, "concentration", "c", "", "concentration, %")
	cmd.Flags().StringVarP(&in.Temperature, "temperature", "t", "", "temperature, °C")
	cmd.Flags().StringVarP(&in.Pressure, "pressure", "p", "", "absolute pressure (for bubble point models)")
	cmd.Flags().StringVar(&in.PressureUnit, "pressure-unit", "bar.A", "pressure input unit (bar.A, kPa.A, MPa.A, kg/cm2.A)")
	cmd.Flags().StringVar(&vaporUnit, "vapor-unit", "mmHg", "vapor pressure display unit (mmHg, kPa, bar, atm, psi, torr)")
	_ = cmd.MarkFlagRequired("concentration")
	_ = cmd.MarkFlagRequired("temperature")
	return cmd
}
