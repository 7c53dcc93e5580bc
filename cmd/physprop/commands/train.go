package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// train: fit one pipeline per dataset CSV and write the model file.
func trainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "train",
		Short: "Fit pipelines from the dataset directory and write the model file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := appWire.Config
			report, err := appWire.Trainer.Train(cfg.DataDir, cfg.ModelPath)
			if err != nil {
				return err
			}

			for _, t := range report.Targets {
				fmt.Printf("%-22s RMSE: %.4f  R2: %.4f  (n=%d)\n",
					t.Target, t.Metrics.RMSE, t.Metrics.R2, t.Metrics.Samples)
			}
			fmt.Printf("\nSaved %d models to %s\n", len(report.Targets), report.ModelPath)
			return nil
		},
	}
}
