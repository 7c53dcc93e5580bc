package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"physprop/internal/domain"
)

// targets: list what the loaded model file can predict.
func targetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "List the targets in the model file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if appWire.Store == nil {
				return fmt.Errorf("%w (run %q first or point --model at a model file)",
					domain.ErrModelNotLoaded, "physprop train")
			}

			fmt.Printf("Model file: %s (trained %s)\n\n",
				appWire.Config.ModelPath,
				appWire.Store.TrainedAt().Format("2006-01-02 15:04 UTC"))
			for _, target := range appWire.Store.Targets() {
				entry, _ := appWire.Store.Entry(target)
				line := fmt.Sprintf("%-22s inputs=%v", target, entry.Pipeline.Inputs())
				if entry.Unit != "" {
					line += "  unit=" + entry.Unit
				}
				if m, ok := appWire.Store.Metrics(target); ok && m.Samples > 0 {
					line += fmt.Sprintf("  r2=%.4f", m.R2)
				}
				fmt.Println(line)
			}
			return nil
		},
	}
}
