package commands

import (
	"github.com/spf13/cobra"

	"physprop/internal/app"
	"physprop/internal/logging"
)

var (
	modelPath string
	dataDir   string
	logLevel  string

	appWire *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:          "physprop",
		Short:        "Predict physical properties of NaOH, NaCl and HCl solutions",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig()
			if err != nil {
				return err
			}
			if modelPath != "" {
				cfg.ModelPath = modelPath
			}
			if dataDir != "" {
				cfg.DataDir = dataDir
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}

			logger, err := logging.New(cfg.LogLevel)
			if err != nil {
				return err
			}
			appWire = app.NewWire(cfg, logger)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&modelPath, "model", "", "model file path (default models/pipelines_by_target.json)")
	root.PersistentFlags().StringVar(&dataDir, "data-dir", "", "training dataset directory (default data)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(formCmd(), predictCmd(), trainCmd(), targetsCmd(), versionCmd())
	return root.Execute()
}
