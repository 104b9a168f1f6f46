package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/goliatone/go-formfill/internal/config"
	"github.com/goliatone/go-formfill/internal/logging"
)

var (
	cfgFile string
	verbose bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "formfill",
	Short: "Fill form templates and turn responses into documents",
	Long: `formfill works with plain text form templates whose fillable slots
are written as {{Label}} placeholders.

Typical flow:

  formfill fields letter.yaml              inspect the fields a template defines
  formfill fill letter.yaml --out out.json answer the prompts, save the response
  formfill render letter.yaml out.json     substitute a response into the text
  formfill export letter.yaml out.json     tabulate responses as CSV
  formfill preview letter.yaml out.json    render a themed HTML page`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := viper.BindPFlag("verbose", cmd.Root().PersistentFlags().Lookup("verbose")); err != nil {
			return err
		}
		manager, err := config.NewManager(cfgFile)
		if err != nil {
			return err
		}
		cfg = manager.Get()
		logger = logging.New(cfg.Verbose)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./config.yaml or ~/.formfill/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
