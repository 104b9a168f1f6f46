package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	formfill "github.com/goliatone/go-formfill"
	"github.com/goliatone/go-formfill/pkg/export"
)

var (
	exportOut    string
	exportFields []string
)

var exportCmd = &cobra.Command{
	Use:   "export <form> <responses>",
	Short: "Tabulate responses as CSV",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		form, err := formfill.LoadForm(args[0])
		if err != nil {
			return err
		}
		responses, err := formfill.LoadResponses(args[1])
		if err != nil {
			return err
		}

		opts := []export.Option{}
		if len(exportFields) > 0 {
			opts = append(opts, export.WithFields(exportFields...))
		}
		if cfg.TimestampLayout != "" {
			opts = append(opts, export.WithTimestampLayout(cfg.TimestampLayout))
		}

		csv := formfill.ExportCSV(form, responses, opts...)
		logger.Debug("exported responses", zap.Int("count", len(responses)))
		return writeOutput(cmd, exportOut, []byte(csv))
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "write to a file instead of stdout")
	exportCmd.Flags().StringSliceVar(&exportFields, "fields", nil, "field ids to include, in order (default all)")
	rootCmd.AddCommand(exportCmd)
}
