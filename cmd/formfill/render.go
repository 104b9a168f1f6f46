package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	formfill "github.com/goliatone/go-formfill"
)

var (
	renderAsHTML bool
	renderOut    string
	renderIndex  int
)

var renderCmd = &cobra.Command{
	Use:   "render <form> <responses>",
	Short: "Substitute a response into the form template",
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
		if renderIndex < 0 || renderIndex >= len(responses) {
			return fmt.Errorf("response index %d out of range (document has %d)", renderIndex, len(responses))
		}

		name := cfg.Renderer
		if renderAsHTML {
			name = "html"
		}
		registry, err := formfill.NewDefaultRegistry()
		if err != nil {
			return err
		}
		renderer, err := registry.Get(name)
		if err != nil {
			return err
		}

		out, err := renderer.Render(cmd.Context(), form, responses[renderIndex])
		if err != nil {
			return err
		}
		logger.Debug("rendered response",
			zap.String("renderer", name),
			zap.String("response", responses[renderIndex].ID),
		)
		return writeOutput(cmd, renderOut, out)
	},
}

func init() {
	renderCmd.Flags().BoolVar(&renderAsHTML, "html", false, "render HTML instead of the configured renderer")
	renderCmd.Flags().StringVar(&renderOut, "out", "", "write to a file instead of stdout")
	renderCmd.Flags().IntVar(&renderIndex, "index", 0, "which response to render")
	rootCmd.AddCommand(renderCmd)
}
