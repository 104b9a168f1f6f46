package main

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-formfill/pkg/formfile"
	"github.com/goliatone/go-formfill/pkg/openapi"
)

var (
	scaffoldOperation string
	scaffoldList      bool
	scaffoldOut       string
)

var scaffoldCmd = &cobra.Command{
	Use:   "scaffold <openapi-doc>",
	Short: "Derive a form template from an OpenAPI operation",
	Long: `Scaffold turns an operation's request body schema into a form document:
one field per schema property, plus template text with one placeholder per
field. Use --list to see the operations a document offers.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := openapi.Load(cmd.Context(), openapi.SourceFromFile(args[0]))
		if err != nil {
			return err
		}
		operations, err := openapi.NewParser().Operations(cmd.Context(), doc)
		if err != nil {
			return err
		}

		if scaffoldList {
			ids := make([]string, 0, len(operations))
			for id := range operations {
				ids = append(ids, id)
			}
			sort.Strings(ids)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tMETHOD\tPATH\tSUMMARY")
			for _, id := range ids {
				op := operations[id]
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", id, op.Method, op.Path, op.Summary)
			}
			return w.Flush()
		}

		if scaffoldOperation == "" {
			return fmt.Errorf("pick an operation with --operation (or list them with --list)")
		}
		op, ok := operations[scaffoldOperation]
		if !ok {
			return fmt.Errorf("document %s has no operation %q", doc.Location(), scaffoldOperation)
		}

		form := openapi.FormFromOperation(op)
		form.Text = openapi.TemplateScaffold(form)
		logger.Debug("scaffolded form",
			zap.String("operation", scaffoldOperation),
			zap.Int("fields", len(form.Fields)),
		)

		if scaffoldOut == "" {
			data, err := formfile.EncodeForm(form, formfile.FormatYAML)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}
		target := resolveOutputPath(scaffoldOut)
		if err := formfile.SaveForm(target, form); err != nil {
			return err
		}
		logger.Info("wrote form", zap.String("path", target))
		return nil
	},
}

func init() {
	scaffoldCmd.Flags().StringVar(&scaffoldOperation, "operation", "", "operation id to scaffold")
	scaffoldCmd.Flags().BoolVar(&scaffoldList, "list", false, "list the document's operations")
	scaffoldCmd.Flags().StringVar(&scaffoldOut, "out", "", "write the form document here (.json or .yaml)")
	rootCmd.AddCommand(scaffoldCmd)
}
