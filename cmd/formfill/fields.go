package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	formfill "github.com/goliatone/go-formfill"
)

var fieldsAsJSON bool

var fieldsCmd = &cobra.Command{
	Use:   "fields <form>",
	Short: "List the fields a form template defines",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		form, err := formfill.LoadForm(args[0])
		if err != nil {
			return err
		}

		if fieldsAsJSON {
			data, err := json.MarshalIndent(form.Fields, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tLABEL\tTYPE\tREQUIRED")
		for _, field := range form.Fields {
			fmt.Fprintf(w, "%s\t%s\t%s\t%t\n", field.ID, field.Label, field.Type, field.Required)
		}
		return w.Flush()
	},
}

func init() {
	fieldsCmd.Flags().BoolVar(&fieldsAsJSON, "json", false, "emit field descriptors as JSON")
	rootCmd.AddCommand(fieldsCmd)
}
