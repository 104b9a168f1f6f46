package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	formfill "github.com/goliatone/go-formfill"
	"github.com/goliatone/go-formfill/internal/model"
	"github.com/goliatone/go-formfill/pkg/formfile"
	"github.com/goliatone/go-formfill/pkg/prompt"
	"github.com/goliatone/go-formfill/pkg/validate"
)

var (
	fillRespondent string
	fillOut        string
	fillStrict     bool
)

var fillCmd = &cobra.Command{
	Use:   "fill <form>",
	Short: "Answer a form's questions interactively",
	Long: `Fill walks the form's fields and asks one question per visible field.
The captured response prints as JSON, or appends to the --out document so
repeated runs build up a response list.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		form, err := formfill.LoadForm(args[0])
		if err != nil {
			return err
		}

		respondent := fillRespondent
		if respondent == "" {
			respondent = cfg.Respondent
		}

		filler := prompt.New(prompt.WithRespondent(respondent))
		resp, err := filler.Fill(cmd.Context(), form)
		if err != nil {
			return err
		}

		if fillStrict {
			result := validate.Check(form, resp)
			if !result.Valid {
				for _, issue := range result.Issues {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s -> %s\n", args[0], issue.Field, issue.Message)
				}
				return fmt.Errorf("response failed validation with %d problems", len(result.Issues))
			}
		}

		if fillOut == "" {
			data, err := formfile.EncodeResponses([]model.Response{resp}, formfile.FormatJSON)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}

		target := resolveOutputPath(fillOut)
		if err := formfile.AppendResponse(target, resp); err != nil {
			return err
		}
		logger.Info("saved response", zap.String("path", target), zap.String("id", resp.ID))
		return nil
	},
}

func init() {
	fillCmd.Flags().StringVar(&fillRespondent, "respondent", "", "who is answering (default from config)")
	fillCmd.Flags().StringVar(&fillOut, "out", "", "append the response to this document instead of printing it")
	fillCmd.Flags().BoolVar(&fillStrict, "strict", false, "reject the response if validation fails")
	rootCmd.AddCommand(fillCmd)
}
