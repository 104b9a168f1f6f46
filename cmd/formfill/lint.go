package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formfill/internal/model"
	"github.com/goliatone/go-formfill/pkg/condition"
	"github.com/goliatone/go-formfill/pkg/formfile"
	"github.com/goliatone/go-formfill/pkg/placeholder"
)

type violation struct {
	file     string
	location string
	message  string
}

var lintCmd = &cobra.Command{
	Use:   "lint <form...>",
	Short: "Check form templates for placeholder and field problems",
	Long: `Lint reports template text whose placeholders never close, labels that
collide on the same field id, duplicate explicit field ids, and branching
rules that do not parse. Findings go to stderr and a non-zero exit follows.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var violations []violation
		for _, path := range args {
			linted, err := lintFile(path)
			if err != nil {
				return err
			}
			violations = append(violations, linted...)
		}

		if len(violations) == 0 {
			return nil
		}

		sort.Slice(violations, func(i, j int) bool {
			if violations[i].file == violations[j].file {
				if violations[i].location == violations[j].location {
					return violations[i].message < violations[j].message
				}
				return violations[i].location < violations[j].location
			}
			return violations[i].file < violations[j].file
		})
		for _, v := range violations {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s -> %s\n", v.file, v.location, v.message)
		}
		return fmt.Errorf("found %d problems", len(violations))
	},
}

func lintFile(path string) ([]violation, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lint %s: %w", path, err)
	}

	// The strict parser rejects documents with problems we want to report,
	// so lint works off the raw decode.
	form, err := formfile.DecodeForm(raw, path)
	if err != nil {
		return nil, err
	}

	var result []violation
	for _, issue := range placeholder.Lint(form.Text) {
		result = append(result, violation{
			file:     path,
			location: fmt.Sprintf("text:%d", issue.Offset),
			message:  issue.Message,
		})
	}
	for _, collision := range placeholder.Duplicates(form.Text) {
		result = append(result, violation{
			file:     path,
			location: fmt.Sprintf("text id %s", collision.ID),
			message: fmt.Sprintf("labels %s collide; the last one (%q) wins",
				strings.Join(collision.Labels, ", "), collision.Kept),
		})
	}

	model.NormalizeFields(&form)
	seen := make(map[string]struct{}, len(form.Fields))
	for _, field := range form.Fields {
		if _, dup := seen[field.ID]; dup {
			result = append(result, violation{
				file:     path,
				location: fmt.Sprintf("field %s", field.ID),
				message:  "duplicate field id",
			})
		}
		seen[field.ID] = struct{}{}

		if field.When == "" {
			continue
		}
		if err := condition.Validate(field.When); err != nil {
			result = append(result, violation{
				file:     path,
				location: fmt.Sprintf("field %s", field.ID),
				message:  fmt.Sprintf("invalid when rule %q: %v", field.When, err),
			})
		}
	}

	return result, nil
}

func init() {
	rootCmd.AddCommand(lintCmd)
}
