package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formfill/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage formfill configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			path = "config.yaml"
		}
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file %s already exists", path)
		}
		if err := config.WriteDefault(path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "renderer: %s\n", cfg.Renderer)
		fmt.Fprintf(cmd.OutOrStdout(), "output_dir: %s\n", cfg.OutputDir)
		fmt.Fprintf(cmd.OutOrStdout(), "respondent: %s\n", cfg.Respondent)
		fmt.Fprintf(cmd.OutOrStdout(), "theme_manifest: %s\n", cfg.ThemeManifest)
		fmt.Fprintf(cmd.OutOrStdout(), "timestamp_layout: %s\n", cfg.TimestampLayout)
		fmt.Fprintf(cmd.OutOrStdout(), "verbose: %t\n", cfg.Verbose)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}
