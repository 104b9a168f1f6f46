package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	formfill "github.com/goliatone/go-formfill"
	"github.com/goliatone/go-formfill/pkg/preview"
)

var (
	previewTheme   string
	previewVariant string
	previewOut     string
	previewWatch   bool
	previewIndex   int
)

var previewCmd = &cobra.Command{
	Use:   "preview <form> <responses>",
	Short: "Render a themed HTML preview page",
	Long: `Preview wraps the rendered document in a standalone HTML page. A theme
manifest contributes CSS custom properties and stylesheet links; --watch
re-renders whenever the form or response document changes.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if previewWatch && previewOut == "" {
			return errors.New("--watch needs --out, otherwise pages pile up on stdout")
		}

		renderer, err := previewRenderer()
		if err != nil {
			return err
		}

		renderOnce := func(ctx context.Context) error {
			form, err := formfill.LoadForm(args[0])
			if err != nil {
				return err
			}
			responses, err := formfill.LoadResponses(args[1])
			if err != nil {
				return err
			}
			if previewIndex < 0 || previewIndex >= len(responses) {
				return fmt.Errorf("response index %d out of range (document has %d)", previewIndex, len(responses))
			}
			page, err := renderer.Render(ctx, form, responses[previewIndex])
			if err != nil {
				return err
			}
			return writeOutput(cmd, previewOut, page)
		}

		if err := renderOnce(cmd.Context()); err != nil {
			return err
		}
		if !previewWatch {
			return nil
		}
		return watchAndRender(cmd.Context(), args, renderOnce)
	},
}

func previewRenderer() (*preview.Preview, error) {
	manifestPath := previewTheme
	if manifestPath == "" {
		manifestPath = cfg.ThemeManifest
	}

	opts := []preview.Option{}
	if manifestPath != "" {
		manifest, err := preview.ManifestFromFile(manifestPath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, preview.WithThemeSelector(preview.StaticSelector(manifest), manifest.Name, previewVariant))
	}
	return preview.New(opts...)
}

// watchAndRender re-renders on every write to the watched paths until the
// context is cancelled. Editors often replace files instead of writing in
// place, so renamed paths get re-added to the watcher.
func watchAndRender(ctx context.Context, paths []string, render func(context.Context) error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	for _, path := range paths {
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
	}
	logger.Info("watching for changes", zap.Strings("paths", paths))

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove) {
				_ = watcher.Add(event.Name)
			} else if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := render(ctx); err != nil {
				logger.Warn("render failed", zap.String("path", event.Name), zap.Error(err))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", zap.Error(err))
		}
	}
}

func init() {
	previewCmd.Flags().StringVar(&previewTheme, "theme", "", "theme manifest file (default from config)")
	previewCmd.Flags().StringVar(&previewVariant, "variant", "", "theme variant to apply")
	previewCmd.Flags().StringVar(&previewOut, "out", "", "write to a file instead of stdout")
	previewCmd.Flags().BoolVar(&previewWatch, "watch", false, "re-render when the input documents change")
	previewCmd.Flags().IntVar(&previewIndex, "index", 0, "which response to render")
	rootCmd.AddCommand(previewCmd)
}
