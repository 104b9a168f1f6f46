package preview

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"
)

// ConfigFromSelection flattens a theme selection into renderer configuration:
// variant tokens override base tokens, every token doubles as a --name CSS
// custom property, template overrides merge base-then-variant, and asset URLs
// resolve variant files before base files under the manifest prefix.
func ConfigFromSelection(selection *theme.Selection) *theme.RendererConfig {
	if selection == nil || selection.Manifest == nil {
		return nil
	}
	manifest := selection.Manifest

	var variant theme.Variant
	if selection.Variant != "" {
		variant = manifest.Variants[selection.Variant]
	}

	tokens := mergeStringMaps(manifest.Tokens, variant.Tokens)

	var cssVars map[string]string
	if len(tokens) > 0 {
		cssVars = make(map[string]string, len(tokens))
		for key, value := range tokens {
			cssVars["--"+key] = value
		}
	}

	return &theme.RendererConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Partials: mergeStringMaps(manifest.Templates, variant.Templates),
		Tokens:   tokens,
		CSSVars:  cssVars,
		AssetURL: assetResolver(manifest, variant),
	}
}

// StaticSelector serves the given manifest for every selection, so a single
// manifest file can drive theming without a registry.
func StaticSelector(manifest *theme.Manifest) theme.ThemeSelector {
	return staticSelector{manifest: manifest}
}

type staticSelector struct {
	manifest *theme.Manifest
}

func (s staticSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	if s.manifest == nil {
		return nil, errors.New("preview: theme manifest is nil")
	}
	selected := name
	if selected == "" {
		selected = s.manifest.Name
	}
	return &theme.Selection{Theme: selected, Variant: variant, Manifest: s.manifest}, nil
}

// ManifestFromFile loads a theme manifest document. YAML and JSON both parse;
// keys follow the manifest's lowercase field names.
func ManifestFromFile(path string) (*theme.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("preview: read theme manifest %s: %w", path, err)
	}

	var manifest theme.Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("preview: parse theme manifest %s: %w", path, err)
	}
	if strings.TrimSpace(manifest.Name) == "" {
		return nil, fmt.Errorf("preview: theme manifest %s has no name", path)
	}
	return &manifest, nil
}

func assetResolver(manifest *theme.Manifest, variant theme.Variant) func(string) string {
	return func(name string) string {
		file := variant.Assets.Files[name]
		if file == "" {
			file = manifest.Assets.Files[name]
		}
		if file == "" {
			return ""
		}
		prefix := strings.TrimRight(manifest.Assets.Prefix, "/")
		if prefix == "" {
			return file
		}
		return prefix + "/" + file
	}
}

func mergeStringMaps(base, overlay map[string]string) map[string]string {
	if len(base) == 0 && len(overlay) == 0 {
		return nil
	}
	out := make(map[string]string, len(base)+len(overlay))
	for key, value := range base {
		out[key] = value
	}
	for key, value := range overlay {
		out[key] = value
	}
	return out
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}
