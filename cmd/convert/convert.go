/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package convert provides the convert command for tsomet.
package convert

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tsomet/config"
	"bennypowers.dev/tsomet/exporter"
	"bennypowers.dev/tsomet/fs"
	"bennypowers.dev/tsomet/internal/logger"
	"bennypowers.dev/tsomet/load"
	"bennypowers.dev/tsomet/schema"
)

// Cmd is the convert cobra command.
var Cmd = &cobra.Command{
	Use:   "convert [files...]",
	Short: "Convert token files between formats",
	Long: `Convert design token files between DTCG JSON, CSS custom properties,
and SCSS variables. Multiple input files combine into one output.

Output Formats:
  json   DTCG-compliant JSON (default)
  css    CSS custom properties in a :root or :host block
  scss   SCSS variable declarations

Examples:
  # Combine token files into one DTCG document
  tsomet convert tokens/*.json

  # Emit CSS custom properties
  tsomet convert --format css -o tokens.css tokens.json

  # Emit SCSS variables with a prefix
  tsomet convert --format scss --prefix ds -o _tokens.scss tokens.json

  # Import a CSS :root block and emit DTCG JSON
  tsomet convert theme.css

  # Use files from config (.config/tsomet.yaml)
  tsomet convert`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")
	Cmd.Flags().StringP("format", "f", "json", "Output format: json, css, scss")
	Cmd.Flags().StringP("delimiter", "d", "", "Delimiter for flattened variable names")
	Cmd.Flags().String("selector", "", "CSS selector: :root (default) or :host")
}

func run(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	format, _ := cmd.Flags().GetString("format")
	delimiter, _ := cmd.Flags().GetString("delimiter")
	selector, _ := cmd.Flags().GetString("selector")

	filesystem := fs.NewOSFileSystem()
	cfg := config.LoadOrDefault(filesystem, ".")

	files := args
	if len(files) == 0 {
		expanded, err := cfg.ExpandFiles(filesystem, ".")
		if err != nil {
			return fmt.Errorf("error expanding config files: %w", err)
		}
		files = expanded
	}
	if len(files) == 0 {
		return fmt.Errorf("no files specified and no files found in config")
	}

	version, err := schemaVersion(cfg)
	if err != nil {
		return err
	}

	g, err := load.Files(filesystem, cfg, files, version)
	if err != nil {
		return err
	}

	opts := exporter.Options{
		Prefix:    prefix(cfg),
		Separator: delimiter,
		Selector:  exporter.Selector(selector),
	}
	if opts.Separator == "" {
		opts.Separator = cfg.Separator
	}
	if opts.Selector == "" {
		opts.Selector = exporter.Selector(cfg.Selector)
	}

	ex, err := exporter.For(format, opts)
	if err != nil {
		return err
	}
	out, exportErr := ex.Export(g)
	if exportErr != nil {
		// Reference failures do not abort the export; the output still
		// contains every token, with references in reference syntax.
		logger.Warn("%v", exportErr)
	}

	if output == "" {
		_, err = os.Stdout.Write(out)
		return err
	}
	if dir := filepath.Dir(output); dir != "." {
		if err := filesystem.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	return filesystem.WriteFile(output, out, 0644)
}

// schemaVersion resolves the schema version from the flag or config.
func schemaVersion(cfg *config.Config) (schema.Version, error) {
	if flag := viper.GetString("schema"); flag != "" {
		v, err := schema.FromString(flag)
		if err != nil {
			return schema.Unknown, fmt.Errorf("invalid schema version: %s", flag)
		}
		return v, nil
	}
	return cfg.SchemaVersion(), nil
}

// prefix resolves the variable prefix from the flag or config.
func prefix(cfg *config.Config) string {
	if flag := viper.GetString("prefix"); flag != "" {
		return flag
	}
	return cfg.Prefix
}
