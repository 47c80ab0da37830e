/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for tsomet.
package validate

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tsomet/config"
	"bennypowers.dev/tsomet/fs"
	"bennypowers.dev/tsomet/importer"
	"bennypowers.dev/tsomet/load"
	"bennypowers.dev/tsomet/schema"
)

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate design token files",
	Long:  `Validate design token files for schema compliance and reference integrity.`,
	Args:  cobra.ArbitraryArgs,
	RunE:  run,
}

func init() {
	Cmd.Flags().Bool("quiet", false, "Only output errors")
}

func run(cmd *cobra.Command, args []string) error {
	quiet, _ := cmd.Flags().GetBool("quiet")

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

	var version schema.Version
	if flag := viper.GetString("schema"); flag != "" {
		v, err := schema.FromString(flag)
		if err != nil {
			return fmt.Errorf("invalid schema version: %s", flag)
		}
		version = v
	} else {
		version = cfg.SchemaVersion()
	}

	hasErrors := false
	for _, file := range files {
		if !quiet {
			fmt.Printf("Validating %s...\n", file)
		}

		g, err := load.File(filesystem, file, importer.Options{
			Version: version,
			Prefix:  cfg.PrefixForFile(file),
		})
		if err != nil {
			fmt.Printf("  %v\n", err)
			hasErrors = true
			continue
		}

		resolveErrs := g.ResolveAll()
		for _, rerr := range resolveErrs {
			fmt.Printf("  %v\n", rerr)
		}
		if len(resolveErrs) > 0 {
			hasErrors = true
			continue
		}

		if !quiet {
			fmt.Printf("  %d tokens OK\n", len(g.Root().Tokens()))
		}
	}

	if hasErrors {
		return fmt.Errorf("validation failed")
	}
	return nil
}
