/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolve provides the resolve command for tsomet.
package resolve

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tsomet/config"
	"bennypowers.dev/tsomet/fs"
	"bennypowers.dev/tsomet/load"
	"bennypowers.dev/tsomet/schema"
	"bennypowers.dev/tsomet/token"
)

// Cmd is the resolve cobra command.
var Cmd = &cobra.Command{
	Use:   "resolve <path> [files...]",
	Short: "Resolve a token's effective value",
	Long: `Resolve a token's effective value by following references, and print
the result. Reports missing and cyclic references with the field they
occur in.

Examples:
  tsomet resolve color.brand.primary tokens.json
  tsomet resolve shadow.card --format json tokens.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "css", "Output format: css, json")
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	path := args[0]

	filesystem := fs.NewOSFileSystem()
	cfg := config.LoadOrDefault(filesystem, ".")

	files := args[1:]
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

	g, err := load.Files(filesystem, cfg, files, version)
	if err != nil {
		return err
	}

	res := g.Resolve(path)
	for _, rerr := range res.Errors {
		fmt.Fprintf(os.Stderr, "%v\n", rerr)
	}
	if res.Value == nil {
		return fmt.Errorf("cannot resolve %s", path)
	}

	switch format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(token.Encode(res.Value)); err != nil {
			return err
		}
	default:
		fmt.Println(token.CSS(res.Value, func(r token.Reference) string {
			return r.String()
		}))
	}

	if !res.OK() {
		return fmt.Errorf("%s has %d unresolved references", path, len(res.Errors))
	}
	return nil
}
