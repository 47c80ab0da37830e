/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package list provides the list command for tsomet.
package list

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/tsomet/config"
	"bennypowers.dev/tsomet/fs"
	"bennypowers.dev/tsomet/load"
	"bennypowers.dev/tsomet/schema"
	"bennypowers.dev/tsomet/token"
)

// Cmd is the list cobra command.
var Cmd = &cobra.Command{
	Use:   "list [files...]",
	Short: "List tokens from design token files",
	Long:  `List all tokens from design token files with optional filtering and formatting.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  run,
}

func init() {
	Cmd.Flags().String("type", "", "Filter by token type")
	Cmd.Flags().String("format", "table", "Output format: table, json")
	Cmd.Flags().Bool("swatch", false, "Show an sRGB hex approximation next to color tokens")
}

type entry struct {
	Path        string `json:"path"`
	Type        string `json:"type,omitempty"`
	Value       string `json:"value"`
	Swatch      string `json:"swatch,omitempty"`
	Description string `json:"description,omitempty"`
}

func run(cmd *cobra.Command, args []string) error {
	typeFilter, _ := cmd.Flags().GetString("type")
	format, _ := cmd.Flags().GetString("format")
	swatch, _ := cmd.Flags().GetBool("swatch")

	filesystem := fs.NewOSFileSystem()
	cfg := config.LoadOrDefault(filesystem, ".")

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

	g, err := load.Files(filesystem, cfg, args, version)
	if err != nil {
		return err
	}

	var entries []entry
	g.Walk(func(path string, tok *token.Token) {
		if typeFilter != "" && string(tok.Type) != typeFilter {
			return
		}
		e := entry{
			Path:        path,
			Type:        string(tok.Type),
			Description: tok.Description,
			Value: token.CSS(tok.Value, func(r token.Reference) string {
				return r.String()
			}),
		}
		if swatch {
			if c, ok := tok.Value.(token.Color); ok {
				e.Swatch = c.ApproxHex()
			}
		}
		entries = append(entries, e)
	})

	switch format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	default:
		return outputTable(entries)
	}
}

func outputTable(entries []entry) error {
	title := cases.Title(language.English)
	lastType := ""
	for _, e := range entries {
		if e.Type != lastType {
			heading := e.Type
			if heading == "" {
				heading = "reference"
			}
			fmt.Printf("\n%s\n", title.String(heading))
			lastType = e.Type
		}
		value := e.Value
		if e.Swatch != "" && e.Swatch != value {
			value = fmt.Sprintf("%s  (~%s)", value, e.Swatch)
		}
		fmt.Printf("  %-40s %s\n", e.Path, value)
	}
	return nil
}
