/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for tsomet.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tsomet/cmd/convert"
	"bennypowers.dev/tsomet/cmd/list"
	"bennypowers.dev/tsomet/cmd/resolve"
	"bennypowers.dev/tsomet/cmd/validate"
	"bennypowers.dev/tsomet/cmd/version"
)

var rootCmd = &cobra.Command{
	Use:   "tsomet",
	Short: "Convert and resolve design token files",
	Long:  `tsomet imports, resolves, and converts design token files between DTCG JSON, CSS custom properties, and SCSS variables.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("schema", "s", "", "Force schema version (2022, 2025)")
	rootCmd.PersistentFlags().StringP("prefix", "p", "", "Variable prefix for CSS/SCSS output")
	_ = viper.BindPFlag("schema", rootCmd.PersistentFlags().Lookup("schema"))
	_ = viper.BindPFlag("prefix", rootCmd.PersistentFlags().Lookup("prefix"))

	rootCmd.AddCommand(convert.Cmd)
	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(resolve.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
