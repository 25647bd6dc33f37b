// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "spdx",
		Short:        "Validate, inspect, and convert SPDX 2.3 documents",
		SilenceUsage: true,
	}

	registerValidateCmd(rootCmd)
	registerDescribeCmd(rootCmd)
	registerConvertCmd(rootCmd)
	registerNewCmd(rootCmd)
	registerVersionCmd(rootCmd)

	return rootCmd
}
