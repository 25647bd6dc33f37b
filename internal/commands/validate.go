// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"

	"github.com/dacolabs/spdx/internal/prompts"
	"github.com/dacolabs/spdx/spdx23"
	"github.com/spf13/cobra"
)

type validateOptions struct {
	quiet bool
}

func registerValidateCmd(parent *cobra.Command) {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate FILE...",
		Short: "Validate SPDX documents",
		Long: `Validate one or more SPDX documents against the SPDX 2.3 schema.
The format of each file is inferred from its extension (.json, .yaml, .yml).
Failures are reported with the path of the offending field.`,
		Example: `  # Validate a single document
  spdx validate sbom.spdx.json

  # Validate several documents, printing failures only
  spdx validate --quiet dist/*.spdx.json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress per-file success output")

	parent.AddCommand(cmd)
}

func runValidate(paths []string, opts *validateOptions) error {
	invalid := 0
	for _, path := range paths {
		doc, err := readDocument(path, "")
		if err != nil {
			prompts.PrintError(path, err)
			invalid++
			continue
		}
		if !opts.quiet {
			prompts.PrintResult([]prompts.ResultField{
				{Label: path, Value: summarize(doc)},
			}, "")
		}
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d file(s) invalid", invalid, len(paths))
	}
	return nil
}

func summarize(doc *spdx23.Document) string {
	return fmt.Sprintf("%s (%s), %d package(s), %d file(s), %d relationship(s)",
		doc.Name, doc.SPDXVersion, len(doc.Packages), len(doc.Files), len(doc.Relationships))
}
