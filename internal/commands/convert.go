// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"

	"github.com/dacolabs/spdx/internal/prompts"
	"github.com/spf13/cobra"
)

type convertOptions struct {
	to      string
	compact bool
}

func registerConvertCmd(parent *cobra.Command) {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert SRC DST",
		Short: "Convert an SPDX document between JSON and YAML",
		Long: `Read an SPDX document and write it to another file. Formats are
inferred from the file extensions; --to overrides the destination format.
Field order and presence are preserved: a field absent from SRC stays
absent from DST.`,
		Example: `  # JSON to YAML
  spdx convert sbom.spdx.json sbom.spdx.yaml

  # Re-serialize compact JSON regardless of destination extension
  spdx convert sbom.spdx.yaml sbom.min.json --to json --compact`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(args[0], args[1], opts)
		},
	}

	cmd.Flags().StringVar(&opts.to, "to", "", "Destination format (json or yaml)")
	cmd.Flags().BoolVar(&opts.compact, "compact", false, "Write single-line JSON")

	parent.AddCommand(cmd)
}

func runConvert(src, dst string, opts *convertOptions) error {
	doc, err := readDocument(src, "")
	if err != nil {
		return err
	}

	format := opts.to
	if format == "" {
		format, err = detectFormat(dst)
		if err != nil {
			return err
		}
	}
	if opts.compact && format != formatJSON {
		return fmt.Errorf("--compact applies to JSON output only")
	}

	if err := writeDocument(dst, format, doc, opts.compact); err != nil {
		return fmt.Errorf("failed to write %s: %w", dst, err)
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Source", Value: src},
		{Label: "Written", Value: dst},
	}, "")
	return nil
}
