// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dacolabs/spdx"
	"github.com/dacolabs/spdx/internal/prompts"
	"github.com/dacolabs/spdx/spdx23"
	"github.com/spf13/cobra"
)

type newOptions struct {
	name               string
	namespace          string
	creator            string
	licenseListVersion string
	force              bool
	nonInteractive     bool
}

func registerNewCmd(parent *cobra.Command) {
	opts := &newOptions{}

	cmd := &cobra.Command{
		Use:   "new [FILE]",
		Short: "Create a minimal SPDX document",
		Long: `Create a minimal valid SPDX 2.3 document and write it to FILE.
The default file is ./<name>.spdx.json; the format follows the extension.
Without flags an interactive form asks for the document fields.`,
		Example: `  # Interactive mode
  spdx new

  # Non-interactive
  spdx new --name my-product --creator "Organization: Example Corp" --non-interactive

  # YAML output
  spdx new out.spdx.yaml --name my-product --creator "Tool: builder" --non-interactive`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runNew(path, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "Document name")
	cmd.Flags().StringVar(&opts.namespace, "namespace", "", "Document namespace URI")
	cmd.Flags().StringVarP(&opts.creator, "creator", "c", "", `Creator ("Person: ...", "Organization: ...", or "Tool: ...")`)
	cmd.Flags().StringVar(&opts.licenseListVersion, "license-list-version", "", "Version of the SPDX license list the document uses")
	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Overwrite an existing file")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts (requires --name and --creator)")

	parent.AddCommand(cmd)
}

func runNew(path string, opts *newOptions) error {
	name := opts.name
	namespace := opts.namespace
	creator := opts.creator
	licenseListVersion := opts.licenseListVersion

	if opts.nonInteractive {
		if name == "" || creator == "" {
			return errors.New("non-interactive mode requires --name and --creator")
		}
	} else {
		creatorType := "Organization"
		var creatorName string
		if err := prompts.RunNewDocumentForm(&name, &namespace, &creatorType, &creatorName, &licenseListVersion); err != nil {
			return err
		}
		creator = creatorType + ": " + creatorName
	}

	info, err := spdx23.NewCreationInfo(time.Now().UTC().Format(time.RFC3339), creator)
	if err != nil {
		return err
	}
	if licenseListVersion != "" {
		info.LicenseListVersion = spdx.Some(licenseListVersion)
	}

	doc, err := spdx23.NewDocument(name, info)
	if err != nil {
		return err
	}
	if namespace != "" {
		doc.DocumentNamespace = spdx.Some(namespace)
		if err := doc.Validate(); err != nil {
			return err
		}
	}

	if path == "" {
		path = "./" + name + ".spdx.json"
	}
	format, err := detectFormat(path)
	if err != nil {
		return err
	}
	if !opts.force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}
	if err := writeDocument(path, format, doc, false); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Name", Value: doc.Name},
		{Label: "Created", Value: doc.CreationInfo.Created},
		{Label: "File", Value: path},
	}, "Document created")
	return nil
}
