// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"github.com/charmbracelet/huh"

	"github.com/dacolabs/spdx/schema"
)

// RunNewDocumentForm runs the interactive form for the new command.
// It fills the provided pointers with user input.
func RunNewDocumentForm(name, namespace, creatorType, creatorName, licenseListVersion *string) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Document name").
				Placeholder("my-product-1.0").
				Validate(requiredValidator("document name")).
				Value(name),
			huh.NewInput().
				Title("Document namespace (optional)").
				Placeholder("https://example.com/spdxdocs/my-product-1.0").
				Validate(constraintValidator(schema.URI)).
				Value(namespace),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Creator type").
				Options(
					huh.NewOption("Person", "Person"),
					huh.NewOption("Organization", "Organization"),
					huh.NewOption("Tool", "Tool"),
				).
				Value(creatorType),
			huh.NewInput().
				Title("Creator name").
				Placeholder("Jane Doe (jane@example.com)").
				Validate(requiredValidator("creator name")).
				Value(creatorName),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("License list version (optional)").
				Placeholder("3.20").
				Value(licenseListVersion),
		),
	).WithTheme(Theme()).Run()
}
