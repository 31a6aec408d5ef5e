package main

// Schema command prints a machine-readable description of the options.

import (
	"github.com/spf13/cobra"

	rdfopts "github.com/goliatone/go-rdf-options"
	"github.com/goliatone/go-rdf-options/schema/openapi"
)

func newSchemaCmd(a *app) *cobra.Command {
	var asOpenAPI bool
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the option schema as JSON",
		Long: `Schema prints the options applicable to --area (every area by default)
as a list of field descriptors, or as an OpenAPI 3 document with --openapi.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			area, err := a.area(false)
			if err != nil {
				return err
			}
			var opts []rdfopts.Option
			if asOpenAPI {
				opts = append(opts, openapi.Option(openapi.WithInfo("rdfopts", version)))
			}
			doc, err := rdfopts.NewWorld(opts...).Schema(area)
			if err != nil {
				return systemError("%w", err)
			}
			return writeJSON(cmd, doc.Document)
		},
	}
	cmd.Flags().String("area", "", "restrict to an area")
	cmd.Flags().BoolVar(&asOpenAPI, "openapi", false, "emit an OpenAPI 3 document")
	return cmd
}
