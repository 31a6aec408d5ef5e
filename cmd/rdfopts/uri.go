package main

// URI and decode commands convert between option identities and URIs.

import (
	"fmt"

	"github.com/spf13/cobra"

	rdfopts "github.com/goliatone/go-rdf-options"
)

func newURICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "uri <name|id>",
		Short: "Print the canonical URI of an option",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, err := a.output()
			if err != nil {
				return err
			}
			d, err := resolveOption(args[0])
			if err != nil {
				return err
			}
			uri, err := rdfopts.NewWorld().OptionURI(d.ID)
			if err != nil {
				return systemError("build uri: %w", err)
			}
			if output == "json" {
				return writeJSON(cmd, map[string]any{"id": int(d.ID), "uri": uri.String()})
			}
			fmt.Fprintln(cmd.OutOrStdout(), uri.String())
			return nil
		},
	}
}

func newDecodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <uri>",
		Short: "Map a canonical option URI back to its option",
		Long: `Decode maps a URI to its option. Only exact canonical URIs match: a
prefix of a name, a different namespace or extra characters are rejected.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, err := a.output()
			if err != nil {
				return err
			}
			id := rdfopts.OptionFromURIString(args[0])
			d, ok := rdfopts.Lookup(id)
			if !ok {
				return userError("%q is not an option URI", args[0])
			}
			if output == "json" {
				return writeJSON(cmd, viewOf(d))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d %s\n", d.ID, d.Name)
			return nil
		},
	}
}
