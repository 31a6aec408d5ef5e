// Package main provides the rdfopts CLI for browsing and applying options.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "v0.1.0"

const (
	exitOK     = 0
	exitUser   = 1
	exitSystem = 2
)

// cliError tags an error with the process exit code it maps to.
type cliError struct {
	code int
	err  error
}

func (e *cliError) Error() string { return e.err.Error() }
func (e *cliError) Unwrap() error { return e.err }

func userError(format string, args ...any) error {
	return &cliError{code: exitUser, err: fmt.Errorf(format, args...)}
}

func systemError(format string, args ...any) error {
	return &cliError{code: exitSystem, err: fmt.Errorf(format, args...)}
}

// exitCode maps an error onto the CLI exit convention. Errors that were not
// tagged, including cobra's argument errors, count as user errors.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var tagged *cliError
	if errors.As(err, &tagged) {
		return tagged.code
	}
	return exitUser
}

func main() {
	root := newRootCmd()
	err := root.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(exitCode(err))
}

// app holds the state shared by every subcommand of one invocation.
type app struct {
	configFile string
	cfg        *viper.Viper
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: viper.New()}

	root := &cobra.Command{
		Use:   "rdfopts",
		Short: "Browse and apply RDF parser and serializer options",
		Long: `rdfopts inspects the option catalog shared by the parsers, serializers,
the SAX2 XML reader and the Turtle and XML writers. It lists options by
area, converts between names and URIs, selects options with expressions
and applies settings documents.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default: ./.rdfopts.yaml)")
	flags.StringP("output", "o", defaultOutput, "output format (text, json)")
	flags.String("engine", defaultEngine, "query engine (expr, cel, js)")
	_ = a.cfg.BindPFlag(cfgKeyOutput, flags.Lookup("output"))
	_ = a.cfg.BindPFlag(cfgKeyEngine, flags.Lookup("engine"))

	root.AddCommand(
		newListCmd(a),
		newShowCmd(a),
		newURICmd(a),
		newDecodeCmd(a),
		newQueryCmd(a),
		newSchemaCmd(a),
		newApplyCmd(a),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "rdfopts %s\n", version)
		},
	}
}
