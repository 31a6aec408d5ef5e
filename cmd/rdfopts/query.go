package main

// Query command selects options with a boolean expression.

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	rdfopts "github.com/goliatone/go-rdf-options"
)

func newQueryCmd(a *app) *cobra.Command {
	var (
		verbose bool
		vars    map[string]string
	)
	cmd := &cobra.Command{
		Use:   "query <expression>",
		Short: "Select options with an expression",
		Long: `Query evaluates a boolean expression once per option and prints the
options it selects. Each evaluation binds id, name, label, valueType,
numeric, areas, mask and uri; --arg values are bound under args.

Example:
  rdfopts query 'valueType == "string"'
  rdfopts query --area parser 'name startsWith "www"'
  rdfopts query --engine cel '"xml-reader" in areas'
  rdfopts query --arg prefix=www 'name startsWith args.prefix'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, err := a.output()
			if err != nil {
				return err
			}
			area, err := a.area(false)
			if err != nil {
				return err
			}
			evaluator, err := rdfopts.NewEvaluator(a.engine(), rdfopts.NewMemoryProgramCache(), nil)
			if err != nil {
				return userError("%w", err)
			}
			opts := []rdfopts.Option{rdfopts.WithEvaluator(evaluator)}
			if verbose {
				stderr := cmd.ErrOrStderr()
				opts = append(opts, rdfopts.WithEvaluatorLogger(rdfopts.EvaluatorLoggerFunc(func(event rdfopts.EvaluatorLogEvent) {
					fmt.Fprintf(stderr, "engine=%s area=%s matches=%d duration=%s err=%v\n",
						event.Engine, event.Area, event.Matches, event.Duration, event.Err)
				})))
			}

			queryArgs := make(map[string]any, len(vars))
			for key, value := range vars {
				queryArgs[key] = value
			}
			matches, err := rdfopts.NewWorld(opts...).SelectForArea(cmd.Context(), area, args[0], rdfopts.WithQueryArgs(queryArgs))
			if err != nil {
				var evalErr *rdfopts.EvaluationError
				if errors.As(err, &evalErr) {
					return userError("%w", err)
				}
				return systemError("%w", err)
			}
			return writeOptions(cmd, output, matches)
		},
	}
	cmd.Flags().String("area", "", "restrict to an area")
	cmd.Flags().StringToStringVar(&vars, "arg", nil, "bind key=value under args (repeatable)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log evaluation details to stderr")
	return cmd
}
