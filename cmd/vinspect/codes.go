package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vango-inspect/internal/errors"
)

func codesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "codes [code]",
		Short: "Explain error codes",
		Long: `List every error code vinspect and the adapter can return, or
explain a single code in full.

Examples:
  vinspect codes
  vinspect codes A001`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, code := range errors.GetAllCodes() {
					fmt.Fprintln(w, errors.New(code).FormatCompact())
				}
				return nil
			}

			code := strings.ToUpper(args[0])
			if _, ok := errors.GetTemplate(code); !ok {
				return errors.Newf(errors.CategoryCLI, "unknown error code %q", args[0]).
					WithSuggestion("Run 'vinspect codes' to list all codes")
			}
			fmt.Fprint(w, errors.New(code).Format())
			return nil
		},
	}

	return cmd
}
