package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vernorm/vernorm/pkg/cliutil"
	"github.com/vernorm/vernorm/pkg/pep440"
)

func init() {
	var flags struct {
		AllowInvalid bool
	}
	cmd := &cobra.Command{
		Use:   "normalize [flags] VERSION...",
		Short: "Rewrite version numbers in to canonical form",
		Long: "Rewrite each VERSION in to its PEP 440 canonical form, printing one " +
			"result per line.  Inputs may use any of the alternate spellings that " +
			"PEP 440 permits (\"1.0Alpha1\", \"v1.0-rc.2\", \"1.0-1\", ...); inputs " +
			"that do not match even the permissive grammar are an error unless " +
			"--allow-invalid is given.",

		Args: cliutil.WrapPositionalArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			opts := pep440.Options{
				AllowInvalid: flags.AllowInvalid,
			}
			for _, arg := range args {
				normalized, err := pep440.NormalizeWithOptions(ctx, arg, opts)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), normalized)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&flags.AllowInvalid, "allow-invalid", os.Getenv("VERNORM_ALLOW_INVALID") != "",
		"Pass through (lowercased) version numbers that do not match PEP 440, "+
			"instead of erroring; defaults to true if $VERNORM_ALLOW_INVALID is non-empty")
	argparser.AddCommand(cmd)
}
