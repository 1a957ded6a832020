package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vernorm/vernorm/pkg/cliutil"
	"github.com/vernorm/vernorm/pkg/pep440"
)

func init() {
	cmd := &cobra.Command{
		Use:   "check VERSION...",
		Short: "Check whether version numbers are already in canonical form",
		Long: "Check each VERSION against the strict canonical grammar from PEP 440 " +
			"Appendix B, exiting nonzero if any of them would be rewritten by " +
			"normalization.",

		Args: cliutil.WrapPositionalArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			var bad []string
			for _, arg := range args {
				if !pep440.IsCanonical(arg) {
					bad = append(bad, fmt.Sprintf("%q", arg))
				}
			}
			if len(bad) > 0 {
				return fmt.Errorf("not in canonical form: %s", strings.Join(bad, ", "))
			}
			return nil
		},
	}
	argparser.AddCommand(cmd)
}
