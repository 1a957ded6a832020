package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/vernorm/vernorm/pkg/cliutil"
	"github.com/vernorm/vernorm/pkg/pep440"
)

func init() {
	var flags struct {
		AllowInvalid bool
	}
	cmd := &cobra.Command{
		Use:   "pyproject [flags] PYPROJECT_TOML",
		Short: "Normalize the version declared in a pyproject.toml",
		Long: "Read the [project] table of PYPROJECT_TOML and print the canonical " +
			"form of its \"version\" field.  This is the version that build tools " +
			"will stamp in to the distribution metadata.",

		Args: cliutil.WrapPositionalArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			inBytes, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			var pyproject struct {
				Project struct {
					Name    string `toml:"name"`
					Version string `toml:"version"`
				} `toml:"project"`
			}
			if err := toml.Unmarshal(inBytes, &pyproject); err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			if pyproject.Project.Version == "" {
				return fmt.Errorf("%s: no project.version is declared", args[0])
			}

			normalized, err := pep440.NormalizeWithOptions(ctx, pyproject.Project.Version, pep440.Options{
				AllowInvalid: flags.AllowInvalid,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), normalized)
			return nil
		},
	}
	cmd.Flags().BoolVar(&flags.AllowInvalid, "allow-invalid", os.Getenv("VERNORM_ALLOW_INVALID") != "",
		"Pass through (lowercased) version numbers that do not match PEP 440, "+
			"instead of erroring; defaults to true if $VERNORM_ALLOW_INVALID is non-empty")
	argparser.AddCommand(cmd)
}
