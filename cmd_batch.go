package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	yamlout "gopkg.in/yaml.v2"
	yamlin "sigs.k8s.io/yaml"

	"github.com/vernorm/vernorm/pkg/cliutil"
	"github.com/vernorm/vernorm/pkg/pep440"
)

type outputFormat string

const (
	outputFormatText outputFormat = "text"
	outputFormatYAML outputFormat = "yaml"
)

// String implements pflag.Value.
func (f *outputFormat) String() string { return string(*f) }

// Set implements pflag.Value.
func (f *outputFormat) Set(val string) error {
	switch outputFormat(val) {
	case outputFormatText, outputFormatYAML:
		*f = outputFormat(val)
		return nil
	default:
		return fmt.Errorf("invalid output format %q (valid formats are %q and %q)",
			val, outputFormatText, outputFormatYAML)
	}
}

// Type implements pflag.Value.
func (f *outputFormat) Type() string { return "text|yaml" }

var _ pflag.Value = (*outputFormat)(nil)

func init() {
	var flags struct {
		AllowInvalid bool
		Output       outputFormat
	}
	flags.Output = outputFormatYAML
	cmd := &cobra.Command{
		Use:   "batch [flags] IN_VERSIONS.yml",
		Short: "Normalize a whole file of version numbers at once",
		Long: "Read IN_VERSIONS.yml, a YAML mapping of arbitrary names (package names, " +
			"say) to version numbers, normalize every version, and write the " +
			"resulting mapping to stdout.",

		Args: cliutil.WrapPositionalArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			inBytes, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			var versions map[string]string
			if err := yamlin.Unmarshal(inBytes, &versions); err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			opts := pep440.Options{
				AllowInvalid: flags.AllowInvalid,
			}
			normalized := make(map[string]string, len(versions))
			for name, version := range versions {
				normalized[name], err = pep440.NormalizeWithOptions(ctx, version, opts)
				if err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
			}

			switch flags.Output {
			case outputFormatText:
				names := make([]string, 0, len(normalized))
				for name := range normalized {
					names = append(names, name)
				}
				sort.Strings(names)
				for _, name := range names {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", name, normalized[name])
				}
			case outputFormatYAML:
				outBytes, err := yamlout.Marshal(normalized)
				if err != nil {
					return err
				}
				if _, err := cmd.OutOrStdout().Write(outBytes); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&flags.AllowInvalid, "allow-invalid", os.Getenv("VERNORM_ALLOW_INVALID") != "",
		"Pass through (lowercased) version numbers that do not match PEP 440, "+
			"instead of erroring; defaults to true if $VERNORM_ALLOW_INVALID is non-empty")
	cmd.Flags().Var(&flags.Output, "output", "Write the normalized mapping as \"yaml\" or as plain \"text\"")
	argparser.AddCommand(cmd)
}
