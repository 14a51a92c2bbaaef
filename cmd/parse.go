package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/posix2nu/posix2nu/syntax"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

var (
	parseFile   string
	parseFormat string
)

// parseCmd shows the syntax tree of POSIX shell input as structured data.
var parseCmd = &cobra.Command{
	Use:   "parse [FILE]",
	Short: "Parse a POSIX shell script and print its syntax tree.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		input, err := readScript(cmd, args, parseFile)
		if err != nil {
			return err
		}

		script, err := syntax.Parse(input)
		if err != nil {
			return fmt.Errorf("couldn't parse input: %w", err)
		}

		var out []byte
		switch parseFormat {
		case "json":
			out, err = json.MarshalIndent(script, "", "  ")
		case "yaml":
			out, err = yaml.Marshal(script)
		default:
			return fmt.Errorf("unknown format %q, want json or yaml", parseFormat)
		}
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	parseCmd.Flags().StringVarP(&parseFile, "file", "f", "", "read POSIX script from file")
	parseCmd.Flags().StringVar(&parseFormat, "format", "json", "output format: json or yaml")
	rootCmd.AddCommand(parseCmd)
}
