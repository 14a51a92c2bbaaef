package cmd

import (
	"fmt"

	"github.com/posix2nu/posix2nu/nu"
	"github.com/posix2nu/posix2nu/syntax"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	convertPretty bool
	convertFile   string
	convertOutput string
)

// convertCmd translates POSIX shell input to Nushell.
var convertCmd = &cobra.Command{
	Use:   "convert [FILE]",
	Short: "Convert a POSIX shell script to Nushell syntax.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		input, err := readScript(cmd, args, convertFile)
		if err != nil {
			return err
		}

		if cfg.StrictParser {
			fmt.Fprintln(cmd.ErrOrStderr(), "warning:", syntax.ErrStrictParser)
		}

		script, err := syntax.Parse(input)
		if err != nil {
			return fmt.Errorf("couldn't parse input: %w", err)
		}

		out, err := nu.Convert(script)
		if err != nil {
			return fmt.Errorf("couldn't convert input: %w", err)
		}

		if convertPretty || cfg.Pretty {
			out = nu.Format(out)
		}

		if convertOutput != "" {
			return afero.WriteFile(appFs, convertOutput, []byte(out), 0644)
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	convertCmd.Flags().BoolVarP(&convertPretty, "pretty", "p", false, "format the output with proper indentation")
	convertCmd.Flags().StringVarP(&convertFile, "file", "f", "", "read POSIX script from file")
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "write the result to a file instead of stdout")
	rootCmd.AddCommand(convertCmd)
}
