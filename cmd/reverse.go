package cmd

import (
	"fmt"

	"github.com/posix2nu/posix2nu/nu"
	"github.com/spf13/cobra"
)

var reverseFile string

// reverseCmd translates Nushell text back toward POSIX shell.
var reverseCmd = &cobra.Command{
	Use:   "reverse [FILE]",
	Short: "Convert Nushell syntax to a POSIX shell approximation (experimental).",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		input, err := readScript(cmd, args, reverseFile)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), nu.Reverse(input))
		return nil
	},
}

func init() {
	reverseCmd.Flags().StringVarP(&reverseFile, "file", "f", "", "read Nushell script from file")
	rootCmd.AddCommand(reverseCmd)
}
