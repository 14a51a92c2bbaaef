package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/anmitsu/go-shlex"
	"github.com/fatih/color"
	"github.com/posix2nu/posix2nu/nu"
	"github.com/posix2nu/posix2nu/nu/builtin"
	"github.com/posix2nu/posix2nu/nu/sus"
	"github.com/posix2nu/posix2nu/syntax"
	"github.com/spf13/cobra"
)

// replCmd converts lines interactively.
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactively convert POSIX lines to Nushell.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		rl, err := readline.NewEx(&readline.Config{
			Prompt: "posix> ",
			Stdout: cmd.OutOrStdout(),
			Stderr: cmd.ErrOrStderr(),
		})
		if err != nil {
			return err
		}
		defer rl.Close()

		fmt.Fprintln(rl, "Type POSIX shell lines; :names lists converters, :cmd NAME ARGS converts one invocation, Ctrl-D exits.")

		for {
			line, err := rl.Readline()
			switch {
			case err == io.EOF:
				return nil
			case err == readline.ErrInterrupt:
				continue
			case err != nil:
				return err
			case strings.TrimSpace(line) == "":
				continue
			}

			if strings.HasPrefix(line, ":") {
				runReplDirective(rl, line)
				continue
			}

			parsed, err := syntax.Parse(line)
			if err != nil {
				color.New(color.FgRed).Fprintf(rl, "parse error: %v\n", err)
				continue
			}
			out, err := nu.Convert(parsed)
			if err != nil {
				color.New(color.FgRed).Fprintf(rl, "convert error: %v\n", err)
				continue
			}
			if cfg.Pretty {
				out = nu.Format(out)
			}
			color.New(color.FgGreen).Fprintln(rl, out)
		}
	},
}

// runReplDirective handles the `:` command forms.
func runReplDirective(out io.Writer, line string) {
	tokens, err := shlex.Split(strings.TrimPrefix(line, ":"), true)
	if err != nil {
		color.New(color.FgRed).Fprintf(out, "syntax error: %v\n", err)
		return
	}
	if len(tokens) == 0 {
		return
	}

	switch tokens[0] {
	case "names":
		fmt.Fprintln(out, strings.Join(builtin.Names(), " "))
		fmt.Fprintln(out, strings.Join(sus.Names(), " "))
	case "cmd":
		if len(tokens) < 2 {
			color.New(color.FgRed).Fprintln(out, "usage: :cmd NAME ARGS...")
			return
		}
		name, rest := tokens[1], tokens[2:]
		converted, ok := builtin.Lookup(name, rest)
		if !ok {
			converted = sus.Convert(name, rest)
		}
		color.New(color.FgGreen).Fprintln(out, converted)
	default:
		color.New(color.FgRed).Fprintf(out, "unknown directive %q\n", tokens[0])
	}
}

func init() {
	rootCmd.AddCommand(replCmd)
}
