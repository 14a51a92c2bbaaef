package cmd

import (
	"errors"
	"io"
	"io/fs"
	"log"

	"github.com/fatih/color"
	"github.com/posix2nu/posix2nu/core/config"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var cfgPath string

// appFs is the filesystem commands read scripts and configuration through.
// Tests swap it for an in-memory one.
var appFs afero.Fs = afero.NewOsFs()

// loadConfig loads config.yaml from the --config path, falling back to the
// built-in defaults when the file doesn't exist.
func loadConfig() (*config.Configuration, error) {
	configuration, err := config.Load(appFs, cfgPath)

	if errors.Is(err, fs.ErrNotExist) {
		log.Println("No config.yaml found (run init to create one), using defaults.")
		configuration, err = config.Default(), nil
	}

	if configuration != nil {
		configureColor(configuration)
	}
	return configuration, err
}

func configureColor(cfg *config.Configuration) {
	switch cfg.Color {
	case config.ColorAlways:
		color.NoColor = false
	case config.ColorNever:
		color.NoColor = true
	}
	// Auto keeps the library's terminal detection.
}

// readScript reads POSIX input from the positional FILE argument, the
// --file flag, or stdin, in that priority order.
func readScript(cmd *cobra.Command, args []string, fileFlag string) (string, error) {
	path := fileFlag
	if len(args) > 0 {
		path = args[0]
	}
	if path != "" {
		contents, err := afero.ReadFile(appFs, path)
		if err != nil {
			return "", err
		}
		return string(contents), nil
	}

	contents, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	return string(contents), nil
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "posix2nu",
	Short: "POSIX shell to Nushell translator",
	Long:  `Translate POSIX shell scripts into idiomatic Nushell syntax.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", ".", "config path")
}
