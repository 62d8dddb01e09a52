// Package main implements the skid CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skid [command [args...]]",
	Short: "skid - class assignment scheduler",
	Long: `skid - class assignment scheduler

Without arguments skid reads commands interactively. With arguments the
arguments are run as a single command line. Run 'skid help' for the
list of commands.`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE:         runRoot,
}

var (
	rootFile    string
	rootConfig  string
	rootColor   string
	rootVerbose bool
)

var rootFlagAliases = map[string]string{
	"data":   "file",
	"colour": "color",
}

func init() {
	flags := rootCmd.Flags()
	flags.SetInterspersed(false)
	setFlagAliases(flags, rootFlagAliases)
	flags.StringVar(&rootFile, "file", "", "Class data file (default <config dir>/skid)")
	flags.StringVar(&rootConfig, "config", "", "Settings file (default <config dir>/skid.toml)")
	flags.StringVar(&rootColor, "color", "", "Colour output: auto, always or never")
	flags.BoolVarP(&rootVerbose, "verbose", "v", false, "Log diagnostics to stderr")
}

func runRoot(cmd *cobra.Command, args []string) error {
	return run(appOptions{
		Stdin:    os.Stdin,
		Stdout:   cmd.OutOrStdout(),
		Stderr:   cmd.ErrOrStderr(),
		Args:     args,
		DataFile: rootFile,
		Config:   rootConfig,
		Color:    rootColor,
		Verbose:  rootVerbose,
	})
}
