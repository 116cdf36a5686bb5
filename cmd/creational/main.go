package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sghaida/creational/internal/config"
	"github.com/sghaida/creational/internal/demo"
)

// Set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns an exit code.
// It exists separately from main to allow unit testing without os.Exit.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}

// cliFlags holds the persistent flags shared by every subcommand.
type cliFlags struct {
	logLevel   string
	scratchDir string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var flags cliFlags

	// runner resolves configuration lazily so list/version work with a broken env.
	runner := func(cmd *cobra.Command) (demo.Runner, error) {
		cfg := config.FromEnv()
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = flags.logLevel
		}
		if cmd.Flags().Changed("scratch-dir") {
			cfg.ScratchDir = flags.scratchDir
		}
		return demo.NewRunner(cfg, stdout, stderr)
	}

	root := &cobra.Command{
		Use:          "creational",
		Short:        "Run the creational design pattern demos",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := runner(cmd)
			if err != nil {
				return err
			}
			return r.All()
		},
	}

	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flags.scratchDir, "scratch-dir", ".", "directory for the prototype-file scratch file")

	for _, name := range demo.Names() {
		root.AddCommand(demoCmd(name, runner))
	}
	root.AddCommand(listCmd(), versionCmd())
	return root
}

var demoShort = map[string]string{
	demo.NameAbstractFactory: "Windows and Linux software families from two factories",
	demo.NameBuilder:         "Two phones assembled by a director",
	demo.NameFactoryMethod:   "A circle and a rectangle from their factories",
	demo.NamePrototype:       "Shallow clone of a sheep",
	demo.NamePrototypeDeep:   "Deep clone of a trophy",
	demo.NamePrototypeFile:   "Deep clone of a trophy through a scratch file",
}

func demoCmd(name string, runner func(*cobra.Command) (demo.Runner, error)) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: demoShort[name],
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := runner(cmd)
			if err != nil {
				return err
			}
			return r.Run(name)
		},
	}
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available demos",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, name := range demo.Names() {
				cmd.Println(name)
			}
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println("creational " + version)
		},
	}
}
