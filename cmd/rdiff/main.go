// Command rdiff computes rsync-style binary deltas between two versions of
// a file.
package main

import (
	"github.com/spf13/cobra"

	"github.com/yra1029/rdiff/cmd"
	"github.com/yra1029/rdiff/pkg/logging"
)

func rootMain(command *cobra.Command, _ []string) {
	// No subcommand was given; print usage and exit successfully.
	command.Help()
}

var rootCommand = &cobra.Command{
	Use:               "rdiff",
	Short:             "rdiff computes rsync-style binary deltas between file versions",
	Args:              cmd.DisallowArguments,
	Run:               rootMain,
	PersistentPreRunE: configureLogging,
}

var rootConfiguration struct {
	// logLevel controls verbosity; "debug" enables pkg/logging's Debug output.
	logLevel string
}

// configureLogging applies --log-level before any subcommand runs. It's a
// no-op during shell completion, where we don't want logging configuration
// side effects to run.
func configureLogging(*cobra.Command, []string) error {
	if cmd.PerformingShellCompletion {
		return nil
	}
	level, ok := logging.NameToLevel(rootConfiguration.logLevel)
	if !ok {
		level = logging.LevelInfo
	}
	logging.DebugEnabled = level >= logging.LevelDebug
	return nil
}

func init() {
	flags := rootCommand.PersistentFlags()
	flags.StringVar(&rootConfiguration.logLevel, "log-level", "info", "log level (disabled|error|warn|info|debug)")

	rootCommand.AddCommand(signatureCommand, deltaCommand)
}

func main() {
	if err := rootCommand.Execute(); err != nil {
		cmd.Fatal(err)
	}
}
