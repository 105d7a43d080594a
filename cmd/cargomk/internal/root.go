package internal

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/crateops/cargomk/internal/cargo"
	"github.com/crateops/cargomk/internal/config"
	"github.com/crateops/cargomk/internal/task"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "cargomk",
	Short: "cargomk wraps common cargo workflows behind uniform task names",
	Long: `cargomk forwards a fixed set of task names (debug, release, test, fmt,
lint, check, doc, clean, update-deps, upgrade-deps, ci, all) to the cargo
toolchain, appending flags composed from optional overrides.

Overrides are read from cargomk.yaml in the working directory, then from
the environment (non-empty values win):

  FEATURES           comma-separated cargo feature list
  WORKSPACE          literal flag token, commonly --workspace
  CARGO_FLAGS        extra flags for every forwarded command
  TEST_FLAGS         extra flags for the test task only
  CARGO_MIN_VERSION  minimum cargo version checked by doctor

Running cargomk with no task is the same as running "cargomk all".`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE:          runSequence(task.All),
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Echo each cargo command line before running it")
}

// Execute adds all child commands to the root command and runs it.
// This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

// runnerFactory builds the cargo runner; tests replace it with a fake.
var runnerFactory = func() cargo.Runner {
	return &cargo.Shell{Verbose: verbose, Stdout: os.Stdout, Stderr: os.Stderr}
}

func loadConfig() (config.Build, error) {
	return config.Load(".")
}

// runTask adapts a single task into a cobra RunE.
func runTask(name task.Name) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return task.Run(cmd.Context(), runnerFactory(), cfg, name)
	}
}

// runSequence adapts a fail-fast composite task into a cobra RunE.
func runSequence(names []task.Name) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return task.Sequence(cmd.Context(), runnerFactory(), cfg, names, cmd.OutOrStdout())
	}
}
