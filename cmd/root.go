// Package cmd provides the root command and CLI setup for doccov.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"doccov.dev/pkg/doccov/internal/adapter"
	"doccov.dev/pkg/doccov/internal/controller"
	"doccov.dev/pkg/doccov/internal/domain"
	m "doccov.dev/pkg/doccov/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var pythonAdapter adapter.PythonFileAdapter
var reportStore adapter.ReportStore
var interrogator domain.Interrogator
var workflow domain.Workflow
var ui controller.UI

// reportOutputFlag is a root-level flag naming the file the report is written to.
var reportOutputFlag string

// configFileFlag points at an explicit configuration file.
var configFileFlag string

var logFileFlag string
var verboseLogFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	pythonAdapter = adapter.NewLocalPythonFileAdapter()
	reportStore = adapter.NewReportStore()
	interrogator = domain.NewInterrogator(fsAdapter, pythonAdapter)
	workflow = domain.NewWorkflow(
		fsAdapter,
		reportStore,
		ui,
		interrogator,
	)
}

const pathsHelp = `Paths may be Python files or directories; directories are searched
recursively for *.py files. Defaults to the current directory.
The .tox, .venv, venv, .git and .hg directories are always skipped.`

const rootLongDescription = `doccov measures how much of a Python code base is documented: it counts
the modules, classes, methods and functions that carry a docstring and fails
when the share drops below a threshold.

` + pathsHelp

const checkLongDescription = `Measure docstring coverage for the given paths and print a report.

Exits with status 1 when coverage is below --fail-under.

` + pathsHelp

const listLongDescription = `List the Python files that would be interrogated with their node counts.

` + pathsHelp

// ThresholdError reports a run whose coverage is below the fail-under value.
type ThresholdError struct {
	Percent   float64
	FailUnder float64
}

func (e *ThresholdError) Error() string {
	return fmt.Sprintf("docstring coverage %.1f%% is below the minimum of %s%%",
		e.Percent, strconv.FormatFloat(e.FailUnder, 'f', -1, 64))
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "doccov",
		Short:         "Docstring coverage for Python",
		Long:          rootLongDescription,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			used, err := loadConfig(viper.GetViper(), configFileFlag)
			if err != nil {
				return err
			}

			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))

			if used != "" {
				slog.Debug("configuration loaded", "file", used)
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

// newRootCmd builds a root command with its persistent flags, without
// subcommands.
func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportOutputFlag, outputFlagName, "o",
			"",
			"write the report to this file instead of stdout",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputKey)

	cmd.PersistentFlags().StringVarP(&configFileFlag, configFlagName, "c", "", "read configuration from this file (yaml, or toml with a [tool.doccov] table)")

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, defaultLogFilename, "write logs to this file")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().BoolVar(&verboseLogFlag, verboseLogFlagName, defaultLogVerbose, "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseLogFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// bindFlags binds the named flags of a command to their config keys. Commands
// sharing a key bind when they run, so the running command owns the key.
func bindFlags(flags *pflag.FlagSet, names ...string) error {
	for _, name := range names {
		flag := flags.Lookup(name)
		if flag == nil {
			return fmt.Errorf("flag %q not found", name)
		}

		key, ok := configKeysByFlag[name]
		if !ok {
			return fmt.Errorf("flag %q has no config key", name)
		}

		if err := viper.BindPFlag(key, flag); err != nil {
			return err
		}
	}

	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return
	}

	var threshold *ThresholdError
	if !errors.As(err, &threshold) {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
	}

	stop()
	os.Exit(1)
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
