package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"doccov.dev/pkg/doccov/internal/controller"
	"doccov.dev/pkg/doccov/internal/domain"
	m "doccov.dev/pkg/doccov/internal/model"
)

var checkFlagNames = []string{
	verboseFlagName,
	quietFlagName,
	failUnderFlagName,
	omitCoveredFlagName,
	colorFlagName,
	generateBadgeFlagName,
	formatFlagName,
}

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Measure docstring coverage",
		Long:  checkLongDescription,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := bindFlags(cmd.Flags(), coverageFlagNames...); err != nil {
				return err
			}

			return bindFlags(cmd.Flags(), checkFlagNames...)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := coverageConfig(viper.GetViper())
			if err != nil {
				return err
			}

			if noColor, _ := cmd.Flags().GetBool(noColorFlagName); noColor {
				cfg.Color = false
			}

			format, err := controller.ParseReportFormat(viper.GetString(formatKey))
			if err != nil {
				return err
			}

			result, err := workflow.Check(cmd.Context(), domain.CheckArgs{
				DiscoverArgs: discoverArgs(args, cfg),
				Verbosity:    viper.GetInt(verboseKey),
				Quiet:        viper.GetBool(quietKey),
				Format:       format,
				Output:       m.Path(viper.GetString(outputKey)),
				Badge:        m.Path(viper.GetString(badgeOutputKey)),
			})
			if err != nil {
				return err
			}

			if result.ReturnCode != 0 {
				return &ThresholdError{Percent: result.PercentCovered(), FailUnder: cfg.FailUnder}
			}

			return nil
		},
	}

	configureCoverageFlags(cmd)
	configureCheckFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func configureCheckFlags(cmd *cobra.Command) {
	flags := cmd.Flags()

	flags.CountP(verboseFlagName, "v", "increase report detail (-v summary table, -vv every node)")
	flags.BoolP(quietFlagName, "q", false, "print nothing, only set the exit status")
	flags.Float64P(failUnderFlagName, "f", m.DefaultFailUnder, "fail when coverage is below this percentage")
	flags.Bool(omitCoveredFlagName, false, "leave fully covered files out of the report")
	flags.Bool(colorFlagName, false, "color the terminal report")
	flags.Bool(noColorFlagName, false, "never color the report")
	flags.StringP(generateBadgeFlagName, "g", "", "write an SVG status badge to this file or directory")
	flags.String(formatFlagName, defaultFormat, "report format: table, markdown, json or yaml")
}

// discoverArgs collects the discovery settings shared by check and list.
func discoverArgs(args []string, cfg *m.Config) domain.DiscoverArgs {
	return domain.DiscoverArgs{
		Paths:    parsePaths(args),
		Exclude:  viper.GetStringSlice(excludeConfigKey),
		Config:   cfg,
		Parallel: viper.GetInt(parallelKey),
	}
}
