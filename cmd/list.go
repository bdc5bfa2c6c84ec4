package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"doccov.dev/pkg/doccov/internal/domain"
)

var coverageFlagNames = []string{
	excludeFlagName,
	parallelFlagName,
	ignoreInitMethodFlagName,
	ignoreInitModuleFlagName,
	ignoreMagicFlagName,
	ignoreModuleFlagName,
	ignoreNestedFuncsFlagName,
	ignoreNestedClassesFlagName,
	ignorePrivateFlagName,
	ignorePropertyFlagName,
	ignoreSettersFlagName,
	ignoreOverloadedFlagName,
	ignoreSemiprivateFlagName,
	ignoreRegexFlagName,
	whitelistRegexFlagName,
	docstringStyleFlagName,
}

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "List interrogated files and their node counts",
		Long:  listLongDescription,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return bindFlags(cmd.Flags(), coverageFlagNames...)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := coverageConfig(viper.GetViper())
			if err != nil {
				return err
			}

			return workflow.List(cmd.Context(), domain.ListArgs{
				DiscoverArgs: discoverArgs(args, cfg),
			})
		},
	}

	configureCoverageFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func configureCoverageFlags(cmd *cobra.Command) {
	flags := cmd.Flags()

	flags.StringArrayP(excludeFlagName, "e", nil, "exclude files and directories matching this path or glob (can be repeated)")
	flags.Int(parallelFlagName, defaultParallel, "number of files interrogated in parallel")
	flags.BoolP(ignoreInitMethodFlagName, "i", false, "ignore __init__ methods")
	flags.BoolP(ignoreInitModuleFlagName, "I", false, "ignore __init__.py modules")
	flags.BoolP(ignoreMagicFlagName, "m", false, "ignore magic methods such as __str__")
	flags.BoolP(ignoreModuleFlagName, "M", false, "ignore module docstrings")
	flags.BoolP(ignoreNestedFuncsFlagName, "n", false, "ignore functions defined inside functions")
	flags.BoolP(ignoreNestedClassesFlagName, "C", false, "ignore classes defined inside classes or functions")
	flags.BoolP(ignorePrivateFlagName, "p", false, "ignore private names (__name)")
	flags.BoolP(ignorePropertyFlagName, "P", false, "ignore methods decorated with @property, @x.setter or @x.deleter")
	flags.BoolP(ignoreSettersFlagName, "S", false, "ignore methods decorated with @x.setter")
	flags.BoolP(ignoreOverloadedFlagName, "O", false, "ignore @overload and @typing.overload signatures")
	flags.BoolP(ignoreSemiprivateFlagName, "s", false, "ignore semiprivate names (_name)")
	flags.StringArrayP(ignoreRegexFlagName, "r", nil, "ignore names matching this regex from their start (can be repeated)")
	flags.StringArrayP(whitelistRegexFlagName, "w", nil, "only count names matching this regex from their start (can be repeated)")
	flags.String(docstringStyleFlagName, defaultDocstringStyle, "docstring style: sphinx, or google to let a class share its __init__ docstring")
}
