package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

const parserModulePath = "github.com/smacker/go-tree-sitter"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the doccov build, the Python parser it was linked against and the Go version.",
		Run: func(cmd *cobra.Command, _ []string) {
			info, ok := debug.ReadBuildInfo()
			if !ok {
				cmd.Println("version: unknown")
				return
			}

			for _, line := range versionLines(info) {
				cmd.Println(line)
			}
		},
	}
}

// versionLines describes a build: module, parser and toolchain.
func versionLines(info *debug.BuildInfo) []string {
	version := info.Main.Version
	if version == "" {
		version = "(devel)"
	}

	parser := "unknown"
	for _, dep := range info.Deps {
		if dep.Path != parserModulePath {
			continue
		}

		parser = dep.Version
		if dep.Replace != nil {
			parser = dep.Replace.Version
		}
	}

	return []string{
		fmt.Sprintf("doccov %s (%s)", version, info.Main.Path),
		fmt.Sprintf("python parser\t tree-sitter %s", parser),
		fmt.Sprintf("go version\t %s", info.GoVersion),
	}
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
