package cmd

import (
	"context"
	"errors"
	"strings"

	"convert-single-host/internal/converter"
	"convert-single-host/internal/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// envPrefix scopes the environment variables read through viper, e.g. SINGLE_HOST_DEBUG.
const envPrefix = "SINGLE_HOST"

// rootCmd converts the template in the project directory. The tool has no
// subcommands; the positional arguments select the host and manifest format.
var rootCmd = &cobra.Command{
	Use:   "convert-single-host <host> <manifestFormat> [projectName] [appId]",
	Short: "Prune a multi-host Office add-in template down to a single host",
	Long: `convert-single-host rewrites a multi-host Office add-in template so that it
targets a single host (excel, powerpoint, or xp for both) and a single manifest
format (json, or anything else for the XML manifest).

It edits package.json and the VS Code launch and tasks files in place, deletes
the sources and manifests of the other hosts, and removes the template's test,
CI and repository support files.`,
	Args:          cobra.MaximumNArgs(4),
	SilenceUsage:  true,
	SilenceErrors: true,

	// Initialise logging before the conversion starts.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(viper.GetBool("debug"))
	},
	RunE: runConvert,
}

// Execute runs the root command. Stage failures have already been reported by the
// converter; everything else (bad arguments, unreadable layout) is logged here.
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, converter.ErrConversionFailed) {
		logger.Error("[ERROR] %v\n", err)
	}
	return err
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.Bool("debug", false, "Enable debug logging")
	flags.StringP("dir", "C", ".", "Project directory to convert")
	flags.String("layout", "", "YAML file overriding the default template layout")
	flags.String("manifest-tool", "", "Command used to set the manifest name and id (default \"npx office-addin-manifest\")")

	for _, name := range []string{"debug", "dir", "layout", "manifest-tool"} {
		_ = viper.BindPFlag(strings.ReplaceAll(name, "-", "_"), flags.Lookup(name))
	}
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()
}
