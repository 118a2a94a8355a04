package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/packsmith-labs/packsmith/internal/branding"
	"github.com/packsmith-labs/packsmith/internal/config"
	"github.com/packsmith-labs/packsmith/internal/scaffold"
	"github.com/packsmith-labs/packsmith/internal/tree"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var verbose bool

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: branding.CLIName(),
})

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` generates the folder layout, manifests, and starter files of a
behavior pack and a resource pack that depend on each other.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
		if verbose || viper.GetBool("verbose") {
			logger.SetLevel(log.DebugLevel)
		}
		tree.SetLogger(logger)
		scaffold.SetLogger(logger)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(versionString()),
		fang.WithNotifySignal(os.Interrupt),
	)
}

func versionString() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", buildVersion, buildCommit, buildDate)
}
