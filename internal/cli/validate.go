package cli

import (
	"fmt"

	"github.com/packsmith-labs/packsmith/internal/scaffold"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Check a generated project's manifests",
	Long: `Validate BP/manifest.json and RP/manifest.json under dir (default: the
current folder) against the manifest schema and check that each pack lists
the other as a dependency.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}

		problems := scaffold.Verify(dir)
		if len(problems) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", successStyle.Render("OK"), dir)
			return nil
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, errorStyle.Render(fmt.Sprintf("%d problem(s) in %s:", len(problems), dir)))
		for _, p := range problems {
			fmt.Fprintf(out, "  - %s\n", p)
		}
		return fmt.Errorf("validation failed for %s", dir)
	},
}
