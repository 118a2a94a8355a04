package cli

import (
	"fmt"
	"io"

	"github.com/packsmith-labs/packsmith/internal/config"
	"github.com/packsmith-labs/packsmith/internal/manifest"
	"github.com/packsmith-labs/packsmith/internal/scaffold"
	"github.com/spf13/cobra"
)

// newFlags holds the flag values of "packsmith new".
type newFlags struct {
	author          string
	minEngine       string
	dest            string
	scripts         bool
	serverVersion   string
	serverUIVersion string
	force           bool
	noInput         bool
}

var newOpts newFlags

func init() {
	f := newCmd.Flags()
	f.StringVar(&newOpts.author, "author", "", "Author listed in both manifests (empty for none)")
	f.StringVar(&newOpts.minEngine, "min-engine", "", "Minimum engine version, X.Y.Z (default from config or 1.20.50)")
	f.StringVar(&newOpts.dest, "dest", "", "Destination folder (default: current folder)")
	f.BoolVar(&newOpts.scripts, "scripts", false, "Add a script module and scripts/main.js to the behavior pack")
	f.StringVar(&newOpts.serverVersion, "server-version", "", "@minecraft/server version used with --scripts")
	f.StringVar(&newOpts.serverUIVersion, "server-ui-version", "", "@minecraft/server-ui version used with --scripts")
	f.BoolVar(&newOpts.force, "force", false, "Overwrite BP/ and RP/ even if they already have content")
	f.BoolVar(&newOpts.noInput, "no-input", false, "Never prompt; use flags, config, and defaults")
	rootCmd.AddCommand(newCmd)
}

var newCmd = &cobra.Command{
	Use:   "new [name]",
	Short: "Generate a behavior pack and resource pack project",
	Long: `Generate a new project with a behavior pack (BP/) and a resource pack (RP/)
that depend on each other.

Anything not given as a flag is asked for interactively, with defaults taken
from the user config (see 'packsmith config').

Examples:
  packsmith new
  packsmith new Demo --author Alex --dest ./demo
  packsmith new Demo --scripts --server-version 1.9.0-beta --no-input`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) == 1 {
			name = args[0]
		}

		p := newPrompter(cmd.InOrStdin(), cmd.ErrOrStderr(), !newOpts.noInput)
		params, err := collectParams(name, newOpts, cmd.Flags().Changed, p)
		if err != nil {
			return err
		}

		logger.Debug("collected parameters", "name", params.Name, "dest", params.Destination,
			"min_engine", params.MinEngine.String(), "scripts", params.Scripting)

		result, err := scaffold.Generate(params)
		if err != nil {
			return err
		}

		printResult(cmd.OutOrStdout(), params, result)
		return nil
	},
}

// collectParams merges flags, config defaults, and prompt answers into the
// generation parameters. changed reports whether a flag was set explicitly.
func collectParams(name string, opts newFlags, changed func(string) bool, p *prompter) (scaffold.Params, error) {
	var err error
	params := scaffold.Params{Force: opts.force}

	if name == "" {
		if name, err = p.ask("Enter the project name", ""); err != nil {
			return params, err
		}
	}
	if name == "" {
		return params, scaffold.ErrNameRequired
	}
	params.Name = name

	minEngine := opts.minEngine
	if !changed("min-engine") {
		if minEngine, err = p.ask("Enter the minimum engine version", config.Get(config.KeyMinEngineVersion)); err != nil {
			return params, err
		}
	}
	if minEngine == "" {
		params.MinEngine = manifest.DefaultMinEngine
	} else if params.MinEngine, err = manifest.ParseTriple(minEngine); err != nil {
		return params, fmt.Errorf("minimum engine version: %w", err)
	}

	params.Author = opts.author
	if !changed("author") {
		if params.Author, err = p.ask("Enter the author name (leave empty if none)", config.Get(config.KeyAuthor)); err != nil {
			return params, err
		}
	}

	params.Destination = opts.dest
	if !changed("dest") {
		if params.Destination, err = p.ask("Enter the destination folder (leave empty for the current folder)", config.Get(config.KeyDestination)); err != nil {
			return params, err
		}
	}

	params.Scripting = opts.scripts
	if !changed("scripts") {
		if params.Scripting, err = p.confirm("Enable scripting", false); err != nil {
			return params, err
		}
	}

	if params.Scripting {
		params.ServerVersion = opts.serverVersion
		if !changed("server-version") {
			if params.ServerVersion, err = p.ask("Enter the @minecraft/server version", config.Get(config.KeyServerVersion)); err != nil {
				return params, err
			}
		}
		params.ServerUIVersion = opts.serverUIVersion
		if !changed("server-ui-version") {
			if params.ServerUIVersion, err = p.ask("Enter the @minecraft/server-ui version", config.Get(config.KeyServerUIVersion)); err != nil {
				return params, err
			}
		}
	}

	return params, nil
}

func printResult(w io.Writer, params scaffold.Params, result *scaffold.Result) {
	fmt.Fprintf(w, "%s %s at %s/\n", successStyle.Render("Created"), titleStyle.Render(params.Name), result.OutputDir)
	for _, f := range result.Files {
		fmt.Fprintf(w, "  %s\n", f)
	}
	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("\nBP uuid: %s\nRP uuid: %s", result.BehaviorUUID, result.ResourceUUID)))

	if len(result.Warnings) > 0 {
		fmt.Fprintln(w, warningStyle.Render("\nWarnings:"))
		for _, warn := range result.Warnings {
			fmt.Fprintf(w, "  - %s\n", warn)
		}
	}

	fmt.Fprintln(w, "\nNext steps:")
	fmt.Fprintln(w, "  1. Copy BP/ and RP/ into your development pack folders")
	if params.Scripting {
		fmt.Fprintln(w, "  2. Edit BP/scripts/main.js to add your game logic")
	} else {
		fmt.Fprintln(w, "  2. Add entities, items, and textures to the empty folders")
	}
}
