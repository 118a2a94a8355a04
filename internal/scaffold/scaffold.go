package scaffold

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/packsmith-labs/packsmith/internal/manifest"
	"github.com/packsmith-labs/packsmith/internal/tree"
)

// Pack directory names under the destination.
const (
	BehaviorDir = "BP"
	ResourceDir = "RP"
)

const manifestFile = "manifest.json"

var (
	// ErrNameRequired is returned when Params.Name is blank.
	ErrNameRequired = errors.New("project name is required")
	// ErrExists is returned when a pack directory already has content and
	// Params.Force is not set.
	ErrExists = errors.New("pack directory is not empty")
)

var logger = log.New(io.Discard)

// SetLogger replaces the logger used to report generation progress.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// newUUID generates pack identifiers. Tests replace it for stable output.
var newUUID = uuid.NewString

// Params holds everything needed to generate a project. It is collected once
// and passed by value.
type Params struct {
	Name            string
	Author          string // optional
	Destination     string // empty means the current directory
	MinEngine       manifest.Triple // written as given, including 0.0.0
	Scripting       bool
	ServerVersion   string // @minecraft/server, empty means default
	ServerUIVersion string // @minecraft/server-ui, empty means default
	Force           bool   // overwrite non-empty pack directories
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	OutputDir    string
	BehaviorUUID string
	ResourceUUID string
	Files        []string
	Warnings     []string
}

// Layout returns the directory-only tree of both packs.
func Layout(scripting bool) tree.Tree {
	bp := tree.Tree{
		"animations":            tree.Tree{},
		"animation_controllers": tree.Tree{},
		"entities":              tree.Tree{},
		"functions":             tree.Tree{},
		"items":                 tree.Tree{},
		"loot_tables":           tree.Tree{},
		"recipes":               tree.Tree{},
		"texts":                 tree.Tree{},
	}
	if scripting {
		bp["scripts"] = tree.Tree{}
	}

	rp := tree.Tree{
		"animations":            tree.Tree{},
		"animation_controllers": tree.Tree{},
		"entity":                tree.Tree{},
		"items":                 tree.Tree{},
		"font":                  tree.Tree{},
		"models":                tree.Tree{"entity": tree.Tree{}},
		"particles":             tree.Tree{},
		"render_controllers":    tree.Tree{},
		"sounds":                tree.Tree{},
		"textures":              tree.Tree{},
		"ui":                    tree.Tree{},
	}

	return tree.Tree{BehaviorDir: bp, ResourceDir: rp}
}

// Generate writes a new project under p.Destination. Output is not rolled
// back if a later step fails.
func Generate(p Params) (*Result, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return nil, ErrNameRequired
	}
	if p.Destination == "" {
		p.Destination = "."
	}

	if !p.Force {
		if err := checkEmpty(p.Destination); err != nil {
			return nil, err
		}
	}

	result := &Result{
		OutputDir:    p.Destination,
		BehaviorUUID: newUUID(),
		ResourceUUID: newUUID(),
	}
	logger.Debug("generating project", "name", p.Name, "dest", p.Destination,
		"bp", result.BehaviorUUID, "rp", result.ResourceUUID)

	// Everything that can fail on bad input is built before touching disk.
	files, err := projectTree(p, result.BehaviorUUID, result.ResourceUUID)
	if err != nil {
		return nil, err
	}
	logger.Debug("rendered project", "files", len(tree.Paths(files)))

	if err := tree.BuildDirs(p.Destination, Layout(p.Scripting)); err != nil {
		return nil, fmt.Errorf("creating pack folders: %w", err)
	}

	result.Files, err = tree.BuildFiles(p.Destination, files)
	if err != nil {
		return nil, fmt.Errorf("writing pack files: %w", err)
	}

	result.Warnings = Verify(p.Destination)
	return result, nil
}

// projectTree assembles every generated file of the project.
func projectTree(p Params, bpUUID, rpUUID string) (tree.Tree, error) {
	data := templateData{Name: p.Name, ScriptEntry: manifest.ScriptEntry}

	files, err := renderSet(setBase, data)
	if err != nil {
		return nil, err
	}
	if p.Scripting {
		scripts, err := renderSet(setScripting, data)
		if err != nil {
			return nil, err
		}
		tree.Merge(files, scripts)
	}

	var scripting *manifest.ScriptOptions
	if p.Scripting {
		scripting = &manifest.ScriptOptions{
			ServerVersion:   p.ServerVersion,
			ServerUIVersion: p.ServerUIVersion,
		}
	}

	bp, err := manifestFileContent(manifest.Options{
		Type:         manifest.PackData,
		Name:         "pack.name",
		Description:  "pack.description",
		Author:       p.Author,
		UUID:         bpUUID,
		Dependencies: []manifest.Dependency{manifest.PackRef(rpUUID)},
		MinEngine:    p.MinEngine,
		Scripting:    scripting,
	})
	if err != nil {
		return nil, fmt.Errorf("behavior pack manifest: %w", err)
	}

	rp, err := manifestFileContent(manifest.Options{
		Type:         manifest.PackResources,
		Name:         "pack.name",
		Description:  "pack.description",
		Author:       p.Author,
		UUID:         rpUUID,
		Dependencies: []manifest.Dependency{manifest.PackRef(bpUUID)},
		MinEngine:    p.MinEngine,
	})
	if err != nil {
		return nil, fmt.Errorf("resource pack manifest: %w", err)
	}

	tree.Merge(files, tree.Tree{
		BehaviorDir: tree.Tree{manifestFile: bp},
		ResourceDir: tree.Tree{manifestFile: rp},
	})
	return files, nil
}

func manifestFileContent(opts manifest.Options) (tree.File, error) {
	m, err := manifest.Generate(opts)
	if err != nil {
		return "", err
	}
	data, err := m.Marshal()
	if err != nil {
		return "", err
	}
	return tree.File(data), nil
}

// checkEmpty refuses to write into pack directories that already have
// content.
func checkEmpty(dest string) error {
	for _, dir := range []string{BehaviorDir, ResourceDir} {
		p := filepath.Join(dest, dir)
		entries, err := os.ReadDir(p)
		if err == nil && len(entries) > 0 {
			return fmt.Errorf("%s: %w; rerun with --force to overwrite", p, ErrExists)
		}
	}
	return nil
}

// Verify checks both pack manifests under dest against the schema, confirms
// that they reference each other, and that every script module's entry file
// exists. It returns one message per problem found.
func Verify(dest string) []string {
	var warnings []string
	parsed := make(map[string]*manifest.Manifest, 2)

	for _, dir := range []string{BehaviorDir, ResourceDir} {
		file := filepath.Join(dest, dir, manifestFile)
		rel := path.Join(dir, manifestFile)

		res, err := manifest.ValidateFile(file)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("Could not validate %s: %v", rel, err))
			continue
		}
		for _, msg := range res.Messages() {
			warnings = append(warnings, rel+": "+msg)
		}

		m, err := manifest.ParseFile(file)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("Could not parse %s: %v", rel, err))
			continue
		}
		parsed[dir] = m

		for _, mod := range m.ModulesOfType(manifest.PackScript) {
			entry := filepath.Join(dest, dir, filepath.FromSlash(mod.Entry))
			if _, err := os.Stat(entry); err != nil {
				warnings = append(warnings, fmt.Sprintf("%s: script entry %s not found", rel, mod.Entry))
			}
		}
	}

	bp, rp := parsed[BehaviorDir], parsed[ResourceDir]
	if bp != nil && rp != nil {
		if err := manifest.CheckLinks(bp, rp); err != nil {
			warnings = append(warnings, err.Error())
		}
	}
	return warnings
}
