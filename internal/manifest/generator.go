package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// FormatVersion is the manifest schema version written to every manifest.
const FormatVersion = 2

// Script module constants.
const (
	ScriptLanguage   = "javascript"
	ScriptEntry      = "scripts/main.js"
	ScriptCapability = "script_eval"

	ServerModule   = "@minecraft/server"
	ServerUIModule = "@minecraft/server-ui"

	DefaultServerVersion   = "1.8.0"
	DefaultServerUIVersion = "1.1.0"
)

// newUUID generates module identifiers. Tests replace it for stable output.
var newUUID = uuid.NewString

// ScriptOptions enables the script module in a behavior pack.
type ScriptOptions struct {
	ServerVersion   string // empty means DefaultServerVersion
	ServerUIVersion string // empty means DefaultServerUIVersion
}

// Options configures a single Generate call.
type Options struct {
	Type         PackType
	Name         string
	Description  string
	Author       string
	UUID         string // header identifier; the module gets a fresh one
	Dependencies []Dependency
	MinEngine    Triple
	Scripting    *ScriptOptions // honored for PackData only
}

// PackRef returns a dependency on another pack at PackVersion.
func PackRef(packUUID string) Dependency {
	return Dependency{UUID: packUUID, Version: DepVersion{Triple: PackVersion}}
}

// ScriptRef returns a dependency on a named script module. The version must
// be a valid semantic version.
func ScriptRef(name, version string) (Dependency, error) {
	v, err := parseSemver(version)
	if err != nil {
		return Dependency{}, fmt.Errorf("%s: %w", name, err)
	}
	return Dependency{ModuleName: name, Version: DepVersion{Semver: v}}, nil
}

// Generate builds the manifest described by opts.
func Generate(opts Options) (*Manifest, error) {
	if opts.Type != PackData && opts.Type != PackResources {
		return nil, fmt.Errorf("unsupported pack type %q", opts.Type)
	}
	if opts.UUID == "" {
		return nil, errors.New("manifest uuid is required")
	}

	m := &Manifest{
		FormatVersion: FormatVersion,
		Header: Header{
			Name:             opts.Name,
			Description:      opts.Description,
			UUID:             opts.UUID,
			Version:          PackVersion,
			MinEngineVersion: opts.MinEngine,
		},
		Modules: []Module{{
			Type:    opts.Type,
			UUID:    newUUID(),
			Version: PackVersion,
		}},
	}

	if author := strings.TrimSpace(opts.Author); author != "" {
		m.Metadata = &Metadata{Authors: []string{author}}
	}

	if len(opts.Dependencies) > 0 {
		m.Dependencies = append(m.Dependencies, opts.Dependencies...)
	}

	if opts.Type == PackData && opts.Scripting != nil {
		if err := addScripting(m, *opts.Scripting); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// addScripting appends the script module, its capability, and the script
// module dependencies to a behavior pack manifest.
func addScripting(m *Manifest, so ScriptOptions) error {
	serverVersion := so.ServerVersion
	if serverVersion == "" {
		serverVersion = DefaultServerVersion
	}
	uiVersion := so.ServerUIVersion
	if uiVersion == "" {
		uiVersion = DefaultServerUIVersion
	}

	server, err := ScriptRef(ServerModule, serverVersion)
	if err != nil {
		return err
	}
	ui, err := ScriptRef(ServerUIModule, uiVersion)
	if err != nil {
		return err
	}

	m.Modules = append(m.Modules, Module{
		Type:     PackScript,
		Language: ScriptLanguage,
		Entry:    ScriptEntry,
		UUID:     newUUID(),
		Version:  PackVersion,
	})
	m.Capabilities = []string{ScriptCapability}
	m.Dependencies = append(m.Dependencies, server, ui)
	return nil
}

// Marshal serializes m as JSON indented with four spaces.
func (m *Manifest) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("marshaling manifest: %w", err)
	}
	return data, nil
}

// CheckLinks verifies that the behavior and resource packs reference each
// other's header UUIDs.
func CheckLinks(bp, rp *Manifest) error {
	var missing []string
	if !bp.HasDependency(rp.Header.UUID) {
		missing = append(missing, fmt.Sprintf("behavior pack does not depend on resource pack %s", rp.Header.UUID))
	}
	if !rp.HasDependency(bp.Header.UUID) {
		missing = append(missing, fmt.Sprintf("resource pack does not depend on behavior pack %s", bp.Header.UUID))
	}
	if len(missing) > 0 {
		return errors.New(strings.Join(missing, "; "))
	}
	return nil
}
