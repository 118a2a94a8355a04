package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// PackType is the module type tag that identifies what a pack contains.
type PackType string

const (
	PackData      PackType = "data"      // behavior pack
	PackResources PackType = "resources" // resource pack
	PackScript    PackType = "script"    // script module inside a behavior pack
)

// Manifest is the manifest.json document of a single pack.
type Manifest struct {
	FormatVersion int          `json:"format_version"`
	Metadata      *Metadata    `json:"metadata,omitempty"`
	Header        Header       `json:"header"`
	Modules       []Module     `json:"modules"`
	Dependencies  []Dependency `json:"dependencies,omitempty"`
	Capabilities  []string     `json:"capabilities,omitempty"`
}

// Metadata carries optional authorship information.
type Metadata struct {
	Authors []string `json:"authors,omitempty"`
}

// Header identifies the pack.
type Header struct {
	Name             string `json:"name"`
	Description      string `json:"description"`
	UUID             string `json:"uuid"`
	Version          Triple `json:"version"`
	MinEngineVersion Triple `json:"min_engine_version"`
}

// Module declares one capability unit of a pack.
type Module struct {
	Type     PackType `json:"type"`
	Language string   `json:"language,omitempty"`
	Entry    string   `json:"entry,omitempty"`
	UUID     string   `json:"uuid"`
	Version  Triple   `json:"version"`
}

// Dependency references either another pack by UUID or a named script
// module by ModuleName.
type Dependency struct {
	UUID       string     `json:"uuid,omitempty"`
	ModuleName string     `json:"module_name,omitempty"`
	Version    DepVersion `json:"version"`
}

// DepVersion is a dependency version. Pack references use a numeric triple,
// script modules use a semantic version string such as "1.9.0-beta".
type DepVersion struct {
	Triple Triple
	Semver string
}

// MarshalJSON encodes the version as a string when Semver is set and as a
// three-element array otherwise.
func (v DepVersion) MarshalJSON() ([]byte, error) {
	if v.Semver != "" {
		return json.Marshal(v.Semver)
	}
	return json.Marshal(v.Triple)
}

// UnmarshalJSON accepts both encodings produced by MarshalJSON.
func (v *DepVersion) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &v.Semver)
	}
	if err := json.Unmarshal(data, &v.Triple); err != nil {
		return fmt.Errorf("dependency version: %w", err)
	}
	return nil
}

// String renders the version the way it appears to users.
func (v DepVersion) String() string {
	if v.Semver != "" {
		return v.Semver
	}
	return v.Triple.String()
}

// HasDependency reports whether m depends on the pack with the given UUID.
func (m *Manifest) HasDependency(uuid string) bool {
	for _, d := range m.Dependencies {
		if d.UUID != "" && d.UUID == uuid {
			return true
		}
	}
	return false
}

// ModulesOfType returns the modules of m with the given type tag.
func (m *Manifest) ModulesOfType(t PackType) []Module {
	var out []Module
	for _, mod := range m.Modules {
		if mod.Type == t {
			out = append(out, mod)
		}
	}
	return out
}
