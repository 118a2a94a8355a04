// Package manifest builds, parses, and validates pack manifests. A project
// has two of them: the behavior pack ("data" module) and the resource pack
// ("resources" module), each listing the other as a dependency. Generated
// manifests are checked against an embedded JSON Schema before they are
// reported as valid.
package manifest
