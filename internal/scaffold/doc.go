// Package scaffold generates a new two-pack project: a behavior pack (BP) and
// a resource pack (RP) that reference each other. It powers the
// "packsmith new" command, laying out the standard folders, rendering the
// localization and placeholder files from embedded templates, and writing
// both manifests.
package scaffold
