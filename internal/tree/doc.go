// Package tree materializes an in-memory description of directories and
// files onto disk. A Tree maps names to either nested Trees (directories) or
// File contents. BuildDirs pre-creates a directory-only layout and BuildFiles
// writes a tree that carries file content, overwriting whatever is already at
// each leaf path.
package tree
