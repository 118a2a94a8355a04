package tree

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/log"
)

const (
	dirPerm  os.FileMode = 0755
	filePerm os.FileMode = 0644
)

// ErrUnexpectedFile is returned by BuildDirs when a directory-only tree
// contains a file leaf.
var ErrUnexpectedFile = errors.New("file entry in directory-only tree")

var logger = log.New(io.Discard)

// SetLogger replaces the logger used to report created directories and files.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// Node is either a Tree (directory) or a File (leaf content).
type Node interface {
	node()
}

// Tree maps entry names to child nodes. An empty Tree is an empty directory.
type Tree map[string]Node

// File is the literal text content of a leaf file.
type File string

func (Tree) node() {}
func (File) node() {}

// sortedKeys returns the entry names of t in lexical order so builds are
// deterministic.
func sortedKeys(t Tree) []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// BuildDirs creates every directory described by t under root. Directories
// that already exist are left alone. The tree must not contain files.
func BuildDirs(root string, t Tree) error {
	if p, ok := firstFile(t, ""); ok {
		return fmt.Errorf("%s: %w", p, ErrUnexpectedFile)
	}
	return buildDirs(root, t)
}

func buildDirs(base string, t Tree) error {
	for _, name := range sortedKeys(t) {
		sub, _ := t[name].(Tree)
		p := filepath.Join(base, name)
		if err := ensureDir(p); err != nil {
			return err
		}
		if err := buildDirs(p, sub); err != nil {
			return err
		}
	}
	return nil
}

// BuildFiles writes t under root. Directory entries are created as needed and
// every File is written in full, truncating any existing file at that path.
// It returns the written files as sorted, slash-separated paths relative to root.
func BuildFiles(root string, t Tree) ([]string, error) {
	var written []string
	if err := buildFiles(root, "", t, &written); err != nil {
		return written, err
	}
	sort.Strings(written)
	return written, nil
}

func buildFiles(base, rel string, t Tree, written *[]string) error {
	for _, name := range sortedKeys(t) {
		p := filepath.Join(base, name)
		r := path.Join(rel, name)

		switch n := t[name].(type) {
		case Tree:
			if err := ensureDir(p); err != nil {
				return err
			}
			if err := buildFiles(p, r, n, written); err != nil {
				return err
			}
		case File:
			if err := ensureDir(filepath.Dir(p)); err != nil {
				return err
			}
			if err := os.WriteFile(p, []byte(n), filePerm); err != nil {
				return fmt.Errorf("writing %s: %w", p, err)
			}
			logger.Debug("wrote file", "path", p, "bytes", len(n))
			*written = append(*written, r)
		default:
			return fmt.Errorf("%s: unsupported tree node %T", r, n)
		}
	}
	return nil
}

// ensureDir creates a directory (and its parents) if it doesn't exist.
func ensureDir(p string) error {
	if info, err := os.Stat(p); err == nil {
		if info.IsDir() {
			return nil
		}
		return fmt.Errorf("%s exists but is not a directory", p)
	}

	if err := os.MkdirAll(p, dirPerm); err != nil {
		return fmt.Errorf("creating directory %s: %w", p, err)
	}
	logger.Debug("created directory", "path", p)
	return nil
}

// firstFile reports the relative path of the first File found in t.
func firstFile(t Tree, rel string) (string, bool) {
	for _, name := range sortedKeys(t) {
		r := path.Join(rel, name)
		switch n := t[name].(type) {
		case File:
			return r, true
		case Tree:
			if p, ok := firstFile(n, r); ok {
				return p, true
			}
		}
	}
	return "", false
}

// Merge overlays src onto dst. Subtrees present in both are merged
// recursively; any other collision is resolved in favour of src.
func Merge(dst, src Tree) {
	for name, n := range src {
		if sub, ok := n.(Tree); ok {
			if existing, ok := dst[name].(Tree); ok {
				Merge(existing, sub)
				continue
			}
		}
		dst[name] = n
	}
}

// Paths returns the slash-separated relative path of every file in t, sorted.
func Paths(t Tree) []string {
	var out []string
	var walk func(Tree, string)
	walk = func(t Tree, rel string) {
		for name, n := range t {
			r := path.Join(rel, name)
			switch n := n.(type) {
			case File:
				out = append(out, r)
			case Tree:
				walk(n, r)
			}
		}
	}
	walk(t, "")
	sort.Strings(out)
	return out
}
