package scaffold

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"text/template"

	"github.com/packsmith-labs/packsmith/internal/tree"
)

//go:embed all:scaffolds
var scaffoldFS embed.FS

// Template sets under scaffolds/.
const (
	setBase      = "base"
	setScripting = "scripting"
)

// templateData holds the variables available to scaffold templates.
type templateData struct {
	Name        string
	ScriptEntry string
}

var funcs = template.FuncMap{
	"json": jsonString,
}

// jsonString renders s as a quoted JSON string.
func jsonString(s string) (string, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// renderSet renders every file of an embedded template set into a tree.
// Files ending in .tmpl go through text/template and lose the suffix; all
// other files are copied verbatim.
func renderSet(setName string, data templateData) (tree.Tree, error) {
	root := path.Join("scaffolds", setName)
	if _, err := fs.Stat(scaffoldFS, root); err != nil {
		return nil, fmt.Errorf("template set %q not found: %w", setName, err)
	}

	out := tree.Tree{}
	err := fs.WalkDir(scaffoldFS, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}

		raw, err := fs.ReadFile(scaffoldFS, p)
		if err != nil {
			return fmt.Errorf("reading template %s: %w", p, err)
		}

		rel := strings.TrimPrefix(p, root+"/")
		content := raw
		if strings.HasSuffix(rel, ".tmpl") {
			rel = strings.TrimSuffix(rel, ".tmpl")

			tmpl, err := template.New(path.Base(p)).Funcs(funcs).Parse(string(raw))
			if err != nil {
				return fmt.Errorf("parsing template %s: %w", p, err)
			}
			var buf bytes.Buffer
			if err := tmpl.Execute(&buf, data); err != nil {
				return fmt.Errorf("executing template %s: %w", p, err)
			}
			content = buf.Bytes()
		}

		put(out, rel, tree.File(content))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// put stores a file at a slash-separated path, creating intermediate
// subtrees.
func put(t tree.Tree, rel string, f tree.File) {
	parts := strings.Split(rel, "/")
	for _, dir := range parts[:len(parts)-1] {
		sub, ok := t[dir].(tree.Tree)
		if !ok {
			sub = tree.Tree{}
			t[dir] = sub
		}
		t = sub
	}
	t[parts[len(parts)-1]] = f
}
