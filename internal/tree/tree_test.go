package tree

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"testing"
)

func sampleLayout() Tree {
	return Tree{
		"BP": Tree{
			"entities": Tree{},
			"texts":    Tree{},
		},
		"RP": Tree{
			"models": Tree{"entity": Tree{}},
			"ui":     Tree{},
		},
	}
}

func TestBuildDirs(t *testing.T) {
	root := t.TempDir()

	if err := BuildDirs(root, sampleLayout()); err != nil {
		t.Fatalf("BuildDirs() error: %v", err)
	}

	for _, dir := range []string{"BP/entities", "BP/texts", "RP/models/entity", "RP/ui"} {
		assertDir(t, filepath.Join(root, dir))
	}
}

func TestBuildDirsIdempotent(t *testing.T) {
	root := t.TempDir()

	if err := BuildDirs(root, sampleLayout()); err != nil {
		t.Fatalf("first BuildDirs() error: %v", err)
	}
	first := listDirs(t, root)

	if err := BuildDirs(root, sampleLayout()); err != nil {
		t.Fatalf("second BuildDirs() error: %v", err)
	}
	second := listDirs(t, root)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("directory set changed between runs:\nfirst:  %v\nsecond: %v", first, second)
	}
}

func TestBuildDirsRejectsFiles(t *testing.T) {
	root := t.TempDir()
	layout := Tree{
		"BP": Tree{"manifest.json": File("{}")},
		"RP": Tree{},
	}

	err := BuildDirs(root, layout)
	if !errors.Is(err, ErrUnexpectedFile) {
		t.Fatalf("BuildDirs() error = %v, want ErrUnexpectedFile", err)
	}

	// Nothing should have been created.
	if _, err := os.Stat(filepath.Join(root, "RP")); err == nil {
		t.Error("RP should not exist after a rejected build")
	}
}

func TestBuildDirsFileInTheWay(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "BP"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := BuildDirs(root, Tree{"BP": Tree{}}); err == nil {
		t.Fatal("expected error when a file occupies a directory path")
	}
}

func TestBuildFilesRoundTrip(t *testing.T) {
	root := t.TempDir()
	content := map[string]string{
		"BP/texts/en_US.lang":     "pack.name=Demo BP\npack.description=Behavior Pack for Demo",
		"BP/functions/tick.json":  `{"values":[]}`,
		"RP/textures/deep/a.json": "{}",
		"RP/empty.txt":            "",
		"RP/unicode/ünïcødé.lang": "héllo wörld\n",
	}

	layout := Tree{
		"BP": Tree{
			"texts":     Tree{"en_US.lang": File(content["BP/texts/en_US.lang"])},
			"functions": Tree{"tick.json": File(content["BP/functions/tick.json"])},
			"entities":  Tree{},
		},
		"RP": Tree{
			"textures":  Tree{"deep": Tree{"a.json": File(content["RP/textures/deep/a.json"])}},
			"empty.txt": File(""),
			"unicode":   Tree{"ünïcødé.lang": File(content["RP/unicode/ünïcødé.lang"])},
		},
	}

	written, err := BuildFiles(root, layout)
	if err != nil {
		t.Fatalf("BuildFiles() error: %v", err)
	}

	var want []string
	for p := range content {
		want = append(want, p)
	}
	sort.Strings(want)
	if !reflect.DeepEqual(written, want) {
		t.Errorf("written = %v, want %v", written, want)
	}

	for rel, text := range content {
		got, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
		if err != nil {
			t.Fatalf("reading %s: %v", rel, err)
		}
		if string(got) != text {
			t.Errorf("%s = %q, want %q", rel, got, text)
		}
	}

	assertDir(t, filepath.Join(root, "BP", "entities"))
}

func TestBuildFilesOverwrites(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "BP", "manifest.json")
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(target, []byte("a much longer pre-existing body"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := BuildFiles(root, Tree{"BP": Tree{"manifest.json": File("{}")}}); err != nil {
		t.Fatalf("BuildFiles() error: %v", err)
	}

	got, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "{}" {
		t.Errorf("file not truncated: got %q", got)
	}
}

func TestBuildFilesUnsupportedNode(t *testing.T) {
	root := t.TempDir()
	_, err := BuildFiles(root, Tree{"BP": nil})
	if err == nil {
		t.Fatal("expected error for nil node")
	}
}

func TestMerge(t *testing.T) {
	dst := Tree{
		"BP": Tree{
			"scripts": Tree{},
			"texts":   Tree{"en_US.lang": File("old")},
		},
	}
	src := Tree{
		"BP": Tree{
			"scripts": Tree{"main.js": File("console.log('hi')")},
			"texts":   Tree{"en_US.lang": File("new")},
		},
		"RP": Tree{},
	}

	Merge(dst, src)

	want := []string{"BP/scripts/main.js", "BP/texts/en_US.lang"}
	if got := Paths(dst); !reflect.DeepEqual(got, want) {
		t.Errorf("Paths() = %v, want %v", got, want)
	}
	if got := dst["BP"].(Tree)["texts"].(Tree)["en_US.lang"]; got != File("new") {
		t.Errorf("collision resolved to %v, want src value", got)
	}
	if _, ok := dst["RP"].(Tree); !ok {
		t.Error("RP subtree not merged")
	}
}

// ─── Test Helpers ──────────────────────────────────────────────────

func assertDir(t *testing.T, p string) {
	t.Helper()
	info, err := os.Stat(p)
	if err != nil {
		t.Errorf("expected directory %s: %v", p, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("%s is not a directory", p)
	}
}

func listDirs(t *testing.T, root string) []string {
	t.Helper()
	var dirs []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			rel, _ := filepath.Rel(root, p)
			dirs = append(dirs, filepath.ToSlash(rel))
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walking %s: %v", root, err)
	}
	return dirs
}
