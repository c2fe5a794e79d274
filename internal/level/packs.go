package level

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed packs
var embeddedPacks embed.FS

// Built-in pack names.
const (
	PackClassic  = "classic"
	PackExtended = "extended"
)

// packDirs lists the embedded directories that make up each pack,
// in load order.
var packDirs = map[string][]string{
	PackClassic:  {"packs/classic"},
	PackExtended: {"packs/classic", "packs/extended"},
}

// Packs returns the names of the built-in packs, sorted.
func Packs() []string {
	names := make([]string, 0, len(packDirs))
	for name := range packDirs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadPack loads and validates a built-in pack.
func LoadPack(name string) (*Set, error) {
	dirs, ok := packDirs[name]
	if !ok {
		return nil, fmt.Errorf("level: unknown pack %q", name)
	}

	var templates []*Template
	for _, dir := range dirs {
		ts, err := loadFS(embeddedPacks, dir)
		if err != nil {
			return nil, err
		}
		templates = append(templates, ts...)
	}

	set := NewSet(name, templates...)
	if err := ValidateSet(set); err != nil {
		return nil, fmt.Errorf("pack %s: %w", name, err)
	}
	return set, nil
}

// MustLoadPack is like LoadPack but panics on error.
// Intended for built-in packs, which are validated by tests.
func MustLoadPack(name string) *Set {
	set, err := LoadPack(name)
	if err != nil {
		panic(err)
	}
	return set
}

// LoadDir loads every *.yaml / *.yml file in dir as one level each.
// The resulting set is named after the directory.
func LoadDir(dir string) (*Set, error) {
	templates, err := loadFS(os.DirFS(dir), ".")
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", dir, err)
	}

	set := NewSet(filepath.Base(dir), templates...)
	if err := ValidateSet(set); err != nil {
		return nil, fmt.Errorf("load %s: %w", dir, err)
	}
	return set, nil
}

func loadFS(fsys fs.FS, dir string) ([]*Template, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}

	seen := make(map[int]string)
	var templates []*Template
	for _, entry := range entries {
		if entry.IsDir() || !IsLevelFile(entry.Name()) {
			continue
		}
		name := path.Join(dir, entry.Name())
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, err
		}
		t, err := ParseYAML(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", entry.Name(), err)
		}
		if prev, dup := seen[t.Number]; dup {
			return nil, fmt.Errorf("%s: level %d already defined in %s", entry.Name(), t.Number, prev)
		}
		seen[t.Number] = entry.Name()
		templates = append(templates, t)
	}
	return templates, nil
}

// IsLevelFile reports whether a file name looks like a level definition.
func IsLevelFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}
