package expconf

import (
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	experrors "github.com/randalmurphal/expconf/errors"
)

// rootDocument is the store's entry point holding the baseline defaults
// list.
const rootDocument = "config.yaml"

// Store is a read-only base configuration tree: a root document plus one
// directory per category holding named base documents.
type Store struct {
	fsys fs.FS
}

// NewStore creates a store backed by a directory on disk.
func NewStore(dir string) *Store {
	return &Store{fsys: os.DirFS(dir)}
}

// NewStoreFS creates a store backed by any fs.FS.
// Useful for testing with fstest.MapFS or embedded trees.
func NewStoreFS(fsys fs.FS) *Store {
	return &Store{fsys: fsys}
}

// Root loads and parses the root document.
func (s *Store) Root() (*Document, error) {
	data, err := fs.ReadFile(s.fsys, rootDocument)
	if err != nil {
		return nil, experrors.ErrNoRootDocument
	}
	return ParseDocument(rootDocument, data)
}

// Categories returns the category names in sorted order.
func (s *Store) Categories() ([]string, error) {
	entries, err := fs.ReadDir(s.fsys, ".")
	if err != nil {
		return nil, err
	}

	var categories []string
	for _, entry := range entries {
		if entry.IsDir() {
			categories = append(categories, entry.Name())
		}
	}
	sort.Strings(categories)
	return categories, nil
}

// HasCategory reports whether the store contains the named category.
func (s *Store) HasCategory(category string) bool {
	info, err := fs.Stat(s.fsys, category)
	return err == nil && info.IsDir()
}

// Options returns the document names within a category in sorted order.
func (s *Store) Options(category string) ([]string, error) {
	if !s.HasCategory(category) {
		return nil, &experrors.UnknownCategoryError{Category: category}
	}

	entries, err := fs.ReadDir(s.fsys, category)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), ".yaml") || strings.HasSuffix(entry.Name(), ".yml") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Load reads and parses the named document from a category. The name may
// omit the .yaml extension.
func (s *Store) Load(category, name string) (*Document, error) {
	if !s.HasCategory(category) {
		return nil, &experrors.UnknownCategoryError{Category: category}
	}

	docPath := path.Join(category, withExtension(name))
	data, err := fs.ReadFile(s.fsys, docPath)
	if err != nil {
		return nil, &experrors.MissingDefaultError{Category: category, Name: name}
	}
	return ParseDocument(docPath, data)
}

func withExtension(name string) string {
	if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
		return name
	}
	return name + ".yaml"
}
