package content

import (
	"embed"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mlehtin/storykit/internal/errors"
	"github.com/mlehtin/storykit/internal/storyblok"
)

//go:embed fixtures/*.json
var embeddedFixtures embed.FS

// FixtureStore is the local fixture registry: a static slug → story mapping
// loaded once and immutable afterwards. It backs deliberate offline mode
// and emergency fallback when the CMS is unreachable.
//
// Stories are stored as raw JSON; Lookup decodes a fresh copy per call so
// callers can never mutate the registry through a returned story.
type FixtureStore struct {
	raw map[string][]byte
}

// EmptyFixtureStore returns a registry with no fixtures.
func EmptyFixtureStore() *FixtureStore {
	return &FixtureStore{raw: map[string][]byte{}}
}

// LoadEmbeddedFixtures loads the fixture set bundled into the binary.
func LoadEmbeddedFixtures() (*FixtureStore, error) {
	return loadFixtureFS(embeddedFixtures, "fixtures")
}

// LoadFixtureDir loads fixtures from a directory, one JSON document per
// slug. Intended for local authoring overrides; the embedded set remains
// the production default.
func LoadFixtureDir(dir string) (*FixtureStore, error) {
	return loadFixtureFS(os.DirFS(dir), ".")
}

func loadFixtureFS(fsys fs.FS, root string) (*FixtureStore, error) {
	entries, err := fs.ReadDir(fsys, root)
	if err != nil {
		return nil, errors.Newf("reading fixture directory: %w", err).
			Category(errors.CategoryFileIO).
			Component("content").
			Build()
	}

	store := &FixtureStore{raw: make(map[string][]byte, len(entries))}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		data, err := fs.ReadFile(fsys, filepath.Join(root, entry.Name()))
		if err != nil {
			return nil, errors.Newf("reading fixture %s: %w", entry.Name(), err).
				Category(errors.CategoryFileIO).
				Context("fixture", entry.Name()).
				Component("content").
				Build()
		}

		// Decode once at load time so a malformed fixture fails startup,
		// not a request.
		var story storyblok.Story
		if err := json.Unmarshal(data, &story); err != nil {
			return nil, errors.Newf("parsing fixture %s: %w", entry.Name(), err).
				Category(errors.CategoryFileParsing).
				Context("fixture", entry.Name()).
				Component("content").
				Build()
		}

		slug := story.FullSlug
		if slug == "" {
			slug = strings.TrimSuffix(entry.Name(), ".json")
		}
		store.raw[slug] = data
	}

	return store, nil
}

// Lookup returns a fresh copy of the fixture story for slug.
func (f *FixtureStore) Lookup(slug string) (*storyblok.Story, bool) {
	data, ok := f.raw[slug]
	if !ok {
		return nil, false
	}

	var story storyblok.Story
	if err := json.Unmarshal(data, &story); err != nil {
		// Load validated the JSON already; this cannot happen in practice.
		return nil, false
	}
	return &story, true
}

// Has reports whether a fixture exists for slug.
func (f *FixtureStore) Has(slug string) bool {
	_, ok := f.raw[slug]
	return ok
}

// Len returns the number of fixtures in the registry.
func (f *FixtureStore) Len() int {
	return len(f.raw)
}

// Slugs returns the registered fixture slugs.
func (f *FixtureStore) Slugs() []string {
	slugs := make([]string, 0, len(f.raw))
	for slug := range f.raw {
		slugs = append(slugs, slug)
	}
	return slugs
}
