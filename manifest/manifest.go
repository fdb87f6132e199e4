// Package manifest reads the hook manifest a hook repository publishes
// (.pre-commit-hooks.yaml). The manifest declares which hook ids the
// repository provides; configuration entries reference those ids.
package manifest

import (
	"os"
	"path/filepath"

	"github.com/hooktools/hookcfg/errors"
	"gopkg.in/yaml.v3"
)

// Manifest file names, in search order. hooks.yaml is the legacy spelling.
var FileNames = []string{
	".pre-commit-hooks.yaml",
	".pre-commit-hooks.yml",
	"hooks.yaml",
}

// Entry describes one hook a repository provides.
type Entry struct {
	ID             string   `yaml:"id" json:"id"`
	Name           string   `yaml:"name" json:"name"`
	Entry          string   `yaml:"entry" json:"entry"`
	Language       string   `yaml:"language" json:"language"`
	Files          string   `yaml:"files,omitempty" json:"files,omitempty"`
	Exclude        string   `yaml:"exclude,omitempty" json:"exclude,omitempty"`
	Types          []string `yaml:"types,omitempty" json:"types,omitempty"`
	ExcludeTypes   []string `yaml:"exclude_types,omitempty" json:"exclude_types,omitempty"`
	Args           []string `yaml:"args,omitempty" json:"args,omitempty"`
	Stages         []string `yaml:"stages,omitempty" json:"stages,omitempty"`
	AlwaysRun      bool     `yaml:"always_run,omitempty" json:"always_run,omitempty"`
	PassFilenames  *bool    `yaml:"pass_filenames,omitempty" json:"pass_filenames,omitempty"`
	Description    string   `yaml:"description,omitempty" json:"description,omitempty"`
	MinimumVersion string   `yaml:"minimum_pre_commit_version,omitempty" json:"minimum_pre_commit_version,omitempty"`
}

// Manifest is the ordered list of hooks a repository provides.
type Manifest struct {
	Path    string
	Entries []Entry
}

// Load reads the hook manifest from a checked-out repository directory.
func Load(dir string) (*Manifest, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return LoadFile(path)
		}
	}
	return nil, errors.ManifestNotFound(filepath.Join(dir, FileNames[0]))
}

// LoadFile reads a hook manifest from an explicit path.
func LoadFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ManifestNotFound(path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeManifestInvalid, "failed to read hook manifest").
			WithDetail("path", path)
	}

	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeManifestInvalid, "failed to parse hook manifest").
			WithDetail("path", path)
	}

	return &Manifest{Path: path, Entries: entries}, nil
}

// Find returns the manifest entry with the given id, or nil.
func (m *Manifest) Find(id string) *Entry {
	for i := range m.Entries {
		if m.Entries[i].ID == id {
			return &m.Entries[i]
		}
	}
	return nil
}

// Validate checks the manifest's own invariants: every entry has an id,
// entry, and language, and ids are unique within the manifest.
func (m *Manifest) Validate() error {
	seen := make(map[string]bool, len(m.Entries))
	for _, e := range m.Entries {
		if e.ID == "" {
			return errors.New(errors.ErrCodeManifestInvalid, "manifest entry is missing the 'id' field").
				WithDetail("path", m.Path)
		}
		if seen[e.ID] {
			return errors.New(errors.ErrCodeManifestInvalid, "manifest declares duplicate hook id '"+e.ID+"'").
				WithDetail("path", m.Path).
				WithDetail("hook", e.ID)
		}
		seen[e.ID] = true

		if e.Entry == "" {
			return errors.New(errors.ErrCodeManifestInvalid, "manifest entry '"+e.ID+"' is missing the 'entry' field").
				WithDetail("hook", e.ID)
		}
		if e.Language == "" {
			return errors.New(errors.ErrCodeManifestInvalid, "manifest entry '"+e.ID+"' is missing the 'language' field").
				WithDetail("hook", e.ID)
		}
	}
	return nil
}
