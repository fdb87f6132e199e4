package config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Repository sentinels. Entries using these values declare hooks inline
// instead of referencing a remote repository, and must not carry a rev.
const (
	RepoLocal = "local"
	RepoMeta  = "meta"
)

// Config file names, in search order.
var ConfigFileNames = []string{
	".pre-commit-config.yaml",
	".pre-commit-config.yml",
}

// Stages lists the git hook types a hook may be restricted to.
var Stages = []string{
	"pre-commit",
	"pre-merge-commit",
	"pre-push",
	"prepare-commit-msg",
	"commit-msg",
	"post-checkout",
	"post-commit",
	"post-merge",
	"post-rewrite",
	"manual",
}

// legacyStageAliases maps the old stage spellings to their current names.
// Both forms are accepted on input.
var legacyStageAliases = map[string]string{
	"commit":       "pre-commit",
	"merge-commit": "pre-merge-commit",
	"push":         "pre-push",
}

// Hook configures a single hook within a repository entry.
type Hook struct {
	ID                     string   `yaml:"id" toml:"id" jsonschema:"required,description=Identifier of the hook within its repository's manifest"`
	Name                   string   `yaml:"name,omitempty" toml:"name,omitempty" jsonschema:"description=Override for the hook's display name"`
	Alias                  string   `yaml:"alias,omitempty" toml:"alias,omitempty" jsonschema:"description=Additional id the hook can be selected by"`
	Entry                  string   `yaml:"entry,omitempty" toml:"entry,omitempty" jsonschema:"description=Command to run (required for local repository hooks)"`
	Language               string   `yaml:"language,omitempty" toml:"language,omitempty" jsonschema:"description=Language the hook is implemented in (required for local repository hooks)"`
	LanguageVersion        string   `yaml:"language_version,omitempty" toml:"language_version,omitempty" jsonschema:"description=Override for the language runtime version"`
	Files                  string   `yaml:"files,omitempty" toml:"files,omitempty" jsonschema:"description=Regular expression selecting the files the hook runs on"`
	Exclude                string   `yaml:"exclude,omitempty" toml:"exclude,omitempty" jsonschema:"description=Regular expression for files to exclude"`
	Types                  []string `yaml:"types,omitempty" toml:"types,omitempty" jsonschema:"description=File types the hook runs on (AND semantics)"`
	ExcludeTypes           []string `yaml:"exclude_types,omitempty" toml:"exclude_types,omitempty" jsonschema:"description=File types to exclude"`
	Args                   []string `yaml:"args,omitempty" toml:"args,omitempty" jsonschema:"description=Extra arguments passed to the hook entry"`
	AdditionalDependencies []string `yaml:"additional_dependencies,omitempty" toml:"additional_dependencies,omitempty" jsonschema:"description=Extra package specifiers installed into the hook's environment"`
	Stages                 []string `yaml:"stages,omitempty" toml:"stages,omitempty" jsonschema:"description=Git hook types the hook is restricted to"`
	AlwaysRun              bool     `yaml:"always_run,omitempty" toml:"always_run,omitempty" jsonschema:"description=Run even when no files match"`
	PassFilenames          *bool    `yaml:"pass_filenames,omitempty" toml:"pass_filenames,omitempty" jsonschema:"description=Whether matched filenames are passed to the entry (default: true)"`
	Verbose                bool     `yaml:"verbose,omitempty" toml:"verbose,omitempty" jsonschema:"description=Print the hook's output even on success"`
	LogFile                string   `yaml:"log_file,omitempty" toml:"log_file,omitempty" jsonschema:"description=File the hook's output is additionally written to"`
}

// Repo is one entry in the top-level repos list: a hook source pinned to a
// revision, with the hooks selected from it.
type Repo struct {
	Repo  string `yaml:"repo" toml:"repo" jsonschema:"required,description=Repository URL, or 'local'/'meta'"`
	Rev   string `yaml:"rev,omitempty" toml:"rev,omitempty" jsonschema:"description=Pinned revision (tag or commit); required for remote repositories"`
	Hooks []Hook `yaml:"hooks" toml:"hooks" jsonschema:"required,description=Hooks to use from this repository"`
}

// IsLocal reports whether the entry declares its hooks inline rather than
// referencing a remote repository.
func (r *Repo) IsLocal() bool {
	return r.Repo == RepoLocal || r.Repo == RepoMeta
}

// FindHook returns the hook with the given id or alias, or nil.
func (r *Repo) FindHook(id string) *Hook {
	for i := range r.Hooks {
		if r.Hooks[i].ID == id || (r.Hooks[i].Alias != "" && r.Hooks[i].Alias == id) {
			return &r.Hooks[i]
		}
	}
	return nil
}

// Config is the full hook configuration document.
type Config struct {
	Repos []Repo `yaml:"repos" toml:"repos" jsonschema:"required,description=Hook repositories, in execution order"`

	DefaultInstallHookTypes []string          `yaml:"default_install_hook_types,omitempty" toml:"default_install_hook_types,omitempty" jsonschema:"description=Hook types installed by default"`
	DefaultLanguageVersion  map[string]string `yaml:"default_language_version,omitempty" toml:"default_language_version,omitempty" jsonschema:"description=Default runtime version per language"`
	DefaultStages           []string          `yaml:"default_stages,omitempty" toml:"default_stages,omitempty" jsonschema:"description=Default stages for hooks that do not set their own"`
	Files                   string            `yaml:"files,omitempty" toml:"files,omitempty" jsonschema:"description=Global regular expression selecting files"`
	Exclude                 string            `yaml:"exclude,omitempty" toml:"exclude,omitempty" jsonschema:"description=Global regular expression for files to exclude"`
	FailFast                bool              `yaml:"fail_fast,omitempty" toml:"fail_fast,omitempty" jsonschema:"description=Stop after the first failing hook"`
	MinimumVersion          string            `yaml:"minimum_pre_commit_version,omitempty" toml:"minimum_pre_commit_version,omitempty" jsonschema:"description=Minimum runner version the file requires"`

	// Extensions captures all other top-level keys (e.g. a 'ci' block) so
	// they survive a round trip and can be decoded by interested tools.
	Extensions map[string]interface{} `yaml:",inline" toml:"-" jsonschema:"-"`
}

// FindRepo returns the entry for the given repository URL, or nil.
func (c *Config) FindRepo(url string) *Repo {
	for i := range c.Repos {
		if c.Repos[i].Repo == url {
			return &c.Repos[i]
		}
	}
	return nil
}

// AllHooks returns every configured hook with its owning entry, in file order.
func (c *Config) AllHooks() []ConfiguredHook {
	var out []ConfiguredHook
	for i := range c.Repos {
		for j := range c.Repos[i].Hooks {
			out = append(out, ConfiguredHook{Repo: &c.Repos[i], Hook: &c.Repos[i].Hooks[j]})
		}
	}
	return out
}

// ConfiguredHook pairs a hook with the repository entry that declares it.
type ConfiguredHook struct {
	Repo *Repo
	Hook *Hook
}

// UnmarshalExtension decodes a specific extension block (an unknown
// top-level key such as 'ci') into the provided target struct.
// The target must be a pointer.
//
// Example:
//
//	var ci CIConfig
//	err := cfg.UnmarshalExtension("ci", &ci)
func (c *Config) UnmarshalExtension(key string, target interface{}) error {
	extensionConfig, ok := c.Extensions[key]
	if !ok {
		// Not an error: the target simply stays zero-valued.
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  target,
		TagName: "yaml",
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(extensionConfig); err != nil {
		return fmt.Errorf("failed to decode extension config for '%s': %w", key, err)
	}

	return nil
}

// NormalizeStages rewrites legacy stage spellings (commit, merge-commit,
// push) to their current names, in place.
func (c *Config) NormalizeStages() {
	normalize := func(stages []string) {
		for i, s := range stages {
			if canonical, ok := legacyStageAliases[s]; ok {
				stages[i] = canonical
			}
		}
	}
	normalize(c.DefaultStages)
	for i := range c.Repos {
		for j := range c.Repos[i].Hooks {
			normalize(c.Repos[i].Hooks[j].Stages)
		}
	}
}
