package config

import (
	"os"
	"path/filepath"

	"github.com/hooktools/hookcfg/errors"
	"gopkg.in/yaml.v3"
)

// Override file names, in the order they are applied.
var overrideFileNames = []string{
	".pre-commit-config.override.yaml",
	".pre-commit-config.override.yml",
}

// Layer is one document that contributed to a merged configuration.
type Layer struct {
	Path   string
	Config *Config
}

// Layered holds the individual documents and the result of merging them.
type Layered struct {
	Base      Layer
	Overrides []Layer
	Final     *Config
}

// LoadWithOverrides loads a configuration file and applies any override
// files found next to it. Entries are merged by repository URL, hooks by id;
// scalars in later layers win.
func LoadWithOverrides(baseFile string) (*Config, error) {
	layered, err := LoadLayered(baseFile)
	if err != nil {
		return nil, err
	}
	return layered.Final, nil
}

// LoadLayered loads a configuration file and its override layers, keeping
// each document separate for inspection.
func LoadLayered(baseFile string) (*Layered, error) {
	base, err := Load(baseFile)
	if err != nil {
		return nil, err
	}

	layered := &Layered{
		Base:  Layer{Path: baseFile, Config: base},
		Final: base,
	}

	dir := filepath.Dir(baseFile)
	for _, name := range overrideFileNames {
		overridePath := filepath.Join(dir, name)
		if _, err := os.Stat(overridePath); err != nil {
			continue
		}

		data, err := os.ReadFile(overridePath)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read override file").
				WithDetail("path", overridePath)
		}

		expanded := expandEnvVars(string(data))
		var override Config
		if err := yaml.Unmarshal([]byte(expanded), &override); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse override file").
				WithDetail("path", overridePath)
		}

		layered.Overrides = append(layered.Overrides, Layer{Path: overridePath, Config: &override})
		layered.Final = mergeConfigs(layered.Final, &override)
	}

	return layered, nil
}

// mergeConfigs merges an override document into a base document. Neither
// input is mutated: map fields are cloned before override values land in
// them, so the layer documents stay inspectable after the merge.
func mergeConfigs(base, override *Config) *Config {
	result := *base

	if override.Files != "" {
		result.Files = override.Files
	}
	if override.Exclude != "" {
		result.Exclude = override.Exclude
	}
	if override.MinimumVersion != "" {
		result.MinimumVersion = override.MinimumVersion
	}
	if override.FailFast {
		result.FailFast = true
	}
	if len(override.DefaultStages) > 0 {
		result.DefaultStages = override.DefaultStages
	}
	if len(override.DefaultInstallHookTypes) > 0 {
		result.DefaultInstallHookTypes = override.DefaultInstallHookTypes
	}
	if len(override.DefaultLanguageVersion) > 0 {
		merged := make(map[string]string, len(base.DefaultLanguageVersion)+len(override.DefaultLanguageVersion))
		for lang, ver := range base.DefaultLanguageVersion {
			merged[lang] = ver
		}
		for lang, ver := range override.DefaultLanguageVersion {
			merged[lang] = ver
		}
		result.DefaultLanguageVersion = merged
	}

	result.Repos = mergeRepos(base.Repos, override.Repos)

	if override.Extensions != nil {
		extensions := make(map[string]interface{}, len(base.Extensions)+len(override.Extensions))
		for key, value := range base.Extensions {
			extensions[key] = value
		}
		for key, value := range override.Extensions {
			// Merge nested maps key by key, otherwise replace.
			if baseValue, exists := extensions[key]; exists {
				if baseMap, baseOk := baseValue.(map[string]interface{}); baseOk {
					if overrideMap, overrideOk := value.(map[string]interface{}); overrideOk {
						merged := make(map[string]interface{}, len(baseMap)+len(overrideMap))
						for k, v := range baseMap {
							merged[k] = v
						}
						for k, v := range overrideMap {
							merged[k] = v
						}
						extensions[key] = merged
						continue
					}
				}
			}
			extensions[key] = value
		}
		result.Extensions = extensions
	}

	return &result
}

// mergeRepos merges override entries into the base list by repository URL.
// Entries only present in the override are appended, preserving base order.
func mergeRepos(base, override []Repo) []Repo {
	result := make([]Repo, len(base))
	copy(result, base)

	for _, o := range override {
		merged := false
		for i := range result {
			if result[i].Repo == o.Repo {
				result[i] = mergeRepo(result[i], o)
				merged = true
				break
			}
		}
		if !merged {
			result = append(result, o)
		}
	}

	return result
}

func mergeRepo(base, override Repo) Repo {
	result := base
	if override.Rev != "" {
		result.Rev = override.Rev
	}
	result.Hooks = mergeHooks(base.Hooks, override.Hooks)
	return result
}

// mergeHooks merges override hooks into the base list by id.
func mergeHooks(base, override []Hook) []Hook {
	result := make([]Hook, len(base))
	copy(result, base)

	for _, o := range override {
		merged := false
		for i := range result {
			if result[i].ID == o.ID {
				result[i] = mergeHook(result[i], o)
				merged = true
				break
			}
		}
		if !merged {
			result = append(result, o)
		}
	}

	return result
}

func mergeHook(base, override Hook) Hook {
	result := base
	if override.Name != "" {
		result.Name = override.Name
	}
	if override.Alias != "" {
		result.Alias = override.Alias
	}
	if override.Entry != "" {
		result.Entry = override.Entry
	}
	if override.Language != "" {
		result.Language = override.Language
	}
	if override.LanguageVersion != "" {
		result.LanguageVersion = override.LanguageVersion
	}
	if override.Files != "" {
		result.Files = override.Files
	}
	if override.Exclude != "" {
		result.Exclude = override.Exclude
	}
	if len(override.Types) > 0 {
		result.Types = override.Types
	}
	if len(override.ExcludeTypes) > 0 {
		result.ExcludeTypes = override.ExcludeTypes
	}
	if len(override.Args) > 0 {
		result.Args = override.Args
	}
	if len(override.AdditionalDependencies) > 0 {
		result.AdditionalDependencies = override.AdditionalDependencies
	}
	if len(override.Stages) > 0 {
		result.Stages = override.Stages
	}
	if override.AlwaysRun {
		result.AlwaysRun = true
	}
	if override.PassFilenames != nil {
		result.PassFilenames = override.PassFilenames
	}
	if override.Verbose {
		result.Verbose = true
	}
	if override.LogFile != "" {
		result.LogFile = override.LogFile
	}
	return result
}
