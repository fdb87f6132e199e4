package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeConfigs(t *testing.T) {
	base := &Config{
		Exclude: `^vendor/`,
		Repos: []Repo{
			{
				Repo: "https://github.com/psf/black",
				Rev:  "24.3.0",
				Hooks: []Hook{
					{ID: "black", Args: []string{"--line-length", "88"}},
				},
			},
		},
	}

	override := &Config{
		FailFast: true,
		Repos: []Repo{
			{
				Repo: "https://github.com/psf/black",
				Rev:  "24.4.2",
				Hooks: []Hook{
					{ID: "black", Args: []string{"--line-length", "100"}},
				},
			},
			{
				Repo:  "https://github.com/astral-sh/ruff-pre-commit",
				Rev:   "v0.4.4",
				Hooks: []Hook{{ID: "ruff"}},
			},
		},
	}

	merged := mergeConfigs(base, override)

	// Scalars: override wins where set, base survives otherwise
	assert.True(t, merged.FailFast)
	assert.Equal(t, `^vendor/`, merged.Exclude)

	// Matching entry merged in place, new entry appended
	require.Len(t, merged.Repos, 2)
	assert.Equal(t, "24.4.2", merged.Repos[0].Rev)
	assert.Equal(t, []string{"--line-length", "100"}, merged.Repos[0].Hooks[0].Args)
	assert.Equal(t, "https://github.com/astral-sh/ruff-pre-commit", merged.Repos[1].Repo)

	// Base document is not mutated
	assert.Equal(t, "24.3.0", base.Repos[0].Rev)
}

func TestMergeHooksByID(t *testing.T) {
	base := []Hook{
		{ID: "black", Args: []string{"--fast"}},
		{ID: "check-yaml"},
	}
	override := []Hook{
		{ID: "check-yaml", Exclude: `^templates/`},
		{ID: "end-of-file-fixer"},
	}

	merged := mergeHooks(base, override)
	require.Len(t, merged, 3)
	assert.Equal(t, "black", merged[0].ID)
	assert.Equal(t, `^templates/`, merged[1].Exclude)
	assert.Equal(t, []string(nil), merged[1].Args)
	assert.Equal(t, "end-of-file-fixer", merged[2].ID)
}

func TestLoadWithOverrides(t *testing.T) {
	dir := t.TempDir()

	basePath := filepath.Join(dir, ".pre-commit-config.yaml")
	require.NoError(t, os.WriteFile(basePath, []byte(`repos:
  - repo: https://github.com/psf/black
    rev: 24.3.0
    hooks:
      - id: black
`), 0644))

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".pre-commit-config.override.yaml"), []byte(`fail_fast: true
repos:
  - repo: https://github.com/psf/black
    rev: 24.4.2
    hooks:
      - id: black
`), 0644))

	cfg, err := LoadWithOverrides(basePath)
	require.NoError(t, err)
	assert.True(t, cfg.FailFast)
	assert.Equal(t, "24.4.2", cfg.Repos[0].Rev)
}

func TestLoadLayeredKeepsBaseDocumentIntact(t *testing.T) {
	dir := t.TempDir()

	basePath := filepath.Join(dir, ".pre-commit-config.yaml")
	require.NoError(t, os.WriteFile(basePath, []byte(`default_language_version:
  python: python3.10
repos:
  - repo: https://github.com/psf/black
    rev: 24.3.0
    hooks:
      - id: black
ci:
  autofix_prs: true
`), 0644))

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".pre-commit-config.override.yaml"), []byte(`default_language_version:
  python: python3.12
ci:
  autofix_prs: false
`), 0644))

	layered, err := LoadLayered(basePath)
	require.NoError(t, err)

	// The merged result carries the override values
	assert.Equal(t, "python3.12", layered.Final.DefaultLanguageVersion["python"])
	final, ok := layered.Final.Extensions["ci"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, false, final["autofix_prs"])

	// The base layer document is untouched by the merge
	assert.Equal(t, "python3.10", layered.Base.Config.DefaultLanguageVersion["python"])
	baseCI, ok := layered.Base.Config.Extensions["ci"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, true, baseCI["autofix_prs"])
}

func TestLoadLayeredWithoutOverrides(t *testing.T) {
	dir := t.TempDir()
	basePath := filepath.Join(dir, ".pre-commit-config.yaml")
	require.NoError(t, os.WriteFile(basePath, []byte(sampleConfig), 0644))

	layered, err := LoadLayered(basePath)
	require.NoError(t, err)
	assert.Empty(t, layered.Overrides)
	assert.Equal(t, layered.Base.Config, layered.Final)
}
