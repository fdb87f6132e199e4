package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindRepoAndFindHook(t *testing.T) {
	cfg, err := LoadFromBytes([]byte(sampleConfig))
	require.NoError(t, err)

	repo := cfg.FindRepo("https://github.com/psf/black")
	require.NotNil(t, repo)
	assert.Equal(t, "24.4.2", repo.Rev)

	assert.Nil(t, cfg.FindRepo("https://github.com/does/not-exist"))

	hook := repo.FindHook("black")
	require.NotNil(t, hook)
	assert.Nil(t, repo.FindHook("ruff"))
}

func TestFindHookByAlias(t *testing.T) {
	repo := Repo{
		Repo: "https://github.com/astral-sh/ruff-pre-commit",
		Rev:  "v0.4.4",
		Hooks: []Hook{
			{ID: "ruff", Alias: "lint"},
		},
	}

	hook := repo.FindHook("lint")
	require.NotNil(t, hook)
	assert.Equal(t, "ruff", hook.ID)
}

func TestAllHooks(t *testing.T) {
	cfg, err := LoadFromBytes([]byte(sampleConfig))
	require.NoError(t, err)

	hooks := cfg.AllHooks()
	require.Len(t, hooks, 3)

	// File order is preserved
	assert.Equal(t, "trailing-whitespace", hooks[0].Hook.ID)
	assert.Equal(t, "check-yaml", hooks[1].Hook.ID)
	assert.Equal(t, "black", hooks[2].Hook.ID)
	assert.Equal(t, "https://github.com/psf/black", hooks[2].Repo.Repo)
}

func TestIsLocal(t *testing.T) {
	assert.True(t, (&Repo{Repo: RepoLocal}).IsLocal())
	assert.True(t, (&Repo{Repo: RepoMeta}).IsLocal())
	assert.False(t, (&Repo{Repo: "https://github.com/psf/black"}).IsLocal())
}

func TestUnmarshalExtension(t *testing.T) {
	cfg, err := LoadFromBytes([]byte(`repos:
  - repo: https://github.com/psf/black
    rev: 24.4.2
    hooks:
      - id: black
ci:
  autofix_prs: true
  autoupdate_schedule: weekly
  skip: [make-lint]
`))
	require.NoError(t, err)

	type ciConfig struct {
		AutofixPRs         bool     `yaml:"autofix_prs"`
		AutoupdateSchedule string   `yaml:"autoupdate_schedule"`
		Skip               []string `yaml:"skip"`
	}

	var ci ciConfig
	require.NoError(t, cfg.UnmarshalExtension("ci", &ci))
	assert.True(t, ci.AutofixPRs)
	assert.Equal(t, "weekly", ci.AutoupdateSchedule)
	assert.Equal(t, []string{"make-lint"}, ci.Skip)

	// Missing key leaves the target zero-valued
	var missing ciConfig
	require.NoError(t, cfg.UnmarshalExtension("nope", &missing))
	assert.False(t, missing.AutofixPRs)
}

func TestNormalizeStages(t *testing.T) {
	cfg := &Config{
		DefaultStages: []string{"commit", "manual"},
		Repos: []Repo{
			{
				Repo: "https://github.com/psf/black",
				Rev:  "24.4.2",
				Hooks: []Hook{
					{ID: "black", Stages: []string{"push", "merge-commit"}},
				},
			},
		},
	}

	cfg.NormalizeStages()
	assert.Equal(t, []string{"pre-commit", "manual"}, cfg.DefaultStages)
	assert.Equal(t, []string{"pre-push", "pre-merge-commit"}, cfg.Repos[0].Hooks[0].Stages)
}
