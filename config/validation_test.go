package config

import (
	"testing"

	"github.com/hooktools/hookcfg/errors"
	"github.com/stretchr/testify/assert"
)

func TestValidatePattern(t *testing.T) {
	testCases := []struct {
		name    string
		pattern string
		valid   bool
	}{
		{"empty", "", true},
		{"simple suffix", `\.py$`, true},
		{"alternation", `^(docs/|vendor/)`, true},
		{"unclosed group", `([unclosed`, false},
		{"bad repetition", `*invalid`, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validatePattern("exclude", tc.pattern)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, errors.ErrCodePatternInvalid))
			}
		})
	}
}

func TestValidateConfig(t *testing.T) {
	// Valid config
	valid := &Config{
		Repos: []Repo{
			{
				Repo: "https://github.com/psf/black",
				Rev:  "24.4.2",
				Hooks: []Hook{
					{ID: "black"},
				},
			},
		},
	}
	assert.NoError(t, valid.Validate())

	// No repos at all
	invalid := &Config{}
	assert.Error(t, invalid.Validate())

	// Remote repo without rev
	invalid = &Config{
		Repos: []Repo{
			{
				Repo:  "https://github.com/psf/black",
				Hooks: []Hook{{ID: "black"}},
			},
		},
	}
	err := invalid.Validate()
	assert.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeRevMissing))

	// Entry without hooks
	invalid = &Config{
		Repos: []Repo{
			{Repo: "https://github.com/psf/black", Rev: "24.4.2"},
		},
	}
	assert.Error(t, invalid.Validate())

	// Hook without id
	invalid = &Config{
		Repos: []Repo{
			{
				Repo:  "https://github.com/psf/black",
				Rev:   "24.4.2",
				Hooks: []Hook{{Args: []string{"--fast"}}},
			},
		},
	}
	assert.Error(t, invalid.Validate())
}

func TestValidateDuplicateHookIDs(t *testing.T) {
	cfg := &Config{
		Repos: []Repo{
			{
				Repo: "https://github.com/pre-commit/pre-commit-hooks",
				Rev:  "v5.0.0",
				Hooks: []Hook{
					{ID: "check-yaml"},
					{ID: "check-yaml"},
				},
			},
		},
	}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeHookDuplicate))

	// The same id in two different entries is legal.
	cfg = &Config{
		Repos: []Repo{
			{
				Repo:  "https://github.com/pre-commit/pre-commit-hooks",
				Rev:   "v5.0.0",
				Hooks: []Hook{{ID: "check-yaml"}},
			},
			{
				Repo:  "https://github.com/adrienverge/yamllint",
				Rev:   "v1.35.1",
				Hooks: []Hook{{ID: "check-yaml"}},
			},
		},
	}
	assert.NoError(t, cfg.Validate())
}

func TestValidateLocalRepos(t *testing.T) {
	// Local hooks need entry and language
	cfg := &Config{
		Repos: []Repo{
			{
				Repo: RepoLocal,
				Hooks: []Hook{
					{ID: "make-lint", Entry: "make lint", Language: "system"},
				},
			},
		},
	}
	assert.NoError(t, cfg.Validate())

	// Missing entry
	cfg.Repos[0].Hooks[0].Entry = ""
	assert.Error(t, cfg.Validate())

	// Local repo must not pin a rev
	cfg = &Config{
		Repos: []Repo{
			{
				Repo: RepoLocal,
				Rev:  "v1.0.0",
				Hooks: []Hook{
					{ID: "make-lint", Entry: "make lint", Language: "system"},
				},
			},
		},
	}
	assert.Error(t, cfg.Validate())

	// Meta repos do not require entry/language
	cfg = &Config{
		Repos: []Repo{
			{
				Repo:  RepoMeta,
				Hooks: []Hook{{ID: "check-hooks-apply"}},
			},
		},
	}
	assert.NoError(t, cfg.Validate())
}

func TestValidateStages(t *testing.T) {
	cfg := &Config{
		DefaultStages: []string{"pre-commit", "pre-push"},
		Repos: []Repo{
			{
				Repo: "https://github.com/psf/black",
				Rev:  "24.4.2",
				Hooks: []Hook{
					{ID: "black", Stages: []string{"manual"}},
				},
			},
		},
	}
	assert.NoError(t, cfg.Validate())

	// Legacy spellings are accepted
	cfg.Repos[0].Hooks[0].Stages = []string{"commit", "push"}
	assert.NoError(t, cfg.Validate())

	// Unknown stage
	cfg.Repos[0].Hooks[0].Stages = []string{"before-commit"}
	assert.Error(t, cfg.Validate())
}

func TestValidateHookFields(t *testing.T) {
	base := func() *Config {
		return &Config{
			Repos: []Repo{
				{
					Repo:  "https://github.com/astral-sh/ruff-pre-commit",
					Rev:   "v0.4.4",
					Hooks: []Hook{{ID: "ruff"}},
				},
			},
		}
	}

	cfg := base()
	cfg.Repos[0].Hooks[0].Exclude = `([bad`
	err := cfg.Validate()
	assert.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodePatternInvalid))

	cfg = base()
	cfg.Repos[0].Hooks[0].AdditionalDependencies = []string{"flake8-bugbear", "  "}
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Repos[0].Hooks[0].Args = []string{"--fix", ""}
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Repos[0].Hooks[0].Exclude = `^migrations/`
	cfg.Repos[0].Hooks[0].AdditionalDependencies = []string{"flake8-bugbear==24.4.26"}
	cfg.Repos[0].Hooks[0].Args = []string{"--fix"}
	assert.NoError(t, cfg.Validate())
}
