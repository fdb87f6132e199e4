package schema

import (
	"testing"

	"github.com/hooktools/hookcfg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateYAML(t *testing.T) {
	validator, err := NewValidator()
	require.NoError(t, err)

	testCases := []struct {
		name  string
		doc   string
		valid bool
	}{
		{
			name: "valid minimal",
			doc: `repos:
  - repo: https://github.com/psf/black
    rev: 24.4.2
    hooks:
      - id: black
`,
			valid: true,
		},
		{
			name: "valid with hook options",
			doc: `repos:
  - repo: https://github.com/astral-sh/ruff-pre-commit
    rev: v0.4.4
    hooks:
      - id: ruff
        args: [--fix]
        exclude: ^migrations/
        additional_dependencies: [tomli]
        stages: [pre-commit]
`,
			valid: true,
		},
		{
			name:  "missing repos key",
			doc:   `fail_fast: true`,
			valid: false,
		},
		{
			name: "entry without repo",
			doc: `repos:
  - rev: v1.0.0
    hooks:
      - id: black
`,
			valid: false,
		},
		{
			name: "hook without id",
			doc: `repos:
  - repo: https://github.com/psf/black
    rev: 24.4.2
    hooks:
      - args: [--fast]
`,
			valid: false,
		},
		{
			name: "unknown hook field",
			doc: `repos:
  - repo: https://github.com/psf/black
    rev: 24.4.2
    hooks:
      - id: black
        not_a_field: true
`,
			valid: false,
		},
		{
			name: "unknown stage",
			doc: `repos:
  - repo: https://github.com/psf/black
    rev: 24.4.2
    hooks:
      - id: black
        stages: [before-commit]
`,
			valid: false,
		},
		{
			name: "unknown top-level key is allowed",
			doc: `repos:
  - repo: https://github.com/psf/black
    rev: 24.4.2
    hooks:
      - id: black
ci:
  autofix_prs: true
`,
			valid: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validator.ValidateYAML([]byte(tc.doc))
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateTypedConfig(t *testing.T) {
	validator, err := NewValidator()
	require.NoError(t, err)

	cfg := &config.Config{
		Repos: []config.Repo{
			{
				Repo:  "https://github.com/psf/black",
				Rev:   "24.4.2",
				Hooks: []config.Hook{{ID: "black"}},
			},
		},
	}
	assert.NoError(t, validator.Validate(cfg))

	// A typed config missing its hooks fails the schema's minItems
	cfg.Repos[0].Hooks = nil
	assert.Error(t, validator.Validate(cfg))
}

func TestValidateYAMLMalformedDocument(t *testing.T) {
	validator, err := NewValidator()
	require.NoError(t, err)

	assert.Error(t, validator.ValidateYAML([]byte("repos: [unclosed")))
}
