package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/hooktools/hookcfg/errors"
)

// Validate checks the semantic invariants of the configuration:
// every entry has a repository, remote entries carry a rev, local entries
// do not, hook ids are present and unique within their entry, and every
// pattern field compiles as a regular expression.
func (c *Config) Validate() error {
	if len(c.Repos) == 0 {
		return errors.New(errors.ErrCodeConfigValidation, "configuration must declare at least one repository under 'repos'")
	}

	if err := validatePattern("files", c.Files); err != nil {
		return err
	}
	if err := validatePattern("exclude", c.Exclude); err != nil {
		return err
	}
	if err := validateStages("default_stages", c.DefaultStages); err != nil {
		return err
	}

	for i := range c.Repos {
		if err := validateRepo(&c.Repos[i]); err != nil {
			// Keep the specific code (REV_MISSING, HOOK_DUPLICATE, ...)
			// visible to GetCode; only annotate where the entry lives.
			if hookErr, ok := err.(*errors.HookError); ok {
				if _, exists := hookErr.Details["repo"]; !exists {
					hookErr.WithDetail("repo", c.Repos[i].Repo)
				}
				return hookErr.WithDetail("index", i)
			}
			return err
		}
	}

	return nil
}

func validateRepo(r *Repo) error {
	if strings.TrimSpace(r.Repo) == "" {
		return errors.New(errors.ErrCodeConfigValidation, "entry is missing the 'repo' field")
	}

	if r.IsLocal() {
		if r.Rev != "" {
			return errors.New(errors.ErrCodeConfigValidation, fmt.Sprintf("'%s' repositories must not set 'rev'", r.Repo))
		}
	} else if strings.TrimSpace(r.Rev) == "" {
		return errors.RevMissing(r.Repo)
	}

	if len(r.Hooks) == 0 {
		return errors.New(errors.ErrCodeConfigValidation, "entry declares no hooks")
	}

	seen := make(map[string]bool, len(r.Hooks))
	for i := range r.Hooks {
		hook := &r.Hooks[i]
		if strings.TrimSpace(hook.ID) == "" {
			return errors.New(errors.ErrCodeConfigValidation, "hook is missing the 'id' field").
				WithDetail("index", i)
		}
		if seen[hook.ID] {
			return errors.HookDuplicate(hook.ID, r.Repo)
		}
		seen[hook.ID] = true

		if err := validateHook(hook, r); err != nil {
			return err
		}
	}

	return nil
}

func validateHook(h *Hook, owner *Repo) error {
	if owner.Repo == RepoLocal {
		if h.Entry == "" {
			return errors.New(errors.ErrCodeConfigValidation, fmt.Sprintf("local hook '%s' must set 'entry'", h.ID)).
				WithDetail("hook", h.ID)
		}
		if h.Language == "" {
			return errors.New(errors.ErrCodeConfigValidation, fmt.Sprintf("local hook '%s' must set 'language'", h.ID)).
				WithDetail("hook", h.ID)
		}
	}

	if err := validatePattern(fmt.Sprintf("hooks[%s].files", h.ID), h.Files); err != nil {
		return err
	}
	if err := validatePattern(fmt.Sprintf("hooks[%s].exclude", h.ID), h.Exclude); err != nil {
		return err
	}

	for _, dep := range h.AdditionalDependencies {
		if strings.TrimSpace(dep) == "" {
			return errors.New(errors.ErrCodeConfigValidation, fmt.Sprintf("hook '%s' has an empty additional dependency", h.ID)).
				WithDetail("hook", h.ID)
		}
	}
	for _, arg := range h.Args {
		if arg == "" {
			return errors.New(errors.ErrCodeConfigValidation, fmt.Sprintf("hook '%s' has an empty argument", h.ID)).
				WithDetail("hook", h.ID)
		}
	}

	return validateStages(fmt.Sprintf("hooks[%s].stages", h.ID), h.Stages)
}

func validatePattern(field, pattern string) error {
	if pattern == "" {
		return nil
	}
	if _, err := regexp.Compile(pattern); err != nil {
		return errors.PatternInvalid(field, pattern, err)
	}
	return nil
}

func validateStages(field string, stages []string) error {
	for _, stage := range stages {
		if !isKnownStage(stage) {
			return errors.New(errors.ErrCodeConfigValidation,
				fmt.Sprintf("unknown stage '%s' in %s (known: %s)", stage, field, strings.Join(Stages, ", "))).
				WithDetail("stage", stage)
		}
	}
	return nil
}

func isKnownStage(stage string) bool {
	if _, ok := legacyStageAliases[stage]; ok {
		return true
	}
	for _, s := range Stages {
		if s == stage {
			return true
		}
	}
	return false
}
