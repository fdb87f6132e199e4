package errors

import "fmt"

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *HookError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *HookError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}

// RepoNotFound creates a repository entry not found error
func RepoNotFound(repo string) *HookError {
	return New(ErrCodeRepoNotFound, fmt.Sprintf("repository '%s' not found in configuration", repo)).
		WithDetail("repo", repo)
}

// RevMissing creates an error for a remote repository entry without a rev
func RevMissing(repo string) *HookError {
	return New(ErrCodeRevMissing, fmt.Sprintf("repository '%s' requires a pinned rev", repo)).
		WithDetail("repo", repo)
}

// HookNotFound creates a hook not found error
func HookNotFound(id string, repo string) *HookError {
	return New(ErrCodeHookNotFound, fmt.Sprintf("hook '%s' not found in repository '%s'", id, repo)).
		WithDetail("hook", id).
		WithDetail("repo", repo)
}

// HookDuplicate creates a duplicate hook id error
func HookDuplicate(id string, repo string) *HookError {
	return New(ErrCodeHookDuplicate, fmt.Sprintf("hook id '%s' declared more than once for repository '%s'", id, repo)).
		WithDetail("hook", id).
		WithDetail("repo", repo)
}

// PatternInvalid creates an invalid regular expression error
func PatternInvalid(field string, pattern string, err error) *HookError {
	return Wrap(err, ErrCodePatternInvalid, fmt.Sprintf("invalid regular expression in %s: %s", field, pattern)).
		WithDetail("field", field).
		WithDetail("pattern", pattern)
}

// ManifestNotFound creates a hook manifest not found error
func ManifestNotFound(path string) *HookError {
	return New(ErrCodeManifestNotFound, fmt.Sprintf("hook manifest not found: %s", path)).
		WithDetail("path", path)
}
