package config

import (
	"os"

	"github.com/hooktools/hookcfg/errors"
)

// SetRev updates the pinned revision of the entry for the given repository
// URL. Local and meta entries cannot be pinned.
func (c *Config) SetRev(repoURL, rev string) error {
	repo := c.FindRepo(repoURL)
	if repo == nil {
		return errors.RepoNotFound(repoURL)
	}
	if repo.IsLocal() {
		return errors.New(errors.ErrCodeInvalidInput, "local and meta repositories do not have a rev").
			WithDetail("repo", repoURL)
	}
	if rev == "" {
		return errors.RevMissing(repoURL)
	}

	repo.Rev = rev
	return nil
}

// BumpRev loads the configuration at path, updates the revision of the given
// repository, and writes the file back. This is the edit a config-bumping
// tool performs. The document is parsed without ${VAR} expansion so the
// references are written back as authored.
func BumpRev(path, repoURL, rev string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.ConfigNotFound(path)
		}
		return errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read config file").
			WithDetail("path", path)
	}

	cfg, err := ParseBytes(data)
	if err != nil {
		return err
	}

	if err := cfg.SetRev(repoURL, rev); err != nil {
		return err
	}

	data, err = cfg.Marshal()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "failed to write updated configuration").
			WithDetail("path", path)
	}

	return nil
}
