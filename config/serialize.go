package config

import (
	"encoding/json"

	"github.com/hooktools/hookcfg/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Marshal renders the configuration back to YAML. Entry order and all set
// fields are preserved; key order within a mapping is the canonical struct
// order, which makes the output stable for formatting.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to marshal configuration to YAML")
	}
	return data, nil
}

// ToJSON renders the configuration as indented JSON, using the same field
// names as the YAML form.
func (c *Config) ToJSON() ([]byte, error) {
	// Round through YAML so field names and extension keys come out
	// identically to the authored document.
	yamlData, err := c.Marshal()
	if err != nil {
		return nil, err
	}

	var generic interface{}
	if err := yaml.Unmarshal(yamlData, &generic); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to convert configuration to JSON")
	}

	data, err := json.MarshalIndent(generic, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to marshal configuration to JSON")
	}
	return data, nil
}

// ToTOML renders the configuration as TOML. Extension blocks are not
// representable in the TOML form and are omitted.
func (c *Config) ToTOML() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to marshal configuration to TOML")
	}
	return data, nil
}
