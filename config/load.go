package config

import (
	"fmt"

	"github.com/bytedance/sonic"
	"gopkg.in/yaml.v3"
)

// FromYAML decodes a YAML document over Default. Absent keys keep their
// default; the result is validated.
//
//	epsilon: 1e-9
//	number: BigNumber
func FromYAML(data []byte) (Config, error) {
	c := Default()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("%w: yaml: %v", ErrDecode, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// FromJSON decodes a JSON object over Default, with the same rules as FromYAML.
func FromJSON(data []byte) (Config, error) {
	c := Default()
	if err := sonic.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("%w: json: %v", ErrDecode, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// ToJSON renders c as a JSON object.
func (c Config) ToJSON() ([]byte, error) {
	return sonic.Marshal(c)
}
