package codec

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/hugr-lab/condfilter/condition"
)

// LoadTypeConfigs reads type configs from YAML keyed by type name.
// Unknown fields are an error. Empty input yields empty configs.
//
// Example:
//
//	text:
//	  keys: [title, comments]
//	number:
//	  keys: [price]
//	  comparators: [greater than, less than or equal]
func LoadTypeConfigs(r io.Reader) (condition.TypeConfigs, error) {
	configs := condition.TypeConfigs{}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&configs); err != nil {
		if errors.Is(err, io.EOF) {
			return condition.TypeConfigs{}, nil
		}
		return nil, fmt.Errorf("codec: invalid type configs: %w", err)
	}

	return configs, nil
}
