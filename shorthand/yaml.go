package shorthand

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// UnmarshalYAML decodes a shorthand from a YAML document. Objects decode as
// ordered maps so element attribute order survives.
func UnmarshalYAML(data []byte) (Shorthand, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(data, &v, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	s, ok := Decode(v)
	if !ok {
		return nil, fmt.Errorf("value %T does not qualify as any shorthand variant", v)
	}
	return s, nil
}
