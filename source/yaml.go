package source

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// yamlDecoder decodes every document of a YAML stream.
type yamlDecoder struct{}

func (yamlDecoder) Name() string { return "yaml.v3" }

func (yamlDecoder) Decode(r io.Reader) ([]any, error) {
	dec := yaml.NewDecoder(r)
	var out []any
	for {
		var node any
		if err := dec.Decode(&node); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("decode yaml document %d: %w", len(out), err)
		}
		out = append(out, yamlNormalizeValue(node))
	}
	if len(out) == 0 {
		return nil, ErrEmpty
	}
	return out, nil
}

// yamlNormalizeValue converts YAML-decoded values (which may contain
// map[any]any) into JSON-like containers recursively.
func yamlNormalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = yamlNormalizeValue(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[fmt.Sprint(k)] = yamlNormalizeValue(vv)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = yamlNormalizeValue(t[i])
		}
		return out
	default:
		return v
	}
}
