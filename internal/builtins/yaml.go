package builtins

import (
	"github.com/cwbudde/vaina/internal/value"
	"github.com/goccy/go-yaml"
)

func registerYAML(r *Registry) {
	r.Register(biParseYAML, "parse_yaml", "yaml_analizar")
	r.Register(biToYAML, "to_yaml", "yaml_a_texto")
}

// biParseYAML decodes a YAML document into the language's dynamic value
// tree via goccy/go-yaml (SPEC_FULL.md §4.8).
func biParseYAML(ctx Context, args []value.Value) value.Value {
	if len(args) != 1 {
		return argError("parse_yaml/yaml_analizar", 1, len(args))
	}
	s, ok := args[0].(value.String)
	if !ok {
		return value.NewError(value.KindTypeError, "parse_yaml/yaml_analizar expects a string, got %s", args[0].Type())
	}

	var decoded interface{}
	if err := yaml.Unmarshal([]byte(s), &decoded); err != nil {
		return value.NewError(value.KindBuiltinError, "parse_yaml/yaml_analizar: %s", err)
	}
	return nativeToValue(decoded)
}

// biToYAML serializes a dynamic value to YAML text via goccy/go-yaml.
func biToYAML(ctx Context, args []value.Value) value.Value {
	if len(args) != 1 {
		return argError("to_yaml/yaml_a_texto", 1, len(args))
	}
	out, err := yaml.Marshal(valueToNative(args[0]))
	if err != nil {
		return value.NewError(value.KindBuiltinError, "to_yaml/yaml_a_texto: %s", err)
	}
	return value.String(string(out))
}

// nativeToValue converts the generic interface{} tree goccy/go-yaml decodes
// into (map[string]interface{}, []interface{}, scalars) into the dynamic
// value tree.
func nativeToValue(v interface{}) value.Value {
	switch t := v.(type) {
	case nil:
		return value.Null
	case bool:
		return value.Boolean(t)
	case string:
		return value.String(t)
	case int:
		return value.Number(float64(t))
	case int64:
		return value.Number(float64(t))
	case uint64:
		return value.Number(float64(t))
	case float64:
		return value.Number(t)
	case []interface{}:
		elements := make([]value.Value, len(t))
		for i, el := range t {
			elements[i] = nativeToValue(el)
		}
		return value.NewList(elements)
	case map[string]interface{}:
		d := value.NewDict()
		for k, val := range t {
			d.Set(k, nativeToValue(val))
		}
		return d
	case map[interface{}]interface{}:
		d := value.NewDict()
		for k, val := range t {
			if ks, ok := k.(string); ok {
				d.Set(ks, nativeToValue(val))
			}
		}
		return d
	default:
		return value.Null
	}
}
