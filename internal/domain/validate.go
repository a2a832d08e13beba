package domain

import (
	"fmt"

	"github.com/bnema/corral/pkg/validation"
)

type fieldKind string

const (
	kindString fieldKind = "string"
	kindBool   fieldKind = "bool"
	kindList   fieldKind = "list"
)

// optionField describes one key of a container definition and how its
// type-checked value lands in ContainerOptions.
type optionField struct {
	key  string
	kind fieldKind
	set  func(o *ContainerOptions, v any)
}

func stringField(key string, set func(o *ContainerOptions, v string)) optionField {
	return optionField{key: key, kind: kindString, set: func(o *ContainerOptions, v any) { set(o, v.(string)) }}
}

func boolField(key string, set func(o *ContainerOptions, v bool)) optionField {
	return optionField{key: key, kind: kindBool, set: func(o *ContainerOptions, v any) { set(o, v.(bool)) }}
}

func listField(key string, set func(o *ContainerOptions, v []string)) optionField {
	return optionField{key: key, kind: kindList, set: func(o *ContainerOptions, v any) { set(o, v.([]string)) }}
}

// optionFields is the definition schema, ordered by key so that the first
// offending field reported is stable.
var optionFields = []optionField{
	listField("cap_add", func(o *ContainerOptions, v []string) { o.CapAdd = v }),
	listField("cap_drop", func(o *ContainerOptions, v []string) { o.CapDrop = v }),
	listField("devices", func(o *ContainerOptions, v []string) { o.Devices = v }),
	listField("dns", func(o *ContainerOptions, v []string) { o.DNS = v }),
	stringField("env_file", func(o *ContainerOptions, v string) { o.EnvFile = v }),
	listField("environment", func(o *ContainerOptions, v []string) { o.Environment = v }),
	stringField("group", func(o *ContainerOptions, v string) { o.Group = v }),
	stringField("image", func(o *ContainerOptions, v string) { o.Image = v }),
	listField("image_args", func(o *ContainerOptions, v []string) { o.ImageArgs = v }),
	stringField("image_build_path", func(o *ContainerOptions, v string) { o.ImageBuildPath = v }),
	boolField("image_build_squash", func(o *ContainerOptions, v bool) { o.ImageBuildSquash = v }),
	boolField("image_insecure", func(o *ContainerOptions, v bool) { o.ImageInsecure = v }),
	stringField("image_password", func(o *ContainerOptions, v string) { o.ImagePassword = v }),
	stringField("image_username", func(o *ContainerOptions, v string) { o.ImageUsername = v }),
	listField("mounts", func(o *ContainerOptions, v []string) { o.Mounts = v }),
	stringField("name", func(o *ContainerOptions, v string) { o.Name = v }),
	stringField("net", func(o *ContainerOptions, v string) { o.Net = v }),
	stringField("network", func(o *ContainerOptions, v string) { o.Network = v }),
	listField("ports", func(o *ContainerOptions, v []string) { o.Ports = v }),
	stringField("restart", func(o *ContainerOptions, v string) { o.Restart = v }),
	stringField("tag", func(o *ContainerOptions, v string) { o.Tag = v }),
	listField("tmpfs", func(o *ContainerOptions, v []string) { o.Tmpfs = v }),
}

// ValidateOptions type-checks a raw definition mapping (usually decoded YAML)
// and normalizes it into ContainerOptions. Unknown keys are ignored and the
// first offending field stops validation.
func ValidateOptions(raw map[string]any) (*ContainerOptions, error) {
	opts := DefaultContainerOptions()

	for _, f := range optionFields {
		value, ok := raw[f.key]
		if !ok || value == nil {
			continue
		}

		typed, err := checkKind(f, value)
		if err != nil {
			return nil, err
		}
		if typed == nil {
			continue
		}
		f.set(opts, typed)
	}

	if opts.Image == "" {
		return nil, fmt.Errorf("%w: 'image' not defined in container options", ErrMissingField)
	}
	if opts.Name == "" {
		return nil, fmt.Errorf("%w: 'name' not defined in container options", ErrMissingField)
	}

	if err := checkSemantics(opts); err != nil {
		return nil, err
	}

	return opts, nil
}

// checkKind returns the value converted to the field's Go type, or nil when
// the value normalizes to unset.
func checkKind(f optionField, value any) (any, error) {
	switch f.kind {
	case kindString:
		s, ok := asString(value)
		if !ok {
			return nil, typeError(f, value)
		}
		if s == "" {
			return nil, nil
		}
		return s, nil

	case kindBool:
		b, ok := value.(bool)
		if !ok {
			return nil, typeError(f, value)
		}
		return b, nil

	case kindList:
		var items []any
		switch v := value.(type) {
		case []any:
			items = v
		case []string:
			items = make([]any, len(v))
			for i, s := range v {
				items[i] = s
			}
		default:
			return nil, typeError(f, value)
		}

		list := make([]string, 0, len(items))
		for i, item := range items {
			s, ok := asString(item)
			if !ok {
				return nil, fmt.Errorf("%w: value at position '%d' in key '%s' has a type of '%s' when it should be 'string'",
					ErrListElement, i, f.key, typeName(item))
			}
			list = append(list, s)
		}
		return list, nil
	}

	return nil, fmt.Errorf("%w: unknown kind for key '%s'", ErrInvalidConfig, f.key)
}

func checkSemantics(opts *ContainerOptions) error {
	if err := validation.ValidateName(opts.Name); err != nil {
		return fmt.Errorf("%w: 'name': %v", ErrInvalidConfig, err)
	}

	if opts.Network != "" && opts.Net != "" {
		return ErrNetworkConflict
	}

	for _, m := range opts.Mounts {
		if _, err := ParseMount(m); err != nil {
			return err
		}
	}

	for _, p := range opts.Ports {
		if _, err := ParsePortMapping(p); err != nil {
			return err
		}
	}

	for _, t := range opts.Tmpfs {
		if path, _ := ParseTmpfs(t); path == "" {
			return fmt.Errorf("%w: tmpfs entry '%s' has no path", ErrInvalidConfig, t)
		}
	}

	return nil
}

func typeError(f optionField, value any) error {
	return fmt.Errorf("%w: '%s' is '%s' but needs to be '%s'", ErrFieldType, f.key, typeName(value), f.kind)
}

func asString(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case []byte:
		return string(s), true
	}
	return "", false
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case []byte:
		return "bytes"
	case bool:
		return "bool"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "int"
	case float32, float64:
		return "float"
	case []any, []string:
		return "list"
	case map[string]any, map[any]any:
		return "map"
	}
	return fmt.Sprintf("%T", v)
}
