package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/fxamacker/cbor/v2"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error

	encMode, err = cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
		Time:          cbor.TimeRFC3339Nano,
	}.EncMode()
	if err != nil {
		panic("failed to create CBOR encoder: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		DupMapKey:      cbor.DupMapKeyQuiet,
		IndefLength:    cbor.IndefLengthAllowed,
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("failed to create CBOR decoder: " + err.Error())
	}
}

// JSON encodes field maps as JSON. A non-empty Indent pretty prints.
type JSON struct {
	Indent string
}

// Name returns "json".
func (JSON) Name() string { return "json" }

// Encode encodes fields as a JSON object.
func (c JSON) Encode(fields map[string]any) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if c.Indent != "" {
		data, err = json.MarshalIndent(fields, "", c.Indent)
	} else {
		data, err = json.Marshal(fields)
	}
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	return data, nil
}

// Decode decodes a JSON object.
func (JSON) Decode(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return asFields(normalize(fields))
}

// YAML encodes field maps as a YAML mapping.
type YAML struct{}

// Name returns "yaml".
func (YAML) Name() string { return "yaml" }

// Encode encodes fields as a YAML document.
func (YAML) Encode(fields map[string]any) ([]byte, error) {
	data, err := yaml.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	return data, nil
}

// Decode decodes a YAML mapping.
func (YAML) Decode(data []byte) (map[string]any, error) {
	var fields map[string]any
	if err := yaml.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return asFields(normalize(fields))
}

// TOML encodes field maps as a TOML document. TOML has no null, so nil
// fields are omitted.
type TOML struct{}

// Name returns "toml".
func (TOML) Name() string { return "toml" }

// Encode encodes fields as a TOML document.
func (TOML) Encode(fields map[string]any) ([]byte, error) {
	data, err := toml.Marshal(dropNil(fields))
	if err != nil {
		return nil, fmt.Errorf("encode toml: %w", err)
	}
	return data, nil
}

// Decode decodes a TOML document.
func (TOML) Decode(data []byte) (map[string]any, error) {
	var fields map[string]any
	if err := toml.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("decode toml: %w", err)
	}
	return asFields(normalize(fields))
}

// CBOR encodes field maps as canonical CBOR.
type CBOR struct{}

// Name returns "cbor".
func (CBOR) Name() string { return "cbor" }

// Encode encodes fields as a canonical CBOR map.
func (CBOR) Encode(fields map[string]any) ([]byte, error) {
	data, err := encMode.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("encode cbor: %w", err)
	}
	return data, nil
}

// Decode decodes a CBOR map.
func (CBOR) Decode(data []byte) (map[string]any, error) {
	var fields map[string]any
	if err := decMode.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("decode cbor: %w", err)
	}
	return asFields(normalize(fields))
}

func asFields(v any) (map[string]any, error) {
	if v == nil {
		return map[string]any{}, nil
	}
	fields, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("decoded %T, want a mapping", v)
	}
	return fields, nil
}
