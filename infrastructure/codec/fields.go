package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
)

// Fields flattens v into a map keyed by its JSON field names. Nested structs
// become nested maps. v must encode to a JSON object.
func Fields(v any) (map[string]any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("fields: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("fields: %w", err)
	}
	fields, ok := normalize(raw).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("fields: %T does not encode to an object", v)
	}
	return fields, nil
}

// Populate fills target, which must be a pointer, from a field map produced
// by Fields or a Codec.
func Populate(fields map[string]any, target any) error {
	data, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("populate: %w", err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("populate: %w", err)
	}
	return nil
}

// normalize rewrites decoded values into the small set of types every codec
// agrees on: map[string]any, []any, string, bool, int64, float64 and nil.
func normalize(v any) any {
	switch x := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, val := range x {
			out[k] = normalize(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(x))
		for k, val := range x {
			out[fmt.Sprint(k)] = normalize(val)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, val := range x {
			out[i] = normalize(val)
		}
		return out
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return i
		}
		if f, err := x.Float64(); err == nil {
			return f
		}
		return x.String()
	case int:
		return int64(x)
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case uint:
		return unsigned(uint64(x))
	case uint8:
		return int64(x)
	case uint16:
		return int64(x)
	case uint32:
		return int64(x)
	case uint64:
		return unsigned(x)
	case float32:
		return float64(x)
	default:
		return v
	}
}

func unsigned(u uint64) any {
	if u <= math.MaxInt64 {
		return int64(u)
	}
	return float64(u)
}

// dropNil removes nil map entries recursively. Used by formats with no null.
func dropNil(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		switch x := v.(type) {
		case nil:
			continue
		case map[string]any:
			out[k] = dropNil(x)
		case []any:
			items := make([]any, 0, len(x))
			for _, item := range x {
				if m, ok := item.(map[string]any); ok {
					items = append(items, dropNil(m))
					continue
				}
				if item != nil {
					items = append(items, item)
				}
			}
			out[k] = items
		default:
			out[k] = v
		}
	}
	return out
}
