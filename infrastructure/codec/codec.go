// Package codec serializes flat field maps to JSON, YAML, TOML and CBOR.
//
// Values are first reduced to a map of their fields with Fields, encoded by a
// Codec, and later rebuilt with Populate. Numbers are normalised so integers
// always come back as int64 and floating point values as float64, regardless
// of the format they travelled through.
package codec

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnknownFormat is returned when no codec is registered for a format name.
var ErrUnknownFormat = errors.New("unknown format")

// Codec encodes and decodes field maps.
type Codec interface {
	Name() string
	Encode(fields map[string]any) ([]byte, error)
	Decode(data []byte) (map[string]any, error)
}

var codecs = map[string]Codec{
	"json": JSON{Indent: "  "},
	"yaml": YAML{},
	"toml": TOML{},
	"cbor": CBOR{},
}

// ForFormat returns the codec registered for name. Names are case
// insensitive and "yml" is accepted for YAML.
func ForFormat(name string) (Codec, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "yml" {
		key = "yaml"
	}
	c, ok := codecs[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
	return c, nil
}

// Formats lists the registered format names in sorted order.
func Formats() []string {
	names := make([]string, 0, len(codecs))
	for name := range codecs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Marshal flattens v and encodes it in the named format.
func Marshal(format string, v any) ([]byte, error) {
	c, err := ForFormat(format)
	if err != nil {
		return nil, err
	}
	fields, err := Fields(v)
	if err != nil {
		return nil, err
	}
	return c.Encode(fields)
}

// Unmarshal decodes data in the named format and populates target.
func Unmarshal(format string, data []byte, target any) error {
	c, err := ForFormat(format)
	if err != nil {
		return err
	}
	fields, err := c.Decode(data)
	if err != nil {
		return err
	}
	return Populate(fields, target)
}
