package timespan

import (
	"database/sql/driver"
	"fmt"
	"strconv"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

// MarshalText implements encoding.TextMarshaler using the "c" layout.
// Text keeps microsecond precision only, see Parse.
func (t Timespan) MarshalText() ([]byte, error) {
	return []byte(t.Format(LayoutConstant)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Timespan) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (t Timespan) MarshalYAML() (any, error) {
	return t.Format(LayoutConstant), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Integer scalars are read as
// raw ticks, anything else is parsed as text.
func (t *Timespan) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: yaml node kind %d", ErrFormat, value.Kind)
	}
	if value.ShortTag() == "!!int" {
		ticks, err := strconv.ParseInt(value.Value, 0, 64)
		if err != nil {
			return fmt.Errorf("%w: ticks %q", ErrOverflow, value.Value)
		}
		*t = FromTicks(ticks)
		return nil
	}
	return t.UnmarshalText([]byte(value.Value))
}

// MarshalCBOR implements cbor.Marshaler. CBOR carries the raw tick count,
// so the round trip is lossless.
func (t Timespan) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(t.ticks)
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (t *Timespan) UnmarshalCBOR(data []byte) error {
	var ticks int64
	if err := cbor.Unmarshal(data, &ticks); err != nil {
		return fmt.Errorf("decode timespan ticks: %w", err)
	}
	*t = FromTicks(ticks)
	return nil
}

// Value implements driver.Valuer, storing the tick count.
func (t Timespan) Value() (driver.Value, error) {
	return t.ticks, nil
}

// Scan implements sql.Scanner for integer tick columns. Text columns are
// accepted as either an integer tick count or a formatted timespan.
func (t *Timespan) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*t = Zero
	case int64:
		*t = FromTicks(v)
	case []byte:
		return t.scanText(string(v))
	case string:
		return t.scanText(v)
	default:
		return fmt.Errorf("%w: cannot scan %T into Timespan", ErrInvalidArgument, src)
	}
	return nil
}

func (t *Timespan) scanText(s string) error {
	if ticks, err := strconv.ParseInt(s, 10, 64); err == nil {
		*t = FromTicks(ticks)
		return nil
	}
	return t.UnmarshalText([]byte(s))
}

// GormDataType tells gorm to store a Timespan in an integer column.
func (Timespan) GormDataType() string {
	return "bigint"
}
