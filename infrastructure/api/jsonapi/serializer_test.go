package jsonapi

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helixml/xact/domain/lap"
	"github.com/helixml/xact/domain/textbuilder"
	"github.com/helixml/xact/domain/timespan"
)

func TestTimespanResource(t *testing.T) {
	span := timespan.MustParse("1.02:03:04.5")

	res := TimespanResource(span, "")
	assert.Equal(t, TypeTimespan, res.Type)
	assert.Empty(t, res.ID)

	attrs, ok := res.Attributes.(TimespanAttributes)
	require.True(t, ok)
	assert.Equal(t, int64(937845000000), attrs.Ticks)
	assert.Equal(t, "1.02:03:04.5", attrs.Text)
	assert.Equal(t, timespan.LayoutConstant, attrs.Layout)
	assert.Equal(t, attrs.Text, attrs.Formatted)
	assert.Equal(t, int64(1), attrs.Days)
	assert.Equal(t, int64(2), attrs.Hours)
	assert.Equal(t, int64(3), attrs.Minutes)
	assert.Equal(t, int64(4), attrs.Seconds)
	assert.Equal(t, int64(500), attrs.Milliseconds)
	assert.InDelta(t, 93784.5, attrs.TotalSeconds, 1e-9)
}

func TestTextResource(t *testing.T) {
	b := textbuilder.New("a").Append("b")

	attrs, ok := TextResource(b).Attributes.(TextAttributes)
	require.True(t, ok)
	assert.Equal(t, "a\nb", attrs.Raw)
	assert.Equal(t, "a\nb", attrs.Text)
	assert.Equal(t, []string{"a", "b"}, attrs.Lines)
	assert.Equal(t, []string{"a\n", "b"}, attrs.Parts)
	assert.Equal(t, 3, attrs.Length)
}

func TestLapResource(t *testing.T) {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	l := lap.Reconstruct(42, "tempo", timespan.FromTicks(timespan.TicksPerMinute), created)

	res := LapResource(l, timespan.LayoutConstant)
	assert.Equal(t, TypeLap, res.Type)
	assert.Equal(t, "42", res.ID)

	data, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "lap",
		"id": "42",
		"attributes": {
			"label": "tempo",
			"span": "00:01:00",
			"ticks": 600000000,
			"created_at": "2026-03-01T12:00:00Z"
		}
	}`, string(data))
}

func TestNewListResponse_NilIsEmptyArray(t *testing.T) {
	data, err := json.Marshal(NewListResponse(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"data": []}`, string(data))

	data, err = json.Marshal(NewListResponse(LapResources(nil, "")))
	require.NoError(t, err)
	assert.JSONEq(t, `{"data": []}`, string(data))
}

func TestDateTime_RoundTrip(t *testing.T) {
	zero, err := json.Marshal(DateTime{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(zero))

	var dt DateTime
	require.NoError(t, json.Unmarshal([]byte(`"2026-03-01T12:00:00.5Z"`), &dt))
	assert.Equal(t, 500*time.Millisecond, time.Duration(dt.Time().Nanosecond()))

	require.NoError(t, json.Unmarshal([]byte(`null`), &dt))
	assert.True(t, dt.Time().IsZero())

	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &dt))
}
