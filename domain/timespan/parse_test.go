package timespan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		text  string
		ticks int64
	}{
		{"00:00:00", 0},
		{"0:0:1", 10_000_000},
		{"+00:00:01", 10_000_000},
		{"01.12:23:34.5678901", 1_310_145_678_900},
		{" -1.02:03:04.5 ", -937_845_000_000},
		{"- 00:00:01", -10_000_000},
		{"0:0:0.0000005", 10},
		{"0:0:0.0000004", 0},
		{"0:0:0.9999995", 9_999_990},
		{"0:0:0.1", 1_000_000},
		{"99:99:99", 99*TicksPerHour + 99*TicksPerMinute + 99*TicksPerSecond},
		{"10675199.02:48:05.477580", 9_223_372_036_854_775_800},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			ts, err := Parse(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.ticks, ts.Ticks())
		})
	}
}

func TestParse_Components(t *testing.T) {
	ts, err := Parse("01.12:23:34.5678901")
	require.NoError(t, err)

	assert.Equal(t, int64(1), ts.Days())
	assert.Equal(t, int64(12), ts.Hours())
	assert.Equal(t, int64(23), ts.Minutes())
	assert.Equal(t, int64(34), ts.Seconds())
	assert.Equal(t, int64(567), ts.Milliseconds())
	assert.Equal(t, int64(890), ts.Microseconds())
}

func TestParse_FormatErrors(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"abc",
		"1:2",
		"1:2:3:4",
		"123:00:00",
		"1.2.3:4:5",
		"--1:0:0",
		"1:2:3.",
		"1:2:3.12345678",
		"1.:2:3",
		"1:2:3 x",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in)
			assert.ErrorIs(t, err, ErrFormat)
			assert.NotErrorIs(t, err, ErrOverflow)
		})
	}
}

func TestParse_Overflow(t *testing.T) {
	inputs := []string{
		"10675200.00:00:00",
		"-10675200.00:00:00",
		"99999999999999999999.00:00:00",
		"10675199.02:48:05.4775807",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in)
			assert.ErrorIs(t, err, ErrOverflow)
		})
	}
}

func TestTryParse(t *testing.T) {
	ts, ok, err := TryParse("1.00:00:00")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, TicksPerDay, ts.Ticks())

	ts, ok, err = TryParse("not a timespan")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, Zero, ts)

	_, ok, err = TryParse("10675200.00:00:00")
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestTryParse_MaxValueText(t *testing.T) {
	// The seventh fraction digit rounds the microseconds up, past the limit.
	_, ok, err := TryParse(MaxValue.String())
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestMustParse(t *testing.T) {
	assert.Equal(t, TicksPerHour, MustParse("01:00:00").Ticks())
	assert.Panics(t, func() { MustParse("nope") })
}
