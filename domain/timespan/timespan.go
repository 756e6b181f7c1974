// Package timespan provides a signed, fixed-point time interval measured in
// 100 nanosecond ticks.
//
// A Timespan is an immutable value. Arithmetic never wraps: every operation
// whose exact result falls outside the 64-bit tick range returns ErrOverflow.
// Text input and output follow the familiar [-][d.]hh:mm:ss[.fffffff]
// convention, see Parse and Timespan.Format.
package timespan

import (
	"cmp"
	"fmt"
	"math"
	"math/big"
	"time"
)

// Tick conversion factors.
const (
	NanosecondsPerTick = 100

	TicksPerMicrosecond int64 = 10
	TicksPerMillisecond int64 = 10_000
	TicksPerSecond      int64 = 10_000_000
	TicksPerMinute      int64 = 600_000_000
	TicksPerHour        int64 = 36_000_000_000
	TicksPerDay         int64 = 864_000_000_000
)

// Microsecond multipliers used when building a Timespan from components.
const (
	MicrosecondsPerMillisecond int64 = 1_000
	MicrosecondsPerSecond      int64 = 1_000_000
	MicrosecondsPerMinute      int64 = 60_000_000
	MicrosecondsPerHour        int64 = 3_600_000_000
	MicrosecondsPerDay         int64 = 86_400_000_000
)

// Representable ranges.
const (
	MinTicks int64 = math.MinInt64
	MaxTicks int64 = math.MaxInt64

	MinMicroseconds int64 = -922_337_203_685_477_580
	MaxMicroseconds int64 = 922_337_203_685_477_580

	MinMilliseconds int64 = -922_337_203_685_477
	MaxMilliseconds int64 = 922_337_203_685_477
)

// two63 is 2^63 as a float64, the first float above MaxTicks.
const two63 = 9223372036854775808.0

// Sentinel values.
var (
	Zero     = Timespan{}
	MinValue = Timespan{ticks: MinTicks}
	MaxValue = Timespan{ticks: MaxTicks}
)

// Timespan is a signed interval of 100ns ticks.
// The zero value is a zero-length interval.
type Timespan struct {
	ticks int64
}

// Components describes a Timespan by calendar-like parts. Parts may be
// negative or exceed their natural range; they are summed as given.
type Components struct {
	Days         int64
	Hours        int64
	Minutes      int64
	Seconds      int64
	Milliseconds int64
	Microseconds int64
}

// FromTicks creates a Timespan holding exactly ticks.
func FromTicks(ticks int64) Timespan {
	return Timespan{ticks: ticks}
}

// FromComponents sums the components in microseconds and converts the total
// to ticks. The sum is computed exactly, so intermediate products never wrap;
// a total outside ±MaxMicroseconds returns ErrOverflow.
func FromComponents(c Components) (Timespan, error) {
	terms := [...]struct {
		value int64
		scale int64
	}{
		{c.Days, MicrosecondsPerDay},
		{c.Hours, MicrosecondsPerHour},
		{c.Minutes, MicrosecondsPerMinute},
		{c.Seconds, MicrosecondsPerSecond},
		{c.Milliseconds, MicrosecondsPerMillisecond},
		{c.Microseconds, 1},
	}

	total := new(big.Int)
	product := new(big.Int)
	for _, term := range terms {
		product.Mul(big.NewInt(term.value), big.NewInt(term.scale))
		total.Add(total, product)
	}

	if total.Cmp(big.NewInt(MaxMicroseconds)) > 0 || total.Cmp(big.NewInt(MinMicroseconds)) < 0 {
		return Zero, fmt.Errorf("%w: %s microseconds", ErrOverflow, total.String())
	}
	return Timespan{ticks: total.Int64() * TicksPerMicrosecond}, nil
}

// FromDuration converts a time.Duration, rounding sub-tick nanoseconds half
// away from zero like the other unit constructors. Every time.Duration fits
// in the tick range.
func FromDuration(d time.Duration) Timespan {
	ticks, rem := int64(d/NanosecondsPerTick), int64(d%NanosecondsPerTick)
	switch {
	case 2*rem >= NanosecondsPerTick:
		ticks++
	case 2*rem <= -NanosecondsPerTick:
		ticks--
	}
	return Timespan{ticks: ticks}
}

// FromDays returns a Timespan of the given number of days.
func FromDays(days float64) (Timespan, error) {
	return interval(days, float64(TicksPerDay))
}

// FromHours returns a Timespan of the given number of hours.
func FromHours(hours float64) (Timespan, error) {
	return interval(hours, float64(TicksPerHour))
}

// FromMinutes returns a Timespan of the given number of minutes.
func FromMinutes(minutes float64) (Timespan, error) {
	return interval(minutes, float64(TicksPerMinute))
}

// FromSeconds returns a Timespan of the given number of seconds.
func FromSeconds(seconds float64) (Timespan, error) {
	return interval(seconds, float64(TicksPerSecond))
}

// FromMilliseconds returns a Timespan of the given number of milliseconds.
func FromMilliseconds(milliseconds float64) (Timespan, error) {
	return interval(milliseconds, float64(TicksPerMillisecond))
}

// FromMicroseconds returns a Timespan of the given number of microseconds.
func FromMicroseconds(microseconds float64) (Timespan, error) {
	return interval(microseconds, float64(TicksPerMicrosecond))
}

// FromNanoseconds returns a Timespan of the given number of nanoseconds.
func FromNanoseconds(nanoseconds float64) (Timespan, error) {
	return interval(nanoseconds/NanosecondsPerTick, 1)
}

func interval(value, scale float64) (Timespan, error) {
	if math.IsNaN(value) {
		return Zero, fmt.Errorf("%w: NaN value", ErrInvalidArgument)
	}
	return fromFloatTicks(roundHalfAwayFromZero(value * scale))
}

// fromFloatTicks converts an integral float tick count, rejecting NaN and
// anything outside [MinTicks, MaxTicks].
func fromFloatTicks(t float64) (Timespan, error) {
	if math.IsNaN(t) {
		return Zero, fmt.Errorf("%w: NaN ticks", ErrInvalidArgument)
	}
	if t >= two63 || t < -two63 {
		return Zero, fmt.Errorf("%w: %g ticks", ErrOverflow, t)
	}
	return Timespan{ticks: int64(t)}, nil
}

func roundHalfAwayFromZero(t float64) float64 {
	if t >= 0 {
		return math.Trunc(t + 0.5)
	}
	return math.Trunc(t - 0.5)
}

// Ticks returns the raw tick count.
func (t Timespan) Ticks() int64 { return t.ticks }

// Sign returns -1, 0 or +1.
func (t Timespan) Sign() int { return cmp.Compare(t.ticks, 0) }

// magnitude returns |ticks| without overflowing on MinTicks.
func (t Timespan) magnitude() uint64 {
	if t.ticks < 0 {
		return uint64(-(t.ticks + 1)) + 1
	}
	return uint64(t.ticks)
}

// place extracts the magnitude's digit for unit below the next larger unit,
// signed like the Timespan.
func (t Timespan) place(next, unit int64) int64 {
	v := int64(t.magnitude() % uint64(next) / uint64(unit))
	return v * int64(t.Sign())
}

// Days returns the floor of ticks divided by TicksPerDay. Unlike the finer
// components it is not magnitude based: one negative tick is day -1.
func (t Timespan) Days() int64 {
	d := t.ticks / TicksPerDay
	if t.ticks%TicksPerDay != 0 && t.ticks < 0 {
		d--
	}
	return d
}

// Hours returns the hours component, in [-23, 23].
func (t Timespan) Hours() int64 { return t.place(TicksPerDay, TicksPerHour) }

// Minutes returns the minutes component, in [-59, 59].
func (t Timespan) Minutes() int64 { return t.place(TicksPerHour, TicksPerMinute) }

// Seconds returns the seconds component, in [-59, 59].
func (t Timespan) Seconds() int64 { return t.place(TicksPerMinute, TicksPerSecond) }

// Milliseconds returns the milliseconds component, in [-999, 999].
func (t Timespan) Milliseconds() int64 { return t.place(TicksPerSecond, TicksPerMillisecond) }

// Microseconds returns the microseconds component, in [-999, 999].
func (t Timespan) Microseconds() int64 {
	return t.place(TicksPerMillisecond, TicksPerMicrosecond)
}

// Nanoseconds returns the nanoseconds component, a multiple of 100 in [-900, 900].
func (t Timespan) Nanoseconds() int64 {
	return t.place(TicksPerMicrosecond, 1) * NanosecondsPerTick
}

// TotalDays returns the interval expressed in whole and fractional days.
func (t Timespan) TotalDays() float64 { return float64(t.ticks) / float64(TicksPerDay) }

// TotalHours returns the interval expressed in whole and fractional hours.
func (t Timespan) TotalHours() float64 { return float64(t.ticks) / float64(TicksPerHour) }

// TotalMinutes returns the interval expressed in whole and fractional minutes.
func (t Timespan) TotalMinutes() float64 { return float64(t.ticks) / float64(TicksPerMinute) }

// TotalSeconds returns the interval expressed in whole and fractional seconds.
func (t Timespan) TotalSeconds() float64 { return float64(t.ticks) / float64(TicksPerSecond) }

// TotalMilliseconds returns the interval in milliseconds, saturated to
// [MinMilliseconds, MaxMilliseconds].
func (t Timespan) TotalMilliseconds() float64 {
	ms := float64(t.ticks) / float64(TicksPerMillisecond)
	switch {
	case ms > float64(MaxMilliseconds):
		return float64(MaxMilliseconds)
	case ms < float64(MinMilliseconds):
		return float64(MinMilliseconds)
	default:
		return ms
	}
}

// TotalMicroseconds returns the interval expressed in microseconds.
func (t Timespan) TotalMicroseconds() float64 {
	return float64(t.ticks) / float64(TicksPerMicrosecond)
}

// TotalNanoseconds returns the interval expressed in nanoseconds.
func (t Timespan) TotalNanoseconds() float64 {
	return float64(t.ticks) * NanosecondsPerTick
}

// ToDuration converts to a time.Duration. Intervals beyond roughly ±292
// years do not fit and return ErrOverflow.
func (t Timespan) ToDuration() (time.Duration, error) {
	if t.ticks > math.MaxInt64/NanosecondsPerTick || t.ticks < math.MinInt64/NanosecondsPerTick {
		return 0, fmt.Errorf("%w: %d ticks exceed time.Duration", ErrOverflow, t.ticks)
	}
	return time.Duration(t.ticks * NanosecondsPerTick), nil
}

// Negate returns -t. MinValue has no positive counterpart.
func (t Timespan) Negate() (Timespan, error) {
	if t.ticks == MinTicks {
		return Zero, fmt.Errorf("%w: negate minimum value", ErrOverflow)
	}
	return Timespan{ticks: -t.ticks}, nil
}

// Abs returns |t|. MinValue has no positive counterpart.
func (t Timespan) Abs() (Timespan, error) {
	if t.ticks >= 0 {
		return t, nil
	}
	return t.Negate()
}

// Add returns t + o.
func (t Timespan) Add(o Timespan) (Timespan, error) {
	sum := t.ticks + o.ticks
	if (o.ticks > 0 && sum < t.ticks) || (o.ticks < 0 && sum > t.ticks) {
		return Zero, fmt.Errorf("%w: %d + %d ticks", ErrOverflow, t.ticks, o.ticks)
	}
	return Timespan{ticks: sum}, nil
}

// Sub returns t - o.
func (t Timespan) Sub(o Timespan) (Timespan, error) {
	diff := t.ticks - o.ticks
	if (o.ticks < 0 && diff < t.ticks) || (o.ticks > 0 && diff > t.ticks) {
		return Zero, fmt.Errorf("%w: %d - %d ticks", ErrOverflow, t.ticks, o.ticks)
	}
	return Timespan{ticks: diff}, nil
}

// Mul scales t by f, rounding the scaled tick value half away from zero.
func (t Timespan) Mul(f float64) (Timespan, error) {
	if math.IsNaN(f) {
		return Zero, fmt.Errorf("%w: NaN factor", ErrInvalidArgument)
	}
	return fromFloatTicks(roundHalfAwayFromZero(float64(t.ticks) * f))
}

// Div divides t by d, rounding the scaled tick value half away from zero.
func (t Timespan) Div(d float64) (Timespan, error) {
	if math.IsNaN(d) {
		return Zero, fmt.Errorf("%w: NaN divisor", ErrInvalidArgument)
	}
	if d == 0 {
		return Zero, ErrDivideByZero
	}
	return fromFloatTicks(roundHalfAwayFromZero(float64(t.ticks) / d))
}

// Equal reports whether both intervals hold the same tick count.
func (t Timespan) Equal(o Timespan) bool { return t.ticks == o.ticks }

// Compare returns -1, 0 or +1 ordering t against o by ticks.
func (t Timespan) Compare(o Timespan) int { return cmp.Compare(t.ticks, o.ticks) }

// Less reports whether t is shorter than o.
func (t Timespan) Less(o Timespan) bool { return t.ticks < o.ticks }

// Hash returns a hash code derived from the tick count. Equal values hash equally.
func (t Timespan) Hash() uint64 { return uint64(t.ticks) }

// IsZero reports whether t is a zero-length interval.
func (t Timespan) IsZero() bool { return t.ticks == 0 }

// String formats t with the constant ("c") layout.
func (t Timespan) String() string { return t.Format(LayoutConstant) }
