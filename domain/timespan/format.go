package timespan

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Standard layouts accepted by Format.
const (
	// LayoutConstant renders [-][d.]hh:mm:ss[.fffffff] with trailing
	// fraction zeros trimmed. "t" and "T" are aliases.
	LayoutConstant = "c"

	// LayoutGeneralShort renders [-][d:]hh:mm:ss[.fff], trimmed.
	LayoutGeneralShort = "g"

	// LayoutGeneralLong renders [-]d:hh:mm:ss.fffffff.
	LayoutGeneralLong = "G"
)

var fractionRun = regexp.MustCompile(`[Ff]{1,7}`)

// Placeholders for escaped separators while tokens are substituted.
const (
	escapedColon = "\x01"
	escapedDot   = "\x02"
)

// customToken is a day/hour/minute/second token of a custom layout.
type customToken struct {
	token string
	width int
	value func(fields) uint64
}

func dayField(f fields) uint64    { return f.days }
func hourField(f fields) uint64   { return f.hours }
func minuteField(f fields) uint64 { return f.minutes }
func secondField(f fields) uint64 { return f.seconds }

// customTokens is ordered longest first so "dd" is consumed before "d".
var customTokens = []customToken{
	{"dddddddd", 8, dayField},
	{"ddddddd", 7, dayField},
	{"dddddd", 6, dayField},
	{"ddddd", 5, dayField},
	{"dddd", 4, dayField},
	{"ddd", 3, dayField},
	{"dd", 2, dayField},
	{"hh", 2, hourField},
	{"mm", 2, minuteField},
	{"ss", 2, secondField},
	{"d", 1, dayField},
	{"h", 1, hourField},
	{"m", 1, minuteField},
	{"s", 1, secondField},
}

// fields is the unsigned decomposition of a Timespan's magnitude.
type fields struct {
	negative bool
	days     uint64
	hours    uint64
	minutes  uint64
	seconds  uint64
	fraction uint64 // ticks below one second, 0..9999999
}

func (t Timespan) fields() fields {
	m := t.magnitude()
	return fields{
		negative: t.ticks < 0,
		days:     m / uint64(TicksPerDay),
		hours:    m % uint64(TicksPerDay) / uint64(TicksPerHour),
		minutes:  m % uint64(TicksPerHour) / uint64(TicksPerMinute),
		seconds:  m % uint64(TicksPerMinute) / uint64(TicksPerSecond),
		fraction: m % uint64(TicksPerSecond),
	}
}

func (f fields) sign() string {
	if f.negative {
		return "-"
	}
	return ""
}

func (f fields) fraction7() string {
	return fmt.Sprintf("%07d", f.fraction)
}

func (f fields) clock() string {
	return fmt.Sprintf("%02d:%02d:%02d", f.hours, f.minutes, f.seconds)
}

// Format renders t according to layout. An empty layout means "c".
//
// Besides the standard layouts "c", "t", "T", "g" and "G", a custom layout
// may combine these tokens:
//
//	d .. dddddddd  days, zero padded to the token width
//	h, hh          hours
//	m, mm          minutes
//	s, ss          seconds
//	f .. fffffff   fraction digits, always printed
//	F .. FFFFFFF   fraction digits, trailing zeros trimmed
//	\: and \.      literal separators
//
// Any other character is copied as is. A negative interval is prefixed with
// a minus sign. All fields are taken from the magnitude of t.
func (t Timespan) Format(layout string) string {
	f := t.fields()

	switch layout {
	case "", LayoutConstant, "t", "T":
		core := f.clock()
		if frac := strings.TrimRight(f.fraction7(), "0"); frac != "" {
			core += "." + frac
		}
		if f.days != 0 {
			return f.sign() + strconv.FormatUint(f.days, 10) + "." + core
		}
		return f.sign() + core

	case LayoutGeneralShort:
		frac := strings.TrimRight(f.fraction7(), "0")
		if len(frac) > 3 {
			frac = strings.TrimRight(frac[:3], "0")
		}
		core := f.clock()
		if frac != "" {
			core += "." + frac
		}
		if f.days != 0 {
			return f.sign() + strconv.FormatUint(f.days, 10) + ":" + core
		}
		return f.sign() + core

	case LayoutGeneralLong:
		return f.sign() + strconv.FormatUint(f.days, 10) + ":" + f.clock() + "." + f.fraction7()
	}

	return f.sign() + formatCustom(layout, f)
}

func formatCustom(layout string, f fields) string {
	out := strings.ReplaceAll(layout, `\:`, escapedColon)
	out = strings.ReplaceAll(out, `\.`, escapedDot)

	digits := f.fraction7()
	out = fractionRun.ReplaceAllStringFunc(out, func(run string) string {
		d := digits[:len(run)]
		if run[0] == 'F' {
			return strings.TrimRight(d, "0")
		}
		return d
	})

	for _, tok := range customTokens {
		out = strings.ReplaceAll(out, tok.token, fmt.Sprintf("%0*d", tok.width, tok.value(f)))
	}

	out = strings.ReplaceAll(out, escapedColon, ":")
	return strings.ReplaceAll(out, escapedDot, ".")
}
