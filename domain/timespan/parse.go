package timespan

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// grammar matches an unsigned [d.]h:m:s[.f] timespan.
var grammar = regexp.MustCompile(`^(?:(\d+)\.)?(\d{1,2}):(\d{1,2}):(\d{1,2})(?:\.(\d{1,7}))?$`)

const maxParsedMicroseconds = 999_999

// Parse reads text of the form [ws][-|+][ws][d.]h:m:s[.fffffff][ws].
//
// Hours, minutes and seconds take one or two digits each and are not range
// checked; they are summed like FromComponents. The fraction keeps
// microsecond precision: the seventh digit only rounds the sixth up by one
// and the result never exceeds 999999 microseconds.
//
// Malformed text returns an error wrapping ErrFormat. Well-formed text whose
// total does not fit returns an error wrapping ErrOverflow.
func Parse(text string) (Timespan, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return Zero, fmt.Errorf("%w: empty input", ErrFormat)
	}

	negative := s[0] == '-'
	if s[0] == '-' || s[0] == '+' {
		s = strings.TrimSpace(s[1:])
	}

	m := grammar.FindStringSubmatch(s)
	if m == nil {
		return Zero, fmt.Errorf("%w: %q", ErrFormat, text)
	}

	var days int64
	if m[1] != "" {
		d, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return Zero, fmt.Errorf("%w: days %q", ErrOverflow, m[1])
		}
		days = d
	}

	// One or two ASCII digits always parse.
	hours, _ := strconv.ParseInt(m[2], 10, 64)
	minutes, _ := strconv.ParseInt(m[3], 10, 64)
	seconds, _ := strconv.ParseInt(m[4], 10, 64)

	ts, err := FromComponents(Components{
		Days:         days,
		Hours:        hours,
		Minutes:      minutes,
		Seconds:      seconds,
		Microseconds: parseFraction(m[5]),
	})
	if err != nil {
		return Zero, err
	}

	// FromComponents caps the magnitude below MaxTicks, so this cannot wrap.
	if negative {
		ts.ticks = -ts.ticks
	}
	return ts, nil
}

// parseFraction converts up to seven fraction digits to microseconds.
func parseFraction(f string) int64 {
	if f == "" {
		return 0
	}
	f = (f + "0000000")[:7]
	us, _ := strconv.ParseInt(f[:6], 10, 64)
	if f[6] >= '5' {
		us++
	}
	return min(us, maxParsedMicroseconds)
}

// TryParse is Parse without the format error: malformed text reports
// ok == false and a nil error. Any other failure, such as ErrOverflow, is
// still returned.
func TryParse(text string) (ts Timespan, ok bool, err error) {
	ts, err = Parse(text)
	switch {
	case err == nil:
		return ts, true, nil
	case errors.Is(err, ErrFormat):
		return Zero, false, nil
	default:
		return Zero, false, err
	}
}

// MustParse is like Parse but panics on error. Intended for constants.
func MustParse(text string) Timespan {
	ts, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return ts
}
