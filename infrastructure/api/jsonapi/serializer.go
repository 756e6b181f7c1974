package jsonapi

import (
	"strconv"

	"github.com/helixml/xact/domain/lap"
	"github.com/helixml/xact/domain/textbuilder"
	"github.com/helixml/xact/domain/timespan"
)

// Resource types.
const (
	TypeTimespan = "timespan"
	TypeText     = "text"
	TypeLap      = "lap"
	TypeReport   = "lap-report"
)

// TimespanAttributes represents a timespan in JSON:API format.
type TimespanAttributes struct {
	Ticks        int64   `json:"ticks"`
	Text         string  `json:"text"`
	Layout       string  `json:"layout"`
	Formatted    string  `json:"formatted"`
	Days         int64   `json:"days"`
	Hours        int64   `json:"hours"`
	Minutes      int64   `json:"minutes"`
	Seconds      int64   `json:"seconds"`
	Milliseconds int64   `json:"milliseconds"`
	Microseconds int64   `json:"microseconds"`
	Nanoseconds  int64   `json:"nanoseconds"`
	TotalSeconds float64 `json:"total_seconds"`
}

// TextAttributes represents a rendered text builder in JSON:API format.
type TextAttributes struct {
	Text   string   `json:"text"`
	Raw    string   `json:"raw"`
	Lines  []string `json:"lines"`
	Parts  []string `json:"parts"`
	Length int      `json:"length"`
}

// LapAttributes represents a lap in JSON:API format.
type LapAttributes struct {
	Label     string   `json:"label"`
	Span      string   `json:"span"`
	Ticks     int64    `json:"ticks"`
	CreatedAt DateTime `json:"created_at"`
}

// ReportAttributes represents a rendered lap report.
type ReportAttributes struct {
	Layout string `json:"layout"`
	Count  int    `json:"count"`
	Total  string `json:"total"`
	Text   string `json:"text"`
}

// TimespanResource serializes t, formatted with layout.
func TimespanResource(t timespan.Timespan, layout string) *Resource {
	if layout == "" {
		layout = timespan.LayoutConstant
	}
	return NewResource(TypeTimespan, "", TimespanAttributes{
		Ticks:        t.Ticks(),
		Text:         t.String(),
		Layout:       layout,
		Formatted:    t.Format(layout),
		Days:         t.Days(),
		Hours:        t.Hours(),
		Minutes:      t.Minutes(),
		Seconds:      t.Seconds(),
		Milliseconds: t.Milliseconds(),
		Microseconds: t.Microseconds(),
		Nanoseconds:  t.Nanoseconds(),
		TotalSeconds: t.TotalSeconds(),
	})
}

// TextResource serializes a text builder.
func TextResource(b *textbuilder.Builder) *Resource {
	return NewResource(TypeText, "", TextAttributes{
		Text:   b.String(),
		Raw:    b.Raw(),
		Lines:  b.Lines(),
		Parts:  b.Parts(),
		Length: b.Len(),
	})
}

// LapResource serializes a lap, formatting its span with layout.
func LapResource(l lap.Lap, layout string) *Resource {
	return NewResource(TypeLap, strconv.FormatInt(l.ID(), 10), LapAttributes{
		Label:     l.Label(),
		Span:      l.Span().Format(layout),
		Ticks:     l.Span().Ticks(),
		CreatedAt: DateTime(l.CreatedAt()),
	})
}

// LapResources serializes laps.
func LapResources(laps []lap.Lap, layout string) []*Resource {
	out := make([]*Resource, 0, len(laps))
	for _, l := range laps {
		out = append(out, LapResource(l, layout))
	}
	return out
}
