package day

import (
	"encoding/json"
	"fmt"
	"time"
)

const Layout = "2006-01-02"

// Day is a local calendar day. The embedded instant is always midnight in
// the local zone; nothing below day granularity is ever set, so the
// inherited Before/After/Equal comparisons order days correctly.
type Day struct {
	time.Time
}

func New(year int, month time.Month, dom int) Day {
	return Day{time.Date(year, month, dom, 0, 0, 0, 0, time.Local)}
}

// Of truncates an instant to its local calendar day.
func Of(t time.Time) Day {
	local := t.Local()
	return New(local.Year(), local.Month(), local.Day())
}

func Parse(value string) (Day, error) {
	t, err := time.ParseInLocation(Layout, value, time.Local)
	if err != nil {
		return Day{}, fmt.Errorf("parse day %q: %w", value, err)
	}
	return Day{t}, nil
}

func (d Day) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(Layout)
}

func (d Day) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Day) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == "" {
		*d = Day{}
		return nil
	}
	parsed, err := Parse(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
