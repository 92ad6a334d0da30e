package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
)

const dateLayout = "2006-01-02"

var ErrInvalidTimeSlot = errors.New("invalid timeslot")

// TimeSlot is a concrete date with a [start, end) time range.
type TimeSlot struct {
	Date  datatypes.Date
	Start datatypes.Time
	End   datatypes.Time
}

type timeSlotJSON struct {
	Date  string `json:"slot_date"`
	Start string `json:"start_time"`
	End   string `json:"end_time"`
}

func NewTimeSlot(date, start, end string) (TimeSlot, error) {
	d, err := ParseDate(date)
	if err != nil {
		return TimeSlot{}, err
	}
	s, err := ParseClock(start)
	if err != nil {
		return TimeSlot{}, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return TimeSlot{}, err
	}
	ts := TimeSlot{Date: d, Start: s, End: e}
	if !ts.Valid() {
		return TimeSlot{}, fmt.Errorf("%w: start must be before end", ErrInvalidTimeSlot)
	}
	return ts, nil
}

func (t TimeSlot) Valid() bool {
	return t.Start < t.End && !time.Time(t.Date).IsZero()
}

// Overlaps reports whether the half-open intervals intersect on the same date.
func (t TimeSlot) Overlaps(o TimeSlot) bool {
	return FormatDate(t.Date) == FormatDate(o.Date) && t.Start < o.End && t.End > o.Start
}

func (t TimeSlot) String() string {
	return fmt.Sprintf("%s %s-%s", FormatDate(t.Date), FormatClock(t.Start), FormatClock(t.End))
}

func (t TimeSlot) MarshalJSON() ([]byte, error) {
	return json.Marshal(timeSlotJSON{
		Date:  FormatDate(t.Date),
		Start: FormatClock(t.Start),
		End:   FormatClock(t.End),
	})
}

func (t *TimeSlot) UnmarshalJSON(b []byte) error {
	var raw timeSlotJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	ts, err := NewTimeSlot(raw.Date, raw.Start, raw.End)
	if err != nil {
		return err
	}
	*t = ts
	return nil
}

// TimeSlotDay is a weekly recurring [start, end) range; Day 0 is Monday.
type TimeSlotDay struct {
	Day   int
	Start datatypes.Time
	End   datatypes.Time
}

type timeSlotDayJSON struct {
	Day   *int   `json:"day"`
	Start string `json:"start_time"`
	End   string `json:"end_time"`
}

func NewTimeSlotDay(day int, start, end string) (TimeSlotDay, error) {
	s, err := ParseClock(start)
	if err != nil {
		return TimeSlotDay{}, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return TimeSlotDay{}, err
	}
	ts := TimeSlotDay{Day: day, Start: s, End: e}
	if !ts.Valid() {
		return TimeSlotDay{}, fmt.Errorf("%w: day must be 0-6 and start before end", ErrInvalidTimeSlot)
	}
	return ts, nil
}

func (t TimeSlotDay) Valid() bool {
	return t.Day >= 0 && t.Day <= 6 && t.Start < t.End
}

func (t TimeSlotDay) String() string {
	return fmt.Sprintf("day %d %s-%s", t.Day, FormatClock(t.Start), FormatClock(t.End))
}

func (t TimeSlotDay) MarshalJSON() ([]byte, error) {
	day := t.Day
	return json.Marshal(timeSlotDayJSON{Day: &day, Start: FormatClock(t.Start), End: FormatClock(t.End)})
}

func (t *TimeSlotDay) UnmarshalJSON(b []byte) error {
	var raw timeSlotDayJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw.Day == nil {
		return fmt.Errorf("%w: day is required", ErrInvalidTimeSlot)
	}
	ts, err := NewTimeSlotDay(*raw.Day, raw.Start, raw.End)
	if err != nil {
		return err
	}
	*t = ts
	return nil
}

func ParseDate(s string) (datatypes.Date, error) {
	d, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return datatypes.Date{}, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidTimeSlot)
	}
	return datatypes.Date(d.UTC()), nil
}

func FormatDate(d datatypes.Date) string {
	return time.Time(d).UTC().Format(dateLayout)
}

// ParseClock accepts HH:MM or HH:MM:SS.
func ParseClock(s string) (datatypes.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return datatypes.NewTime(t.Hour(), t.Minute(), t.Second(), 0), nil
		}
	}
	return 0, fmt.Errorf("%w: time must be HH:MM[:SS]", ErrInvalidTimeSlot)
}

func FormatClock(t datatypes.Time) string {
	d := time.Duration(t)
	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	s := int(d % time.Minute / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
