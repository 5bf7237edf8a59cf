package binder

import "fmt"

// Weekday is the schedule day of a show. Unknown is a valid value for shows
// whose schedule the source does not publish.
type Weekday int

const (
	WeekdayUnknown Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = map[Weekday]string{
	WeekdayUnknown: "Unknown",
	Monday:         "Mon",
	Tuesday:        "Tue",
	Wednesday:      "Wed",
	Thursday:       "Thu",
	Friday:         "Fri",
	Saturday:       "Sat",
	Sunday:         "Sun",
}

func (w Weekday) String() string {
	if name, ok := weekdayNames[w]; ok {
		return name
	}
	return fmt.Sprintf("Weekday(%d)", int(w))
}

// Validate rejects values outside the seven-day+Unknown enum. An out-of-range
// weekday indicates upstream scraper corruption and is the one condition in
// this subsystem that surfaces as an error.
func (w Weekday) Validate() error {
	if w < WeekdayUnknown || w > Sunday {
		return fmt.Errorf("binder: weekday %d outside Mon..Sun/Unknown", int(w))
	}
	return nil
}

// Status describes whether a canonical show is still airing.
type Status string

const (
	StatusUpdating Status = "updating"
	StatusEnded    Status = "ended"
)

// PerSourceShow is one site's record of a show, keyed by that site's own
// keyword. CanonicalID is zero while the record is unbound; the binder sets
// it exactly once, and a manual override may later force it.
type PerSourceShow struct {
	Name           string
	Keyword        string
	Cover          string
	UpdateWeekday  Weekday
	SubtitleGroups []string
	SourceID       string
	CanonicalID    int64
}

// NewPerSourceShow validates the weekday enum at construction time.
func NewPerSourceShow(name, keyword, sourceID string, weekday Weekday) (*PerSourceShow, error) {
	if err := weekday.Validate(); err != nil {
		return nil, err
	}
	return &PerSourceShow{
		Name:          name,
		Keyword:       keyword,
		SourceID:      sourceID,
		UpdateWeekday: weekday,
	}, nil
}

// Bound reports whether the record already points at a canonical show.
func (s *PerSourceShow) Bound() bool {
	return s != nil && s.CanonicalID != 0
}

// CanonicalShow is the single authoritative identity a subscription tracks,
// created from the schedule feed. HasDataSource is derived: it is recomputed
// on every binder pass from whether any per-source show points at it.
type CanonicalShow struct {
	ID            int64
	Name          string
	UpdateWeekday Weekday
	Status        Status
	HasDataSource bool
}

// NewCanonicalShow validates the weekday enum at construction time.
func NewCanonicalShow(id int64, name string, weekday Weekday, status Status) (*CanonicalShow, error) {
	if err := weekday.Validate(); err != nil {
		return nil, err
	}
	return &CanonicalShow{
		ID:            id,
		Name:          name,
		UpdateWeekday: weekday,
		Status:        status,
	}, nil
}
