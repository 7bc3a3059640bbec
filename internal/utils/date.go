package util

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// DateOnly is a calendar date without a time component, stored as a
// Postgres DATE column and serialized as "2006-01-02". Streak and weekly
// window bookkeeping compares dates, never instants.
type DateOnly struct {
	time.Time
}

const dateLayout = "2006-01-02"

func NewDateOnly(t time.Time) DateOnly {
	y, m, d := t.UTC().Date()
	return DateOnly{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func Today() DateOnly {
	return NewDateOnly(time.Now())
}

func ToDatePtr(d *DateOnly) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

// StartOfWeek returns the Monday of the week containing d.
func (d DateOnly) StartOfWeek() DateOnly {
	wd := int(d.Weekday())
	if wd == 0 {
		wd = 7
	}
	return DateOnly{d.AddDate(0, 0, -(wd - 1))}
}

func (d DateOnly) Equal(other DateOnly) bool {
	return d.Time.Equal(other.Time)
}

func (d DateOnly) String() string {
	return d.Format(dateLayout)
}

func (d *DateOnly) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d DateOnly) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d DateOnly) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Time, nil
}

func (d *DateOnly) Scan(value interface{}) error {
	if value == nil {
		d.Time = time.Time{}
		return nil
	}

	switch v := value.(type) {
	case time.Time:
		*d = NewDateOnly(v)
		return nil
	case []byte:
		parsed, err := time.ParseInLocation(dateLayout, string(v), time.UTC)
		if err != nil {
			return err
		}
		d.Time = parsed
		return nil
	case string:
		parsed, err := time.ParseInLocation(dateLayout, v, time.UTC)
		if err != nil {
			return err
		}
		d.Time = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan type %T into DateOnly", value)
	}
}
