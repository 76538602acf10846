package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the wire format for calendar dates
const DateLayout = "2006-01-02"

// Date is a calendar date without a time component. It serializes to
// ISO-8601 (YYYY-MM-DD) on the wire and to a DATE column in storage.
type Date struct {
	time.Time
}

// DateOf truncates t to its calendar date in UTC
func DateOf(t time.Time) Date {
	return Date{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return Date{t}, nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.Format(DateLayout))), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a YYYY-MM-DD string")
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value implements driver.Valuer
func (d Date) Value() (driver.Value, error) {
	return d.Format(DateLayout), nil
}

// Scan implements sql.Scanner
func (d *Date) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = DateOf(v)
		return nil
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Date", value)
	}
}

func (d *Date) scanString(s string) error {
	// Drivers may return a bare date or a full timestamp
	if len(s) > len(DateLayout) {
		s = s[:len(DateLayout)]
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Rating is a fixed-point decimal with exactly one fractional digit,
// stored internally as tenths so values round-trip without float drift.
// The wire form is a decimal string such as "4.8".
type Rating int64

// RatingFromTenths builds a Rating from an integer number of tenths
func RatingFromTenths(tenths int64) Rating {
	return Rating(tenths)
}

// Tenths returns the raw fixed-point value
func (r Rating) Tenths() int64 {
	return int64(r)
}

func (r Rating) String() string {
	sign := ""
	v := int64(r)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%d", sign, v/10, v%10)
}

func (r Rating) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(r.String())), nil
}

func (r *Rating) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	// Accept both a JSON number and a quoted decimal string
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}
	parsed, err := ParseRating(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// MaxRatingTenths is the largest value a NUMERIC(3,1) column can hold
const MaxRatingTenths = 999

// ParseRating parses a decimal string with at most one fractional
// digit. Ratings are bounded by the NUMERIC(3,1) column: negative
// values and values above 99.9 are rejected before they reach storage.
func ParseRating(s string) (Rating, error) {
	whole, frac, found := strings.Cut(s, ".")
	if found && len(frac) > 1 {
		return 0, fmt.Errorf("invalid rating %q: at most one decimal digit", s)
	}
	if !found || frac == "" {
		frac = "0"
	}
	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid rating %q: expected a decimal number", s)
	}
	tenth, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid rating %q: expected a decimal number", s)
	}
	if units < 0 || strings.HasPrefix(strings.TrimSpace(s), "-") {
		return 0, fmt.Errorf("invalid rating %q: must not be negative", s)
	}
	tenths := units*10 + tenth
	if tenths > MaxRatingTenths {
		return 0, fmt.Errorf("invalid rating %q: must not exceed %s", s, Rating(MaxRatingTenths))
	}
	return Rating(tenths), nil
}

// Value implements driver.Valuer. The column is NUMERIC(3,1).
func (r Rating) Value() (driver.Value, error) {
	return float64(r) / 10, nil
}

// Scan implements sql.Scanner
func (r *Rating) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*r = 0
		return nil
	case int64:
		*r = Rating(v * 10)
		return nil
	case float64:
		tenths := v * 10
		if tenths < 0 {
			*r = Rating(tenths - 0.5)
		} else {
			*r = Rating(tenths + 0.5)
		}
		return nil
	case string:
		parsed, err := ParseRating(v)
		if err != nil {
			return err
		}
		*r = parsed
		return nil
	case []byte:
		parsed, err := ParseRating(string(v))
		if err != nil {
			return err
		}
		*r = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Rating", value)
	}
}
