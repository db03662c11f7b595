package models

import (
	"fmt"
	"time"
)

// DateTimeLayout — текстовый формат дат во внешнем API:
// ISO-8601 с миллисекундами и суффиксом Z.
const DateTimeLayout = "2006-01-02T15:04:05.000Z"

// DateTime оборачивает time.Time, чтобы сериализовать даты
// в фиксированном формате DateTimeLayout.
type DateTime struct {
	time.Time
}

// MarshalJSON сериализует дату в формате DateTimeLayout (UTC).
func (d DateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.UTC().Format(DateTimeLayout) + `"`), nil
}

// UnmarshalJSON разбирает дату в формате DateTimeLayout.
func (d *DateTime) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("datetime must be a string in format %s", DateTimeLayout)
	}
	t, err := ParseDateTime(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// ParseDateTime разбирает строку в формате DateTimeLayout в time.Time.
func ParseDateTime(value string) (time.Time, error) {
	t, err := time.Parse(DateTimeLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid datetime %q, want format %s", value, DateTimeLayout)
	}
	return t, nil
}
