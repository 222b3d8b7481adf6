package prompt

import (
	"fmt"
	"time"
)

// Validator accepts or rejects an already parsed value. Anything the check
// depends on is a field of the validator.
type Validator[T any] interface {
	Validate(T) error
}

// MonthValidator accepts 1 through 12.
type MonthValidator struct{}

func (MonthValidator) Validate(month int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("month %d out of range", month)
	}
	return nil
}

// DayValidator accepts the days that exist in Year/Month.
type DayValidator struct {
	Year  int
	Month int
}

func (v DayValidator) Validate(day int) error {
	if err := (MonthValidator{}).Validate(v.Month); err != nil {
		return err
	}
	if day < 1 || day > DaysIn(v.Year, time.Month(v.Month)) {
		return fmt.Errorf("%d/%d has no day %d", v.Year, v.Month, day)
	}
	return nil
}

// DaysIn is the number of days in month of year, leap years included.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
