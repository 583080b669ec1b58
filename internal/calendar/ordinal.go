package calendar

import (
	"fmt"
	"time"
)

// nonLeapMonthLengths is the month length table for a non-leap year, January first.
var nonLeapMonthLengths = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeapYear reports whether year is a Gregorian leap year:
// divisible by 4, except century years not divisible by 400
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// MonthLengths returns the month lengths for the given year,
// with February adjusted to 29 in leap years. The table is returned
// by value so callers never share mutable state.
func MonthLengths(year int) [12]int {
	lengths := nonLeapMonthLengths
	if IsLeapYear(year) {
		lengths[1] = 29
	}
	return lengths
}

// DaysInMonth returns the number of days in the given month of year
func DaysInMonth(year int, month time.Month) int {
	return MonthLengths(year)[month-1]
}

// DaysInYear returns the number of days in the given year (365 or 366)
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// DomainError represents a date component outside its valid range
type DomainError struct {
	Field string
	Value int
	Min   int
	Max   int
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s %d out of range [%d, %d]", e.Field, e.Value, e.Min, e.Max)
}

// ValidateMonth checks that month is within 1-12
func ValidateMonth(month int) error {
	if month < 1 || month > 12 {
		return &DomainError{Field: "month", Value: month, Min: 1, Max: 12}
	}
	return nil
}

// OrdinalDay returns the 1-based ordinal day of year for the given date.
//
// This is the clamping mode: a day value at or past the end of the month
// adds the full month length instead of the day itself, so an overflowing
// day never spills into the following month. For the exact last day of a
// month both branches yield the same number. Month must already be
// within 1-12; use ValidateMonth or OrdinalDayStrict to enforce that.
func OrdinalDay(year, month, day int) int {
	lengths := MonthLengths(year)

	ordinal := 0
	for i := 0; i < month-1; i++ {
		ordinal += lengths[i]
	}

	if day >= lengths[month-1] {
		ordinal += lengths[month-1]
	} else {
		ordinal += day
	}

	return ordinal
}

// OrdinalDayStrict returns the 1-based ordinal day of year, rejecting
// any month outside 1-12 and any day outside the month's actual length
func OrdinalDayStrict(year, month, day int) (int, error) {
	if err := ValidateMonth(month); err != nil {
		return 0, err
	}

	maxDay := DaysInMonth(year, time.Month(month))
	if day < 1 || day > maxDay {
		return 0, &DomainError{Field: "day", Value: day, Min: 1, Max: maxDay}
	}

	return OrdinalDay(year, month, day), nil
}

// DateOfOrdinal converts a 1-based ordinal day of year back to its
// month and day-of-month
func DateOfOrdinal(year, ordinal int) (time.Month, int, error) {
	if ordinal < 1 || ordinal > DaysInYear(year) {
		return 0, 0, &DomainError{Field: "ordinal", Value: ordinal, Min: 1, Max: DaysInYear(year)}
	}

	lengths := MonthLengths(year)
	month := 0
	remaining := ordinal
	for remaining > lengths[month] {
		remaining -= lengths[month]
		month++
	}

	return time.Month(month + 1), remaining, nil
}
