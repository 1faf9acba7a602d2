// Package birthdate holds the calendar arithmetic behind the astrology tools.
// Dates use the Czech day.month.year notation.
package birthdate

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// ErrInvalidFormat is returned when a date is not a valid dd.mm.yyyy calendar date
var ErrInvalidFormat = errors.New("invalid date format, expecting dd.mm.yyyy")

// Clock returns the current time, tools take it to keep "today" replaceable
type Clock func() time.Time

// Date is a calendar date without time of day
type Date struct {
	Day   int
	Month time.Month
	Year  int
}

// Time returns the date at midnight UTC
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// FromTime truncates t to its calendar date
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Day: d, Month: m, Year: y}
}

// Normalize zero pads day and month of a d.m.yyyy string.
// The year is passed through unchanged. Input without three dot separated parts is returned as is.
func Normalize(s string) string {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) < 3 {
		return s
	}
	return zfill(parts[0], 2) + "." + zfill(parts[1], 2) + "." + parts[2]
}

// zfill pads s with leading zeros up to width, keeping a leading sign in front
func zfill(s string, width int) string {
	if len(s) >= width {
		return s
	}
	pad := strings.Repeat("0", width-len(s))
	if s != "" && (s[0] == '+' || s[0] == '-') {
		return s[:1] + pad + s[1:]
	}
	return pad + s
}

// Split normalizes s and parses its day, month and year numbers without validating the calendar
func Split(s string) (day int, month int, year int, err error) {
	parts := strings.Split(Normalize(s), ".")
	if len(parts) < 3 {
		return 0, 0, 0, ErrInvalidFormat
	}
	nums := make([]int, 3)
	for i := range nums {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil {
			return 0, 0, 0, ErrInvalidFormat
		}
		nums[i] = n
	}
	return nums[0], nums[1], nums[2], nil
}

// Parse returns the calendar date of s
func Parse(s string) (Date, error) {
	day, month, year, err := Split(s)
	if err != nil {
		return Date{}, err
	}
	if month < 1 || month > 12 || day < 1 || year < 1 || year > 9999 {
		return Date{}, ErrInvalidFormat
	}
	d := Date{Day: day, Month: time.Month(month), Year: year}
	if FromTime(d.Time()) != d {
		return Date{}, ErrInvalidFormat
	}
	return d, nil
}

const secondsPerDay = 24 * 60 * 60

// DaysBetween returns the number of days from birth to today.
// Unix seconds are used, time.Duration overflows for spans over 292 years.
func DaysBetween(birth Date, today Date) int {
	return int((today.Time().Unix() - birth.Time().Unix()) / secondsPerDay)
}

// Age is a calendar difference between two dates
type Age struct {
	Years     int
	Months    int
	Days      int
	TotalDays int
}

// AgeAt subtracts birth from today component wise, borrowing the length of the month preceding today
func AgeAt(birth Date, today Date) Age {
	years := today.Year - birth.Year
	months := int(today.Month) - int(birth.Month)
	days := today.Day - birth.Day
	if days < 0 {
		months--
		days += DaysInMonth(today.Year, today.Month-1)
	}
	if months < 0 {
		years--
		months += 12
	}
	return Age{
		Years:     years,
		Months:    months,
		Days:      days,
		TotalDays: DaysBetween(birth, today),
	}
}

// DaysInMonth returns the number of days of the month, month 0 is December of the previous year
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// GroupThousands formats n with a space between thousands groups
func GroupThousands(n int) string {
	return strings.ReplaceAll(humanize.Comma(int64(n)), ",", " ")
}

// InvalidFormatMessage is the reply of the date tools for input they cannot read
const InvalidFormatMessage = "Neplatný formát data. Použij dd.mm.rrrr"
