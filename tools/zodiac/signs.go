package zodiac

import "time"

// Sign is a zodiac sign spanning From to To inclusive
type Sign struct {
	Label string
	From  MonthDay
	To    MonthDay
}

// MonthDay is a day of year without the year
type MonthDay struct {
	Month time.Month
	Day   int
}

// Signs is the zodiac table in calendar order, Capricorn wraps from December to January
var Signs = []Sign{
	{"Vodnář ♒", MonthDay{time.January, 20}, MonthDay{time.February, 18}},
	{"Ryby ♓", MonthDay{time.February, 19}, MonthDay{time.March, 20}},
	{"Beran ♈", MonthDay{time.March, 21}, MonthDay{time.April, 19}},
	{"Býk ♉", MonthDay{time.April, 20}, MonthDay{time.May, 20}},
	{"Blíženci ♊", MonthDay{time.May, 21}, MonthDay{time.June, 20}},
	{"Rak ♋", MonthDay{time.June, 21}, MonthDay{time.July, 22}},
	{"Lev ♌", MonthDay{time.July, 23}, MonthDay{time.August, 22}},
	{"Panna ♍", MonthDay{time.August, 23}, MonthDay{time.September, 22}},
	{"Váhy ♎", MonthDay{time.September, 23}, MonthDay{time.October, 22}},
	{"Štír ♏", MonthDay{time.October, 23}, MonthDay{time.November, 21}},
	{"Střelec ♐", MonthDay{time.November, 22}, MonthDay{time.December, 21}},
	{"Kozoroh ♑", MonthDay{time.December, 22}, MonthDay{time.January, 19}},
}

// Contains reports whether the day falls into the sign
func (s Sign) Contains(month time.Month, day int) bool {
	switch {
	case s.From.Month == s.To.Month:
		return month == s.From.Month && day >= s.From.Day && day <= s.To.Day
	default:
		return (month == s.From.Month && day >= s.From.Day) || (month == s.To.Month && day <= s.To.Day)
	}
}

// Lookup returns the sign of the day
func Lookup(month time.Month, day int) (Sign, bool) {
	for _, s := range Signs {
		if s.Contains(month, day) {
			return s, true
		}
	}
	return Sign{}, false
}
