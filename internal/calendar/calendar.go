// Package calendar implements the integer arithmetic behind the civil2k
// date types: conversion between epoch stamps and civil (year, month, day,
// hour, minute, second) tuples within the 2000–2099 window, plus the
// derived calendar quantities (leap years, month lengths, ordinal days,
// weekdays).
//
// A "stamp" is an unsigned 32-bit count of seconds since
// 2000-01-01T00:00:00Z. Every function here is total: out-of-range civil
// fields are clamped independently, and out-of-range stamps saturate to
// [MaxStamp].
package calendar

const (
	// MinYear and MaxYear bound the representable century.
	MinYear = 2000
	MaxYear = 2099

	SecondsPerMinute = 60
	SecondsPerHour   = 3600
	SecondsPerDay    = 86400

	// MaxStamp is 2099-12-31T23:59:59Z in epoch seconds.
	MaxStamp uint32 = 3_155_759_999

	// UnixOffset is the unix timestamp of the epoch, 2000-01-01T00:00:00Z.
	UnixOffset int64 = 946_684_800
)

// monthDays holds the length of each month, indexed by [leap][month-1].
var monthDays = [2][12]uint32{
	{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31},
	{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31},
}

// monthStart holds the cumulative number of days preceding each month,
// indexed by [leap][month-1].
var monthStart = [2][12]uint32{
	{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334},
	{0, 31, 60, 91, 121, 152, 182, 213, 244, 274, 305, 335},
}

// yearStart[i] is the day number (whole days since the epoch) of January
// 1st of year 2000+i. The 101st entry marks the start of 2100 so that the
// final year is bounded like the others.
var yearStart = func() [101]uint32 {
	var table [101]uint32
	var days uint32
	for i := range table {
		table[i] = days
		days += 365
		if IsLeapYear(MinYear + i) {
			days++
		}
	}
	return table
}()

// IsLeapYear reports whether year is a leap year. Within 2000–2099 the
// Gregorian rule reduces to divisibility by four. 2100 would misreport as
// leap under this rule, but it lies outside the window and every public
// path clamps years before asking.
func IsLeapYear(year int) bool { return year%4 == 0 }

func leapIndex(year int) int {
	if IsLeapYear(year) {
		return 1
	}
	return 0
}

// DaysInMonth returns the number of days in the given month (1–12) of the
// given year, between 28 and 31.
func DaysInMonth(year, month int) int {
	return int(monthDays[leapIndex(year)][month-1])
}

// Ordinal returns the 1-based day-of-year for the given civil date, which
// must already be in range.
func Ordinal(year, month, day int) int {
	return int(monthStart[leapIndex(year)][month-1]) + day
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ToStamp converts a civil tuple to epoch seconds. Each field is clamped
// into its valid range independently before conversion (month 13 becomes
// December, April 31st becomes April 30th), so the function never fails.
func ToStamp(year, month, day, hour, minute, second int) uint32 {
	year = Clamp(year, MinYear, MaxYear)
	month = Clamp(month, 1, 12)
	day = Clamp(day, 1, DaysInMonth(year, month))
	hour = Clamp(hour, 0, 23)
	minute = Clamp(minute, 0, 59)
	second = Clamp(second, 0, 59)

	days := yearStart[year-MinYear] +
		monthStart[leapIndex(year)][month-1] +
		uint32(day-1)

	return days*SecondsPerDay +
		uint32(hour)*SecondsPerHour +
		uint32(minute)*SecondsPerMinute +
		uint32(second)
}

// FromStamp decomposes epoch seconds into a civil tuple. Stamps beyond
// MaxStamp saturate to 2099-12-31T23:59:59Z rather than wrapping, making
// the function total over the full uint32 domain.
func FromStamp(stamp uint32) (year, month, day, hour, minute, second int) {
	if stamp > MaxStamp {
		stamp = MaxStamp
	}

	days := stamp / SecondsPerDay
	rem := stamp % SecondsPerDay

	// A year spans at most 366 days, so this quotient can only undershoot;
	// walk forward to the correct table entry.
	y := int(days / 366)
	for y < MaxYear-MinYear && yearStart[y+1] <= days {
		y++
	}
	days -= yearStart[y]

	leap := leapIndex(MinYear + y)
	m := 0
	for days >= monthDays[leap][m] {
		days -= monthDays[leap][m]
		m++
	}

	year = MinYear + y
	month = m + 1
	day = int(days) + 1
	hour = int(rem / SecondsPerHour)
	minute = int(rem % SecondsPerHour / SecondsPerMinute)
	second = int(rem % SecondsPerMinute)
	return year, month, day, hour, minute, second
}

// DayOfWeek returns the weekday of the given stamp with Sunday as 0. Day
// zero of the epoch, 2000-01-01, was a Saturday.
func DayOfWeek(stamp uint32) int {
	if stamp > MaxStamp {
		stamp = MaxStamp
	}
	return int((stamp/SecondsPerDay + 6) % 7)
}
