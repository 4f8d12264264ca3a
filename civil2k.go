// Package civil2k is a small calendar engine for UTC civil datetimes in
// the 2000–2099 window.
//
// The canonical representation is the "stamp": an unsigned 32-bit count of
// seconds since 2000-01-01T00:00:00Z, topping out at 2099-12-31T23:59:59Z.
// Comparisons and equality are plain integer operations, and every
// constructor is total: out-of-range civil fields are clamped
// independently rather than rejected or carried into adjacent units. The
// checked variants exist for callers who'd rather see an error than a
// saturated value.
package civil2k

import (
	"cmp"
	"errors"
	"time"

	"github.com/civiltime/civil2k/internal/calendar"
)

var (
	// ErrInvalidFormat is returned when textual input does not match any
	// recognized layout, contains an out-of-range field, or carries
	// trailing bytes after a recognized layout.
	ErrInvalidFormat = errors.New("invalid date/time format")

	// ErrOverflow is returned by checked operations that would land after
	// 2099-12-31T23:59:59Z.
	ErrOverflow = errors.New("date/time is post-2099")

	// ErrUnderflow is returned by checked operations that would land
	// before 2000-01-01T00:00:00Z.
	ErrUnderflow = errors.New("date/time is pre-2000")
)

const (
	// MaxStamp is the stamp of 2099-12-31T23:59:59Z, the largest
	// representable instant. The smallest is the zero stamp,
	// 2000-01-01T00:00:00Z.
	MaxStamp uint32 = calendar.MaxStamp

	// UnixOffset is the unix timestamp of stamp zero.
	UnixOffset int64 = calendar.UnixOffset
)

// DateTime is an immutable UTC datetime between 2000-01-01T00:00:00Z and
// 2099-12-31T23:59:59Z. The zero value is the minimum.
type DateTime struct {
	stamp uint32
}

// Min returns the minimum representable datetime, 2000-01-01T00:00:00Z.
func Min() DateTime { return DateTime{} }

// Max returns the maximum representable datetime, 2099-12-31T23:59:59Z.
func Max() DateTime { return DateTime{stamp: calendar.MaxStamp} }

// New builds a DateTime from civil parts. Each field is clamped into its
// valid range independently, so construction never fails:
// New(2150, 13, 32, 99, 99, 99) yields 2099-12-31T23:59:59Z.
func New(year, month, day, hour, minute, second int) DateTime {
	return DateTime{stamp: calendar.ToStamp(year, month, day, hour, minute, second)}
}

// FromStamp builds a DateTime from epoch seconds, saturating to Max for
// stamps beyond the representable window.
func FromStamp(stamp uint32) DateTime {
	if stamp > calendar.MaxStamp {
		stamp = calendar.MaxStamp
	}
	return DateTime{stamp: stamp}
}

// CheckedFromStamp is FromStamp for callers who want an error instead of
// saturation.
func CheckedFromStamp(stamp uint32) (DateTime, error) {
	if stamp > calendar.MaxStamp {
		return DateTime{}, ErrOverflow
	}
	return DateTime{stamp: stamp}, nil
}

// FromUnix builds a DateTime from a unix timestamp, saturating at both
// ends of the window.
func FromUnix(secs int64) DateTime {
	if secs <= UnixOffset {
		return Min()
	}
	return FromStamp(uint32(min(secs-UnixOffset, int64(calendar.MaxStamp))))
}

// CheckedFromUnix is FromUnix for callers who want an error instead of
// saturation.
func CheckedFromUnix(secs int64) (DateTime, error) {
	if secs < UnixOffset {
		return DateTime{}, ErrUnderflow
	}
	if secs-UnixOffset > int64(calendar.MaxStamp) {
		return DateTime{}, ErrOverflow
	}
	return DateTime{stamp: uint32(secs - UnixOffset)}, nil
}

// Now returns the current UTC time, read once from the system clock.
func Now() DateTime { return FromUnix(time.Now().Unix()) }

// Tomorrow returns the current time plus one day.
func Tomorrow() DateTime { return Now().Add(calendar.SecondsPerDay) }

// Yesterday returns the current time minus one day.
func Yesterday() DateTime { return Now().Sub(calendar.SecondsPerDay) }

// Stamp returns the epoch-seconds count, the canonical interchange form.
func (d DateTime) Stamp() uint32 { return d.stamp }

// Unix returns the unix timestamp of this datetime.
func (d DateTime) Unix() int64 { return int64(d.stamp) + UnixOffset }

// Parts decomposes the datetime into its civil fields.
func (d DateTime) Parts() (year, month, day, hour, minute, second int) {
	return calendar.FromStamp(d.stamp)
}

// Year returns the year, 2000–2099.
func (d DateTime) Year() int {
	y, _, _, _, _, _ := calendar.FromStamp(d.stamp)
	return y
}

// Month returns the month.
func (d DateTime) Month() Month {
	_, m, _, _, _, _ := calendar.FromStamp(d.stamp)
	return Month(m)
}

// Day returns the day of the month, 1–31.
func (d DateTime) Day() int {
	_, _, day, _, _, _ := calendar.FromStamp(d.stamp)
	return day
}

// Hour returns the hour, 0–23.
func (d DateTime) Hour() int {
	return int(d.stamp % calendar.SecondsPerDay / calendar.SecondsPerHour)
}

// Minute returns the minute, 0–59.
func (d DateTime) Minute() int {
	return int(d.stamp % calendar.SecondsPerHour / calendar.SecondsPerMinute)
}

// Second returns the second, 0–59.
func (d DateTime) Second() int {
	return int(d.stamp % calendar.SecondsPerMinute)
}

// IsLeapYear reports whether the datetime falls in a leap year.
func (d DateTime) IsLeapYear() bool { return calendar.IsLeapYear(d.Year()) }

// MonthSize returns the number of days in the datetime's month, 28–31.
func (d DateTime) MonthSize() int {
	y, m, _, _, _, _ := calendar.FromStamp(d.stamp)
	return calendar.DaysInMonth(y, m)
}

// Ordinal returns the 1-based day of the year, 1–366.
func (d DateTime) Ordinal() int {
	y, m, day, _, _, _ := calendar.FromStamp(d.stamp)
	return calendar.Ordinal(y, m, day)
}

// Weekday returns the day of the week.
func (d DateTime) Weekday() Weekday { return Weekday(calendar.DayOfWeek(d.stamp)) }

// SecondsFromMidnight returns the number of seconds elapsed since the
// start of the datetime's day.
func (d DateTime) SecondsFromMidnight() uint32 {
	return d.stamp % calendar.SecondsPerDay
}

// Midnight returns the same date with the time zeroed out.
func (d DateTime) Midnight() DateTime {
	return DateTime{stamp: d.stamp - d.stamp%calendar.SecondsPerDay}
}

// WithTime returns the same date with a new (clamped) time of day.
func (d DateTime) WithTime(hour, minute, second int) DateTime {
	hour = calendar.Clamp(hour, 0, 23)
	minute = calendar.Clamp(minute, 0, 59)
	second = calendar.Clamp(second, 0, 59)
	return DateTime{stamp: d.stamp - d.stamp%calendar.SecondsPerDay +
		uint32(hour)*calendar.SecondsPerHour +
		uint32(minute)*calendar.SecondsPerMinute +
		uint32(second)}
}

// Add returns the datetime shifted secs seconds into the future,
// saturating at Max.
func (d DateTime) Add(secs uint32) DateTime {
	if sum := uint64(d.stamp) + uint64(secs); sum <= uint64(calendar.MaxStamp) {
		return DateTime{stamp: uint32(sum)}
	}
	return Max()
}

// Sub returns the datetime shifted secs seconds into the past, saturating
// at Min.
func (d DateTime) Sub(secs uint32) DateTime {
	if secs > d.stamp {
		return Min()
	}
	return DateTime{stamp: d.stamp - secs}
}

// CheckedAdd is Add for callers who want ErrOverflow instead of
// saturation.
func (d DateTime) CheckedAdd(secs uint32) (DateTime, error) {
	if sum := uint64(d.stamp) + uint64(secs); sum <= uint64(calendar.MaxStamp) {
		return DateTime{stamp: uint32(sum)}, nil
	}
	return DateTime{}, ErrOverflow
}

// CheckedSub is Sub for callers who want ErrUnderflow instead of
// saturation.
func (d DateTime) CheckedSub(secs uint32) (DateTime, error) {
	if secs > d.stamp {
		return DateTime{}, ErrUnderflow
	}
	return DateTime{stamp: d.stamp - secs}, nil
}

// AbsDiff returns the absolute difference between two datetimes in
// seconds.
func (d DateTime) AbsDiff(other DateTime) uint32 {
	if d.stamp > other.stamp {
		return d.stamp - other.stamp
	}
	return other.stamp - d.stamp
}

// Compare orders two datetimes, returning -1, 0, or +1.
func (d DateTime) Compare(other DateTime) int {
	return cmp.Compare(d.stamp, other.stamp)
}

// CompareDate orders two datetimes by their date portion only, ignoring
// the time of day.
func (d DateTime) CompareDate(other DateTime) int {
	return cmp.Compare(d.stamp/calendar.SecondsPerDay, other.stamp/calendar.SecondsPerDay)
}

// CompareTime orders two datetimes by their time-of-day portion only,
// ignoring the date.
func (d DateTime) CompareTime(other DateTime) int {
	return cmp.Compare(d.stamp%calendar.SecondsPerDay, other.stamp%calendar.SecondsPerDay)
}

// Before reports whether d is strictly earlier than other.
func (d DateTime) Before(other DateTime) bool { return d.stamp < other.stamp }

// After reports whether d is strictly later than other.
func (d DateTime) After(other DateTime) bool { return d.stamp > other.stamp }
