package civil2k

import (
	"iter"

	"github.com/civiltime/civil2k/internal/calendar"
)

// Month is a month of the year, January = 1 through December = 12, cyclic
// under Add/Sub.
type Month int

const (
	January Month = 1 + iota
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var monthAbbrs = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// ParseMonth resolves a full month name or 3-letter abbreviation to a
// Month. Matching is case-sensitive and exact; anything else returns
// ErrInvalidFormat.
func ParseMonth(src string) (Month, error) {
	for i := range monthNames {
		if src == monthNames[i] || src == monthAbbrs[i] {
			return Month(i + 1), nil
		}
	}
	return 0, ErrInvalidFormat
}

// NowMonth returns the current UTC month.
func NowMonth() Month { return Now().Month() }

// monthFromAbbr matches three bytes against the abbreviation table,
// case-sensitively.
func monthFromAbbr(a, b, c byte) (Month, bool) {
	for i, abbr := range monthAbbrs {
		if abbr[0] == a && abbr[1] == b && abbr[2] == c {
			return Month(i + 1), true
		}
	}
	return 0, false
}

// String returns the full English month name.
func (m Month) String() string { return monthNames[m.index()] }

// Abbr returns the 3-letter English abbreviation.
func (m Month) Abbr() string { return monthAbbrs[m.index()] }

// Number returns the 1-based ordinal of the month.
func (m Month) Number() int { return m.index() + 1 }

// Days returns the number of days the month holds, with February
// answering 29 when leap is set.
func (m Month) Days(leap bool) int {
	if m == February && leap {
		return 29
	}
	year := calendar.MinYear + 1 // any common year
	return calendar.DaysInMonth(year, m.Number())
}

// Add returns the month n steps later, wrapping around the year. Negative
// n walks backward.
func (m Month) Add(n int) Month {
	idx := (m.index() + n) % 12
	if idx < 0 {
		idx += 12
	}
	return Month(idx + 1)
}

// Sub returns the month n steps earlier, wrapping around the year.
func (m Month) Sub(n int) Month { return m.Add(-n) }

// Next returns the following month, wrapping December to January.
func (m Month) Next() Month { return m.Add(1) }

// Previous returns the preceding month, wrapping January to December.
func (m Month) Previous() Month { return m.Sub(1) }

// index clamps the month into 1–12 and returns its 0-based table index,
// keeping the accessors total for out-of-range values.
func (m Month) index() int { return calendar.Clamp(int(m), 1, 12) - 1 }

// Following yields m, then each successive month, forever. The sequence
// restarts from m every time it is ranged over.
func (m Month) Following() iter.Seq[Month] {
	return func(yield func(Month) bool) {
		for c := NewMonthCycle(m); yield(c.Current()); c.Next() {
		}
	}
}

// Preceding yields m, then each earlier month, forever.
func (m Month) Preceding() iter.Seq[Month] {
	return func(yield func(Month) bool) {
		for c := NewMonthCycle(m); yield(c.Current()); c.Prev() {
		}
	}
}

// MonthCycle is a restartable cursor over the repeating month cycle. The
// same cursor can be stepped in either direction.
type MonthCycle struct {
	cur Month
}

// NewMonthCycle returns a cursor positioned on m.
func NewMonthCycle(m Month) *MonthCycle {
	return &MonthCycle{cur: Month(calendar.Clamp(int(m), 1, 12))}
}

// Current returns the month under the cursor.
func (c *MonthCycle) Current() Month { return c.cur }

// Next advances the cursor one month and returns the new position.
func (c *MonthCycle) Next() Month {
	c.cur = c.cur.Add(1)
	return c.cur
}

// Prev moves the cursor back one month and returns the new position.
func (c *MonthCycle) Prev() Month {
	c.cur = c.cur.Sub(1)
	return c.cur
}

// Reset repositions the cursor on m.
func (c *MonthCycle) Reset(m Month) { c.cur = Month(calendar.Clamp(int(m), 1, 12)) }
