package civil2k

import (
	"iter"

	"github.com/civiltime/civil2k/internal/calendar"
)

// Weekday is a day of the week, Sunday = 0 through Saturday = 6, cyclic
// under Add/Sub.
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var weekdayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

var weekdayAbbrs = [7]string{
	"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat",
}

// ParseWeekday resolves a full weekday name or 3-letter abbreviation to a
// Weekday. Matching is case-sensitive and exact; anything else returns
// ErrInvalidFormat.
func ParseWeekday(src string) (Weekday, error) {
	for i := range weekdayNames {
		if src == weekdayNames[i] || src == weekdayAbbrs[i] {
			return Weekday(i), nil
		}
	}
	return 0, ErrInvalidFormat
}

// NowWeekday returns the current UTC day of the week.
func NowWeekday() Weekday { return Now().Weekday() }

// TomorrowWeekday returns tomorrow's day of the week.
func TomorrowWeekday() Weekday { return Tomorrow().Weekday() }

// YesterdayWeekday returns yesterday's day of the week.
func YesterdayWeekday() Weekday { return Yesterday().Weekday() }

// weekdayFromAbbr matches three bytes against the abbreviation table,
// case-sensitively.
func weekdayFromAbbr(a, b, c byte) (Weekday, bool) {
	for i, abbr := range weekdayAbbrs {
		if abbr[0] == a && abbr[1] == b && abbr[2] == c {
			return Weekday(i), true
		}
	}
	return 0, false
}

// String returns the full English weekday name.
func (w Weekday) String() string { return weekdayNames[w.index()] }

// Abbr returns the 3-letter English abbreviation.
func (w Weekday) Abbr() string { return weekdayAbbrs[w.index()] }

// Add returns the weekday n steps later, wrapping around the week.
// Negative n walks backward.
func (w Weekday) Add(n int) Weekday {
	idx := (w.index() + n) % 7
	if idx < 0 {
		idx += 7
	}
	return Weekday(idx)
}

// Sub returns the weekday n steps earlier, wrapping around the week.
func (w Weekday) Sub(n int) Weekday { return w.Add(-n) }

// Next returns the following weekday, wrapping Saturday to Sunday.
func (w Weekday) Next() Weekday { return w.Add(1) }

// Previous returns the preceding weekday, wrapping Sunday to Saturday.
func (w Weekday) Previous() Weekday { return w.Sub(1) }

// index clamps the weekday into 0–6, keeping the accessors total for
// out-of-range values.
func (w Weekday) index() int { return calendar.Clamp(int(w), 0, 6) }

// NthInMonth returns the day of the month holding the nth occurrence of
// this weekday in the given year and month. Year and month are clamped
// like everywhere else. The boolean is false when there is no such day:
// every weekday occurs four or five times in a month, so n outside 1–5,
// or a fifth occurrence the month doesn't reach, reports false.
func (w Weekday) NthInMonth(year int, month Month, n int) (int, bool) {
	if n < 1 || n > 5 {
		return 0, false
	}
	year = calendar.Clamp(year, calendar.MinYear, calendar.MaxYear)
	mo := calendar.Clamp(int(month), 1, 12)

	first := Weekday(calendar.DayOfWeek(calendar.ToStamp(year, mo, 1, 0, 0, 0)))
	day := 1 + int(w.Sub(int(first))) + (n-1)*7
	if day > calendar.DaysInMonth(year, mo) {
		return 0, false
	}
	return day, true
}

// FirstInMonth returns the day of the month holding the first occurrence
// of this weekday in the given year and month.
func (w Weekday) FirstInMonth(year int, month Month) int {
	day, _ := w.NthInMonth(year, month, 1)
	return day
}

// LastInMonth returns the day of the month holding the last occurrence of
// this weekday in the given year and month.
func (w Weekday) LastInMonth(year int, month Month) int {
	if day, ok := w.NthInMonth(year, month, 5); ok {
		return day
	}
	day, _ := w.NthInMonth(year, month, 4)
	return day
}

// Following yields w, then each successive weekday, forever. The sequence
// restarts from w every time it is ranged over.
func (w Weekday) Following() iter.Seq[Weekday] {
	return func(yield func(Weekday) bool) {
		for c := NewWeekdayCycle(w); yield(c.Current()); c.Next() {
		}
	}
}

// Preceding yields w, then each earlier weekday, forever.
func (w Weekday) Preceding() iter.Seq[Weekday] {
	return func(yield func(Weekday) bool) {
		for c := NewWeekdayCycle(w); yield(c.Current()); c.Prev() {
		}
	}
}

// WeekdayCycle is a restartable cursor over the repeating week. The same
// cursor can be stepped in either direction, which suits calendar-grid
// generation.
type WeekdayCycle struct {
	cur Weekday
}

// NewWeekdayCycle returns a cursor positioned on w.
func NewWeekdayCycle(w Weekday) *WeekdayCycle {
	return &WeekdayCycle{cur: Weekday(calendar.Clamp(int(w), 0, 6))}
}

// Current returns the weekday under the cursor.
func (c *WeekdayCycle) Current() Weekday { return c.cur }

// Next advances the cursor one day and returns the new position.
func (c *WeekdayCycle) Next() Weekday {
	c.cur = c.cur.Add(1)
	return c.cur
}

// Prev moves the cursor back one day and returns the new position.
func (c *WeekdayCycle) Prev() Weekday {
	c.cur = c.cur.Sub(1)
	return c.cur
}

// Reset repositions the cursor on w.
func (c *WeekdayCycle) Reset(w Weekday) { c.cur = Weekday(calendar.Clamp(int(w), 0, 6)) }
