package calendar

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestToStamp_KnownValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                                   string
		year, month, day, hour, minute, second int
		want                                   uint32
	}{
		{"epoch", 2000, 1, 1, 0, 0, 0, 0},
		{"first second", 2000, 1, 1, 0, 0, 1, 1},
		{"start of 2020", 2020, 1, 1, 0, 0, 0, 631_152_000},
		{"leap noon", 2024, 2, 29, 12, 0, 0, 762_523_200},
		{"max", 2099, 12, 31, 23, 59, 59, MaxStamp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ToStamp(tt.year, tt.month, tt.day, tt.hour, tt.minute, tt.second)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToStamp_ClampsEachFieldIndependently(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   [6]int
		want [6]int
	}{
		{"year too late", [6]int{2150, 6, 15, 12, 30, 30}, [6]int{2099, 6, 15, 12, 30, 30}},
		{"year too early", [6]int{1990, 6, 15, 12, 30, 30}, [6]int{2000, 6, 15, 12, 30, 30}},
		{"month 13", [6]int{2020, 13, 15, 0, 0, 0}, [6]int{2020, 12, 15, 0, 0, 0}},
		{"month 0", [6]int{2020, 0, 15, 0, 0, 0}, [6]int{2020, 1, 15, 0, 0, 0}},
		{"april 31st", [6]int{2023, 4, 31, 0, 0, 0}, [6]int{2023, 4, 30, 0, 0, 0}},
		{"february 30th in a leap year", [6]int{2024, 2, 30, 0, 0, 0}, [6]int{2024, 2, 29, 0, 0, 0}},
		{"february 29th in a common year", [6]int{2023, 2, 29, 0, 0, 0}, [6]int{2023, 2, 28, 0, 0, 0}},
		{"time fields", [6]int{2020, 6, 15, 99, 99, 99}, [6]int{2020, 6, 15, 23, 59, 59}},
		{"everything at once", [6]int{2150, 13, 50, 99, 99, 99}, [6]int{2099, 12, 31, 23, 59, 59}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stamp := ToStamp(tt.in[0], tt.in[1], tt.in[2], tt.in[3], tt.in[4], tt.in[5])
			y, mo, d, h, mi, s := FromStamp(stamp)
			assert.Equal(t, tt.want, [6]int{y, mo, d, h, mi, s})
		})
	}
}

func TestFromStamp_SaturatesPastMax(t *testing.T) {
	t.Parallel()

	for _, stamp := range []uint32{MaxStamp + 1, math.MaxUint32} {
		y, mo, d, h, mi, s := FromStamp(stamp)
		assert.Equal(t, [6]int{2099, 12, 31, 23, 59, 59}, [6]int{y, mo, d, h, mi, s})
	}
}

func TestStampRoundtrip(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		stamp := rapid.Uint32Range(0, MaxStamp).Draw(t, "stamp")

		y, mo, d, h, mi, s := FromStamp(stamp)
		assert.Equal(t, stamp, ToStamp(y, mo, d, h, mi, s))

		// The decomposition itself must be a valid civil tuple.
		assert.GreaterOrEqual(t, y, MinYear)
		assert.LessOrEqual(t, y, MaxYear)
		assert.GreaterOrEqual(t, mo, 1)
		assert.LessOrEqual(t, mo, 12)
		assert.GreaterOrEqual(t, d, 1)
		assert.LessOrEqual(t, d, DaysInMonth(y, mo))
		assert.Less(t, h, 24)
		assert.Less(t, mi, 60)
		assert.Less(t, s, 60)
	})
}

func TestIsLeapYear(t *testing.T) {
	t.Parallel()

	for year := MinYear; year <= MaxYear; year++ {
		assert.Equal(t, year%4 == 0, IsLeapYear(year), "year %d", year)
	}
}

func TestDaysInMonth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 29, DaysInMonth(2024, 2))
	assert.Equal(t, 28, DaysInMonth(2023, 2))
	assert.Equal(t, 31, DaysInMonth(2023, 1))
	assert.Equal(t, 30, DaysInMonth(2023, 4))
	assert.Equal(t, 31, DaysInMonth(2023, 12))
}

func TestOrdinal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		year, month, day int
		want             int
	}{
		{2000, 1, 1, 1},
		{2023, 10, 31, 304},
		{2024, 10, 31, 305},
		{2023, 12, 31, 365},
		{2024, 12, 31, 366},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%04d-%02d-%02d", tt.year, tt.month, tt.day), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, Ordinal(tt.year, tt.month, tt.day))
		})
	}
}

func TestDayOfWeek(t *testing.T) {
	t.Parallel()

	// 2000-01-01 was a Saturday, 2020-01-01 a Wednesday.
	assert.Equal(t, 6, DayOfWeek(0))
	assert.Equal(t, 0, DayOfWeek(SecondsPerDay))
	assert.Equal(t, 3, DayOfWeek(ToStamp(2020, 1, 1, 0, 0, 0)))
	assert.Equal(t, DayOfWeek(MaxStamp), DayOfWeek(math.MaxUint32))
}
