package civil2k

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ClampsFields(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Max(), New(2150, 13, 50, 99, 99, 99))
	assert.Equal(t, Min(), New(1990, 0, 0, -1, -1, -1))

	d := New(2023, 4, 31, 12, 0, 0)
	assert.Equal(t, 30, d.Day(), "April 31st should clamp to the 30th")
	assert.Equal(t, 12, d.Hour(), "clamping one field should not disturb the others")
}

func TestDateTime_Parts(t *testing.T) {
	t.Parallel()

	d := New(2024, 10, 31, 12, 34, 56)
	year, month, day, hour, minute, second := d.Parts()

	assert.Equal(t, 2024, year)
	assert.Equal(t, 10, month)
	assert.Equal(t, 31, day)
	assert.Equal(t, 12, hour)
	assert.Equal(t, 34, minute)
	assert.Equal(t, 56, second)

	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, October, d.Month())
	assert.Equal(t, 31, d.Day())
	assert.Equal(t, 12, d.Hour())
	assert.Equal(t, 34, d.Minute())
	assert.Equal(t, 56, d.Second())
	assert.Equal(t, Thursday, d.Weekday())
	assert.Equal(t, 305, d.Ordinal())
	assert.Equal(t, 31, d.MonthSize())
	assert.True(t, d.IsLeapYear())
}

func TestFromUnix(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Min(), FromUnix(0), "pre-2000 unix times saturate to the minimum")
	assert.Equal(t, Min(), FromUnix(math.MinInt64))
	assert.Equal(t, Max(), FromUnix(math.MaxInt64))

	d := FromUnix(1_577_836_800) // 2020-01-01T00:00:00Z
	assert.Equal(t, New(2020, 1, 1, 0, 0, 0), d)
	assert.EqualValues(t, 1_577_836_800, d.Unix())
}

func TestCheckedFromUnix(t *testing.T) {
	t.Parallel()

	_, err := CheckedFromUnix(UnixOffset - 1)
	assert.ErrorIs(t, err, ErrUnderflow)

	_, err = CheckedFromUnix(Max().Unix() + 1)
	assert.ErrorIs(t, err, ErrOverflow)

	d, err := CheckedFromUnix(Max().Unix())
	require.NoError(t, err)
	assert.Equal(t, Max(), d)

	d, err = CheckedFromUnix(UnixOffset)
	require.NoError(t, err)
	assert.Equal(t, Min(), d)
}

func TestCheckedFromStamp(t *testing.T) {
	t.Parallel()

	d, err := CheckedFromStamp(MaxStamp)
	require.NoError(t, err)
	assert.Equal(t, Max(), d)

	_, err = CheckedFromStamp(MaxStamp + 1)
	assert.ErrorIs(t, err, ErrOverflow)

	assert.Equal(t, Max(), FromStamp(math.MaxUint32), "unchecked conversion saturates instead")
}

func TestDateTime_AddSub_Saturate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Max(), Max().Add(1), "Add sticks at the upper bound")
	assert.Equal(t, Max(), Max().Add(math.MaxUint32))
	assert.Equal(t, Min(), Min().Sub(1), "Sub sticks at the lower bound")
	assert.Equal(t, Min(), Min().Sub(math.MaxUint32))

	d := New(2050, 6, 15, 0, 0, 0)
	assert.Equal(t, d, d.Add(3600).Sub(3600))
}

func TestDateTime_CheckedAddSub(t *testing.T) {
	t.Parallel()

	_, err := Max().CheckedAdd(1)
	assert.ErrorIs(t, err, ErrOverflow)

	_, err = Min().CheckedSub(1)
	assert.ErrorIs(t, err, ErrUnderflow)

	d, err := Min().CheckedAdd(MaxStamp)
	require.NoError(t, err)
	assert.Equal(t, Max(), d)

	d, err = Max().CheckedSub(MaxStamp)
	require.NoError(t, err)
	assert.Equal(t, Min(), d)
}

func TestDateTime_AbsDiff(t *testing.T) {
	t.Parallel()

	a := New(2020, 1, 1, 0, 0, 0)
	b := New(2020, 1, 2, 0, 0, 0)

	assert.EqualValues(t, 86400, a.AbsDiff(b))
	assert.EqualValues(t, 86400, b.AbsDiff(a))
	assert.EqualValues(t, 0, a.AbsDiff(a))
}

func TestDateTime_Compare(t *testing.T) {
	t.Parallel()

	morning := New(2020, 1, 1, 8, 0, 0)
	evening := New(2020, 1, 1, 20, 0, 0)
	nextMorning := New(2020, 1, 2, 8, 0, 0)

	assert.Equal(t, -1, morning.Compare(evening))
	assert.Equal(t, 1, evening.Compare(morning))
	assert.Equal(t, 0, morning.Compare(morning))

	assert.Equal(t, 0, morning.CompareDate(evening), "same day regardless of time")
	assert.Equal(t, -1, morning.CompareDate(nextMorning))

	assert.Equal(t, 0, morning.CompareTime(nextMorning), "same time regardless of day")
	assert.Equal(t, -1, morning.CompareTime(evening))

	assert.True(t, morning.Before(evening))
	assert.True(t, evening.After(morning))
	assert.False(t, morning.After(morning))
}

func TestDateTime_Midnight(t *testing.T) {
	t.Parallel()

	d := New(2024, 10, 31, 12, 34, 56)

	assert.Equal(t, New(2024, 10, 31, 0, 0, 0), d.Midnight())
	assert.EqualValues(t, 12*3600+34*60+56, d.SecondsFromMidnight())
	assert.EqualValues(t, 0, d.Midnight().SecondsFromMidnight())
}

func TestDateTime_WithTime(t *testing.T) {
	t.Parallel()

	d := New(2024, 10, 31, 12, 34, 56)

	assert.Equal(t, New(2024, 10, 31, 8, 15, 0), d.WithTime(8, 15, 0))
	assert.Equal(t, New(2024, 10, 31, 23, 59, 59), d.WithTime(99, 99, 99), "time fields clamp")
}

func TestTomorrowYesterday(t *testing.T) {
	t.Parallel()

	now := Now()
	// A second of clock drift between the calls is tolerable.
	assert.InDelta(t, 2*86400, float64(Tomorrow().AbsDiff(Yesterday())), 2)
	assert.True(t, Tomorrow().After(now))
	assert.True(t, Yesterday().Before(now))
}
