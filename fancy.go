package civil2k

import (
	"strconv"
	"strings"
)

// Format renders the datetime through a strftime-style layout. Recognized
// tokens:
//
//	%Y  4-digit year          %H  hour, 00–23
//	%y  2-digit year          %I  hour, 01–12
//	%m  month, 01–12          %M  minute, 00–59
//	%B  full month name       %S  second, 00–59
//	%b  month abbreviation    %p  AM / PM
//	%d  day, 01–31            %P  am / pm
//	%j  day of year, 001–366  %s  epoch seconds
//	%A  full weekday name     %%  literal percent
//	%a  weekday abbreviation
//
// A `-` between the percent and the verb drops the zero padding (`%-d`
// renders 5 rather than 05). Anything unrecognized, ordinary characters
// and unknown token sequences alike, passes through literally.
func (d DateTime) Format(layout string) string {
	year, month, day, hour, minute, second := d.Parts()

	var out strings.Builder
	out.Grow(len(layout) + 16)

	for i := 0; i < len(layout); i++ {
		c := layout[i]
		if c != '%' || i+1 == len(layout) {
			out.WriteByte(c)
			continue
		}

		i++
		pad := true
		verb := layout[i]
		if verb == '-' && i+1 < len(layout) {
			pad = false
			i++
			verb = layout[i]
		}

		switch verb {
		case 'Y':
			out.WriteString(strconv.Itoa(year))
		case 'y':
			write2(&out, year%100, pad)
		case 'm':
			write2(&out, month, pad)
		case 'B':
			out.WriteString(Month(month).String())
		case 'b':
			out.WriteString(Month(month).Abbr())
		case 'd':
			write2(&out, day, pad)
		case 'j':
			write3(&out, d.Ordinal(), pad)
		case 'A':
			out.WriteString(d.Weekday().String())
		case 'a':
			out.WriteString(d.Weekday().Abbr())
		case 'H':
			write2(&out, hour, pad)
		case 'I':
			write2(&out, hour12(hour), pad)
		case 'p':
			out.WriteString(period(hour, true))
		case 'P':
			out.WriteString(period(hour, false))
		case 'M':
			write2(&out, minute, pad)
		case 'S':
			write2(&out, second, pad)
		case 's':
			out.WriteString(strconv.FormatUint(uint64(d.stamp), 10))
		case '%':
			out.WriteByte('%')
		default:
			// Unknown sequence: emit it verbatim, modifier and all.
			out.WriteByte('%')
			if !pad {
				out.WriteByte('-')
			}
			out.WriteByte(verb)
		}
	}

	return out.String()
}

// hour12 converts a 24-hour value to the 12-hour clock, where midnight
// and noon both render as 12.
func hour12(hour int) int {
	hour %= 12
	if hour == 0 {
		return 12
	}
	return hour
}

// period returns the meridiem designator for a 24-hour value.
func period(hour int, upper bool) string {
	switch {
	case hour < 12 && upper:
		return "AM"
	case hour < 12:
		return "am"
	case upper:
		return "PM"
	default:
		return "pm"
	}
}

// write2 appends v as two zero-padded digits, or unpadded when pad is
// unset.
func write2(out *strings.Builder, v int, pad bool) {
	if !pad || v > 99 {
		out.WriteString(strconv.Itoa(v))
		return
	}
	out.WriteByte(dd[v*2])
	out.WriteByte(dd[v*2+1])
}

// write3 appends v as three zero-padded digits, or unpadded when pad is
// unset.
func write3(out *strings.Builder, v int, pad bool) {
	if pad {
		for limit := 100; v < limit; limit /= 10 {
			out.WriteByte('0')
		}
	}
	out.WriteString(strconv.Itoa(v))
}
