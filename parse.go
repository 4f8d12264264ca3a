package civil2k

import (
	"github.com/civiltime/civil2k/internal/calendar"
)

// Parse recovers a DateTime from one of the recognized textual layouts:
//
//	YYYY-MM-DD
//	YYYY-MM-DD hh:mm:ss    (the separator may also be `T`)
//	YYYYMMDD
//	YYYYMMDDhhmmss
//	[Www, ]DD Mon YYYY hh:mm:ss[ ±hhmm]    (RFC 2822)
//
// The ISO-style layouts additionally accept a trailing fractional-seconds
// suffix (`.` plus digits, discarded) and a trailing UTC designator: `Z`,
// `±hhmm`, or `±hh:mm`. A numeric offset is applied, shifting the result
// into true UTC, and the shifted instant must stay inside the 2000–2099
// window.
//
// Parsing is all or nothing: every numeric field must be exactly as wide
// as the layout says, be in range, and leave no bytes behind. Any
// violation returns ErrInvalidFormat with no partial result; there is no
// loose fallback for natural-language dates.
func Parse(src string) (DateTime, error) { return ParseBytes([]byte(src)) }

// ParseBytes is Parse for byte slices.
func ParseBytes(src []byte) (DateTime, error) {
	switch {
	case len(src) == 0:
		return DateTime{}, ErrInvalidFormat
	case src[0] < '0' || src[0] > '9':
		// Layouts led by a weekday name.
		return parseRFC2822(src)
	case len(src) > 2 && src[2] == ' ':
		// RFC 2822 with the optional weekday omitted: `DD Mon …`.
		return parseRFC2822(src)
	default:
		return parseISO(src)
	}
}

// digit folds an ASCII byte into its decimal value; ok is false for
// non-digits.
func digit(b byte) (int, bool) {
	b ^= '0'
	return int(b), b < 10
}

// parse2 folds two ASCII digits into an integer.
func parse2(a, b byte) (int, bool) {
	hi, ok1 := digit(a)
	lo, ok2 := digit(b)
	return hi*10 + lo, ok1 && ok2
}

// parse4 folds four ASCII digits into an integer.
func parse4(a, b, c, d byte) (int, bool) {
	hi, ok1 := parse2(a, b)
	lo, ok2 := parse2(c, d)
	return hi*100 + lo, ok1 && ok2
}

// parseISO handles the date-led layouts: separated and squished forms,
// with the optional fraction and offset suffixes.
func parseISO(src []byte) (DateTime, error) {
	// YYYYMMDD is the shortest recognized layout.
	if len(src) < 8 {
		return DateTime{}, ErrInvalidFormat
	}

	year, ok := parse4(src[0], src[1], src[2], src[3])
	if !ok {
		return DateTime{}, ErrInvalidFormat
	}

	var month, day, hour, minute, second int
	var rest []byte

	if src[4] == '-' {
		// YYYY-MM-DD, optionally followed by a time block.
		if len(src) < 10 || src[7] != '-' {
			return DateTime{}, ErrInvalidFormat
		}
		if month, ok = parse2(src[5], src[6]); !ok {
			return DateTime{}, ErrInvalidFormat
		}
		if day, ok = parse2(src[8], src[9]); !ok {
			return DateTime{}, ErrInvalidFormat
		}
		rest = src[10:]

		if len(rest) > 0 && (rest[0] == ' ' || rest[0] == 'T') {
			if len(rest) < 9 || rest[3] != ':' || rest[6] != ':' {
				return DateTime{}, ErrInvalidFormat
			}
			h, ok1 := parse2(rest[1], rest[2])
			m, ok2 := parse2(rest[4], rest[5])
			s, ok3 := parse2(rest[7], rest[8])
			if !ok1 || !ok2 || !ok3 {
				return DateTime{}, ErrInvalidFormat
			}
			hour, minute, second = h, m, s
			rest = rest[9:]
		}
	} else {
		// YYYYMMDD, optionally followed by a squished hhmmss.
		if month, ok = parse2(src[4], src[5]); !ok {
			return DateTime{}, ErrInvalidFormat
		}
		if day, ok = parse2(src[6], src[7]); !ok {
			return DateTime{}, ErrInvalidFormat
		}
		rest = src[8:]

		if len(rest) >= 6 {
			h, ok1 := parse2(rest[0], rest[1])
			m, ok2 := parse2(rest[2], rest[3])
			s, ok3 := parse2(rest[4], rest[5])
			if ok1 && ok2 && ok3 {
				hour, minute, second = h, m, s
				rest = rest[6:]
			}
		}
	}

	// Fractional seconds: consumed and discarded, but the digits must be
	// digits.
	if len(rest) > 0 && rest[0] == '.' {
		rest = rest[1:]
		if len(rest) == 0 {
			return DateTime{}, ErrInvalidFormat
		}
		if _, ok := digit(rest[0]); !ok {
			return DateTime{}, ErrInvalidFormat
		}
		for len(rest) > 0 {
			if _, ok := digit(rest[0]); !ok {
				break
			}
			rest = rest[1:]
		}
	}

	offset, rest, err := parseOffset(rest)
	if err != nil {
		return DateTime{}, err
	}
	if len(rest) != 0 {
		return DateTime{}, ErrInvalidFormat
	}

	return assemble(year, month, day, hour, minute, second, offset)
}

// parseOffset consumes an optional trailing UTC designator: `Z`, `±hhmm`,
// or `±hh:mm`. It returns the offset in seconds east of UTC and whatever
// remains (which callers require to be empty).
func parseOffset(src []byte) (int, []byte, error) {
	if len(src) == 0 {
		return 0, src, nil
	}

	switch src[0] {
	case 'Z':
		return 0, src[1:], nil
	case '+', '-':
	default:
		return 0, src, ErrInvalidFormat
	}

	negative := src[0] == '-'
	body := src[1:]

	var hh, mm int
	var ok1, ok2 bool
	switch {
	case len(body) == 4:
		hh, ok1 = parse2(body[0], body[1])
		mm, ok2 = parse2(body[2], body[3])
	case len(body) == 5 && body[2] == ':':
		hh, ok1 = parse2(body[0], body[1])
		mm, ok2 = parse2(body[3], body[4])
	default:
		return 0, src, ErrInvalidFormat
	}
	if !ok1 || !ok2 || hh > 23 || mm > 59 {
		return 0, src, ErrInvalidFormat
	}

	offset := hh*calendar.SecondsPerHour + mm*calendar.SecondsPerMinute
	if negative {
		offset = -offset
	}
	return offset, nil, nil
}

// parseRFC2822 handles `[Www, ]DD Mon YYYY hh:mm:ss[ ±hhmm]`. Weekday and
// month names are matched case-sensitively against the fixed 3-letter
// tables. A present weekday token is accepted without cross-checking it
// against the computed weekday: mismatches pass silently, which is
// long-standing observable behavior rather than an oversight.
func parseRFC2822(src []byte) (DateTime, error) {
	if len(src) > 0 && (src[0] < '0' || src[0] > '9') {
		if len(src) < 5 || src[3] != ',' || src[4] != ' ' {
			return DateTime{}, ErrInvalidFormat
		}
		if _, ok := weekdayFromAbbr(src[0], src[1], src[2]); !ok {
			return DateTime{}, ErrInvalidFormat
		}
		src = src[5:]
	}

	// DD Mon YYYY hh:mm:ss
	if len(src) < 20 || src[2] != ' ' || src[6] != ' ' || src[11] != ' ' ||
		src[14] != ':' || src[17] != ':' {
		return DateTime{}, ErrInvalidFormat
	}

	day, ok := parse2(src[0], src[1])
	if !ok {
		return DateTime{}, ErrInvalidFormat
	}
	month, ok := monthFromAbbr(src[3], src[4], src[5])
	if !ok {
		return DateTime{}, ErrInvalidFormat
	}
	year, ok := parse4(src[7], src[8], src[9], src[10])
	if !ok {
		return DateTime{}, ErrInvalidFormat
	}
	hour, ok1 := parse2(src[12], src[13])
	minute, ok2 := parse2(src[15], src[16])
	second, ok3 := parse2(src[18], src[19])
	if !ok1 || !ok2 || !ok3 {
		return DateTime{}, ErrInvalidFormat
	}

	// The offset here is strictly the 4-digit `±hhmm` form: no `Z` and no
	// colon, unlike the ISO layouts.
	offset := 0
	if rest := src[20:]; len(rest) != 0 {
		if len(rest) != 6 || rest[0] != ' ' || (rest[1] != '+' && rest[1] != '-') {
			return DateTime{}, ErrInvalidFormat
		}
		hh, ok1 := parse2(rest[2], rest[3])
		mm, ok2 := parse2(rest[4], rest[5])
		if !ok1 || !ok2 || hh > 23 || mm > 59 {
			return DateTime{}, ErrInvalidFormat
		}
		offset = hh*calendar.SecondsPerHour + mm*calendar.SecondsPerMinute
		if rest[1] == '-' {
			offset = -offset
		}
	}

	return assemble(year, int(month), day, hour, minute, second, offset)
}

// assemble validates the extracted fields, converts them, and applies the
// offset. Unlike the clamping constructors, the parser rejects anything
// out of range, and an offset that shifts the instant outside the century
// is a failure rather than a wrap or a clamp.
func assemble(year, month, day, hour, minute, second, offset int) (DateTime, error) {
	if year < calendar.MinYear || year > calendar.MaxYear ||
		month < 1 || month > 12 ||
		day < 1 || day > calendar.DaysInMonth(year, month) ||
		hour > 23 || minute > 59 || second > 59 {
		return DateTime{}, ErrInvalidFormat
	}

	d := DateTime{stamp: calendar.ToStamp(year, month, day, hour, minute, second)}
	if offset == 0 {
		return d, nil
	}

	// The parsed wall time is offset seconds ahead of (or behind) UTC;
	// undo the offset to land on the true instant.
	var err error
	if offset > 0 {
		d, err = d.CheckedSub(uint32(offset))
	} else {
		d, err = d.CheckedAdd(uint32(-offset))
	}
	if err != nil {
		return DateTime{}, ErrInvalidFormat
	}
	return d, nil
}
