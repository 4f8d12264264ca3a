package civil2k

import (
	"github.com/civiltime/civil2k/internal/calendar"
)

// dd is a lookup table of every two-digit decimal pair, so a zero-padded
// field is a single two-byte copy rather than a formatting call.
const dd = "0001020304050607080910111213141516171819" +
	"2021222324252627282930313233343536373839" +
	"4041424344454647484950515253545556575859" +
	"6061626364656667686970717273747576777879" +
	"8081828384858687888990919293949596979899"

// put2 writes the two zero-padded digits of v (0–99) at dst.
func put2(dst []byte, v int) {
	dst[0] = dd[v*2]
	dst[1] = dd[v*2+1]
}

// Formatted is a fixed-width ASCII rendering of a DateTime in
// `YYYY-MM-DD hh:mm:ss` form. It is exactly 19 bytes, always fully
// written, and always represents an in-range datetime. Obtain one with
// [DateTime.Formatted] or [NewFormatted]; the zero value is not a valid
// rendering until SetDateTime has run.
type Formatted [19]byte

// NewFormatted renders d into a fresh buffer.
func NewFormatted(d DateTime) Formatted {
	var f Formatted
	f.SetDateTime(d)
	return f
}

// SetDateTime rewrites the whole buffer for d, so an existing Formatted
// can be recycled. Every byte, separators included, is written on every
// call; the buffer is never left partially updated.
func (f *Formatted) SetDateTime(d DateTime) {
	year, month, day, hour, minute, second := d.Parts()

	f[0], f[1] = '2', '0'
	put2(f[2:4], year-calendar.MinYear)
	f[4] = '-'
	put2(f[5:7], month)
	f[7] = '-'
	put2(f[8:10], day)
	f[10] = ' '
	put2(f[11:13], hour)
	f[13] = ':'
	put2(f[14:16], minute)
	f[16] = ':'
	put2(f[17:19], second)
}

// SetParts is SetDateTime from raw (clamped) civil fields.
func (f *Formatted) SetParts(year, month, day, hour, minute, second int) {
	f.SetDateTime(New(year, month, day, hour, minute, second))
}

// String returns the full `YYYY-MM-DD hh:mm:ss` rendering.
func (f Formatted) String() string { return string(f[:]) }

// Bytes returns the rendering as a byte slice.
func (f Formatted) Bytes() []byte { return f[:] }

// Date returns just the `YYYY-MM-DD` half, 10 bytes.
func (f Formatted) Date() string { return string(f[:10]) }

// Time returns just the `hh:mm:ss` half, 8 bytes.
func (f Formatted) Time() string { return string(f[11:]) }

// Year returns just the 4-digit year.
func (f Formatted) Year() string { return string(f[:4]) }

// DateTime parses the buffer back into a DateTime.
func (f Formatted) DateTime() DateTime {
	return New(
		2000+int(f[2]&0x0f)*10+int(f[3]&0x0f),
		int(f[5]&0x0f)*10+int(f[6]&0x0f),
		int(f[8]&0x0f)*10+int(f[9]&0x0f),
		int(f[11]&0x0f)*10+int(f[12]&0x0f),
		int(f[14]&0x0f)*10+int(f[15]&0x0f),
		int(f[17]&0x0f)*10+int(f[18]&0x0f),
	)
}

// Formatted renders the datetime into a fixed 19-byte buffer.
func (d DateTime) Formatted() Formatted { return NewFormatted(d) }

// String returns the canonical `YYYY-MM-DD hh:mm:ss` rendering.
func (d DateTime) String() string {
	f := NewFormatted(d)
	return string(f[:])
}

// RFC3339 renders the datetime as `YYYY-MM-DDThh:mm:ssZ`. The suffix is
// always `Z`: these values are UTC by construction.
func (d DateTime) RFC3339() string {
	f := NewFormatted(d)
	var out [20]byte
	copy(out[:10], f[:10])
	out[10] = 'T'
	copy(out[11:19], f[11:])
	out[19] = 'Z'
	return string(out[:])
}

// RFC2822 renders the datetime as `Www, DD Mon YYYY hh:mm:ss +0000`,
// always 31 bytes: the day is zero-padded and the offset is always
// `+0000`.
func (d DateTime) RFC2822() string {
	year, month, day, hour, minute, second := d.Parts()

	var out [31]byte
	copy(out[0:3], d.Weekday().Abbr())
	out[3], out[4] = ',', ' '
	put2(out[5:7], day)
	out[7] = ' '
	copy(out[8:11], Month(month).Abbr())
	out[11] = ' '
	out[12], out[13] = '2', '0'
	put2(out[14:16], year-calendar.MinYear)
	out[16] = ' '
	put2(out[17:19], hour)
	out[19] = ':'
	put2(out[20:22], minute)
	out[22] = ':'
	put2(out[23:25], second)
	copy(out[25:], " +0000")
	return string(out[:])
}
