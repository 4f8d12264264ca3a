package civil2k

import (
	"fmt"
	"strconv"

	"github.com/civiltime/civil2k/internal/calendar"
)

// MarshalJSON renders the datetime as a quoted `YYYY-MM-DD hh:mm:ss`
// string.
func (d DateTime) MarshalJSON() ([]byte, error) {
	f := NewFormatted(d)

	buf := make([]byte, 0, len(f)+2)
	buf = append(buf, '"')
	buf = append(buf, f[:]...)
	buf = append(buf, '"')
	return buf, nil
}

// UnmarshalJSON accepts either a quoted string in any layout Parse
// recognizes, or a bare unsigned integer taken as epoch seconds. An
// integer past the upper bound is ErrOverflow rather than a silent
// saturation: JSON is an interchange boundary, not an arithmetic one.
func (d *DateTime) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return ErrInvalidFormat
	}

	if data[0] == '"' {
		if len(data) < 2 || data[len(data)-1] != '"' {
			return ErrInvalidFormat
		}
		parsed, err := ParseBytes(data[1 : len(data)-1])
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	}

	stamp, err := strconv.ParseUint(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("failed to parse datetime as epoch seconds: %w", ErrInvalidFormat)
	}
	if stamp > uint64(calendar.MaxStamp) {
		return ErrOverflow
	}

	*d = DateTime{stamp: uint32(stamp)}
	return nil
}
