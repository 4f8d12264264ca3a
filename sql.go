package civil2k

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/civiltime/civil2k/internal/calendar"
)

// Value stores the datetime as its epoch-seconds counter, so a BIGINT
// column holds it losslessly and sorts chronologically.
func (d DateTime) Value() (driver.Value, error) {
	return int64(d.stamp), nil
}

// Scan accepts integer columns as epoch seconds, text columns in any
// layout Parse recognizes, and native timestamp columns via their unix
// time. Integers outside the representable window fail with ErrUnderflow
// or ErrOverflow instead of saturating.
func (d *DateTime) Scan(src any) error {
	switch v := src.(type) {
	case int64:
		if v < 0 {
			return ErrUnderflow
		}
		if uint64(v) > uint64(calendar.MaxStamp) {
			return ErrOverflow
		}
		*d = DateTime{stamp: uint32(v)}
		return nil
	case []byte:
		parsed, err := ParseBytes(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case string:
		parsed, err := Parse(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case time.Time:
		parsed, err := CheckedFromUnix(v.Unix())
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into DateTime", src)
	}
}
