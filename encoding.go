package civil2k

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/itchio/headway/counter"
	"github.com/lunixbochs/struc"

	"github.com/civiltime/civil2k/internal/calendar"
)

var (
	errUnimplemented  = errors.New("method is not implemented")
	errBufferTooSmall = errors.New("provided slice buffer is not big enough to pack all data into")
	errBadBinaryLen   = errors.New("binary datetime must be exactly 4 bytes")
)

// wireDateTimeSize is the packed length of a wireDateTime record: the
// 4-byte stamp plus six single-byte civil fields.
const wireDateTimeSize = 10

// stampField is the on-wire form of the epoch counter: 4 bytes,
// big-endian, unsigned.
type stampField uint32

var _ struc.Custom = stampField(0)

func (f stampField) Pack(p []byte, _ *struc.Options) (int, error) {
	if len(p) < 4 {
		return 0, errBufferTooSmall
	}

	binary.BigEndian.PutUint32(p, uint32(f))
	return 4, nil
}

func (f stampField) Unpack(_ io.Reader, _ int, _ *struc.Options) error {
	// Decoding goes through ReadFrom, which reads the raw record and
	// trusts the stamp bytes directly.
	return errUnimplemented
}

func (f stampField) String() string {
	return "stampField"
}

func (f stampField) Size(_ *struc.Options) int {
	return 4
}

// wireDateTime is the 10-byte record layout. The stamp is the canonical
// value; the civil fields duplicate it so the record is legible in a hex
// dump without decoding. Readers trust the stamp and ignore the
// duplicates. Year is stored as an offset from 2000 so it fits a single
// byte.
type wireDateTime struct {
	Stamp  stampField
	Year   uint8
	Month  uint8
	Day    uint8
	Hour   uint8
	Minute uint8
	Second uint8
}

func newWireDateTime(d DateTime) wireDateTime {
	year, month, day, hour, minute, second := d.Parts()
	return wireDateTime{
		Stamp:  stampField(d.stamp),
		Year:   uint8(year - calendar.MinYear),
		Month:  uint8(month),
		Day:    uint8(day),
		Hour:   uint8(hour),
		Minute: uint8(minute),
		Second: uint8(second),
	}
}

// WriteTo emits the 10-byte record form of the datetime.
func (d DateTime) WriteTo(w io.Writer) (int64, error) {
	cw := counter.NewWriter(w)

	record := newWireDateTime(d)
	if err := struc.Pack(cw, &record); err != nil {
		return cw.Count(), fmt.Errorf("failed to pack datetime record: %w", err)
	}

	return cw.Count(), nil
}

// ReadFrom replaces the datetime with one decoded from a 10-byte record.
// The duplicated civil fields are not verified: the stamp alone decides
// the value, and an out-of-range stamp saturates at the upper bound.
func (d *DateTime) ReadFrom(r io.Reader) (int64, error) {
	var buf [wireDateTimeSize]byte
	n, err := io.ReadFull(r, buf[:])
	if err != nil {
		return int64(n), fmt.Errorf("failed to read datetime record: %w", err)
	}

	*d = FromStamp(binary.BigEndian.Uint32(buf[:4]))
	return int64(n), nil
}

// MarshalBinary returns the 4-byte big-endian stamp.
func (d DateTime) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, d.stamp)
	return buf, nil
}

// UnmarshalBinary replaces the datetime with the 4-byte big-endian stamp
// in data, saturating anything past the upper bound.
func (d *DateTime) UnmarshalBinary(data []byte) error {
	if len(data) != 4 {
		return errBadBinaryLen
	}
	*d = FromStamp(binary.BigEndian.Uint32(data))
	return nil
}
