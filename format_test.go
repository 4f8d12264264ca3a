package civil2k

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestDateTime_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		d    DateTime
		want string
	}{
		{"min", Min(), "2000-01-01 00:00:00"},
		{"max", Max(), "2099-12-31 23:59:59"},
		{"single digit fields", New(2005, 3, 7, 4, 8, 9), "2005-03-07 04:08:09"},
		{"leap day", New(2024, 2, 29, 12, 0, 0), "2024-02-29 12:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.d.String())
		})
	}
}

func TestFormatted_Sections(t *testing.T) {
	t.Parallel()

	f := NewFormatted(New(2024, 10, 31, 12, 34, 56))

	assert.Equal(t, "2024-10-31 12:34:56", f.String())
	assert.Equal(t, "2024-10-31 12:34:56", string(f.Bytes()))
	assert.Equal(t, "2024-10-31", f.Date())
	assert.Equal(t, "12:34:56", f.Time())
	assert.Equal(t, "2024", f.Year())
}

func TestFormatted_SetDateTimeRewritesWholeBuffer(t *testing.T) {
	t.Parallel()

	var f Formatted
	f.SetDateTime(Max())
	f.SetDateTime(Min())

	assert.Equal(t, "2000-01-01 00:00:00", f.String(), "no bytes of the previous rendering should survive")

	f.SetParts(2024, 10, 31, 12, 34, 56)
	assert.Equal(t, "2024-10-31 12:34:56", f.String())
}

func TestFormatted_DateTimeRoundtrip(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		d := FromStamp(rapid.Uint32Range(0, MaxStamp).Draw(t, "stamp"))
		assert.Equal(t, d, NewFormatted(d).DateTime())
	})
}

func TestDateTime_RFC3339(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2024-10-31T12:34:56Z", New(2024, 10, 31, 12, 34, 56).RFC3339())
	assert.Equal(t, "2000-01-01T00:00:00Z", Min().RFC3339())
	assert.Equal(t, "2099-12-31T23:59:59Z", Max().RFC3339())
}

func TestDateTime_RFC2822(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		d    DateTime
		want string
	}{
		{"halloween", New(2024, 10, 31, 0, 0, 0), "Thu, 31 Oct 2024 00:00:00 +0000"},
		{"min", Min(), "Sat, 01 Jan 2000 00:00:00 +0000"},
		{"max", Max(), "Thu, 31 Dec 2099 23:59:59 +0000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := tt.d.RFC2822()
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, 31, "rendering is fixed width, day zero-padded")
		})
	}
}
