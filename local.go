package civil2k

import (
	"os"
	"sync"
	"time"
)

// localZone resolves the process's local time zone once. $TZ wins when it
// names a loadable zone; otherwise the platform default applies.
var localZone = sync.OnceValue(func() *time.Location {
	if tz := os.Getenv("TZ"); tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return time.Local
})

// LocalOffset is a UTC offset in seconds east of UTC. Negative values are
// west of the meridian.
type LocalOffset int

// OffsetAt returns the local zone's offset in effect at the given
// instant, daylight-saving shifts included.
func OffsetAt(d DateTime) LocalOffset {
	_, offset := time.Unix(d.Unix(), 0).In(localZone()).Zone()
	return LocalOffset(offset)
}

// NowLocalOffset returns the local zone's offset in effect right now.
func NowLocalOffset() LocalOffset {
	return OffsetAt(Now())
}

// Seconds returns the offset as a plain count of seconds east of UTC.
func (o LocalOffset) Seconds() int { return int(o) }

// Apply shifts the datetime by the offset, saturating at the bounds of
// the representable century.
func (o LocalOffset) Apply(d DateTime) DateTime {
	if o >= 0 {
		return d.Add(uint32(o))
	}
	return d.Sub(uint32(-o))
}

// Local returns the datetime shifted into the process's local wall time.
// The result is still a plain civil tuple; it carries no zone of its own,
// so round-tripping through Local is lossy near the century bounds and
// across DST transitions.
func (d DateTime) Local() DateTime {
	return OffsetAt(d).Apply(d)
}

// NowLocal returns the current moment as local wall time.
func NowLocal() DateTime {
	return Now().Local()
}
