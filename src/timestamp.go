package bulletin

import (
	"time"

	"github.com/lestrrat-go/strftime"
)

// Clock is where timestamps get the time from.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

const UTC_TIMESTAMP_FORMAT = "%H%M%Sz"
const LOCAL_TIMESTAMP_FORMAT = "%H%M%S%z"

var utcTimestamp = mustPattern(UTC_TIMESTAMP_FORMAT)
var localTimestamp = mustPattern(LOCAL_TIMESTAMP_FORMAT)

// mustPattern compiles a strftime pattern.  Only constants are passed in
// so a bad one is a programming error.
func mustPattern(pattern string) *strftime.Strftime {
	var f, err = strftime.New(pattern)
	if err != nil {
		panic("timestamp format " + pattern + ": " + err.Error())
	}

	return f
}

/*------------------------------------------------------------------
 *
 * Name:	BuildTimestamp
 *
 * Purpose:	Time of day prefix for message and bulletin text.
 *
 * Returns:	"HHMMSSz" for UTC, following the APRS convention of a
 *		trailing z, or "HHMMSS+HHMM" for local time with the
 *		numeric offset from UTC.
 *
 *------------------------------------------------------------------*/

func BuildTimestamp(cfg FrameConfig, clock Clock) string {
	var now = clock.Now()

	if cfg.UseUTC {
		return utcTimestamp.FormatString(now.UTC())
	}

	// Whatever zone the clock reports is taken as local.
	return localTimestamp.FormatString(now)
}
