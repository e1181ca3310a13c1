package timezone

import (
	"time"

	"hotel/config"

	"github.com/rs/zerolog/log"
)

// DateLayout is the calendar date format used by check-in and check-out.
const DateLayout = "2006-01-02"

var appLocation = time.UTC

func init() {
	name := config.Get().App.Timezone
	if name == "" {
		log.Warn().Msg("APP_TIMEZONE not set, using UTC")

		return
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).Msg("unknown timezone, using UTC")

		return
	}

	appLocation = loc

	log.Info().Str("timezone", loc.String()).Msg("application timezone loaded")
}

// Now returns the current time in the hotel's timezone.
func Now() time.Time {
	return time.Now().In(appLocation)
}

func ToAppTime(t time.Time) time.Time {
	return t.In(appLocation)
}

func GetLocation() *time.Location {
	return appLocation
}

// Format renders t in the hotel's timezone.
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

// ParseDate reads a YYYY-MM-DD calendar date. Dates are kept at UTC midnight so the
// difference between two of them is always a whole number of days.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value) //nolint:wrapcheck
}

// StartOfMonth returns midnight on the first day of t's month, in t's location.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
