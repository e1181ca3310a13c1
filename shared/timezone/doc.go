// Package timezone holds the hotel's wall clock.
//
// Timestamps (created_at, last_login, event times) are produced by Now and rendered by Format
// in the zone named by APP_TIMEZONE, loaded once at import. Stay dates are different: check-in
// and check-out are calendar dates parsed by ParseDate and never shifted between zones, so
// night counts do not move across daylight saving changes.
package timezone
