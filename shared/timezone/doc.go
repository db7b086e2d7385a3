// Package timezone keeps every time the application touches in a single
// configured location.
//
// The location comes from the APP_TIMEZONE environment variable (an IANA
// name such as "UTC" or "Asia/Jakarta") and is resolved when the package
// is first imported. All call sites go through the package helpers rather
// than the time package directly:
//
//	now := timezone.Now()
//	t, err := timezone.Parse("2006-01-02", "2026-09-01")
//	s := timezone.Format(t, "2006-01-02 15:04:05")
//	local := timezone.ToAppTime(someTime)
//
// Parsing in particular matters for booking dates: a date string parsed
// here lands at midnight in the app location, so date comparisons across
// the codebase agree.
package timezone
