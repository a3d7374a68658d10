// Package datekit provides calendar period boundary helpers over time.Time:
// the first and last instants of the hour, day, week, month and year
// containing a given time, plus a Gregorian leap-year test.
//
// All boundaries preserve the input's location. Weeks start on Monday.
// "End of" boundaries are the last representable nanosecond of the period,
// so EndOfDay(t).Add(time.Nanosecond) is the next day's StartOfDay.
package datekit
