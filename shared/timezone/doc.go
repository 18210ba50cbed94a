// Package timezone pins wall-clock helpers to APP_TIMEZONE.
//
// Rating days, dashboard periods and export file names are all derived from
// Now, so every caller agrees on what "today" means:
//
//	day := timezone.Today()                    // 2026-10-19
//	since := timezone.StartOfWeek(timezone.Now()) // Monday 00:00
//
// Only IANA names are accepted ("UTC", "Asia/Jakarta"). An unknown name falls
// back to UTC with an error log at init.
package timezone
