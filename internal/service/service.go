// Package service defines the backend-agnostic ports for sheet and calendar operations.
package service

import (
	"context"
	"time"
)

// Sheet is the tabular source holding one birthday configuration per row.
// All Google Sheets API calls go through this interface.
// The engine never imports the Google SDK directly.
type Sheet interface {
	// Rows returns the data rows (row 2 onward, the header excluded) as
	// display text, columns A through H in source order:
	// status, name, birthday, same-day time, day-before time,
	// 3-days-before time, week-before time, channel.
	// Trailing empty cells may be absent, so rows can be shorter than 8.
	Rows(ctx context.Context) ([][]string, error)

	// WriteStatuses overwrites the status column for all data rows as a
	// single contiguous range write, statuses[0] landing on row 2.
	WriteStatuses(ctx context.Context, statuses []string) error
}

// Calendar is the calendar store holding the birthday events.
// All Google Calendar API calls go through this interface.
type Calendar interface {
	// EventsOn returns the all-day events whose start falls on the given
	// day. titleQuery is a store-level substring filter and is an
	// optimization only; callers must not rely on it for correctness.
	EventsOn(ctx context.Context, day time.Time, titleQuery string) ([]Event, error)

	// CreateAllDayEvent creates a new all-day event.
	CreateAllDayEvent(ctx context.Context, title string, day time.Time, description string) (Event, error)

	// UpdateAllDayEvent overwrites an existing event's title, all-day
	// date, and description.
	UpdateAllDayEvent(ctx context.Context, eventID, title string, day time.Time, description string) error

	// ClearReminders removes all reminders from an event.
	ClearReminders(ctx context.Context, eventID string) error

	// AddReminder attaches one reminder firing minutesBefore minutes
	// before the event start.
	AddReminder(ctx context.Context, eventID string, ch Channel, minutesBefore int64) error

	// ListCalendars returns the calendars visible to the user.
	ListCalendars(ctx context.Context) ([]CalendarInfo, error)
}
