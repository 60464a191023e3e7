package service

import "time"

// Event represents an all-day calendar event.
type Event struct {
	ID          string
	Title       string
	Description string
	Day         time.Time // all-day start, midnight in the local timezone
}

// CalendarInfo describes one calendar available to the user.
type CalendarInfo struct {
	ID      string
	Summary string
	Primary bool
}

// Channel is the delivery channel for a reminder.
type Channel int

const (
	// ChannelNone means no reminder is delivered.
	ChannelNone Channel = iota
	// ChannelEmail delivers reminders by email.
	ChannelEmail
	// ChannelPopup delivers reminders as popup alerts.
	ChannelPopup
)

// String returns the channel name used by the Calendar API.
func (c Channel) String() string {
	switch c {
	case ChannelEmail:
		return "email"
	case ChannelPopup:
		return "popup"
	default:
		return "none"
	}
}

// Clients bundles the two backend ports a command may need.
type Clients struct {
	Sheet    Sheet
	Calendar Calendar
}
