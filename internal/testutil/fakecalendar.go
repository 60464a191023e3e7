package testutil

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"bdcal/internal/service"
)

// ErrNotFound is returned when a resource is not found.
var ErrNotFound = errors.New("not found")

// FakeReminder is one reminder stored on a fake event.
type FakeReminder struct {
	Channel       service.Channel
	MinutesBefore int64
}

// FakeEvent is the store-side record of an event, including reminders.
type FakeEvent struct {
	service.Event
	Reminders []FakeReminder
}

// FakeCalendar is an in-memory implementation of service.Calendar for
// testing. Events keep insertion order, so "first match wins" behavior
// is deterministic.
type FakeCalendar struct {
	mu     sync.RWMutex
	events []*FakeEvent
	nextID int

	calendars []service.CalendarInfo

	// Error injection for testing
	EventsOnErr       error
	CreateErr         error
	UpdateErr         error
	ClearRemindersErr error
	AddReminderErr    error
	ListCalendarsErr  error
	FailCreateOn      map[string]error // "2006-01-02" day -> error
}

// NewFakeCalendar creates an empty FakeCalendar with a primary calendar.
func NewFakeCalendar() *FakeCalendar {
	return &FakeCalendar{
		calendars: []service.CalendarInfo{
			{ID: "primary", Summary: "My Calendar", Primary: true},
		},
		FailCreateOn: make(map[string]error),
	}
}

// AddCalendar adds a calendar to the fake list.
func (f *FakeCalendar) AddCalendar(id, summary string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calendars = append(f.calendars, service.CalendarInfo{ID: id, Summary: summary})
}

// SeedEvent inserts an event directly, bypassing the port (for setting
// up pre-existing store state).
func (f *FakeCalendar) SeedEvent(title string, day time.Time, description string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.insertLocked(title, day, description)
}

// Events returns a snapshot of all stored events in insertion order.
func (f *FakeCalendar) Events() []FakeEvent {
	f.mu.RLock()
	defer f.mu.RUnlock()
	result := make([]FakeEvent, len(f.events))
	for i, ev := range f.events {
		result[i] = *ev
		result[i].Reminders = append([]FakeReminder(nil), ev.Reminders...)
	}
	return result
}

// RemindersFor returns the reminders stored on one event.
func (f *FakeCalendar) RemindersFor(eventID string) []FakeReminder {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, ev := range f.events {
		if ev.ID == eventID {
			return append([]FakeReminder(nil), ev.Reminders...)
		}
	}
	return nil
}

// EventsOn implements service.Calendar. The title filter is a substring
// match, like the real store's free-text query.
func (f *FakeCalendar) EventsOn(ctx context.Context, day time.Time, titleQuery string) ([]service.Event, error) {
	if f.EventsOnErr != nil {
		return nil, f.EventsOnErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()

	var result []service.Event
	for _, ev := range f.events {
		if !sameDay(ev.Day, day) {
			continue
		}
		if titleQuery != "" && !strings.Contains(ev.Title, titleQuery) {
			continue
		}
		result = append(result, ev.Event)
	}
	return result, nil
}

// CreateAllDayEvent implements service.Calendar.
func (f *FakeCalendar) CreateAllDayEvent(ctx context.Context, title string, day time.Time, description string) (service.Event, error) {
	if f.CreateErr != nil {
		return service.Event{}, f.CreateErr
	}
	if err, ok := f.FailCreateOn[day.Format("2006-01-02")]; ok && err != nil {
		return service.Event{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.insertLocked(title, day, description)
	return service.Event{ID: id, Title: title, Description: description, Day: day}, nil
}

// UpdateAllDayEvent implements service.Calendar.
func (f *FakeCalendar) UpdateAllDayEvent(ctx context.Context, eventID, title string, day time.Time, description string) error {
	if f.UpdateErr != nil {
		return f.UpdateErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ev := range f.events {
		if ev.ID == eventID {
			ev.Title = title
			ev.Day = day
			ev.Description = description
			return nil
		}
	}
	return ErrNotFound
}

// ClearReminders implements service.Calendar.
func (f *FakeCalendar) ClearReminders(ctx context.Context, eventID string) error {
	if f.ClearRemindersErr != nil {
		return f.ClearRemindersErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ev := range f.events {
		if ev.ID == eventID {
			ev.Reminders = nil
			return nil
		}
	}
	return ErrNotFound
}

// AddReminder implements service.Calendar.
func (f *FakeCalendar) AddReminder(ctx context.Context, eventID string, ch service.Channel, minutesBefore int64) error {
	if f.AddReminderErr != nil {
		return f.AddReminderErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ev := range f.events {
		if ev.ID == eventID {
			ev.Reminders = append(ev.Reminders, FakeReminder{Channel: ch, MinutesBefore: minutesBefore})
			return nil
		}
	}
	return ErrNotFound
}

// ListCalendars implements service.Calendar.
func (f *FakeCalendar) ListCalendars(ctx context.Context) ([]service.CalendarInfo, error) {
	if f.ListCalendarsErr != nil {
		return nil, f.ListCalendarsErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	result := make([]service.CalendarInfo, len(f.calendars))
	copy(result, f.calendars)
	return result, nil
}

func (f *FakeCalendar) insertLocked(title string, day time.Time, description string) string {
	f.nextID++
	id := fmt.Sprintf("ev-%d", f.nextID)
	f.events = append(f.events, &FakeEvent{
		Event: service.Event{ID: id, Title: title, Description: description, Day: day},
	})
	return id
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
