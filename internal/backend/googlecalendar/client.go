// Package googlecalendar implements the service.Calendar interface
// using the Google Calendar API.
package googlecalendar

import (
	"context"
	"fmt"
	"net/http"
	"time"

	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"bdcal/internal/backend"
	"bdcal/internal/config"
	"bdcal/internal/service"
)

const (
	// APITimeout is the timeout for API calls.
	APITimeout = 10 * time.Second

	// allDayDateFormat is the wire format of all-day event dates.
	allDayDateFormat = "2006-01-02"
)

// Client implements service.Calendar using the Google Calendar API.
type Client struct {
	svc        *calendar.Service
	calendarID string
}

// New creates a Google Calendar client for the configured calendar.
// Requires oauth_client.json and token.json to exist.
func New(ctx context.Context, cfg *config.Config) (*Client, error) {
	httpClient, err := backend.NewHTTPClient(ctx, cfg)
	if err != nil {
		return nil, err
	}

	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}

	return &Client{svc: svc, calendarID: cfg.Settings.CalendarID}, nil
}

// NewWithHTTPClient creates a client with a custom HTTP client (for testing).
func NewWithHTTPClient(ctx context.Context, httpClient *http.Client, calendarID string) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, err
	}
	return &Client{svc: svc, calendarID: calendarID}, nil
}

// EventsOn returns the all-day events starting on the given day.
// titleQuery is passed as the free-text query; events without an
// all-day start (timed events) are dropped.
func (c *Client) EventsOn(ctx context.Context, day time.Time, titleQuery string) ([]service.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	loc := day.Location()
	windowStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)
	windowEnd := time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 0, loc)

	var result []service.Event
	err := c.svc.Events.List(c.calendarID).
		TimeMin(windowStart.Format(time.RFC3339)).
		TimeMax(windowEnd.Format(time.RFC3339)).
		Q(titleQuery).
		SingleEvents(true).
		MaxResults(250).
		Context(ctx).
		Pages(ctx, func(resp *calendar.Events) error {
			for _, ev := range resp.Items {
				if ev.Start == nil || ev.Start.Date == "" {
					continue
				}
				start, err := time.ParseInLocation(allDayDateFormat, ev.Start.Date, loc)
				if err != nil {
					continue
				}
				result = append(result, service.Event{
					ID:          ev.Id,
					Title:       ev.Summary,
					Description: ev.Description,
					Day:         start,
				})
			}
			return nil
		})
	if err != nil {
		return nil, backend.WrapError(err)
	}

	return result, nil
}

// CreateAllDayEvent creates a new all-day event with reminders disabled
// (no calendar defaults; the engine attaches its own).
func (c *Client) CreateAllDayEvent(ctx context.Context, title string, day time.Time, description string) (service.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	ev := &calendar.Event{
		Summary:     title,
		Description: description,
		Start:       &calendar.EventDateTime{Date: day.Format(allDayDateFormat)},
		End:         &calendar.EventDateTime{Date: day.AddDate(0, 0, 1).Format(allDayDateFormat)},
		Reminders: &calendar.EventReminders{
			UseDefault:      false,
			ForceSendFields: []string{"UseDefault"},
		},
	}

	created, err := c.svc.Events.Insert(c.calendarID, ev).Context(ctx).Do()
	if err != nil {
		return service.Event{}, backend.WrapError(err)
	}

	return service.Event{
		ID:          created.Id,
		Title:       created.Summary,
		Description: created.Description,
		Day:         day,
	}, nil
}

// UpdateAllDayEvent overwrites an event's title, description, and
// all-day date.
func (c *Client) UpdateAllDayEvent(ctx context.Context, eventID, title string, day time.Time, description string) error {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	patch := &calendar.Event{
		Summary:     title,
		Description: description,
		Start:       &calendar.EventDateTime{Date: day.Format(allDayDateFormat)},
		End:         &calendar.EventDateTime{Date: day.AddDate(0, 0, 1).Format(allDayDateFormat)},
	}

	_, err := c.svc.Events.Patch(c.calendarID, eventID, patch).Context(ctx).Do()
	if err != nil {
		return backend.WrapError(err)
	}
	return nil
}

// ClearReminders removes all reminder overrides and detaches the
// calendar's defaults from the event.
func (c *Client) ClearReminders(ctx context.Context, eventID string) error {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	patch := &calendar.Event{
		Reminders: &calendar.EventReminders{
			UseDefault:      false,
			Overrides:       nil,
			ForceSendFields: []string{"UseDefault", "Overrides"},
		},
	}

	_, err := c.svc.Events.Patch(c.calendarID, eventID, patch).Context(ctx).Do()
	if err != nil {
		return backend.WrapError(err)
	}
	return nil
}

// AddReminder appends one reminder override to the event. The API has
// no append operation, so the current overrides are read back first.
func (c *Client) AddReminder(ctx context.Context, eventID string, ch service.Channel, minutesBefore int64) error {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	current, err := c.svc.Events.Get(c.calendarID, eventID).Context(ctx).Do()
	if err != nil {
		return backend.WrapError(err)
	}

	var overrides []*calendar.EventReminder
	if current.Reminders != nil {
		overrides = current.Reminders.Overrides
	}
	overrides = append(overrides, &calendar.EventReminder{
		Method:          ch.String(),
		Minutes:         minutesBefore,
		ForceSendFields: []string{"Minutes"},
	})

	patch := &calendar.Event{
		Reminders: &calendar.EventReminders{
			UseDefault:      false,
			Overrides:       overrides,
			ForceSendFields: []string{"UseDefault"},
		},
	}

	_, err = c.svc.Events.Patch(c.calendarID, eventID, patch).Context(ctx).Do()
	if err != nil {
		return backend.WrapError(err)
	}
	return nil
}

// ListCalendars returns the calendars on the user's calendar list.
func (c *Client) ListCalendars(ctx context.Context) ([]service.CalendarInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	var result []service.CalendarInfo
	err := c.svc.CalendarList.List().
		MaxResults(100).
		Context(ctx).
		Pages(ctx, func(resp *calendar.CalendarList) error {
			for _, entry := range resp.Items {
				result = append(result, service.CalendarInfo{
					ID:      entry.Id,
					Summary: entry.Summary,
					Primary: entry.Primary,
				})
			}
			return nil
		})
	if err != nil {
		return nil, backend.WrapError(err)
	}

	return result, nil
}
