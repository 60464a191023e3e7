// Package engine implements the birthday-to-event synchronization core:
// tolerant parsing of the sheet's date and time text, idempotent event
// upserts keyed by a stable per-row tag, reminder offset computation,
// and per-row outcome aggregation across the two target years.
package engine

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"bdcal/internal/service"
)

// StatusRegistered is written into a row's status cell once both target
// years have been synchronized. Rows that fail or are skipped keep
// their previous status verbatim.
const StatusRegistered = "🙆‍♂️登録済み"

// Runner drives a full synchronization run. The calendar store is
// shared and offers no locking; the tag-and-date matching in syncYear
// is only safe because a run is single-threaded and rows are processed
// strictly in order. Concurrent runs against the same store are
// unsupported.
type Runner struct {
	Calendar service.Calendar
	Clock    Clock
	Log      *slog.Logger
}

// Summary aggregates per-row outcomes for the end-of-run report.
type Summary struct {
	Rows       int
	Registered int
	Skipped    int // blank or incomplete rows
	ParseFails int
	Failed     int // store failures in either target year
}

// Run processes every row in source order and returns the status column
// to write back, statuses[i] belonging to rows[i]. Nothing is persisted
// here; the caller performs the single batch status write.
func (r *Runner) Run(ctx context.Context, rows [][]string) ([]string, Summary) {
	now := r.Clock.Now()
	loc := now.Location()
	currentYear := now.Year()
	log := r.logger()

	statuses := make([]string, len(rows))
	for i, row := range rows {
		if len(row) > colStatus {
			statuses[i] = row[colStatus]
		}
	}

	sum := Summary{Rows: len(rows)}

	for i, row := range rows {
		sheetRow := i + 2
		plan := PlanRow(row, sheetRow)

		switch plan.Disposition {
		case RowEmpty:
			log.Debug("skipping blank row", "row", sheetRow)
			sum.Skipped++
			continue
		case RowIncomplete:
			log.Warn("row is missing name or birthday, skipping",
				"row", sheetRow, "name", plan.Name, "birthday", plan.BirthdayText)
			sum.Skipped++
			continue
		case RowBadDate:
			log.Warn("could not parse birthday, skipping",
				"row", sheetRow, "name", plan.Name, "birthday", plan.BirthdayText,
				"error", plan.DateErr)
			sum.ParseFails++
			continue
		}

		// Current year first, then next year, sequentially. Each year
		// queries and mutates the store independently so a failure in
		// one never affects matching in the other.
		okCurrent := r.syncYear(ctx, plan, plan.Date.Date(currentYear, loc))
		okNext := r.syncYear(ctx, plan, plan.Date.Date(currentYear+1, loc))

		if okCurrent && okNext {
			statuses[i] = StatusRegistered
			sum.Registered++
			log.Info("registered", "row", sheetRow, "name", plan.Name)
		} else {
			sum.Failed++
			log.Warn("registration incomplete, previous status kept",
				"row", sheetRow, "name", plan.Name)
		}
	}

	return statuses, sum
}

// EventTitle returns the event title used for a person's birthday.
func EventTitle(name string) string {
	return name + "の誕生日"
}

// EventDescription returns the event description: celebratory text plus
// the row's tag on its own line.
func EventDescription(name, tag string) string {
	return name + "の誕生日です。おめでとうございます！\n" + tag
}

// syncYear upserts one (row, year) event and replaces its reminders.
// Every store error is absorbed here and reported as a false return so
// that no failure can abort the rest of the run.
func (r *Runner) syncYear(ctx context.Context, plan RowPlan, day time.Time) bool {
	log := r.logger().With("row", plan.SheetRow, "name", plan.Name, "year", day.Year())

	title := EventTitle(plan.Name)
	tag := EventTag(plan.SheetRow)

	events, err := r.Calendar.EventsOn(ctx, day, title)
	if err != nil {
		log.Error("event search failed", "error", err)
		return false
	}

	// The title filter above is an optimization; the tag plus the exact
	// all-day date is what identifies the event. If duplicates carry
	// the same tag and date, the first one found is canonical and the
	// others are left untouched.
	var existing *service.Event
	for j := range events {
		if strings.Contains(events[j].Description, tag) && sameDay(events[j].Day, day) {
			existing = &events[j]
			break
		}
	}

	description := EventDescription(plan.Name, tag)

	var eventID string
	if existing != nil {
		log.Debug("updating existing event", "event_id", existing.ID)
		if err := r.Calendar.UpdateAllDayEvent(ctx, existing.ID, title, day, description); err != nil {
			log.Error("event update failed", "event_id", existing.ID, "error", err)
			return false
		}
		eventID = existing.ID
	} else {
		log.Debug("creating event")
		created, err := r.Calendar.CreateAllDayEvent(ctx, title, day, description)
		if err != nil {
			log.Error("event creation failed", "error", err)
			return false
		}
		eventID = created.ID
	}

	return r.syncReminders(ctx, log, plan, eventID, day)
}

// syncReminders clears the event's reminders and re-attaches one per
// active tier on the row's channel.
func (r *Runner) syncReminders(ctx context.Context, log *slog.Logger, plan RowPlan, eventID string, anchor time.Time) bool {
	if err := r.Calendar.ClearReminders(ctx, eventID); err != nil {
		log.Error("clearing reminders failed", "event_id", eventID, "error", err)
		return false
	}

	for _, to := range TierOffsets(anchor, plan.TierTimes) {
		if to.Err != nil {
			log.Warn("invalid notification time, tier skipped",
				"tier", to.Tier.Label, "time", to.TimeText, "error", to.Err)
			continue
		}
		switch to.State {
		case OffsetClamped:
			log.Warn("same-day time is after the event's midnight start; reminder fires at event start",
				"tier", to.Tier.Label, "time", to.TimeText)
		case OffsetInactive:
			log.Warn("notification time is after the event start, tier skipped",
				"tier", to.Tier.Label, "time", to.TimeText)
			continue
		}
		if plan.Channel == service.ChannelNone {
			continue
		}
		if err := r.Calendar.AddReminder(ctx, eventID, plan.Channel, to.Minutes); err != nil {
			log.Error("attaching reminder failed",
				"tier", to.Tier.Label, "minutes", to.Minutes, "error", err)
			return false
		}
	}
	return true
}

func (r *Runner) logger() *slog.Logger {
	if r.Log != nil {
		return r.Log
	}
	return slog.Default()
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
