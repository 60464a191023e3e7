package engine

import (
	"math"
	"strings"
	"time"

	"bdcal/internal/service"
)

// Tier is one reminder lead-time.
type Tier struct {
	Label      string // diagnostic label, e.g. "当日"
	DaysBefore int
}

// Tiers are processed in this fixed order for every event.
var Tiers = [4]Tier{
	{Label: "当日", DaysBefore: 0},
	{Label: "前日", DaysBefore: 1},
	{Label: "3日前", DaysBefore: 3},
	{Label: "1週間前", DaysBefore: 7},
}

// OffsetState classifies the outcome of a reminder offset computation.
type OffsetState int

const (
	// OffsetActive means the tier yields the returned minute count.
	OffsetActive OffsetState = iota
	// OffsetClamped means the requested same-day time is after midnight
	// of the event day; the reminder fires at 0 minutes before start,
	// the earliest the store allows.
	OffsetClamped
	// OffsetInactive means the requested time is after the event start
	// for a days-before tier; no reminder is attached.
	OffsetInactive
)

// minutesBefore computes how many minutes before the event start a
// tier's reminder fires. anchor is midnight of the event day. The
// returned minutes are meaningful only for OffsetActive and
// OffsetClamped (where they are always 0).
func minutesBefore(anchor time.Time, ct ClockTime, daysBefore int) (int64, OffsetState) {
	target := anchor.AddDate(0, 0, -daysBefore)
	target = time.Date(target.Year(), target.Month(), target.Day(),
		ct.Hour, ct.Minute, 0, 0, anchor.Location())

	diff := anchor.Sub(target)
	if diff < 0 {
		if daysBefore == 0 {
			return 0, OffsetClamped
		}
		return 0, OffsetInactive
	}
	return int64(math.Round(diff.Minutes())), OffsetActive
}

// TierOffset is one tier's computed reminder for a concrete anchor day.
type TierOffset struct {
	Tier     Tier
	TimeText string
	Minutes  int64
	State    OffsetState
	Err      error // time-text parse failure; Minutes and State are meaningless
}

// TierOffsets computes each requested tier's offset against the anchor
// day (midnight of the event day). Tiers with empty time text are not
// requested and are omitted. A parse failure deactivates only that
// tier, reported through Err.
func TierOffsets(anchor time.Time, tierTimes [4]string) []TierOffset {
	var out []TierOffset
	for ti, tier := range Tiers {
		text := strings.TrimSpace(tierTimes[ti])
		if text == "" {
			continue
		}
		to := TierOffset{Tier: tier, TimeText: text}
		ct, err := ParseClockTime(text)
		if err != nil {
			to.Err = err
		} else {
			to.Minutes, to.State = minutesBefore(anchor, ct, tier.DaysBefore)
		}
		out = append(out, to)
	}
	return out
}

// ParseChannel interprets the notification-channel cell. Email matches
// case-insensitively ("email", "mail", "メール"); the popup label
// "通知アラート" must match exactly, as in the source sheet convention.
// Anything else means no reminder is delivered.
func ParseChannel(text string) service.Channel {
	trimmed := strings.TrimSpace(text)
	switch strings.ToLower(trimmed) {
	case "メール", "mail", "email":
		return service.ChannelEmail
	}
	if trimmed == "通知アラート" {
		return service.ChannelPopup
	}
	return service.ChannelNone
}
