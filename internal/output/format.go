// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"bdcal/internal/engine"
	"bdcal/internal/service"
)

// FormatPlanLine writes one preview line for a classified sheet row.
// Format: "{ROW:>4}  {DETAIL}\n".
func FormatPlanLine(w io.Writer, plan engine.RowPlan, offsets []engine.TierOffset) {
	switch plan.Disposition {
	case engine.RowEmpty:
		fmt.Fprintf(w, "%4d  (blank)\n", plan.SheetRow)
	case engine.RowIncomplete:
		fmt.Fprintf(w, "%4d  incomplete row: name=%q birthday=%q\n",
			plan.SheetRow, plan.Name, plan.BirthdayText)
	case engine.RowBadDate:
		fmt.Fprintf(w, "%4d  %s: unparseable birthday %q\n",
			plan.SheetRow, displayName(plan.Name), plan.BirthdayText)
	default:
		fmt.Fprintf(w, "%4d  %s  %d/%d  %s%s\n",
			plan.SheetRow, displayName(plan.Name), plan.Date.Month, plan.Date.Day,
			channelLabel(plan.Channel), formatOffsets(offsets))
	}
}

// FormatCalendarName formats one calendar line for the calendars command.
func FormatCalendarName(w io.Writer, cal service.CalendarInfo) {
	summary := cal.Summary
	if strings.TrimSpace(summary) == "" {
		summary = "(untitled)"
	}
	if cal.Primary {
		summary += " [primary]"
	}
	fmt.Fprintf(w, "%s  %s\n", summary, cal.ID)
}

func formatOffsets(offsets []engine.TierOffset) string {
	if len(offsets) == 0 {
		return ""
	}
	parts := make([]string, 0, len(offsets))
	for _, to := range offsets {
		switch {
		case to.Err != nil:
			parts = append(parts, fmt.Sprintf("%s (invalid %q)", to.Tier.Label, to.TimeText))
		case to.State == engine.OffsetInactive:
			parts = append(parts, fmt.Sprintf("%s (after event start)", to.Tier.Label))
		default:
			parts = append(parts, fmt.Sprintf("%s %dm", to.Tier.Label, to.Minutes))
		}
	}
	return "  " + strings.Join(parts, ", ")
}

func channelLabel(ch service.Channel) string {
	if ch == service.ChannelNone {
		return "no-reminder"
	}
	return ch.String()
}

// displayName normalizes a person's name for display.
func displayName(name string) string {
	name = strings.ReplaceAll(name, "\r", " ")
	name = strings.ReplaceAll(name, "\n", " ")
	if strings.TrimSpace(name) == "" {
		return "(unnamed)"
	}
	return name
}
