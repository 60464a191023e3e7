package engine

import "fmt"

const (
	// eventTagPrefix and eventTagSuffix bracket the sheet row number to
	// form the marker linking a row to its calendar events.
	eventTagPrefix = "[BDCAL_ID:"
	eventTagSuffix = "]"
)

// EventTag returns the stable marker for a sheet row. It is embedded
// verbatim in the event description and is the sole correlation key
// between a row and the events created for it, so it must never change
// between runs.
func EventTag(sheetRow int) string {
	return fmt.Sprintf("%s%d%s", eventTagPrefix, sheetRow, eventTagSuffix)
}
