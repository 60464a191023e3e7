package engine

import (
	"strings"

	"bdcal/internal/service"
)

// requiredColumns is the number of sheet columns a processable row
// carries: status, name, birthday, four tier times, channel.
const requiredColumns = 8

// Column positions within a sheet row.
const (
	colStatus   = 0
	colName     = 1
	colBirthday = 2
	colTierBase = 3 // four tier-time columns start here
	colChannel  = 7
)

// RowDisposition is the terminal classification of a row before any
// calendar work happens.
type RowDisposition int

const (
	// RowEmpty is an intentionally blank row; skipped without comment.
	RowEmpty RowDisposition = iota
	// RowIncomplete has some content but lacks a name, a birthday, or
	// enough columns; skipped with a diagnostic.
	RowIncomplete
	// RowBadDate has an unparseable or out-of-range birthday.
	RowBadDate
	// RowReady can be synchronized.
	RowReady
)

// RowPlan is the parsed form of one sheet row. It carries everything
// the sync and preview paths need so that the "which scope absorbs
// which failure" decisions are visible in the type rather than buried
// in control flow.
type RowPlan struct {
	SheetRow     int // 1-based sheet row number (data starts at 2)
	Disposition  RowDisposition
	Name         string
	BirthdayText string
	Date         MonthDay // valid only when Disposition == RowReady
	DateErr      error    // set when Disposition == RowBadDate
	TierTimes    [4]string
	Channel      service.Channel
	ChannelText  string
}

// PlanRow classifies and parses one sheet row. It never fails; every
// problem is recorded in the returned plan.
func PlanRow(row []string, sheetRow int) RowPlan {
	p := RowPlan{SheetRow: sheetRow}

	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	name := cell(colName)
	birthday := cell(colBirthday)

	if len(row) < requiredColumns || name == "" || birthday == "" {
		empty := true
		for j := colName; j < len(row); j++ {
			if strings.TrimSpace(row[j]) != "" {
				empty = false
				break
			}
		}
		p.Name = name
		p.BirthdayText = birthday
		if empty && name == "" && birthday == "" {
			p.Disposition = RowEmpty
		} else {
			p.Disposition = RowIncomplete
		}
		return p
	}

	p.Name = name
	p.BirthdayText = birthday
	for ti := range p.TierTimes {
		p.TierTimes[ti] = cell(colTierBase + ti)
	}
	p.ChannelText = cell(colChannel)
	p.Channel = ParseChannel(p.ChannelText)

	md, err := ParseMonthDay(birthday)
	if err != nil {
		p.Disposition = RowBadDate
		p.DateErr = err
		return p
	}
	p.Date = md
	p.Disposition = RowReady
	return p
}
