package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bdcal/internal/service"
)

func TestPlanRow_Dispositions(t *testing.T) {
	tests := []struct {
		name string
		row  []string
		want RowDisposition
	}{
		{
			name: "fully blank row",
			row:  []string{"", "", "", "", "", "", "", ""},
			want: RowEmpty,
		},
		{
			name: "whitespace only row",
			row:  []string{"", "  ", "", " ", "", "", "", ""},
			want: RowEmpty,
		},
		{
			name: "short empty row",
			row:  []string{""},
			want: RowEmpty,
		},
		{
			name: "name without birthday",
			row:  []string{"", "Ann", "", "", "", "", "", ""},
			want: RowIncomplete,
		},
		{
			name: "birthday without name",
			row:  []string{"", "", "3/5", "", "", "", "", ""},
			want: RowIncomplete,
		},
		{
			name: "too few columns despite content",
			row:  []string{"", "Ann", "3/5"},
			want: RowIncomplete,
		},
		{
			name: "unparseable birthday",
			row:  []string{"", "Ann", "13/40", "", "", "", "", ""},
			want: RowBadDate,
		},
		{
			name: "complete row",
			row:  []string{"", "Ann", "3/5", "9:00", "", "", "", "メール"},
			want: RowReady,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := PlanRow(tt.row, 2)
			assert.Equal(t, tt.want, plan.Disposition)
		})
	}
}

func TestPlanRow_Fields(t *testing.T) {
	plan := PlanRow([]string{"old", " Ann ", " 3/5 ", "9:00", "8:30", "", "7時", "メール"}, 4)

	assert.Equal(t, 4, plan.SheetRow)
	assert.Equal(t, RowReady, plan.Disposition)
	assert.Equal(t, "Ann", plan.Name)
	assert.Equal(t, "3/5", plan.BirthdayText)
	assert.Equal(t, MonthDay{Month: 3, Day: 5}, plan.Date)
	assert.Equal(t, [4]string{"9:00", "8:30", "", "7時"}, plan.TierTimes)
	assert.Equal(t, service.ChannelEmail, plan.Channel)
}

func TestEventTag(t *testing.T) {
	assert.Equal(t, "[BDCAL_ID:2]", EventTag(2))
	assert.Equal(t, "[BDCAL_ID:41]", EventTag(41))
	assert.Equal(t, EventTag(7), EventTag(7), "tag is a pure function of the row")
}
