package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClockTime_ColonForm(t *testing.T) {
	tests := []struct {
		input  string
		hour   int
		minute int
	}{
		{"9:00", 9, 0},
		{"0:00", 0, 0},
		{"23:59", 23, 59},
		{" 12:30 ", 12, 30},
		{"09:05", 9, 5},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ct, err := ParseClockTime(tt.input)
			require.NoError(t, err)
			assert.Equal(t, ClockTime{Hour: tt.hour, Minute: tt.minute}, ct)
		})
	}
}

func TestParseClockTime_KanjiForm(t *testing.T) {
	tests := []struct {
		input  string
		hour   int
		minute int
	}{
		{"9時", 9, 0}, // minutes default to 0
		{"9時30分", 9, 30},
		{"0時0分", 0, 0},
		{"23時59分", 23, 59},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ct, err := ParseClockTime(tt.input)
			require.NoError(t, err)
			assert.Equal(t, ClockTime{Hour: tt.hour, Minute: tt.minute}, ct)
		})
	}
}

func TestParseClockTime_Rejections(t *testing.T) {
	inputs := []string{
		"",
		"24:00",
		"9:60",
		"25時",
		"9時60分",
		"nine",
		"9.30",
		"9:0:0",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := ParseClockTime(input)
			assert.Error(t, err)
		})
	}
}
