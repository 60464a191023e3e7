package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMonthDay_SlashForm(t *testing.T) {
	tests := []struct {
		input string
		month int
		day   int
	}{
		{"3/5", 3, 5},
		{"1/1", 1, 1},
		{"12/31", 12, 31},
		{" 7/24 ", 7, 24},
		{"07/04", 7, 4},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			md, err := ParseMonthDay(tt.input)
			require.NoError(t, err)
			assert.Equal(t, MonthDay{Month: tt.month, Day: tt.day}, md)
		})
	}
}

func TestParseMonthDay_KanjiForm(t *testing.T) {
	tests := []struct {
		input      string
		equivalent string
	}{
		{"3月5日", "3/5"},
		{"12月31日", "12/31"},
		{"1月1", "1/1"}, // 日 suffix is optional
		{"10月8日", "10/8"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMonthDay(tt.input)
			require.NoError(t, err)
			want, err := ParseMonthDay(tt.equivalent)
			require.NoError(t, err)
			assert.Equal(t, want, got, "kanji form must parse like its slash equivalent")
		})
	}
}

func TestParseMonthDay_FallbackLayouts(t *testing.T) {
	tests := []struct {
		input string
		month int
		day   int
	}{
		{"2024/3/5", 3, 5},
		{"2024-03-05", 3, 5},
		{"2024年3月5日", 3, 5},
		{"March 5, 2024", 3, 5},
		{"Mar 5, 2024", 3, 5},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			md, err := ParseMonthDay(tt.input)
			require.NoError(t, err)
			assert.Equal(t, MonthDay{Month: tt.month, Day: tt.day}, md)
		})
	}
}

func TestParseMonthDay_Rejections(t *testing.T) {
	inputs := []string{
		"",
		"hello",
		"13/40",
		"0/5",
		"3/0",
		"3/32",
		"13/1",
		"3-5",     // not a supported short form
		"3/5/7/9", // too many slash tokens
		"3 / x",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := ParseMonthDay(input)
			assert.Error(t, err)
		})
	}
}

func TestMonthDayDate(t *testing.T) {
	md := MonthDay{Month: 3, Day: 5}
	d := md.Date(2025, time.UTC)
	assert.Equal(t, 2025, d.Year())
	assert.Equal(t, 3, int(d.Month()))
	assert.Equal(t, 5, d.Day())
	assert.Equal(t, 0, d.Hour())
	assert.Equal(t, 0, d.Minute())
}
