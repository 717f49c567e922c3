package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

func TestFromDomainSlots(t *testing.T) {
	date := time.Date(2026, time.November, 3, 0, 0, 0, 0, time.UTC)
	hour := 10
	slots := []domain.TimeSlot{
		{Hour: 9, Label: "9:00 AM", IsBooked: true},
		{Hour: 10, Label: "10:00 AM"},
		{Hour: 11, Label: "11:00 AM"},
	}

	resp := FromDomainSlots(domain.Selection{Date: &date, Hour: &hour}, slots)

	require.NotNil(t, resp.Selection.Date)
	assert.Equal(t, "2026-11-03", *resp.Selection.Date)
	require.NotNil(t, resp.Selection.Hour)
	assert.Equal(t, 10, *resp.Selection.Hour)
	assert.Len(t, resp.Slots, 3)
	assert.Equal(t, 2, resp.FreeSlots)
}

func TestFromDomainMonth(t *testing.T) {
	grid := []domain.CalendarDay{
		{Date: time.Date(2026, time.October, 31, 0, 0, 0, 0, time.UTC), Day: 31},
		{Date: time.Date(2026, time.November, 1, 0, 0, 0, 0, time.UTC), Day: 1, IsCurrentMonth: true},
		{Date: time.Date(2026, time.November, 2, 0, 0, 0, 0, time.UTC), Day: 2, IsCurrentMonth: true, IsPast: true},
	}

	resp := FromDomainMonth(2026, time.November, grid, domain.Selection{})

	assert.Equal(t, 11, resp.Month)
	assert.Equal(t, "November 2026", resp.Title)
	require.Len(t, resp.Days, 3)
	assert.False(t, resp.Days[0].IsSelectable)
	assert.True(t, resp.Days[1].IsSelectable)
	assert.False(t, resp.Days[2].IsSelectable)
	assert.Nil(t, resp.Selection.Date)
}
