package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

func TestFormatTimeDisplay(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{9, "9:00 AM"},
		{11, "11:00 AM"},
		{12, "12:00 PM"},
		{13, "1:00 PM"},
		{17, "5:00 PM"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatTimeDisplay(tt.hour))
	}
}

func TestGenerateSlots_NoBookings(t *testing.T) {
	date := time.Date(2026, time.October, 22, 0, 0, 0, 0, time.UTC)

	slots := GenerateSlots(date, nil)

	require.Len(t, slots, domain.SlotsPerDay)
	for i, slot := range slots {
		assert.Equal(t, domain.ServiceWindowStartHour+i, slot.Hour)
		assert.False(t, slot.IsBooked)
	}
	assert.Equal(t, "9:00 AM", slots[0].Label)
	assert.Equal(t, "5:00 PM", slots[8].Label)
}

func TestGenerateSlots_FullyBookedDay(t *testing.T) {
	date := time.Date(2026, time.October, 21, 0, 0, 0, 0, time.UTC)
	schedule := domain.NewSchedule([]domain.Booking{fullDay("2026-10-21")})

	slots := GenerateSlots(date, schedule)

	require.Len(t, slots, domain.SlotsPerDay)
	assert.True(t, schedule.IsFullyBooked("2026-10-21"))
	assert.Zero(t, FreeSlots(slots))
	for _, slot := range slots {
		assert.True(t, slot.IsBooked, slot.Label)
	}
}

func TestGenerateSlots_PartiallyBookedDay(t *testing.T) {
	date := time.Date(2026, time.October, 22, 0, 0, 0, 0, time.UTC)
	schedule := domain.NewSchedule([]domain.Booking{
		{DateKey: "2026-10-22", BookedHours: []int{9, 10, 14}},
	})

	slots := GenerateSlots(date, schedule)

	var free, booked []int
	for _, slot := range slots {
		if slot.IsBooked {
			booked = append(booked, slot.Hour)
		} else {
			free = append(free, slot.Hour)
		}
	}

	assert.Equal(t, []int{11, 12, 13, 15, 16, 17}, free)
	assert.Equal(t, []int{9, 10, 14}, booked)
	assert.False(t, schedule.IsFullyBooked("2026-10-22"))
}

func TestGenerateSlots_IgnoresHoursOutsideWindow(t *testing.T) {
	date := time.Date(2026, time.October, 23, 0, 0, 0, 0, time.UTC)
	schedule := domain.NewSchedule([]domain.Booking{
		{DateKey: "2026-10-23", BookedHours: []int{7, 8, 18, 23, 9, 9}},
	})

	slots := GenerateSlots(date, schedule)

	require.Len(t, slots, domain.SlotsPerDay)
	assert.Equal(t, domain.SlotsPerDay-1, FreeSlots(slots))
	assert.Equal(t, []int{9}, schedule.BookedHours("2026-10-23").Sorted())
	for _, slot := range slots {
		assert.True(t, domain.IsServiceHour(slot.Hour))
	}
}
