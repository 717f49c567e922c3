package models

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

// DayResponse ячейка сетки месяца
type DayResponse struct {
	Date           string `json:"date"` // YYYY-MM-DD
	Day            int    `json:"day"`
	IsCurrentMonth bool   `json:"isCurrentMonth"`
	IsPast         bool   `json:"isPast"`
	IsFullyBooked  bool   `json:"isFullyBooked"`
	IsSelected     bool   `json:"isSelected"`
	IsSelectable   bool   `json:"isSelectable"`
}

// SlotResponse часовой слот выбранного дня
type SlotResponse struct {
	Hour     int    `json:"hour"`
	Label    string `json:"label"` // "9:00 AM"
	IsBooked bool   `json:"isBooked"`
}

// SelectionResponse текущий выбор пользователя
type SelectionResponse struct {
	Date *string `json:"date,omitempty"`
	Hour *int    `json:"hour,omitempty"`
}

// SlotsResponse слоты выбранного дня
type SlotsResponse struct {
	Selection SelectionResponse `json:"selection"`
	Slots     []SlotResponse    `json:"slots"`
	FreeSlots int               `json:"freeSlots"`
}

// MonthResponse отображаемый месяц целиком
type MonthResponse struct {
	Year      int               `json:"year"`
	Month     int               `json:"month"` // 1..12
	Title     string            `json:"title"` // "November 2026"
	Days      []DayResponse     `json:"days"`
	Selection SelectionResponse `json:"selection"`
}

// BookingResponse подтверждённая запись
type BookingResponse struct {
	Date  string `json:"date"`
	Hour  int    `json:"hour"`
	Label string `json:"label"`
}

// FromDomainSelection конвертирует выбор
func FromDomainSelection(sel domain.Selection) SelectionResponse {
	var resp SelectionResponse
	if sel.Date != nil {
		key := domain.DateKey(*sel.Date)
		resp.Date = &key
	}
	if sel.Hour != nil {
		h := *sel.Hour
		resp.Hour = &h
	}
	return resp
}

// FromDomainSlots конвертирует слоты и считает свободные
func FromDomainSlots(sel domain.Selection, slots []domain.TimeSlot) SlotsResponse {
	resp := SlotsResponse{
		Selection: FromDomainSelection(sel),
		Slots:     make([]SlotResponse, 0, len(slots)),
	}
	for _, s := range slots {
		resp.Slots = append(resp.Slots, SlotResponse{Hour: s.Hour, Label: s.Label, IsBooked: s.IsBooked})
		if s.IsAvailable() {
			resp.FreeSlots++
		}
	}
	return resp
}

// FromDomainMonth конвертирует сетку месяца
func FromDomainMonth(year int, month time.Month, grid []domain.CalendarDay, sel domain.Selection) MonthResponse {
	resp := MonthResponse{
		Year:      year,
		Month:     int(month),
		Title:     fmt.Sprintf("%s %d", month, year),
		Days:      make([]DayResponse, 0, len(grid)),
		Selection: FromDomainSelection(sel),
	}
	for _, d := range grid {
		resp.Days = append(resp.Days, DayResponse{
			Date:           domain.DateKey(d.Date),
			Day:            d.Day,
			IsCurrentMonth: d.IsCurrentMonth,
			IsPast:         d.IsPast,
			IsFullyBooked:  d.IsFullyBooked,
			IsSelected:     d.IsSelected,
			IsSelectable:   d.IsSelectable(),
		})
	}
	return resp
}
