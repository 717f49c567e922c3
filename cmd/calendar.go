package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-GarageService/internal/config"
	"github.com/m04kA/SMC-GarageService/internal/domain"
	"github.com/m04kA/SMC-GarageService/internal/service/calendar"
	"github.com/m04kA/SMC-GarageService/pkg/logger"
)

func newCalendarCmd(configPath *string) *cobra.Command {
	var year, month, day int

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Print the booking grid of a month (and the slots of one day with --day)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			loc, err := cfg.Calendar.LoadLocation()
			if err != nil {
				return err
			}

			now := time.Now().In(loc)
			if year == 0 {
				year = now.Year()
			}
			if month == 0 {
				month = int(now.Month())
			}
			if !calendar.ValidMonth(time.Month(month)) {
				return fmt.Errorf("%w: %d", calendar.ErrInvalidMonth, month)
			}
			if day != 0 && (day < 1 || day > calendar.DaysInMonth(year, time.Month(month))) {
				return fmt.Errorf("day %d is out of range for %04d-%02d", day, year, month)
			}

			// Логи CLI пишутся только в файл, чтобы не мешать таблице
			log := logger.NewNop()
			if cfg.Logs.File != "" {
				if log, err = logger.New(cfg.Logs.File, cfg.Logs.Level); err != nil {
					return fmt.Errorf("failed to initialize logger: %w", err)
				}
			}
			defer log.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			var db *sql.DB
			if cfg.Bookings.Backend == config.BackendPostgres {
				if db, err = openDB(ctx, cfg.Database, log); err != nil {
					return err
				}
				defer db.Close()
			}

			backend, closeBackend, err := newBookingBackend(ctx, cfg, db, nil, log)
			if err != nil {
				return err
			}
			defer closeBackend()

			from, to := calendar.MonthRange(year, time.Month(month), loc)
			bookings, err := backend.FetchBookings(ctx, from, to)
			if err != nil {
				return fmt.Errorf("failed to fetch bookings: %w", err)
			}
			schedule := domain.NewSchedule(bookings)

			var selected *time.Time
			if day != 0 {
				d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
				selected = &d
			}

			out := cmd.OutOrStdout()
			printGrid(out, year, time.Month(month), calendar.GenerateGrid(year, time.Month(month), schedule, selected, now))

			if selected != nil {
				fmt.Fprintln(out)
				printSlots(out, *selected, calendar.GenerateSlots(*selected, schedule))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "year (default: current)")
	cmd.Flags().IntVar(&month, "month", 0, "month 1-12 (default: current)")
	cmd.Flags().IntVar(&day, "day", 0, "show hourly slots of this day")

	return cmd
}

// printGrid печатает сетку 6x7. Маркеры: * выбран, x занят полностью, . прошёл
func printGrid(w io.Writer, year int, month time.Month, days []domain.CalendarDay) {
	fmt.Fprintf(w, "%s %d\n", month, year)
	fmt.Fprintln(w, " Su   Mo   Tu   We   Th   Fr   Sa")

	for week := 0; week < len(days)/7; week++ {
		cells := make([]string, 0, 7)
		for _, d := range days[week*7 : week*7+7] {
			if !d.IsCurrentMonth {
				cells = append(cells, "    ")
				continue
			}

			marker := " "
			switch {
			case d.IsSelected:
				marker = "*"
			case d.IsFullyBooked:
				marker = "x"
			case d.IsPast:
				marker = "."
			}
			cells = append(cells, fmt.Sprintf("%3d%s", d.Day, marker))
		}
		fmt.Fprintln(w, strings.Join(cells, " "))
	}
}

func printSlots(w io.Writer, date time.Time, slots []domain.TimeSlot) {
	fmt.Fprintf(w, "%s: %d of %d slots free\n", date.Format("Monday, January 2, 2006"), calendar.FreeSlots(slots), len(slots))
	for _, slot := range slots {
		state := "free"
		if slot.IsBooked {
			state = "booked"
		}
		fmt.Fprintf(w, "  %8s  %s\n", calendar.FormatTimeDisplay(slot.Hour), state)
	}
}
