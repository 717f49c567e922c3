package calendar

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

// Calendar календарь записи в гараж для одного пользователя (одной сессии).
//
// Хранит отображаемый месяц, текущий выбор (день, час), слоты выбранного дня и
// локальную копию бронирований. Отправка записи в приёмник выполняется без
// удержания блокировки, поэтому навигация не ждёт ответа внешнего хранилища.
type Calendar struct {
	mu sync.Mutex

	year      int
	month     time.Month
	selection domain.Selection
	slots     []domain.TimeSlot
	schedule  domain.Schedule
	accountID int64

	source       BookingSource
	sink         BookingSink
	timeProvider TimeProvider
	logger       Logger
}

// New создает календарь, открытый на текущем месяце в часовом поясе loc
func New(
	accountID int64,
	source BookingSource,
	sink BookingSink,
	loc *time.Location,
	logger Logger,
) *Calendar {
	return NewWithClock(accountID, source, sink, &RealTimeProvider{Location: loc}, logger)
}

// NewWithClock создает календарь с заданным источником времени
func NewWithClock(
	accountID int64,
	source BookingSource,
	sink BookingSink,
	timeProvider TimeProvider,
	logger Logger,
) *Calendar {
	c := &Calendar{
		schedule:     make(domain.Schedule),
		accountID:    accountID,
		source:       source,
		sink:         sink,
		timeProvider: timeProvider,
		logger:       logger,
	}

	now := c.timeProvider.Now()
	c.year, c.month = now.Year(), now.Month()

	return c
}

// Month отображаемые год и месяц
func (c *Calendar) Month() (int, time.Month) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.year, c.month
}

// GoTo открывает указанный месяц
func (c *Calendar) GoTo(year int, month time.Month) error {
	if !ValidMonth(month) {
		return fmt.Errorf("%w: %d", ErrInvalidMonth, month)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.year, c.month = year, month
	return nil
}

// NextMonth переходит на следующий месяц
func (c *Calendar) NextMonth() (int, time.Month) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.year, c.month = NextMonth(c.year, c.month)
	return c.year, c.month
}

// PreviousMonth переходит на предыдущий месяц
func (c *Calendar) PreviousMonth() (int, time.Month) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.year, c.month = PreviousMonth(c.year, c.month)
	return c.year, c.month
}

// Load копирует бронирования отображаемого месяца из источника в локальное состояние
func (c *Calendar) Load(ctx context.Context) error {
	year, month := c.Month()
	from, to := MonthRange(year, month, c.timeProvider.Now().Location())

	bookings, err := c.source.FetchBookings(ctx, from, to)
	if err != nil {
		c.logger.Error("Calendar.Load: failed to fetch bookings for %04d-%02d: %v", year, month, err)
		return fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}

	keys := make([]string, 0, DaysInMonth(year, month))
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		keys = append(keys, domain.DateKey(day))
	}

	c.mu.Lock()
	c.schedule.Replace(keys, bookings)
	if c.selection.Date != nil {
		c.slots = GenerateSlots(*c.selection.Date, c.schedule)
	}
	c.mu.Unlock()

	c.logger.Info("Calendar.Load: loaded %d booked days for %04d-%02d", len(bookings), year, month)
	return nil
}

// Grid сетка отображаемого месяца. Часы читаются один раз на генерацию.
func (c *Calendar) Grid() []domain.CalendarDay {
	today := c.timeProvider.Now()

	c.mu.Lock()
	defer c.mu.Unlock()
	return GenerateGrid(c.year, c.month, c.schedule, c.selection.Date, today)
}

// SelectDay выбирает день. Дни вне отображаемого месяца и прошедшие дни игнорируются
// (возвращается false, состояние не меняется). При выборе сбрасывается час и
// перегенерируются слоты. Полностью занятый день выбрать можно, но свободных слотов у него нет.
func (c *Calendar) SelectDay(day domain.CalendarDay) (domain.Selection, []domain.TimeSlot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !day.IsSelectable() {
		return c.selectionCopy(), c.slotsCopy(), false
	}

	date := domain.TruncateToDay(day.Date)
	c.selection = domain.Selection{Date: &date}
	c.slots = GenerateSlots(date, c.schedule)

	return c.selectionCopy(), c.slotsCopy(), true
}

// SelectDate находит день в текущей сетке и выбирает его (см. SelectDay)
func (c *Calendar) SelectDate(date time.Time) (domain.Selection, []domain.TimeSlot, bool) {
	for _, day := range c.Grid() {
		if day.IsCurrentMonth && isSameDay(day.Date, date) {
			return c.SelectDay(day)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selectionCopy(), c.slotsCopy(), false
}

// SelectHour выбирает час. Без выбранного дня, вне рабочего окна или для занятого
// слота ничего не происходит (возвращается false).
func (c *Calendar) SelectHour(hour int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.selection.Date == nil || !domain.IsServiceHour(hour) {
		return false
	}

	if c.schedule.IsHourBooked(domain.DateKey(*c.selection.Date), hour) {
		return false
	}

	h := hour
	c.selection.Hour = &h
	return true
}

// Selection текущий выбор
func (c *Calendar) Selection() domain.Selection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selectionCopy()
}

// Slots слоты выбранного дня (пусто, если день не выбран)
func (c *Calendar) Slots() []domain.TimeSlot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.slotsCopy()
}

// Confirm отправляет выбранные день и час в приёмник бронирований.
//
// Без полного выбора возвращает ErrIncompleteSelection и ничего не меняет.
// При ошибке приёмника возвращает ErrSubmissionFailed и сохраняет выбор.
// При успехе час отмечается занятым в локальной копии, а выбор сбрасывается,
// если пользователь не успел его изменить, пока запрос был в полёте.
func (c *Calendar) Confirm(ctx context.Context) (domain.BookingRequest, error) {
	c.mu.Lock()
	submitted := c.selectionCopy()
	c.mu.Unlock()

	if !submitted.IsComplete() {
		c.logger.Warn("Calendar.Confirm: incomplete selection for account=%d", c.accountID)
		return domain.BookingRequest{}, ErrIncompleteSelection
	}

	req := domain.BookingRequest{
		Date:      *submitted.Date,
		Hour:      *submitted.Hour,
		AccountID: c.accountID,
	}
	key := domain.DateKey(req.Date)

	c.logger.Info("Calendar.Confirm: submitting booking date=%s hour=%d account=%d", key, req.Hour, req.AccountID)

	if err := c.sink.SubmitBooking(ctx, req); err != nil {
		if errors.Is(err, domain.ErrSlotTaken) {
			// Слот успели занять: обновляем локальную копию, выбор не трогаем
			c.mu.Lock()
			c.schedule.Add(key, req.Hour)
			c.refreshSlotsFor(key)
			c.mu.Unlock()
		}
		c.logger.Warn("Calendar.Confirm: booking date=%s hour=%d rejected: %v", key, req.Hour, err)
		return domain.BookingRequest{}, fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
	}

	c.mu.Lock()
	c.schedule.Add(key, req.Hour)
	if c.selection.Equal(submitted) {
		c.selection = domain.Selection{}
		c.slots = nil
	} else {
		c.refreshSlotsFor(key)
	}
	c.mu.Unlock()

	c.logger.Info("Calendar.Confirm: booking date=%s hour=%d confirmed", key, req.Hour)
	return req, nil
}

// refreshSlotsFor перегенерирует слоты, если выбран день с ключом key. Вызывается под mu.
func (c *Calendar) refreshSlotsFor(key string) {
	if c.selection.Date != nil && domain.DateKey(*c.selection.Date) == key {
		c.slots = GenerateSlots(*c.selection.Date, c.schedule)
	}
}

func (c *Calendar) selectionCopy() domain.Selection {
	var sel domain.Selection
	if c.selection.Date != nil {
		d := *c.selection.Date
		sel.Date = &d
	}
	if c.selection.Hour != nil {
		h := *c.selection.Hour
		sel.Hour = &h
	}
	return sel
}

func (c *Calendar) slotsCopy() []domain.TimeSlot {
	if c.slots == nil {
		return nil
	}
	slots := make([]domain.TimeSlot, len(c.slots))
	copy(slots, c.slots)
	return slots
}
