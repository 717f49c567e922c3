package appointmentsapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

const appointmentsPath = "/internal/appointments"

// Client клиент внешнего сервиса записей. Реализует источник и приёмник бронирований календаря.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса записей
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// FetchBookings получает занятые часы по дням в диапазоне [from, to]
func (c *Client) FetchBookings(ctx context.Context, from, to time.Time) ([]domain.Booking, error) {
	query := url.Values{}
	query.Set("from", domain.DateKey(from))
	query.Set("to", domain.DateKey(to))
	endpoint := c.baseURL + appointmentsPath + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("FetchBookings: request failed: %v", err)
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: %s", ErrRejected, readError(resp.Body))
	default:
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, readError(resp.Body))
	}

	var days []DayBookings
	if err := json.NewDecoder(resp.Body).Decode(&days); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	bookings := make([]domain.Booking, 0, len(days))
	for _, d := range days {
		bookings = append(bookings, d.toDomain())
	}

	c.log.Info("FetchBookings: %d booked days for %s..%s", len(bookings), domain.DateKey(from), domain.DateKey(to))
	return bookings, nil
}

// SubmitBooking создает запись во внешнем сервисе
func (c *Client) SubmitBooking(ctx context.Context, booking domain.BookingRequest) error {
	body := CreateAppointmentRequest{
		Date: domain.DateKey(booking.Date),
		Hour: booking.Hour,
	}
	if booking.AccountID != 0 {
		id := booking.AccountID
		body.AccountID = &id
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+appointmentsPath, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("SubmitBooking: request failed: %v", err)
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated, http.StatusOK:
		c.log.Info("SubmitBooking: date=%s hour=%d accepted", body.Date, body.Hour)
		return nil
	case http.StatusConflict:
		return ErrSlotTaken
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", ErrRejected, readError(resp.Body))
	default:
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, readError(resp.Body))
	}
}

// readError достаёт сообщение из тела ошибки (JSON или текст)
func readError(r io.Reader) string {
	raw, _ := io.ReadAll(io.LimitReader(r, 4096))

	var errResp ErrorResponse
	if err := json.Unmarshal(raw, &errResp); err == nil && errResp.Message != "" {
		return errResp.Message
	}
	return strings.TrimSpace(string(raw))
}
