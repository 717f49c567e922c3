package bookings

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

const (
	keyPrefix = "bookings:"
	scanBatch = 100

	// generationKey увеличивается после каждой записи. Промах кэша сохраняет
	// диапазон, только если поколение не изменилось с начала чтения источника.
	generationKey = "bookings_generation"
)

// errStaleGeneration между чтением источника и сохранением прошла запись
var errStaleGeneration = errors.New("bookings cache: generation changed")

// Store read-through кэш бронирований в Redis поверх источника и приёмника.
// Ошибки Redis не прерывают запрос: чтение уходит в источник напрямую.
type Store struct {
	rdb      *redis.Client
	source   Source
	sink     Sink
	ttl      time.Duration
	recorder Recorder
	logger   Logger
}

// NewStore создает кэш. recorder может быть nil.
func NewStore(rdb *redis.Client, source Source, sink Sink, ttl time.Duration, recorder Recorder, logger Logger) *Store {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Store{
		rdb:      rdb,
		source:   source,
		sink:     sink,
		ttl:      ttl,
		recorder: recorder,
		logger:   logger,
	}
}

// cacheKey bookings:<from>:<to>
func cacheKey(from, to time.Time) string {
	return keyPrefix + domain.DateKey(from) + ":" + domain.DateKey(to)
}

// FetchBookings возвращает бронирования из кэша или из источника
func (s *Store) FetchBookings(ctx context.Context, from, to time.Time) ([]domain.Booking, error) {
	key := cacheKey(from, to)

	raw, err := s.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var cached []domain.Booking
		if err := json.Unmarshal(raw, &cached); err == nil {
			s.recorder.CacheHit()
			return cached, nil
		}
		s.logger.Warn("bookings.Store: corrupted cache entry %s, refetching", key)
	case errors.Is(err, redis.Nil):
	default:
		s.logger.Warn("bookings.Store: redis get %s failed: %v", key, err)
	}

	s.recorder.CacheMiss()

	// Поколение читается до источника: запись, завершившаяся позже, сделает его устаревшим
	gen, genErr := s.generation(ctx)
	if genErr != nil {
		s.logger.Warn("bookings.Store: redis get %s failed: %v", generationKey, genErr)
	}

	bookings, err := s.source.FetchBookings(ctx, from, to)
	if err != nil {
		return nil, err
	}

	if genErr != nil {
		return bookings, nil
	}

	payload, err := json.Marshal(bookings)
	if err != nil {
		s.logger.Warn("bookings.Store: failed to encode %s: %v", key, err)
		return bookings, nil
	}

	switch err := s.store(ctx, key, gen, payload); {
	case err == nil:
	case errors.Is(err, errStaleGeneration), errors.Is(err, redis.TxFailedErr):
		s.logger.Info("bookings.Store: %s not cached, bookings changed while fetching", key)
	default:
		s.logger.Warn("bookings.Store: redis set %s failed: %v", key, err)
	}

	return bookings, nil
}

// generation текущее поколение кэша (0, если записей ещё не было)
func (s *Store) generation(ctx context.Context) (int64, error) {
	gen, err := s.rdb.Get(ctx, generationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

// store сохраняет диапазон, если поколение всё ещё равно gen
func (s *Store) store(ctx context.Context, key string, gen int64, payload []byte) error {
	return s.rdb.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, generationKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != gen {
			return errStaleGeneration
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, s.ttl)
			return nil
		})
		return err
	}, generationKey)
}

// SubmitBooking передаёт запись в приёмник и сбрасывает закэшированные диапазоны,
// в которые попадает дата записи. Кэш сбрасывается и при отказе приёмника:
// отказ часто означает, что локальная копия устарела.
func (s *Store) SubmitBooking(ctx context.Context, req domain.BookingRequest) error {
	submitErr := s.sink.SubmitBooking(ctx, req)

	if err := s.rdb.Incr(ctx, generationKey).Err(); err != nil {
		s.logger.Warn("bookings.Store: redis incr %s failed: %v", generationKey, err)
	}

	if err := s.invalidate(ctx, domain.DateKey(req.Date)); err != nil {
		s.logger.Warn("bookings.Store: failed to invalidate cache for %s: %v", domain.DateKey(req.Date), err)
	}

	return submitErr
}

// invalidate удаляет все ключи bookings:<from>:<to>, для которых from <= dateKey <= to
func (s *Store) invalidate(ctx context.Context, dateKey string) error {
	var cursor uint64
	for {
		keys, next, err := s.rdb.Scan(ctx, cursor, keyPrefix+"*", scanBatch).Result()
		if err != nil {
			return err
		}

		stale := make([]string, 0, len(keys))
		for _, key := range keys {
			if rangeContains(key, dateKey) {
				stale = append(stale, key)
			}
		}
		if len(stale) > 0 {
			if err := s.rdb.Del(ctx, stale...).Err(); err != nil {
				return err
			}
		}

		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

func rangeContains(key, dateKey string) bool {
	bounds := strings.Split(strings.TrimPrefix(key, keyPrefix), ":")
	if len(bounds) != 2 {
		return false
	}
	// YYYY-MM-DD сравниваются лексикографически
	return bounds[0] <= dateKey && dateKey <= bounds[1]
}
