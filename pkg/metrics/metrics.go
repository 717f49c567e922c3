package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор метрик сервиса
type Metrics struct {
	httpRequests        *prometheus.CounterVec
	httpDuration        *prometheus.HistogramVec
	appointments        prometheus.Counter
	submissionsFailed   prometheus.Counter
	bookingCacheLookups *prometheus.CounterVec
}

// New создает метрики и регистрирует их в глобальном реестре prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики в указанном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Количество HTTP запросов",
			ConstLabels: labels,
		}, []string{"route", "method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "Длительность обработки HTTP запросов",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"route", "method"}),
		appointments: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "appointments_confirmed_total",
			Help:        "Количество подтверждённых записей в гараж",
			ConstLabels: labels,
		}),
		submissionsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "appointment_submissions_failed_total",
			Help:        "Количество отклонённых внешним хранилищем записей",
			ConstLabels: labels,
		}),
		bookingCacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_cache_requests_total",
			Help:        "Обращения к кэшу бронирований",
			ConstLabels: labels,
		}, []string{"result"}),
	}

	reg.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.appointments,
		m.submissionsFailed,
		m.bookingCacheLookups,
	)

	return m
}

// ObserveHTTPRequest фиксирует завершённый HTTP запрос
func (m *Metrics) ObserveHTTPRequest(route, method string, status int, duration time.Duration) {
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(route, method).Observe(duration.Seconds())
}

func (m *Metrics) AppointmentConfirmed() {
	m.appointments.Inc()
}

func (m *Metrics) SubmissionFailed() {
	m.submissionsFailed.Inc()
}

// CacheHit / CacheMiss вызываются кэшем бронирований
func (m *Metrics) CacheHit() {
	m.bookingCacheLookups.WithLabelValues("hit").Inc()
}

func (m *Metrics) CacheMiss() {
	m.bookingCacheLookups.WithLabelValues("miss").Inc()
}
