package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// IntakeMetrics содержит метрики приёма заказов.
type IntakeMetrics struct {
	ordersCreated       prometheus.Counter
	createFailures      *prometheus.CounterVec
	invoiceUploads      prometheus.Counter
	notificationsFailed prometheus.Counter
	createDuration      prometheus.Histogram
}

// Причины сбоя создания заказа для метки reason.
const (
	FailureReasonValidation  = "validation"
	FailureReasonFileStore   = "file_store"
	FailureReasonRecordStore = "record_store"
)

// NewIntakeMetrics создаёт метрики, зарегистрированные в DefaultRegisterer.
func NewIntakeMetrics() *IntakeMetrics {
	return NewIntakeMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

// NewIntakeMetricsWithRegisterer регистрирует метрики в переданном
// registerer; используется тестами, чтобы не трогать глобальный.
func NewIntakeMetricsWithRegisterer(registerer prometheus.Registerer) *IntakeMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &IntakeMetrics{
		ordersCreated: registerCounter(registerer, prometheus.CounterOpts{
			Name: "ois_orders_created_total",
			Help: "Total number of orders created successfully",
		}),
		createFailures: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "ois_order_create_failures_total",
			Help: "Total number of failed order creations by reason",
		}, []string{"reason"}),
		invoiceUploads: registerCounter(registerer, prometheus.CounterOpts{
			Name: "ois_invoice_uploads_total",
			Help: "Total number of invoice documents stored",
		}),
		notificationsFailed: registerCounter(registerer, prometheus.CounterOpts{
			Name: "ois_notifications_failed_total",
			Help: "Total number of order-created notifications that failed to publish",
		}),
		createDuration: registerHistogram(registerer, prometheus.HistogramOpts{
			Name:    "ois_order_create_duration_seconds",
			Help:    "Duration of the order creation sequence in seconds",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// RecordOrderCreated учитывает успешно созданный заказ.
func (m *IntakeMetrics) RecordOrderCreated() {
	m.ordersCreated.Inc()
}

// RecordCreateFailed учитывает сбой создания по причине reason.
func (m *IntakeMetrics) RecordCreateFailed(reason string) {
	m.createFailures.WithLabelValues(reason).Inc()
}

// RecordInvoiceUploaded учитывает сохранённый документ.
func (m *IntakeMetrics) RecordInvoiceUploaded() {
	m.invoiceUploads.Inc()
}

// RecordNotificationFailed учитывает проглоченную ошибку публикации.
func (m *IntakeMetrics) RecordNotificationFailed() {
	m.notificationsFailed.Inc()
}

// RecordCreateDuration учитывает длительность последовательности создания.
func (m *IntakeMetrics) RecordCreateDuration(d time.Duration) {
	m.createDuration.Observe(d.Seconds())
}

// registerCounter регистрирует счётчик, переиспользуя уже
// зарегистрированный коллектор при повторной регистрации.
func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	c := prometheus.NewCounter(opts)
	if err := registerer.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing
			}
		}
	}
	return c
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	c := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing
			}
		}
	}
	return c
}

func registerHistogram(registerer prometheus.Registerer, opts prometheus.HistogramOpts) prometheus.Histogram {
	h := prometheus.NewHistogram(opts)
	if err := registerer.Register(h); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing
			}
		}
	}
	return h
}
