package intake

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/ois/internal/domain"
	"github.com/vladislavdragonenkov/ois/internal/metrics"
)

// InvoiceUpload — приложенный к заказу документ.
type InvoiceUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Service владеет последовательностью создания заказа:
// идентификатор → валидация → загрузка документа → запись → уведомление.
// Состояния между запросами нет; каждый вызов — независимая единица работы.
type Service struct {
	orders   domain.OrderRepository
	files    domain.FileStore
	notifier domain.NotificationPublisher
	logger   *log.Entry
	metrics  *metrics.IntakeMetrics
}

// NewService создаёт рабочий экземпляр сервиса приёма заказов.
func NewService(
	orders domain.OrderRepository,
	files domain.FileStore,
	notifier domain.NotificationPublisher,
	logger *log.Entry,
) *Service {
	if logger == nil {
		logger = log.New().WithField("component", "intake")
	}
	return &Service{
		orders:   orders,
		files:    files,
		notifier: notifier,
		logger:   logger,
		metrics:  metrics.NewIntakeMetrics(),
	}
}

// NewServiceWithoutMetrics создаёт сервис без метрик (для тестов).
func NewServiceWithoutMetrics(
	orders domain.OrderRepository,
	files domain.FileStore,
	notifier domain.NotificationPublisher,
	logger *log.Entry,
) *Service {
	if logger == nil {
		logger = log.New().WithField("component", "intake")
	}
	return &Service{
		orders:   orders,
		files:    files,
		notifier: notifier,
		logger:   logger,
	}
}

// CreateOrder валидирует ввод, при наличии документа сохраняет его в
// файловое хранилище, записывает заказ и публикует уведомление.
// Ошибка валидации терминальна и не оставляет побочных эффектов; сбой
// записи после успешной загрузки оставляет документ осиротевшим —
// компенсация намеренно не выполняется.
func (s *Service) CreateOrder(customerName, amountText, dateText string, invoice *InvoiceUpload) (domain.Order, error) {
	start := time.Now()

	orderID := uuid.NewString()

	if strings.TrimSpace(customerName) == "" {
		s.recordFailure(metrics.FailureReasonValidation)
		return domain.Order{}, domain.ErrCustomerNameRequired
	}
	amount, err := domain.ParseAmount(amountText)
	if err != nil {
		s.recordFailure(metrics.FailureReasonValidation)
		return domain.Order{}, err
	}
	date, err := domain.ParseDate(dateText)
	if err != nil {
		s.recordFailure(metrics.FailureReasonValidation)
		return domain.Order{}, err
	}

	order := domain.Order{
		ID:           orderID,
		CustomerName: customerName,
		Amount:       amount,
		Date:         date,
	}

	if invoice != nil && len(invoice.Data) > 0 {
		key := invoiceKey(orderID, invoice.Filename)
		fileURL, err := s.files.Put(key, invoice.Data, invoice.ContentType)
		if err != nil {
			s.recordFailure(metrics.FailureReasonFileStore)
			return domain.Order{}, fmt.Errorf("store invoice: %w", err)
		}
		order.InvoiceFileURL = fileURL
		if s.metrics != nil {
			s.metrics.RecordInvoiceUploaded()
		}
	}

	if err := s.orders.Put(order); err != nil {
		s.recordFailure(metrics.FailureReasonRecordStore)
		if order.HasInvoice() {
			s.logger.WithFields(log.Fields{
				"order_id":    order.ID,
				"invoice_url": order.InvoiceFileURL,
			}).Warn("order record write failed after invoice upload, document left orphaned")
		}
		return domain.Order{}, fmt.Errorf("persist order: %w", err)
	}

	// Публикация best-effort: заказ уже записан, ошибку наверх не поднимаем.
	if err := s.notifier.PublishOrderCreated(order); err != nil {
		if s.metrics != nil {
			s.metrics.RecordNotificationFailed()
		}
		s.logger.WithError(err).WithField("order_id", order.ID).Warn("order created notification failed")
	}

	if s.metrics != nil {
		s.metrics.RecordOrderCreated()
		s.metrics.RecordCreateDuration(time.Since(start))
	}

	s.logger.WithFields(log.Fields{
		"order_id":    order.ID,
		"has_invoice": order.HasInvoice(),
	}).Info("order created")

	return order, nil
}

// GetOrder возвращает заказ или ErrOrderNotFound.
func (s *Service) GetOrder(orderID string) (domain.Order, error) {
	return s.orders.Get(orderID)
}

// ListOrders возвращает все заказы; порядок определяется хранилищем.
func (s *Service) ListOrders() ([]domain.Order, error) {
	return s.orders.List()
}

// GetInvoice возвращает байты документа заказа. Отсутствие заказа или
// документа — сигнал отсутствия; сбой файлового хранилища — ошибка.
func (s *Service) GetInvoice(orderID string) ([]byte, error) {
	order, err := s.orders.Get(orderID)
	if err != nil {
		return nil, err
	}
	if !order.HasInvoice() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvoiceNotFound, orderID)
	}

	key, err := invoiceKeyFromURL(order.InvoiceFileURL)
	if err != nil {
		return nil, err
	}

	data, err := s.files.Get(key)
	if err != nil {
		return nil, fmt.Errorf("fetch invoice %s: %w", key, err)
	}
	return data, nil
}

func (s *Service) recordFailure(reason string) {
	if s.metrics != nil {
		s.metrics.RecordCreateFailed(reason)
	}
}
