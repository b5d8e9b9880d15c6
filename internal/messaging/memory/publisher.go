package memory

import (
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/ois/internal/domain"
)

// Publisher — заглушка NotificationPublisher: пишет уведомление в лог и
// запоминает отправленные сообщения для проверок в тестах.
type Publisher struct {
	mu   sync.Mutex
	sent []string

	// PublishErr позволяет настроить сценарий сбоя публикации.
	PublishErr error
	// PublishCalls считает вызовы, включая завершившиеся ошибкой.
	PublishCalls int

	logger *log.Entry
}

// NewPublisher возвращает заглушку с успешным сценарием по умолчанию.
func NewPublisher() *Publisher {
	return &Publisher{
		logger: log.WithField("component", "memory-publisher"),
	}
}

func (p *Publisher) PublishOrderCreated(order domain.Order) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.PublishCalls++
	if p.PublishErr != nil {
		return p.PublishErr
	}

	msg := fmt.Sprintf(
		"New order created: ID=%s, Customer=%s, Amount=%s, Date=%s",
		order.ID, order.CustomerName, order.Amount.String(), order.Date.String(),
	)
	p.sent = append(p.sent, msg)
	p.logger.Info(msg)
	return nil
}

// Sent возвращает копию отправленных уведомлений.
func (p *Publisher) Sent() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]string, len(p.sent))
	copy(out, p.sent)
	return out
}

var _ domain.NotificationPublisher = (*Publisher)(nil)
