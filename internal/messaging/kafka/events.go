package kafka

import (
	"fmt"
	"time"

	"github.com/vladislavdragonenkov/ois/internal/domain"
)

// EventType определяет тип события.
type EventType string

const (
	// EventTypeOrderCreated — заказ принят и записан.
	EventTypeOrderCreated EventType = "order.created"
)

// TopicOrderEvents — топик событий заказов.
const TopicOrderEvents = "ois.order.events"

// HeaderSubject несёт тему уведомления в заголовке сообщения.
const HeaderSubject = "x-subject"

// SubjectOrderCreated — тема уведомления о новом заказе.
const SubjectOrderCreated = "New Order Notification"

// OrderCreatedEvent — полезная нагрузка события о созданном заказе.
// Сумма и дата передаются текстом, чтобы получатели не теряли точность.
type OrderCreatedEvent struct {
	EventType      EventType `json:"event_type"`
	OrderID        string    `json:"order_id"`
	CustomerName   string    `json:"customer_name"`
	OrderAmount    string    `json:"order_amount"`
	OrderDate      string    `json:"order_date"`
	InvoiceFileURL string    `json:"invoice_file_url,omitempty"`
	Message        string    `json:"message"`
	Timestamp      time.Time `json:"timestamp"`
}

// NewOrderCreatedEvent собирает событие из записанного заказа.
func NewOrderCreatedEvent(order domain.Order) *OrderCreatedEvent {
	return &OrderCreatedEvent{
		EventType:      EventTypeOrderCreated,
		OrderID:        order.ID,
		CustomerName:   order.CustomerName,
		OrderAmount:    order.Amount.String(),
		OrderDate:      order.Date.String(),
		InvoiceFileURL: order.InvoiceFileURL,
		Message:        NotificationMessage(order),
		Timestamp:      time.Now(),
	}
}

// NotificationMessage форматирует человекочитаемый текст уведомления.
func NotificationMessage(order domain.Order) string {
	return fmt.Sprintf(
		"New order created:\nOrder ID: %s\nCustomer: %s\nAmount: $%s\nDate: %s",
		order.ID,
		order.CustomerName,
		order.Amount.String(),
		order.Date.String(),
	)
}
