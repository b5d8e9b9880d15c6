package kafka_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/ois/internal/domain"
	"github.com/vladislavdragonenkov/ois/internal/messaging/kafka"
)

func testOrder() domain.Order {
	amount, _ := decimal.NewFromString("150.50")
	date, _ := domain.ParseDate("2024-01-15")
	return domain.Order{
		ID:           "order-1",
		CustomerName: "Acme",
		Amount:       amount,
		Date:         date,
	}
}

func TestNewOrderCreatedEvent(t *testing.T) {
	order := testOrder()
	order.InvoiceFileURL = "https://bucket.s3.amazonaws.com/invoices/order-1/invoice.pdf"

	event := kafka.NewOrderCreatedEvent(order)

	if event.EventType != kafka.EventTypeOrderCreated {
		t.Errorf("expected %s, got %s", kafka.EventTypeOrderCreated, event.EventType)
	}
	if event.OrderID != order.ID || event.CustomerName != order.CustomerName {
		t.Errorf("event identity mismatch: %+v", event)
	}
	if event.OrderDate != "2024-01-15" {
		t.Errorf("expected ISO date, got %s", event.OrderDate)
	}
	if event.InvoiceFileURL != order.InvoiceFileURL {
		t.Errorf("expected invoice url to be carried, got %s", event.InvoiceFileURL)
	}
	if event.Timestamp.IsZero() {
		t.Error("expected timestamp to be set")
	}

	got, err := decimal.NewFromString(event.OrderAmount)
	if err != nil {
		t.Fatalf("amount must stay decimal-parseable: %v", err)
	}
	if !got.Equal(order.Amount) {
		t.Errorf("expected amount %s, got %s", order.Amount, got)
	}
}

func TestNotificationMessage(t *testing.T) {
	msg := kafka.NotificationMessage(testOrder())

	for _, want := range []string{
		"New order created:",
		"Order ID: order-1",
		"Customer: Acme",
		"Date: 2024-01-15",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected message to contain %q, got:\n%s", want, msg)
		}
	}
}
