package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Order — запись о заказе клиента; единственная сущность сервиса.
type Order struct {
	// ID присваивается ровно один раз при создании и никогда не мутирует.
	ID string `json:"order_id"`
	// CustomerName — непустое имя клиента.
	CustomerName string `json:"customer_name"`
	// Amount хранится как точное десятичное значение; двоичная плавающая
	// точка не используется, чтобы сумма не дрейфовала при повторных
	// round-trip через хранилище.
	Amount decimal.Decimal `json:"order_amount"`
	// Date — календарная дата заказа.
	Date Date `json:"order_date"`
	// InvoiceFileURL пустой тогда и только тогда, когда документ не был
	// приложен при создании; после создания не меняется.
	InvoiceFileURL string `json:"invoice_file_url,omitempty"`
}

// ParseAmount разбирает текстовую сумму заказа в точное десятичное значение.
// Отрицательные значения допускаются: контракт требует лишь разбираемость.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrAmountInvalid, s)
	}
	return d, nil
}

// HasInvoice сообщает, был ли к заказу приложен документ.
func (o Order) HasInvoice() bool { return o.InvoiceFileURL != "" }

// Equal сравнивает заказы по значению, включая точное равенство суммы
// и календарной даты.
func (o Order) Equal(other Order) bool {
	return o.ID == other.ID &&
		o.CustomerName == other.CustomerName &&
		o.Amount.Equal(other.Amount) &&
		o.Date.Equal(other.Date) &&
		o.InvoiceFileURL == other.InvoiceFileURL
}
