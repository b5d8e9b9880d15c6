package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/ois/internal/domain"
)

const opTimeout = 5 * time.Second

type orderRepository struct {
	db *sql.DB
}

// NewOrderRepository создаёт PostgreSQL-реализацию OrderRepository.
func NewOrderRepository(store *Store) domain.OrderRepository {
	return &orderRepository{db: store.DB()}
}

// Put — upsert по первичному ключу: одна атомарная команда, конкурентные
// читатели никогда не видят частично записанную строку.
func (r *orderRepository) Put(order domain.Order) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	invoiceURL := sql.NullString{String: order.InvoiceFileURL, Valid: order.InvoiceFileURL != ""}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO orders (id, customer_name, amount, order_date, invoice_file_url)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET customer_name = EXCLUDED.customer_name,
		    amount = EXCLUDED.amount,
		    order_date = EXCLUDED.order_date,
		    invoice_file_url = EXCLUDED.invoice_file_url
	`,
		order.ID, order.CustomerName, order.Amount.String(), order.Date.Time(), invoiceURL,
	)
	if err != nil {
		return fmt.Errorf("upsert order: %w", err)
	}

	return nil
}

func (r *orderRepository) Get(id string) (domain.Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	row := r.db.QueryRowContext(ctx, `
		SELECT id, customer_name, amount::text, order_date, invoice_file_url
		FROM orders
		WHERE id = $1
	`, id)

	order, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Order{}, fmt.Errorf("%w: %s", domain.ErrOrderNotFound, id)
		}
		return domain.Order{}, fmt.Errorf("select order: %w", err)
	}

	return order, nil
}

func (r *orderRepository) List() ([]domain.Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, customer_name, amount::text, order_date, invoice_file_url
		FROM orders
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}

	return orders, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (domain.Order, error) {
	var (
		order      domain.Order
		amountText string
		orderDate  time.Time
		invoiceURL sql.NullString
	)

	if err := row.Scan(&order.ID, &order.CustomerName, &amountText, &orderDate, &invoiceURL); err != nil {
		return domain.Order{}, err
	}

	amount, err := decimal.NewFromString(amountText)
	if err != nil {
		return domain.Order{}, fmt.Errorf("decode stored amount %q: %w", amountText, err)
	}
	order.Amount = amount
	order.Date = domain.DateOf(orderDate)
	if invoiceURL.Valid {
		order.InvoiceFileURL = invoiceURL.String
	}

	return order, nil
}

var _ domain.OrderRepository = (*orderRepository)(nil)
