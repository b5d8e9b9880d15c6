package memory

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vladislavdragonenkov/ois/internal/domain"
)

// orderRepositoryInMemory — in-memory реализация OrderRepository для
// локальной разработки и тестов. Экземпляр владеет своей мапой явно;
// глобального состояния нет.
type orderRepositoryInMemory struct {
	mu    sync.RWMutex
	items map[string]domain.Order
}

// NewOrderRepository возвращает in-memory репозиторий заказов.
func NewOrderRepository() domain.OrderRepository {
	return &orderRepositoryInMemory{
		items: make(map[string]domain.Order),
	}
}

// Put перезаписывает запись с тем же ID целиком (upsert).
func (r *orderRepositoryInMemory) Put(order domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[order.ID] = order
	return nil
}

// Get возвращает заказ или ErrOrderNotFound.
func (r *orderRepositoryInMemory) Get(id string) (domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.items[id]
	if !ok {
		return domain.Order{}, fmt.Errorf("%w: %s", domain.ErrOrderNotFound, id)
	}
	return order, nil
}

// List возвращает все заказы. Порядок контрактом не гарантируется;
// сортировка по ID даёт детерминированный вывод в тестах.
func (r *orderRepositoryInMemory) List() ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Order, 0, len(r.items))
	for _, order := range r.items {
		result = append(result, order)
	}

	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })

	return result, nil
}

var _ domain.OrderRepository = (*orderRepositoryInMemory)(nil)
