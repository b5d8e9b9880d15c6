package domain

// OrderRepository — durable key-value хранилище записей заказов.
// Реализации должны сохранять все поля заказа точно, включая различие
// между отсутствующей и присутствующей ссылкой на документ.
type OrderRepository interface {
	// Put — идемпотентный upsert по Order.ID; существующая запись с тем же
	// ключом перезаписывается целиком.
	Put(order Order) error
	// Get возвращает заказ или ErrOrderNotFound.
	Get(id string) (Order, error)
	// List возвращает все заказы; порядок определяется хранилищем.
	List() ([]Order, error)
}

// FileStore — бинарное хранилище документов, адресуемое ключом.
type FileStore interface {
	// Put сохраняет данные под ключом и возвращает стабильную
	// ссылку-локацию вида https://<bucket>.<host>/<key>, из которой ключ
	// восстановим обратно.
	Put(key string, data []byte, contentType string) (string, error)
	// Get возвращает байты по ключу или ErrFileNotFound.
	Get(key string) ([]byte, error)
}

// NotificationPublisher рассылает событие о созданном заказе.
// Публикация выполняется после записи заказа; её ошибка никогда не
// откатывает уже записанную запись.
type NotificationPublisher interface {
	PublishOrderCreated(order Order) error
}
