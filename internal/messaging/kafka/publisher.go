package kafka

import (
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"

	"github.com/vladislavdragonenkov/ois/internal/domain"
)

// Publisher публикует событие о созданном заказе в Kafka.
// Вызывающая сторона решает, что делать с ошибкой; заказ к этому моменту
// уже записан и не откатывается.
type Publisher struct {
	producer *Producer
	topic    string
}

// NewPublisher создаёт Kafka-реализацию NotificationPublisher.
func NewPublisher(producer *Producer, topic string) *Publisher {
	if topic == "" {
		topic = TopicOrderEvents
	}
	return &Publisher{producer: producer, topic: topic}
}

func (p *Publisher) PublishOrderCreated(order domain.Order) error {
	event := NewOrderCreatedEvent(order)
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal order created event: %w", err)
	}

	headers := []sarama.RecordHeader{
		{Key: []byte(HeaderSubject), Value: []byte(SubjectOrderCreated)},
	}
	return p.producer.Publish(p.topic, order.ID, payload, headers)
}

var _ domain.NotificationPublisher = (*Publisher)(nil)
