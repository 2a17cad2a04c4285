package producer

import (
	"context"

	"eshop-service/internal/service"
)

const (
	EventOrderCreated = "order.created"
	EventOrderPaid    = "order.paid"
)

type eventEnvelope struct {
	EventType string `json:"event_type"`
	Payload   any    `json:"payload"`
}

// KafkaEventBus публикует события заказов в kafka-топик.
type KafkaEventBus struct {
	producer *OrderEventProducer
}

func NewKafkaEventBus(p *OrderEventProducer) *KafkaEventBus {
	return &KafkaEventBus{producer: p}
}

func (b *KafkaEventBus) PublishOrderCreated(ctx context.Context, e service.OrderCreatedEvent) error {
	return b.producer.Publish(ctx, e.OrderID.String(), eventEnvelope{
		EventType: EventOrderCreated,
		Payload:   e,
	})
}

func (b *KafkaEventBus) PublishOrderPaid(ctx context.Context, e service.OrderPaidEvent) error {
	return b.producer.Publish(ctx, e.OrderID.String(), eventEnvelope{
		EventType: EventOrderPaid,
		Payload:   e,
	})
}
