// Package messaging adapts the kafka producer to the domain's event
// publisher port.
package messaging

import (
	"context"

	"github.com/MarinhoBortone/calculadora-jur-dica/internal/domain/port"
	"github.com/MarinhoBortone/calculadora-jur-dica/pkg/events"
	"github.com/MarinhoBortone/calculadora-jur-dica/pkg/kafka"
)

// KafkaPublisher serialises domain events onto kafka topics, keyed by
// aggregate id so events of one aggregate stay ordered.
type KafkaPublisher struct {
	producer *kafka.Producer
}

var _ port.EventPublisher = (*KafkaPublisher)(nil)

func NewKafkaPublisher(producer *kafka.Producer) *KafkaPublisher {
	return &KafkaPublisher{producer: producer}
}

func (p *KafkaPublisher) Publish(ctx context.Context, topic string, evts ...events.DomainEvent) error {
	msgs := make([]kafka.Message, 0, len(evts))
	for _, evt := range evts {
		msgs = append(msgs, kafka.Message{
			Key:   []byte(evt.AggregateID().String()),
			Value: evt.Payload(),
			Headers: map[string]string{
				"event_id":   evt.EventID().String(),
				"event_type": evt.EventType(),
			},
		})
	}
	return p.producer.Publish(ctx, topic, msgs...)
}

func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}
