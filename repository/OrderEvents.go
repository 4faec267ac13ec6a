package repository

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"larekStore/models"

	stan "github.com/nats-io/stan.go"
	"github.com/segmentio/kafka-go"
)

// OrderEventPublisher announces placed orders to downstream consumers.
type OrderEventPublisher interface {
	PublishOrderPlaced(ctx context.Context, evt models.OrderPlaced) error
	Close() error
}

type KafkaPublisher struct {
	w *kafka.Writer
}

func NewKafkaPublisher(broker string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		w: &kafka.Writer{
			Addr:         kafka.TCP(broker),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireOne,
		},
	}
}

func (p *KafkaPublisher) PublishOrderPlaced(ctx context.Context, evt models.OrderPlaced) error {
	data, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	// same order id, same partition
	msg := kafka.Message{
		Key:   []byte(evt.OrderId),
		Value: data,
		Time:  time.Now(),
	}
	return p.w.WriteMessages(ctx, msg)
}

func (p *KafkaPublisher) Close() error {
	return p.w.Close()
}

type StanPublisher struct {
	conn    stan.Conn
	subject string
}

func NewStanPublisher(clusterID string, clientID string, url string, subject string) (*StanPublisher, error) {
	sc, err := stan.Connect(clusterID, clientID, stan.NatsURL(url))
	if err != nil {
		return nil, err
	}
	return &StanPublisher{conn: sc, subject: subject}, nil
}

func (p *StanPublisher) PublishOrderPlaced(_ context.Context, evt models.OrderPlaced) error {
	data, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	return p.conn.Publish(p.subject, data)
}

func (p *StanPublisher) Close() error {
	return p.conn.Close()
}

// NopPublisher logs placed orders and publishes nothing.
type NopPublisher struct{}

func (NopPublisher) PublishOrderPlaced(_ context.Context, evt models.OrderPlaced) error {
	log.Printf("order %s placed: %d items, total %d", evt.OrderId, len(evt.Items), evt.Total)
	return nil
}

func (NopPublisher) Close() error {
	return nil
}

var _ OrderEventPublisher = (*KafkaPublisher)(nil)
var _ OrderEventPublisher = (*StanPublisher)(nil)
var _ OrderEventPublisher = NopPublisher{}
