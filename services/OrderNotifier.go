package services

import (
	"context"
	"log"
	"sync"
	"time"

	"larekStore/entities"
	"larekStore/events"
	"larekStore/models"
	"larekStore/repository"
)

// OrderNotifier publishes an OrderPlaced message for every successful order.
// Publishing runs in the background so the session turn is never blocked
// on the broker.
type OrderNotifier struct {
	publisher repository.OrderEventPublisher
	sessionId string
	timeout   time.Duration
	pending   entities.Order
	wg        sync.WaitGroup
}

func NewOrderNotifier(bus *events.Bus, publisher repository.OrderEventPublisher, sessionId string) *OrderNotifier {
	n := &OrderNotifier{
		publisher: publisher,
		sessionId: sessionId,
		timeout:   5 * time.Second,
	}
	events.Subscribe(bus, events.KindOrderSubmitting, func(ev events.OrderSubmitting) {
		n.pending = ev.Order
	})
	events.Subscribe(bus, events.KindOrderSuccess, func(ev events.OrderSuccess) {
		n.publish(ev.Result)
	})
	return n
}

func (n *OrderNotifier) publish(res entities.OrderResult) {
	evt := models.OrderPlaced{
		OrderId:   res.Id,
		SessionId: n.sessionId,
		Items:     n.pending.Items,
		Total:     res.Total,
		Payment:   string(n.pending.Payment),
		PlacedAt:  time.Now().UTC(),
	}
	n.pending = entities.Order{}

	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
		defer cancel()
		if err := n.publisher.PublishOrderPlaced(ctx, evt); err != nil {
			log.Printf("PublishOrderPlaced: %v", err)
		}
	}()
}

// Wait blocks until every publish started so far has finished.
func (n *OrderNotifier) Wait() {
	n.wg.Wait()
}
