package services

import (
	"context"
	"sync"

	"larekStore/entities"
	"larekStore/events"
	"larekStore/models"
)

func price(v int) *int {
	return &v
}

func testCatalog() []entities.Product {
	return []entities.Product{
		{Id: "a", Category: entities.CategorySoftSkill, Title: "+1 час в сутках", Image: "/a.svg", Price: price(100)},
		{Id: "b", Category: entities.CategoryOther, Title: "Мамка-таймер", Image: "/b.svg", Price: nil},
		{Id: "c", Category: entities.CategoryHardSkill, Title: "Бэкенд-антистресс", Image: "/c.svg", Price: price(1000)},
	}
}

type recorder struct {
	mu     sync.Mutex
	events []events.Event
}

func record(bus *events.Bus) *recorder {
	r := &recorder{}
	bus.OnAll(func(ev events.Event) {
		r.mu.Lock()
		r.events = append(r.events, ev)
		r.mu.Unlock()
	})
	return r
}

func (r *recorder) kinds() []events.Kind {
	r.mu.Lock()
	defer r.mu.Unlock()
	kinds := make([]events.Kind, 0, len(r.events))
	for _, ev := range r.events {
		kinds = append(kinds, ev.Kind())
	}
	return kinds
}

func (r *recorder) last(kind events.Kind) (events.Event, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].Kind() == kind {
			return r.events[i], true
		}
	}
	return nil, false
}

func (r *recorder) count(kind events.Kind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, ev := range r.events {
		if ev.Kind() == kind {
			n++
		}
	}
	return n
}

func (r *recorder) reset() {
	r.mu.Lock()
	r.events = nil
	r.mu.Unlock()
}

type fakeSink struct {
	mu      sync.Mutex
	orders  []entities.Order
	err     error
	started chan struct{}
	release chan struct{}
}

func (s *fakeSink) SubmitOrder(ctx context.Context, order entities.Order) (res entities.OrderResult, err error) {
	if s.started != nil {
		close(s.started)
	}
	if s.release != nil {
		<-s.release
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, order)
	if s.err != nil {
		err = s.err
		return
	}
	res = entities.OrderResult{Id: "order-1", Total: order.Total}
	return
}

type fakeSource struct {
	prods []entities.Product
	err   error
}

func (s *fakeSource) GetProductList(ctx context.Context) ([]entities.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.prods, nil
}

func (s *fakeSource) GetProduct(ctx context.Context, id string) (entities.Product, error) {
	if s.err != nil {
		return entities.Product{}, s.err
	}
	for _, p := range s.prods {
		if p.Id == id {
			return p, nil
		}
	}
	return entities.Product{}, models.ErrNotFoundError
}

type fakePublisher struct {
	mu     sync.Mutex
	placed []models.OrderPlaced
}

func (p *fakePublisher) PublishOrderPlaced(ctx context.Context, evt models.OrderPlaced) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.placed = append(p.placed, evt)
	return nil
}

func (p *fakePublisher) Close() error {
	return nil
}
