package services

import (
	"context"
	"log"

	"larekStore/events"
)

// Presenter turns user intents published by views into state mutations
// and checkout transitions.
type Presenter struct {
	ctx      context.Context
	bus      *events.Bus
	state    *AppState
	checkout *Checkout
	subs     []events.Subscription

	openModal  events.Emitter[events.ModalOpen]
	closeModal events.Emitter[events.ModalClose]
}

func NewPresenter(ctx context.Context, bus *events.Bus, state *AppState, checkout *Checkout) *Presenter {
	p := &Presenter{
		ctx:      ctx,
		bus:      bus,
		state:    state,
		checkout: checkout,

		openModal:  events.Trigger(bus, events.ModalOpen{}),
		closeModal: events.Trigger(bus, events.ModalClose{}),
	}
	p.subs = []events.Subscription{
		events.Subscribe(bus, events.KindCardSelected, p.onCardSelected),
		events.Subscribe(bus, events.KindBasketAdd, p.onBasketAdd),
		events.Subscribe(bus, events.KindBasketRemove, p.onBasketRemove),
		events.Subscribe(bus, events.KindBasketOpen, func(events.BasketOpen) { p.checkout.OpenBasket() }),
		events.Subscribe(bus, events.KindOrderOpen, func(events.OrderOpen) { _ = p.checkout.Proceed() }),
		events.Subscribe(bus, events.KindOrderFieldChanged, p.onOrderFieldChanged),
		events.Subscribe(bus, events.KindDeliverySubmit, func(events.DeliverySubmit) { _ = p.checkout.SubmitDelivery() }),
		events.Subscribe(bus, events.KindContactSubmit, p.onContactSubmit),
		events.Subscribe(bus, events.KindModalClose, func(events.ModalClose) { p.checkout.Close() }),
	}
	return p
}

// Close removes every subscription of the presenter.
func (p *Presenter) Close() {
	for _, sub := range p.subs {
		p.bus.Off(sub)
	}
	p.subs = nil
}

func (p *Presenter) onCardSelected(ev events.CardSelected) {
	p.openModal()
}

func (p *Presenter) onBasketAdd(ev events.BasketAdd) {
	prod, exists := p.state.Product(ev.Product.Id)
	if !exists {
		prod = ev.Product
	}
	if !prod.Purchasable() {
		log.Printf("onBasketAdd: product %s is not for sale", prod.Id)
		return
	}
	p.state.AddToBasket(prod)
	p.closeModal()
}

func (p *Presenter) onBasketRemove(ev events.BasketRemove) {
	p.state.RemoveFromBasket(ev.ProductId)
}

func (p *Presenter) onOrderFieldChanged(ev events.OrderFieldChanged) {
	if !ev.Field.IsValid() {
		log.Printf("onOrderFieldChanged: unknown field %q", ev.Field)
		return
	}
	p.state.SetOrderField(ev.Field, ev.Value)
}

// onContactSubmit runs inside a turn, so the submission is started in the
// background and re-enters through its own turns.
func (p *Presenter) onContactSubmit(events.ContactSubmit) {
	go func() {
		if _, err := p.checkout.Submit(p.ctx); err != nil {
			log.Printf("onContactSubmit: %v", err)
		}
	}()
}
