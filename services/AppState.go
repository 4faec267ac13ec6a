package services

import (
	"larekStore/entities"
	"larekStore/events"
)

// AppState owns the catalog, basket, in-progress order and the validation
// errors of both checkout steps. It never talks to views directly: every
// change is announced on the bus.
type AppState struct {
	bus            *events.Bus
	catalog        []entities.Product
	basket         []entities.BasketLine
	order          entities.Order
	deliveryErrors entities.FormErrors
	contactErrors  entities.FormErrors
}

func NewAppState(bus *events.Bus) *AppState {
	return &AppState{
		bus:            bus,
		catalog:        []entities.Product{},
		basket:         []entities.BasketLine{},
		order:          entities.EmptyOrder(),
		deliveryErrors: entities.FormErrors{},
		contactErrors:  entities.FormErrors{},
	}
}

// SetCatalog replaces the catalog. Selected flags are derived from the basket.
func (s *AppState) SetCatalog(products []entities.Product) {
	catalog := make([]entities.Product, len(products))
	copy(catalog, products)
	for i := range catalog {
		catalog[i].Selected = s.inBasket(catalog[i].Id)
	}
	s.catalog = catalog
	s.bus.Emit(events.CatalogChanged{Catalog: s.Catalog()})
}

// AddToBasket appends a line for p. p must be purchasable; duplicates are
// not rejected.
func (s *AppState) AddToBasket(p entities.Product) {
	s.basket = append(s.basket, entities.BasketLine{
		Id:    p.Id,
		Title: p.Title,
		Price: *p.Price,
	})
	s.setSelected(p.Id, true)
	s.syncOrder()
	s.emitBasketChanged()
}

// RemoveFromBasket drops every line for productId. Emptying the basket
// resets the order.
func (s *AppState) RemoveFromBasket(productId string) {
	kept := make([]entities.BasketLine, 0, len(s.basket))
	for _, line := range s.basket {
		if line.Id != productId {
			kept = append(kept, line)
		}
	}
	s.basket = kept
	s.setSelected(productId, false)
	if len(s.basket) == 0 {
		s.ResetOrder()
	} else {
		s.syncOrder()
	}
	s.emitBasketChanged()
}

// SetOrderField sets one order field and re-validates both checkout steps.
// Unknown fields are ignored.
func (s *AppState) SetOrderField(field entities.OrderField, value string) {
	if !s.order.Set(field, value) {
		return
	}
	s.Validate()
}

// Validate recomputes the errors of both steps and announces them.
func (s *AppState) Validate() {
	s.revalidate(true)
}

func (s *AppState) revalidate(announceReady bool) {
	s.deliveryErrors = ValidateDelivery(s.order)
	s.bus.Emit(events.DeliveryErrorsChanged{Errors: copyErrors(s.deliveryErrors)})
	if announceReady && s.deliveryErrors.Valid() {
		s.bus.Emit(events.DeliveryReady{Order: s.order.Clone()})
	}

	s.contactErrors = ValidateContact(s.order)
	s.bus.Emit(events.ContactErrorsChanged{Errors: copyErrors(s.contactErrors)})
	if announceReady && s.contactErrors.Valid() {
		s.bus.Emit(events.ContactReady{Order: s.order.Clone()})
	}
}

func (s *AppState) ResetBasket() {
	s.basket = []entities.BasketLine{}
}

// ResetOrder replaces the order with the empty template. The errors of
// both steps are recomputed for it; no ready event follows.
func (s *AppState) ResetOrder() {
	s.order = entities.EmptyOrder()
	s.revalidate(false)
}

func (s *AppState) ResetSelected() {
	for i := range s.catalog {
		s.catalog[i].Selected = false
	}
}

// StampTotal copies the current basket total into the order.
func (s *AppState) StampTotal() {
	s.order.Total = s.BasketTotal()
}

func (s *AppState) BasketCount() int {
	return len(s.basket)
}

func (s *AppState) BasketTotal() int {
	total := 0
	for _, line := range s.basket {
		total += line.Price
	}
	return total
}

func (s *AppState) Catalog() []entities.Product {
	catalog := make([]entities.Product, len(s.catalog))
	copy(catalog, s.catalog)
	return catalog
}

func (s *AppState) Product(id string) (p entities.Product, exists bool) {
	for _, item := range s.catalog {
		if item.Id == id {
			return item, true
		}
	}
	return
}

func (s *AppState) Basket() []entities.BasketLine {
	basket := make([]entities.BasketLine, len(s.basket))
	copy(basket, s.basket)
	return basket
}

func (s *AppState) Order() entities.Order {
	return s.order.Clone()
}

func (s *AppState) DeliveryErrors() entities.FormErrors {
	return copyErrors(s.deliveryErrors)
}

func (s *AppState) ContactErrors() entities.FormErrors {
	return copyErrors(s.contactErrors)
}

func (s *AppState) inBasket(id string) bool {
	for _, line := range s.basket {
		if line.Id == id {
			return true
		}
	}
	return false
}

func (s *AppState) setSelected(id string, selected bool) {
	for i := range s.catalog {
		if s.catalog[i].Id == id {
			s.catalog[i].Selected = selected
		}
	}
}

func (s *AppState) syncOrder() {
	items := make([]string, 0, len(s.basket))
	for _, line := range s.basket {
		items = append(items, line.Id)
	}
	s.order.Items = items
	s.order.Total = s.BasketTotal()
}

func (s *AppState) emitBasketChanged() {
	s.bus.Emit(events.BasketChanged{Count: s.BasketCount(), Total: s.BasketTotal()})
}

func copyErrors(errs entities.FormErrors) entities.FormErrors {
	out := make(entities.FormErrors, len(errs))
	for k, v := range errs {
		out[k] = v
	}
	return out
}
