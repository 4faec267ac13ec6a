package events

import "larekStore/entities"

type Kind string

const (
	KindCatalogChanged        Kind = "catalog-changed"
	KindBasketChanged         Kind = "basket-changed"
	KindDeliveryErrorsChanged Kind = "delivery-errors-changed"
	KindContactErrorsChanged  Kind = "contact-errors-changed"
	KindDeliveryReady         Kind = "delivery-ready"
	KindContactReady          Kind = "contact-ready"
	KindModalOpen             Kind = "modal-open"
	KindModalClose            Kind = "modal-close"

	// user intents emitted by views
	KindCardSelected      Kind = "card-selected"
	KindBasketOpen        Kind = "basket-open"
	KindBasketAdd         Kind = "basket-add"
	KindBasketRemove      Kind = "basket-remove"
	KindOrderOpen         Kind = "order-open"
	KindOrderFieldChanged Kind = "order-field-changed"
	KindDeliverySubmit    Kind = "delivery-submit"
	KindContactSubmit     Kind = "contact-submit"

	KindOrderSubmitting     Kind = "order-submitting"
	KindOrderSuccess        Kind = "order-success"
	KindOrderFailed         Kind = "order-failed"
	KindCheckoutStepChanged Kind = "checkout-step-changed"
)

type Event interface {
	Kind() Kind
}

type CatalogChanged struct {
	Catalog []entities.Product
}

type BasketChanged struct {
	Count int `json:"count"`
	Total int `json:"total"`
}

type DeliveryErrorsChanged struct {
	Errors entities.FormErrors
}

type ContactErrorsChanged struct {
	Errors entities.FormErrors
}

type DeliveryReady struct {
	Order entities.Order
}

type ContactReady struct {
	Order entities.Order
}

type ModalOpen struct{}

type ModalClose struct{}

type CardSelected struct {
	Product entities.Product
}

type BasketOpen struct{}

type BasketAdd struct {
	Product entities.Product
}

type BasketRemove struct {
	ProductId string
}

type OrderOpen struct{}

type OrderFieldChanged struct {
	Field entities.OrderField
	Value string
}

type DeliverySubmit struct{}

type ContactSubmit struct{}

type OrderSubmitting struct {
	Order entities.Order
}

type OrderSuccess struct {
	Result entities.OrderResult
}

type OrderFailed struct {
	Err error
}

type CheckoutStepChanged struct {
	From entities.CheckoutStep
	To   entities.CheckoutStep
}

func (CatalogChanged) Kind() Kind        { return KindCatalogChanged }
func (BasketChanged) Kind() Kind         { return KindBasketChanged }
func (DeliveryErrorsChanged) Kind() Kind { return KindDeliveryErrorsChanged }
func (ContactErrorsChanged) Kind() Kind  { return KindContactErrorsChanged }
func (DeliveryReady) Kind() Kind         { return KindDeliveryReady }
func (ContactReady) Kind() Kind          { return KindContactReady }
func (ModalOpen) Kind() Kind             { return KindModalOpen }
func (ModalClose) Kind() Kind            { return KindModalClose }
func (CardSelected) Kind() Kind          { return KindCardSelected }
func (BasketOpen) Kind() Kind            { return KindBasketOpen }
func (BasketAdd) Kind() Kind             { return KindBasketAdd }
func (BasketRemove) Kind() Kind          { return KindBasketRemove }
func (OrderOpen) Kind() Kind             { return KindOrderOpen }
func (OrderFieldChanged) Kind() Kind     { return KindOrderFieldChanged }
func (DeliverySubmit) Kind() Kind        { return KindDeliverySubmit }
func (ContactSubmit) Kind() Kind         { return KindContactSubmit }
func (OrderSubmitting) Kind() Kind       { return KindOrderSubmitting }
func (OrderSuccess) Kind() Kind          { return KindOrderSuccess }
func (OrderFailed) Kind() Kind           { return KindOrderFailed }
func (CheckoutStepChanged) Kind() Kind   { return KindCheckoutStepChanged }
