package views

import (
	"fmt"

	"larekStore/entities"
	"larekStore/events"
)

// ModalView is the single modal container. Its content follows the
// checkout step; a product preview is shown on card-selected.
type ModalView struct {
	bus     *events.Bus
	root    *Element
	content *Element
	preview Renderer[entities.Product]
	steps   map[entities.CheckoutStep]*Element
}

type ModalContent struct {
	Basket   *BasketView
	Delivery *FormView
	Contact  *FormView
}

func NewModalView(bus *events.Bus, c ModalContent) *ModalView {
	v := &ModalView{
		bus:     bus,
		root:    NewElement("div", "modal"),
		content: NewElement("div", "modal__content"),
		preview: CardView{Preview: true},
		steps: map[entities.CheckoutStep]*Element{
			entities.StepReviewingBasket:  c.Basket.Root(),
			entities.StepEnteringDelivery: c.Delivery.Root(),
			entities.StepEnteringContact:  c.Contact.Root(),
		},
	}
	v.root.ReplaceChildren(v.content)

	events.Subscribe(bus, events.KindModalOpen, func(events.ModalOpen) {
		ToggleClass(v.root, "modal_active", true)
	})
	events.Subscribe(bus, events.KindModalClose, func(events.ModalClose) {
		ToggleClass(v.root, "modal_active", false)
		v.content.ReplaceChildren()
	})
	events.Subscribe(bus, events.KindCardSelected, func(ev events.CardSelected) {
		v.content.ReplaceChildren(v.preview.Render(ev.Product))
	})
	events.Subscribe(bus, events.KindCheckoutStepChanged, func(ev events.CheckoutStepChanged) {
		if el, ok := v.steps[ev.To]; ok {
			v.content.ReplaceChildren(el)
		}
	})
	events.Subscribe(bus, events.KindOrderSuccess, func(ev events.OrderSuccess) {
		v.content.ReplaceChildren(renderSuccess(ev.Result))
		ToggleClass(v.root, "modal_active", true)
	})
	return v
}

func renderSuccess(res entities.OrderResult) *Element {
	root := NewElement("div", "order-success")
	title := NewElement("h2", "order-success__title")
	SetText(title, "Заказ оформлен")
	desc := NewElement("p", "order-success__description")
	SetText(desc, fmt.Sprintf("Списано %d синапсов", res.Total))
	root.ReplaceChildren(title, desc)
	return root
}

func (v *ModalView) Root() *Element {
	return v.root
}

func (v *ModalView) Active() bool {
	return v.root.HasClass("modal_active")
}

func (v *ModalView) Content() *Element {
	if len(v.content.Children) == 0 {
		return nil
	}
	return v.content.Children[0]
}

// Close is the click on the close button or outside the content.
func (v *ModalView) Close() {
	v.bus.Emit(events.ModalClose{})
}
