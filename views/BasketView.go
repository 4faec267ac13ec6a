package views

import (
	"strconv"

	"larekStore/entities"
	"larekStore/events"
)

type BasketData struct {
	Lines []entities.BasketLine
	Total int
}

// BasketView lists the basket lines. The lines are pulled from source on
// every basket-changed since the event carries only count and total.
type BasketView struct {
	bus    *events.Bus
	source func() []entities.BasketLine
	root   *Element
	list   *Element
	price  *Element
	button *Element
}

var _ Renderer[BasketData] = (*BasketView)(nil)

func NewBasketView(bus *events.Bus, source func() []entities.BasketLine) *BasketView {
	v := &BasketView{
		bus:    bus,
		source: source,
		root:   NewElement("div", "basket"),
		list:   NewElement("ul", "basket__list"),
		price:  NewElement("span", "basket__price"),
		button: NewElement("button", "basket__button"),
	}
	SetText(v.button, "Оформить")
	v.root.ReplaceChildren(v.list, v.price, v.button)
	v.Render(BasketData{})

	events.Subscribe(bus, events.KindBasketChanged, func(ev events.BasketChanged) {
		v.Render(BasketData{Lines: v.source(), Total: ev.Total})
	})
	return v
}

func (v *BasketView) Render(data BasketData) *Element {
	if len(data.Lines) == 0 {
		empty := NewElement("p")
		SetText(empty, "Корзина пуста")
		v.list.ReplaceChildren(empty)
	} else {
		items := make([]*Element, 0, len(data.Lines))
		for i, line := range data.Lines {
			items = append(items, renderLine(i+1, line))
		}
		v.list.ReplaceChildren(items...)
	}
	SetText(v.price, strconv.Itoa(data.Total)+" синапсов")
	SetDisabled(v.button, len(data.Lines) == 0)
	return v.root
}

func renderLine(index int, line entities.BasketLine) *Element {
	item := NewElement("li", "basket__item", "card_compact")
	num := NewElement("span", "basket__item-index")
	SetText(num, strconv.Itoa(index))
	title := NewElement("span", "card__title")
	SetText(title, line.Title)
	price := NewElement("span", "card__price")
	SetText(price, FormatPrice(&line.Price))
	remove := NewElement("button", "basket__item-delete")
	item.ReplaceChildren(num, title, price, remove)
	return item
}

func (v *BasketView) Root() *Element {
	return v.root
}

func (v *BasketView) Items() []*Element {
	return v.list.Children
}

func (v *BasketView) CanCheckout() bool {
	return !v.button.Disabled
}

// Checkout is the click on the checkout button.
func (v *BasketView) Checkout() {
	if v.button.Disabled {
		return
	}
	v.bus.Emit(events.OrderOpen{})
}

// Remove is the click on a line's delete button.
func (v *BasketView) Remove(productId string) {
	v.bus.Emit(events.BasketRemove{ProductId: productId})
}
