package views

import (
	"strconv"

	"larekStore/events"
)

// PageView is the storefront page: basket counter, product gallery and the
// scroll lock held while a modal is open.
type PageView struct {
	bus     *events.Bus
	root    *Element
	counter *Element
	gallery *Element
	cards   Renderer[events.CatalogChanged]
}

func NewPageView(bus *events.Bus) *PageView {
	v := &PageView{
		bus:     bus,
		root:    NewElement("div", "page__wrapper"),
		counter: NewElement("span", "header__basket-counter"),
		gallery: NewElement("main", "gallery"),
	}
	SetText(v.counter, "0")
	v.root.ReplaceChildren(v.counter, v.gallery)
	v.cards = RenderFunc[events.CatalogChanged](func(ev events.CatalogChanged) *Element {
		tile := CardView{}
		items := make([]*Element, 0, len(ev.Catalog))
		for _, p := range ev.Catalog {
			items = append(items, tile.Render(p))
		}
		v.gallery.ReplaceChildren(items...)
		return v.gallery
	})

	events.Subscribe(bus, events.KindCatalogChanged, func(ev events.CatalogChanged) {
		v.cards.Render(ev)
	})
	events.Subscribe(bus, events.KindBasketChanged, func(ev events.BasketChanged) {
		SetText(v.counter, strconv.Itoa(ev.Count))
	})
	events.Subscribe(bus, events.KindModalOpen, func(events.ModalOpen) { v.SetLocked(true) })
	events.Subscribe(bus, events.KindModalClose, func(events.ModalClose) { v.SetLocked(false) })
	return v
}

func (v *PageView) Root() *Element {
	return v.root
}

func (v *PageView) Counter() string {
	return v.counter.Text
}

func (v *PageView) Gallery() []*Element {
	return v.gallery.Children
}

func (v *PageView) Locked() bool {
	return v.root.HasClass("page__wrapper_locked")
}

func (v *PageView) SetLocked(locked bool) {
	ToggleClass(v.root, "page__wrapper_locked", locked)
}

// OpenBasket is the click on the basket icon in the header.
func (v *PageView) OpenBasket() {
	v.bus.Emit(events.BasketOpen{})
}
