package views

import (
	"fmt"

	"larekStore/entities"
)

var categoryClass = map[entities.Category]string{
	entities.CategorySoftSkill:  "soft",
	entities.CategoryOther:      "other",
	entities.CategoryAdditional: "additional",
	entities.CategoryButton:     "button",
	entities.CategoryHardSkill:  "hard",
}

// CardView renders a product either as a gallery tile or as the full
// preview shown in the modal.
type CardView struct {
	Preview bool
}

var _ Renderer[entities.Product] = CardView{}

func (c CardView) Render(p entities.Product) *Element {
	class := "gallery__item"
	if c.Preview {
		class = "card_full"
	}
	root := NewElement("div", "card", class)

	category := NewElement("span", "card__category")
	SetText(category, string(p.Category))
	if cls, ok := categoryClass[p.Category]; ok {
		ToggleClass(category, "card__category_"+cls, true)
	}

	title := NewElement("h2", "card__title")
	SetText(title, p.Title)

	image := NewElement("img", "card__image")
	SetImage(image, p.Image, p.Title)

	priceEl := NewElement("span", "card__price")
	SetText(priceEl, FormatPrice(p.Price))

	root.ReplaceChildren(category, title, image, priceEl)
	if !c.Preview {
		return root
	}

	text := NewElement("p", "card__text")
	SetText(text, p.Description)
	button := NewElement("button", "card__button")
	switch {
	case !p.Purchasable():
		SetText(button, "Нельзя купить")
		SetDisabled(button, true)
	case p.Selected:
		SetText(button, "Убрать из корзины")
	default:
		SetText(button, "В корзину")
	}
	root.Children = append(root.Children, text, button)
	return root
}

func FormatPrice(price *int) string {
	if price == nil {
		return "Бесценно"
	}
	return fmt.Sprintf("%d синапсов", *price)
}
