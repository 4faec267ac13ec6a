package entities

type Category string

const (
	CategorySoftSkill  Category = "софт-скил"
	CategoryOther      Category = "другое"
	CategoryAdditional Category = "дополнительное"
	CategoryButton     Category = "кнопка"
	CategoryHardSkill  Category = "хард-скил"
)

func (c Category) IsValid() bool {
	switch c {
	case CategorySoftSkill, CategoryOther, CategoryAdditional, CategoryButton, CategoryHardSkill:
		return true
	}
	return false
}

type Product struct {
	Id          string   `json:"id"`
	Category    Category `json:"category"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Price       *int     `json:"price"` // nil: not for sale
	Selected    bool     `json:"selected,omitempty"`
}

func (p Product) Purchasable() bool {
	return p.Price != nil
}

// BasketLine is the snapshot of a product kept in the basket.
type BasketLine struct {
	Id    string `json:"id"`
	Title string `json:"title"`
	Price int    `json:"price"`
}

type PaymentMethod string

const (
	PaymentUnset PaymentMethod = ""
	PaymentCard  PaymentMethod = "card"
	PaymentCash  PaymentMethod = "cash"
)

type OrderField string

const (
	FieldPayment OrderField = "payment"
	FieldAddress OrderField = "address"
	FieldEmail   OrderField = "email"
	FieldPhone   OrderField = "phone"
)

var orderSetters = map[OrderField]func(o *Order, value string){
	FieldPayment: func(o *Order, value string) { o.Payment = PaymentMethod(value) },
	FieldAddress: func(o *Order, value string) { o.Address = value },
	FieldEmail:   func(o *Order, value string) { o.Email = value },
	FieldPhone:   func(o *Order, value string) { o.Phone = value },
}

func (f OrderField) IsValid() bool {
	_, ok := orderSetters[f]
	return ok
}

type Order struct {
	Payment PaymentMethod `json:"payment"`
	Address string        `json:"address"`
	Email   string        `json:"email"`
	Phone   string        `json:"phone"`
	Items   []string      `json:"items"`
	Total   int           `json:"total"`
}

func EmptyOrder() Order {
	return Order{Items: []string{}}
}

// Set assigns value to field and reports whether the field is settable.
func (o *Order) Set(field OrderField, value string) bool {
	set, ok := orderSetters[field]
	if !ok {
		return false
	}
	set(o, value)
	return true
}

// Clone returns a copy that shares no memory with o.
func (o Order) Clone() Order {
	items := make([]string, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	return o
}

// FormErrors maps an order field to a user-facing message. Empty means valid.
type FormErrors map[OrderField]string

func (e FormErrors) Valid() bool {
	return len(e) == 0
}

type OrderResult struct {
	Id    string `json:"id"`
	Total int    `json:"total"`
}

type CheckoutStep string

const (
	StepBrowsing         CheckoutStep = "browsing"
	StepReviewingBasket  CheckoutStep = "reviewing-basket"
	StepEnteringDelivery CheckoutStep = "entering-delivery"
	StepEnteringContact  CheckoutStep = "entering-contact"
	StepSubmitting       CheckoutStep = "submitting"
	StepSuccess          CheckoutStep = "success"
	StepFailure          CheckoutStep = "failure"
)

type BasketResponse struct {
	Items []BasketLine `json:"items"`
	Count int          `json:"count"`
	Total int          `json:"total"`
}

type OrderFieldRequest struct {
	Field OrderField `json:"field"`
	Value string     `json:"value"`
}

// CheckoutResponse is the checkout state of the session as served to the page.
type CheckoutResponse struct {
	Step           CheckoutStep `json:"step"`
	Order          Order        `json:"order"`
	DeliveryErrors FormErrors   `json:"delivery_errors"`
	ContactErrors  FormErrors   `json:"contact_errors"`
}
