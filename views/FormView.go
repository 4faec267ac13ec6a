package views

import (
	"strings"

	"larekStore/entities"
	"larekStore/events"
)

type FormData struct {
	Valid  bool
	Errors entities.FormErrors
}

// FormView is one checkout step form. Only the errors of its own step are
// ever shown on it.
type FormView struct {
	bus    *events.Bus
	name   string
	fields []entities.OrderField
	submit events.Event
	root   *Element
	button *Element
	errors *Element
}

var _ Renderer[FormData] = (*FormView)(nil)

func NewDeliveryForm(bus *events.Bus) *FormView {
	v := newFormView(bus, "order", []entities.OrderField{entities.FieldPayment, entities.FieldAddress}, events.DeliverySubmit{}, "Далее")
	events.Subscribe(bus, events.KindDeliveryErrorsChanged, func(ev events.DeliveryErrorsChanged) {
		v.Render(FormData{Valid: ev.Errors.Valid(), Errors: ev.Errors})
	})
	return v
}

func NewContactForm(bus *events.Bus) *FormView {
	v := newFormView(bus, "contacts", []entities.OrderField{entities.FieldEmail, entities.FieldPhone}, events.ContactSubmit{}, "Оплатить")
	events.Subscribe(bus, events.KindContactErrorsChanged, func(ev events.ContactErrorsChanged) {
		v.Render(FormData{Valid: ev.Errors.Valid(), Errors: ev.Errors})
	})
	return v
}

func newFormView(bus *events.Bus, name string, fields []entities.OrderField, submit events.Event, label string) *FormView {
	v := &FormView{
		bus:    bus,
		name:   name,
		fields: fields,
		submit: submit,
		root:   NewElement("form", "form"),
		button: NewElement("button", "button"),
		errors: NewElement("span", "form__errors"),
	}
	SetText(v.button, label)
	SetDisabled(v.button, true)
	v.root.ReplaceChildren(v.button, v.errors)
	return v
}

func (v *FormView) Render(data FormData) *Element {
	SetDisabled(v.button, !data.Valid)
	msgs := make([]string, 0, len(v.fields))
	for _, f := range v.fields {
		if msg, ok := data.Errors[f]; ok {
			msgs = append(msgs, msg)
		}
	}
	SetText(v.errors, strings.Join(msgs, "; "))
	return v.root
}

func (v *FormView) Name() string {
	return v.name
}

func (v *FormView) Root() *Element {
	return v.root
}

func (v *FormView) Valid() bool {
	return !v.button.Disabled
}

func (v *FormView) Errors() string {
	return v.errors.Text
}

// Owns reports whether field is an input of this form.
func (v *FormView) Owns(field entities.OrderField) bool {
	for _, f := range v.fields {
		if f == field {
			return true
		}
	}
	return false
}

// Input is a change of one of the form inputs.
func (v *FormView) Input(field entities.OrderField, value string) {
	v.bus.Emit(events.OrderFieldChanged{Field: field, Value: value})
}

func (v *FormView) Submit() {
	v.bus.Emit(v.submit)
}
