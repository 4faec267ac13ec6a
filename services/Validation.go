package services

import (
	"errors"
	"log"
	"reflect"
	"strings"

	"larekStore/entities"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		return name
	})
	return v
}

type deliveryForm struct {
	Payment string `json:"payment" validate:"required,oneof=card cash"`
	Address string `json:"address" validate:"notblank"`
}

type contactForm struct {
	Email string `json:"email" validate:"required"`
	Phone string `json:"phone" validate:"required"`
}

var errorMessages = map[entities.OrderField]map[string]string{
	entities.FieldPayment: {
		"required": "Choose a payment method",
		"oneof":    "Unsupported payment method",
	},
	entities.FieldAddress: {
		"notblank": "Specify a delivery address",
	},
	entities.FieldEmail: {
		"required": "Specify your email",
	},
	entities.FieldPhone: {
		"required": "Specify your phone number",
	},
}

// ValidateDelivery checks the delivery step: payment method and address.
func ValidateDelivery(order entities.Order) entities.FormErrors {
	return formErrors(deliveryForm{
		Payment: string(order.Payment),
		Address: order.Address,
	})
}

// ValidateContact checks the contact step: email and phone.
func ValidateContact(order entities.Order) entities.FormErrors {
	return formErrors(contactForm{
		Email: order.Email,
		Phone: order.Phone,
	})
}

func formErrors(form any) entities.FormErrors {
	errs := entities.FormErrors{}
	err := validate.Struct(form)
	if err == nil {
		return errs
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		log.Printf("formErrors: %v", err)
		return errs
	}
	for _, fe := range fieldErrs {
		field := entities.OrderField(fe.Field())
		msg, ok := errorMessages[field][fe.Tag()]
		if !ok {
			msg = fe.Error()
		}
		errs[field] = msg
	}
	return errs
}
