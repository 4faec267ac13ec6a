package services

import (
	"context"
	"log"

	"larekStore/entities"
	"larekStore/events"
	"larekStore/models"
	"larekStore/repository"

	"github.com/davecgh/go-spew/spew"
)

// Checkout drives the checkout wizard:
//
//	browsing -> reviewing-basket -> entering-delivery -> entering-contact
//	  -> submitting -> success | failure (-> entering-contact)
//
// Every method except Submit must be called inside a turn.
type Checkout struct {
	bus   *events.Bus
	state *AppState
	turn  *Turn
	sink  repository.OrderSink
	step  entities.CheckoutStep
}

func NewCheckout(bus *events.Bus, state *AppState, turn *Turn, sink repository.OrderSink) *Checkout {
	return &Checkout{
		bus:   bus,
		state: state,
		turn:  turn,
		sink:  sink,
		step:  entities.StepBrowsing,
	}
}

func (c *Checkout) Step() entities.CheckoutStep {
	return c.step
}

func (c *Checkout) setStep(to entities.CheckoutStep) {
	from := c.step
	if from == to {
		return
	}
	c.step = to
	c.bus.Emit(events.CheckoutStepChanged{From: from, To: to})
}

func (c *Checkout) OpenBasket() {
	if c.step == entities.StepSubmitting {
		return
	}
	c.setStep(entities.StepReviewingBasket)
	c.bus.Emit(events.ModalOpen{})
}

// Proceed moves from the basket to the delivery form.
func (c *Checkout) Proceed() (err error) {
	if c.step != entities.StepReviewingBasket {
		log.Printf("Proceed: not allowed from %s", c.step)
		err = models.ErrNotAllowed
		return
	}
	if c.state.BasketCount() == 0 {
		log.Printf("Proceed: basket is empty")
		err = models.ErrNotAllowed
		return
	}
	c.setStep(entities.StepEnteringDelivery)
	return
}

// SubmitDelivery moves to the contact form once the delivery step is valid.
func (c *Checkout) SubmitDelivery() (err error) {
	if c.step != entities.StepEnteringDelivery {
		log.Printf("SubmitDelivery: not allowed from %s", c.step)
		err = models.ErrNotAllowed
		return
	}
	if !ValidateDelivery(c.state.Order()).Valid() {
		c.state.Validate()
		err = models.ErrBadRequest
		return
	}
	c.state.StampTotal()
	c.setStep(entities.StepEnteringContact)
	return
}

// Close returns to browsing when the modal is dismissed. An in-flight
// submission keeps its step.
func (c *Checkout) Close() {
	if c.step == entities.StepSubmitting {
		return
	}
	c.setStep(entities.StepBrowsing)
}

// Submit sends the order. It takes its own turns and must not be called
// from inside one: the sink is called between the turn that starts the
// submission and the turn that applies its result. A second Submit while
// one is in flight fails with models.ErrSubmitInProgress.
func (c *Checkout) Submit(ctx context.Context) (res entities.OrderResult, err error) {
	var order entities.Order
	c.turn.Run(func() {
		order, err = c.beginSubmit()
	})
	if err != nil {
		return
	}

	res, err = c.sink.SubmitOrder(ctx, order)

	c.turn.Run(func() {
		if err != nil {
			c.fail(order, err)
			return
		}
		c.succeed(res)
	})
	return
}

func (c *Checkout) beginSubmit() (order entities.Order, err error) {
	switch c.step {
	case entities.StepSubmitting:
		err = models.ErrSubmitInProgress
		return
	case entities.StepEnteringContact:
	default:
		log.Printf("Submit: not allowed from %s", c.step)
		err = models.ErrNotAllowed
		return
	}
	if c.state.BasketCount() == 0 {
		log.Printf("Submit: basket is empty")
		err = models.ErrNotAllowed
		return
	}
	current := c.state.Order()
	if !ValidateDelivery(current).Valid() || !ValidateContact(current).Valid() {
		c.state.Validate()
		err = models.ErrBadRequest
		return
	}
	c.state.StampTotal()
	order = c.state.Order()
	c.setStep(entities.StepSubmitting)
	c.bus.Emit(events.OrderSubmitting{Order: order.Clone()})
	return
}

func (c *Checkout) succeed(res entities.OrderResult) {
	c.state.ResetBasket()
	c.state.ResetSelected()
	c.state.ResetOrder()
	c.setStep(entities.StepSuccess)
	c.bus.Emit(events.OrderSuccess{Result: res})
	c.bus.Emit(events.BasketChanged{Count: c.state.BasketCount(), Total: c.state.BasketTotal()})
}

func (c *Checkout) fail(order entities.Order, err error) {
	log.Printf("SubmitOrder: %v\n%s", err, spew.Sdump(order))
	c.setStep(entities.StepFailure)
	c.bus.Emit(events.OrderFailed{Err: err})
	c.setStep(entities.StepEnteringContact)
}
