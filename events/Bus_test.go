package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_EmitRegistrationOrder(t *testing.T) {
	bus := NewBus()
	var calls []string

	bus.On(KindBasketChanged, func(ev Event) { calls = append(calls, "first") })
	bus.OnMatch("basket-*", func(ev Event) { calls = append(calls, "pattern") })
	bus.On(KindBasketChanged, func(ev Event) { calls = append(calls, "second") })
	bus.On(KindCatalogChanged, func(ev Event) { calls = append(calls, "other") })

	bus.Emit(BasketChanged{Count: 1, Total: 100})

	assert.Equal(t, []string{"first", "pattern", "second"}, calls)
}

func TestBus_EmitWithoutSubscribers(t *testing.T) {
	bus := NewBus()
	assert.NotPanics(t, func() {
		bus.Emit(ModalOpen{})
		bus.Emit(nil)
	})
	assert.Equal(t, 0, bus.Len())
}

func TestBus_Off(t *testing.T) {
	bus := NewBus()
	count := 0
	sub := bus.On(KindModalOpen, func(ev Event) { count++ })

	bus.Emit(ModalOpen{})
	bus.Off(sub)
	bus.Emit(ModalOpen{})
	bus.Off(sub)
	bus.Off(Subscription{})

	assert.Equal(t, 1, count)
	assert.Equal(t, 0, bus.Len())
}

func TestBus_OffDuringEmit(t *testing.T) {
	bus := NewBus()
	var calls []string
	var second Subscription

	bus.On(KindModalClose, func(ev Event) {
		calls = append(calls, "first")
		bus.Off(second)
	})
	second = bus.On(KindModalClose, func(ev Event) { calls = append(calls, "second") })

	bus.Emit(ModalClose{})
	bus.Emit(ModalClose{})

	assert.Equal(t, []string{"first", "second", "first"}, calls)
}

func TestBus_ReentrantEmit(t *testing.T) {
	bus := NewBus()
	var calls []Kind

	bus.On(KindBasketOpen, func(ev Event) {
		calls = append(calls, ev.Kind())
		bus.Emit(ModalOpen{})
		calls = append(calls, "after")
	})
	bus.On(KindModalOpen, func(ev Event) { calls = append(calls, ev.Kind()) })

	bus.Emit(BasketOpen{})

	assert.Equal(t, []Kind{KindBasketOpen, KindModalOpen, "after"}, calls)
}

func TestBus_OnAll(t *testing.T) {
	bus := NewBus()
	var seen []Kind
	bus.OnAll(func(ev Event) { seen = append(seen, ev.Kind()) })

	bus.Emit(ModalOpen{})
	bus.Emit(DeliverySubmit{})

	assert.Equal(t, []Kind{KindModalOpen, KindDeliverySubmit}, seen)
}

func TestBus_NilHandlerIgnored(t *testing.T) {
	bus := NewBus()
	sub := bus.On(KindModalOpen, nil)
	assert.Equal(t, Subscription{}, sub)
	assert.Equal(t, 0, bus.Len())
}

func TestSubscribe_TypedPayload(t *testing.T) {
	bus := NewBus()
	var got BasketChanged
	Subscribe(bus, KindBasketChanged, func(ev BasketChanged) { got = ev })

	bus.Emit(BasketChanged{Count: 2, Total: 300})

	assert.Equal(t, BasketChanged{Count: 2, Total: 300}, got)
}

func TestTrigger(t *testing.T) {
	bus := NewBus()
	var got []BasketChanged
	Subscribe(bus, KindBasketChanged, func(ev BasketChanged) { got = append(got, ev) })

	plain := Trigger(bus, BasketChanged{Count: 1})
	merged := Trigger(bus, BasketChanged{Count: 1}, func(ev BasketChanged) BasketChanged {
		ev.Total = 750
		return ev
	})

	plain()
	merged()
	plain()

	require.Len(t, got, 3)
	assert.Equal(t, BasketChanged{Count: 1}, got[0])
	assert.Equal(t, BasketChanged{Count: 1, Total: 750}, got[1])
	assert.Equal(t, BasketChanged{Count: 1}, got[2])
}

func TestTrigger_CallTimeTransforms(t *testing.T) {
	bus := NewBus()
	var got []BasketChanged
	Subscribe(bus, KindBasketChanged, func(ev BasketChanged) { got = append(got, ev) })
	withTotal := func(total int) func(BasketChanged) BasketChanged {
		return func(ev BasketChanged) BasketChanged {
			ev.Total = total
			return ev
		}
	}

	emit := Trigger(bus, BasketChanged{Count: 2}, withTotal(100))
	emit(withTotal(300))
	emit(func(ev BasketChanged) BasketChanged {
		ev.Count++
		return ev
	})
	emit()

	require.Len(t, got, 3)
	assert.Equal(t, BasketChanged{Count: 2, Total: 300}, got[0])
	assert.Equal(t, BasketChanged{Count: 3, Total: 100}, got[1])
	assert.Equal(t, BasketChanged{Count: 2, Total: 100}, got[2])
}

func TestMatchPattern(t *testing.T) {
	tests := []struct {
		kind    Kind
		pattern string
		want    bool
	}{
		{KindBasketChanged, "basket-changed", true},
		{KindBasketChanged, "basket-*", true},
		{KindBasketAdd, "basket-*", true},
		{KindCatalogChanged, "basket-*", false},
		{KindDeliveryErrorsChanged, "*-errors-changed", true},
		{KindContactErrorsChanged, "*-errors-changed", true},
		{KindDeliveryReady, "*-errors-changed", false},
		{KindModalOpen, "*", true},
		{KindModalOpen, "modal.*", false},
		{KindModalOpen, "modal-open-*", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind)+"_"+tt.pattern, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchPattern(tt.kind, tt.pattern))
		})
	}
}
