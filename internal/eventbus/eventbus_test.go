package eventbus

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"adrgrip/internal/domain"
)

func TestPublishDeliversSynchronously(t *testing.T) {
	bus := New()

	var got []domain.Mode
	bus.Subscribe(EventModeChanged, func(e DomainEvent) {
		got = append(got, e.(ModeChangedEvent).Mode)
	})

	bus.Publish(ModeChangedEvent{Mode: domain.ModeAdvanced})

	// No draining, no waiting: the handler ran inside Publish
	assert.Equal(t, []domain.Mode{domain.ModeAdvanced}, got)
}

func TestPublishOnlyReachesMatchingType(t *testing.T) {
	bus := New()

	opened := 0
	modeChanged := 0
	bus.Subscribe(EventAdrOpened, func(DomainEvent) { opened++ })
	bus.Subscribe(EventModeChanged, func(DomainEvent) { modeChanged++ })

	bus.Publish(AdrOpenedEvent{Adr: &domain.Adr{ID: 1}})

	assert.Equal(t, 1, opened)
	assert.Equal(t, 0, modeChanged)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	bus := New()

	calls := 0
	unsubscribe := bus.Subscribe(EventModeChanged, func(DomainEvent) { calls++ })

	bus.Publish(ModeChangedEvent{Mode: domain.ModeBasic})
	unsubscribe()
	bus.Publish(ModeChangedEvent{Mode: domain.ModeBasic})

	assert.Equal(t, 1, calls)
}

func TestUnsubscribeRemovesOnlyItsOwnHandler(t *testing.T) {
	bus := New()

	first := 0
	second := 0
	unsubFirst := bus.Subscribe(EventModeChanged, func(DomainEvent) { first++ })
	bus.Subscribe(EventModeChanged, func(DomainEvent) { second++ })

	unsubFirst()
	bus.Publish(ModeChangedEvent{Mode: domain.ModeBasic})

	assert.Equal(t, 0, first)
	assert.Equal(t, 1, second)
}

func TestHandlerPanicDoesNotStopOthers(t *testing.T) {
	bus := New()

	reached := false
	bus.Subscribe(EventError, func(DomainEvent) { panic("boom") })
	bus.Subscribe(EventError, func(DomainEvent) { reached = true })

	bus.Publish(ErrorEvent{Message: "x"})

	assert.True(t, reached)
}
