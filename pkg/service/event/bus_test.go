package event_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/slackinvite/pkg/domain/model"
	"github.com/secmon-lab/slackinvite/pkg/domain/types"
	"github.com/secmon-lab/slackinvite/pkg/service/event"
)

func TestBusPublishUserCreated(t *testing.T) {
	ctx := context.Background()

	t.Run("Handlers run in registration order", func(t *testing.T) {
		bus := event.NewBus("test")
		var order []string

		bus.OnUserCreated(func(ctx context.Context, userID types.UserID) {
			order = append(order, "first")
		})
		bus.OnUserCreated(func(ctx context.Context, userID types.UserID) {
			order = append(order, "second")
		})

		bus.PublishUserCreated(ctx, 42)
		gt.Equal(t, []string{"first", "second"}, order)
	})

	t.Run("Handler receives user ID and event context", func(t *testing.T) {
		bus := event.NewBus("webhook")
		var gotUser types.UserID
		var gotEvent *model.EventContext

		bus.OnUserCreated(func(ctx context.Context, userID types.UserID) {
			gotUser = userID
			gotEvent, _ = model.GetEventContext(ctx)
		})

		eventID := bus.PublishUserCreated(ctx, 42)
		gt.Equal(t, types.UserID(42), gotUser)
		gt.NotEqual(t, nil, gotEvent)
		gt.Equal(t, eventID, gotEvent.EventID)
		gt.Equal(t, "webhook", gotEvent.Source)
	})

	t.Run("Panicking handler does not affect the others", func(t *testing.T) {
		bus := event.NewBus("test")
		called := false

		bus.OnUserCreated(func(ctx context.Context, userID types.UserID) {
			panic("boom")
		})
		bus.OnUserCreated(func(ctx context.Context, userID types.UserID) {
			called = true
		})

		bus.PublishUserCreated(ctx, 1)
		gt.True(t, called)
	})

	t.Run("Nil handler is ignored", func(t *testing.T) {
		bus := event.NewBus("test")
		bus.OnUserCreated(nil)
		bus.PublishUserCreated(ctx, 1)
	})

	t.Run("Each publication has its own event ID", func(t *testing.T) {
		bus := event.NewBus("test")
		a := bus.PublishUserCreated(ctx, 1)
		b := bus.PublishUserCreated(ctx, 1)
		gt.NotEqual(t, a, b)
	})
}

func TestBusPublishUserCreatedAsync(t *testing.T) {
	bus := event.NewBus("webhook")

	var wg sync.WaitGroup
	var gotEvent *model.EventContext
	wg.Add(1)
	bus.OnUserCreated(func(ctx context.Context, userID types.UserID) {
		defer wg.Done()
		gotEvent, _ = model.GetEventContext(ctx)
	})

	eventID := bus.PublishUserCreatedAsync(context.Background(), 7)

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		gt.NotEqual(t, nil, gotEvent)
		gt.Equal(t, eventID, gotEvent.EventID)
		gt.Equal(t, types.UserID(7), gotEvent.UserID)
	case <-time.After(1 * time.Second):
		t.Fatal("Async handler did not execute within timeout")
	}
}
