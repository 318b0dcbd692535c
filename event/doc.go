// Package event provides the notification bus connecting the editing core to
// its host.
//
// Events are plain structs implementing TopicProvider; topics are
// hierarchical dot-notation strings. Delivery is synchronous in the
// publisher's goroutine and in subscription order, which keeps handlers on
// the single mutation thread.
//
// Basic usage:
//
//	bus := event.NewBus()
//	sub, _ := bus.SubscribeFunc(event.TopicSelectionChanged,
//		func(ctx context.Context, e any) error {
//			change := e.(event.SelectionChanged)
//			_ = change.Selection
//			return nil
//		})
//	defer bus.Unsubscribe(sub)
//
//	bus.Publish(ctx, event.SelectionChanged{...})
//
// Subscribing to a parent topic such as "document" receives every descendant
// topic; the empty pattern receives everything.
package event
