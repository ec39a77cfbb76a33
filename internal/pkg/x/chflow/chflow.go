// Package chflow holds context-aware channel helpers shared by the feed
// session, the websocket subscriber and the SSE handler.
package chflow

import "context"

// Receive waits for a value from ch or for ctx to be done. ok is false when
// ctx is done or ch is closed.
func Receive[T any](ctx context.Context, ch <-chan T) (T, bool) {
	var data T
	select {
	case <-ctx.Done():
		return data, false
	case data, ok := <-ch:
		return data, ok
	}
}

// Send delivers data on ch unless ctx is done first.
func Send[T any](ctx context.Context, ch chan<- T, data T) bool {
	select {
	case <-ctx.Done():
		return false
	case ch <- data:
		return true
	}
}

// Offer delivers data on a buffered ch, replacing the oldest pending value
// when the buffer is full. Slow consumers of window updates only care about
// the latest state. It never blocks as long as ch has a single sender.
func Offer[T any](ch chan T, data T) {
	for {
		select {
		case ch <- data:
			return
		default:
		}

		select {
		case <-ch:
		default:
		}
	}
}
