package editor

import (
	"time"

	"github.com/dshills/richtext/attachment"
	"github.com/dshills/richtext/event"
)

// message is work queued from outside the mutation context and applied on
// it by Dispatch.
type message interface {
	apply(e *Editor)
}

// fetchResultMsg carries the terminal result of an attachment image fetch.
type fetchResultMsg struct {
	id     string
	result attachment.FetchResult
}

func (m fetchResultMsg) apply(e *Editor) {
	img := m.result.Image
	if m.result.Failed() {
		// Failure is terminal and silent: the attachment keeps showing a
		// default placeholder.
		e.logger.Warn("image fetch failed: id=%s err=%v", m.id, m.result.Err)
		img = attachment.PlaceholderImage()
	}
	if err := e.registry.SetImage(m.id, img); err != nil {
		e.logger.Debug("fetch result for removed attachment: id=%s", m.id)
	}
}

// nudgeMsg re-publishes an unchanged selection so hosts refresh caret state
// after newline layout settles. It never mutates the document and does
// nothing when the selection moved since it was scheduled.
type nudgeMsg struct {
	sel Selection
}

func (m nudgeMsg) apply(e *Editor) {
	if e.selection != m.sel {
		return
	}
	r := e.selection.Range()
	e.publish(event.SelectionChanged{Selection: r, Previous: r})
}

// enqueue queues a message for the mutation context and signals readiness.
// Safe to call from any goroutine.
func (e *Editor) enqueue(m message) {
	e.inbox <- m
	select {
	case e.ready <- struct{}{}:
	default:
	}
}

// Ready signals when queued messages await Dispatch. The channel carries at
// most one pending signal regardless of how many messages are queued.
func (e *Editor) Ready() <-chan struct{} {
	return e.ready
}

// Dispatch applies every queued message and returns how many ran. Must be
// called from the mutation context.
func (e *Editor) Dispatch() int {
	n := 0
	for {
		select {
		case m := <-e.inbox:
			m.apply(e)
			n++
		default:
			return n
		}
	}
}

// scheduleNudge arms the deferred caret refresh for the current selection.
func (e *Editor) scheduleNudge() {
	sel := e.selection
	time.AfterFunc(e.nudgeDelay, func() {
		e.enqueue(nudgeMsg{sel: sel})
	})
}
