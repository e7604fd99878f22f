// SPDX-License-Identifier: Apache-2.0

package notification

import (
	"sync"
	"time"

	"github.com/peoplescope/peoplescope/internal/logger"
	"github.com/peoplescope/peoplescope/models"
)

// DefaultDuration is applied by the typed convenience wrappers when they
// issue a notification.
const DefaultDuration = 3 * time.Second

// IDSource produces unique identifiers for queued notifications. The
// production implementation is utils.UUIDGenerator; tests inject a
// deterministic counter.
type IDSource interface {
	Generate() string
}

// CancelFunc stops a pending removal timer. It reports whether the timer
// was still pending.
type CancelFunc func() bool

// TimerFactory schedules f to run once after d and returns a handle that
// cancels the pending run. The default factory wraps [time.AfterFunc];
// tests substitute a manual implementation to fire timers deterministically.
type TimerFactory func(d time.Duration, f func()) CancelFunc

// Queue is the ordered collection of active notifications for one client
// session. Notifications are appended in call order and displayed in that
// same order; there is no reordering or priority.
//
// A notification with a positive Duration schedules its own one-shot
// removal. Zero or negative Duration means the notification persists until
// [Queue.Remove] or [Queue.Clear] is called.
type Queue struct {
	mu     sync.Mutex
	items  []models.Notification
	timers map[string]CancelFunc

	ids      IDSource
	newTimer TimerFactory
	onChange func()

	logger *logger.Logger
}

// NewQueue constructs an empty queue using real timers.
func NewQueue(ids IDSource, logger *logger.Logger) *Queue {
	logger.Debug().Msg("creating notification queue")
	return &Queue{
		timers: make(map[string]CancelFunc),
		ids:    ids,
		newTimer: func(d time.Duration, f func()) CancelFunc {
			return time.AfterFunc(d, f).Stop
		},
		logger: logger,
	}
}

// NewQueueWithTimerFactory constructs a queue whose removal timers come
// from the given factory. Intended for tests.
func NewQueueWithTimerFactory(ids IDSource, factory TimerFactory, logger *logger.Logger) *Queue {
	q := NewQueue(ids, logger)
	q.newTimer = factory
	return q
}

// SetOnChange registers a callback invoked after every mutation of the
// queue, outside the queue lock. The TUI uses it to trigger repaints.
// Pass nil to unregister.
func (q *Queue) SetOnChange(f func()) {
	q.mu.Lock()
	q.onChange = f
	q.mu.Unlock()
}

// Add assigns an id to n, appends it to the end of the queue, and — when
// n.Duration > 0 — schedules a deferred removal of that exact id once the
// duration elapses. The assigned id is returned.
//
// The caller's Type, Title, Message and Duration are taken as-is; use the
// typed wrappers for the standard auto-expiring behavior.
func (q *Queue) Add(n models.Notification) string {
	n.ID = q.ids.Generate()

	q.mu.Lock()
	q.items = append(q.items, n)
	if n.Duration > 0 {
		id := n.ID
		q.timers[id] = q.newTimer(n.Duration, func() {
			q.Remove(id)
		})
	}
	q.mu.Unlock()

	q.logger.Debug().Str("id", n.ID).Str("type", string(n.Type)).Msg("notification queued")
	q.notifyChanged()

	return n.ID
}

// Remove deletes the entry with the given id and stops its pending timer,
// if any. Removing an absent id — including one whose timer already fired —
// is a no-op.
func (q *Queue) Remove(id string) {
	q.mu.Lock()

	if cancel, ok := q.timers[id]; ok {
		cancel()
		delete(q.timers, id)
	}

	removed := false
	for i, n := range q.items {
		if n.ID == id {
			q.items = append(q.items[:i], q.items[i+1:]...)
			removed = true
			break
		}
	}
	q.mu.Unlock()

	if removed {
		q.notifyChanged()
	}
}

// Clear empties the queue immediately, independent of any pending timers.
// A timer that later fires for a cleared id is a no-op removal.
func (q *Queue) Clear() {
	q.mu.Lock()
	for id, cancel := range q.timers {
		cancel()
		delete(q.timers, id)
	}
	cleared := len(q.items) > 0
	q.items = nil
	q.mu.Unlock()

	if cleared {
		q.notifyChanged()
	}
}

// Active returns a snapshot of the queued notifications in insertion order.
func (q *Queue) Active() []models.Notification {
	q.mu.Lock()
	defer q.mu.Unlock()

	snapshot := make([]models.Notification, len(q.items))
	copy(snapshot, q.items)
	return snapshot
}

// Len returns the number of queued notifications.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Success queues a standard auto-expiring success toast and returns its id.
func (q *Queue) Success(title string, message string) string {
	return q.Add(models.Notification{
		Type:     models.NotificationSuccess,
		Title:    title,
		Message:  message,
		Duration: DefaultDuration,
	})
}

// Info queues a standard auto-expiring info toast and returns its id.
func (q *Queue) Info(title string, message string) string {
	return q.Add(models.Notification{
		Type:     models.NotificationInfo,
		Title:    title,
		Message:  message,
		Duration: DefaultDuration,
	})
}

// Warning queues a standard auto-expiring warning toast and returns its id.
func (q *Queue) Warning(title string, message string) string {
	return q.Add(models.Notification{
		Type:     models.NotificationWarning,
		Title:    title,
		Message:  message,
		Duration: DefaultDuration,
	})
}

// Error queues a standard auto-expiring error toast and returns its id.
func (q *Queue) Error(title string, message string) string {
	return q.Add(models.Notification{
		Type:     models.NotificationError,
		Title:    title,
		Message:  message,
		Duration: DefaultDuration,
	})
}

func (q *Queue) notifyChanged() {
	q.mu.Lock()
	f := q.onChange
	q.mu.Unlock()

	if f != nil {
		f()
	}
}
