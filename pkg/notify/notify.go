package notify

import (
	"sync"

	"github.com/foliokit/folio/pkg/types"
)

// Bus is a single-slot notification mailbox. Publishing replaces any
// pending notification; consuming returns and clears it. The presentation
// layer only ever shows one notification at a time, so there is no queue
// and no history.
type Bus struct {
	mu      sync.Mutex
	pending *types.Notification
}

// NewBus creates an empty notification bus.
func NewBus() *Bus {
	return &Bus{}
}

// Publish replaces the pending notification unconditionally.
func (b *Bus) Publish(message string, kind types.NotificationKind) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.pending = &types.Notification{Message: message, Kind: kind}
}

// Success publishes a success notification.
func (b *Bus) Success(message string) {
	b.Publish(message, types.NotifySuccess)
}

// Error publishes an error notification.
func (b *Bus) Error(message string) {
	b.Publish(message, types.NotifyError)
}

// Info publishes an info notification.
func (b *Bus) Info(message string) {
	b.Publish(message, types.NotifyInfo)
}

// Consume returns the pending notification and clears it. The second
// return is false when nothing is pending.
func (b *Bus) Consume() (types.Notification, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.pending == nil {
		return types.Notification{}, false
	}
	n := *b.pending
	b.pending = nil
	return n, true
}

// Pending reports whether a notification is waiting without clearing it.
func (b *Bus) Pending() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pending != nil
}
