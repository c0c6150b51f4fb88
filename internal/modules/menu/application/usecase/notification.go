package usecase

import (
	"sync"
	"time"

	"github.com/fuadmd/FalafelArwa/internal/modules/menu/domain"
)

// DefaultNotificationTTL is how long a cart notification stays visible.
const DefaultNotificationTTL = 1500 * time.Millisecond

// Notification is the transient cart feedback message.
type Notification struct {
	Kind      domain.NotificationKind `json:"kind"`
	Message   string                  `json:"message"`
	ShownAt   time.Time               `json:"shownAt"`
	ExpiresAt time.Time               `json:"expiresAt"`
}

// Notifier holds at most one message. A new message replaces the pending one and restarts its timer.
type Notifier struct {
	mu       sync.Mutex
	ttl      time.Duration
	current  *Notification
	seq      uint64
	timer    *time.Timer
	onChange func(n Notification, shown bool)
}

func NewNotifier(ttl time.Duration, onChange func(n Notification, shown bool)) *Notifier {
	if ttl <= 0 {
		ttl = DefaultNotificationTTL
	}
	return &Notifier{ttl: ttl, onChange: onChange}
}

func (n *Notifier) Show(kind domain.NotificationKind, message string) Notification {
	now := time.Now().UTC()
	note := Notification{Kind: kind, Message: message, ShownAt: now, ExpiresAt: now.Add(n.ttl)}

	n.mu.Lock()
	n.seq++
	seq := n.seq
	n.current = &note
	if n.timer != nil {
		n.timer.Stop()
	}
	n.timer = time.AfterFunc(n.ttl, func() { n.expire(seq) })
	n.mu.Unlock()

	if n.onChange != nil {
		n.onChange(note, true)
	}
	return note
}

func (n *Notifier) expire(seq uint64) {
	n.mu.Lock()
	if n.seq != seq || n.current == nil {
		n.mu.Unlock()
		return
	}
	cleared := *n.current
	n.current = nil
	n.timer = nil
	n.mu.Unlock()

	if n.onChange != nil {
		n.onChange(cleared, false)
	}
}

func (n *Notifier) Current() (Notification, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil {
		return Notification{}, false
	}
	return *n.current, true
}

// Stop cancels the pending timer without publishing.
func (n *Notifier) Stop() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
}
