package viewstate

import "time"

// DefaultNoticeDuration is how long a notice stays visible.
const DefaultNoticeDuration = 2 * time.Second

// NoticeKind classifies a notice for styling.
type NoticeKind int

const (
	NoticeInfo NoticeKind = iota
	NoticeSuccess
	NoticeError
)

// String returns the kind name.
func (k NoticeKind) String() string {
	switch k {
	case NoticeSuccess:
		return "success"
	case NoticeError:
		return "error"
	default:
		return "info"
	}
}

// Notice is a transient, non-blocking user notification.
type Notice struct {
	Kind        NoticeKind
	Title       string
	Description string
	Duration    time.Duration
}

// Notifier receives notices emitted by the controller.
type Notifier interface {
	Notify(n Notice)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(n Notice)

// Notify calls f(n).
func (f NotifierFunc) Notify(n Notice) { f(n) }

// NopNotifier drops every notice.
type NopNotifier struct{}

// Notify does nothing.
func (NopNotifier) Notify(Notice) {}
