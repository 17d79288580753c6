package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mediquick/mediquick/internal/tui/commands"
	"github.com/mediquick/mediquick/internal/viewstate"
)

// Maximum toasts shown at once; older ones are dropped first.
const maxToasts = 3

type toast struct {
	id     int
	notice viewstate.Notice
}

// toastQueue collects notices from the controller. Notify only records the
// notice; the Model drains pending notices after each update and schedules
// their dismissal.
type toastQueue struct {
	nextID  int
	pending []toast
	visible []toast
}

func newToastQueue() *toastQueue {
	return &toastQueue{nextID: 1}
}

// Notify implements viewstate.Notifier.
func (q *toastQueue) Notify(n viewstate.Notice) {
	if n.Duration <= 0 {
		n.Duration = viewstate.DefaultNoticeDuration
	}
	q.pending = append(q.pending, toast{id: q.nextID, notice: n})
	q.nextID++
}

// errorNotice records an error toast that did not come from the controller.
func (q *toastQueue) errorNotice(title string, err error) {
	q.Notify(viewstate.Notice{
		Kind:        viewstate.NoticeError,
		Title:       title,
		Description: err.Error(),
		Duration:    3 * time.Second,
	})
}

// flush moves pending toasts to the visible list and returns their timers.
func (q *toastQueue) flush() tea.Cmd {
	if len(q.pending) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(q.pending))
	for _, t := range q.pending {
		q.visible = append(q.visible, t)
		cmds = append(cmds, commands.DismissToastAfter(t.id, t.notice.Duration))
	}
	q.pending = q.pending[:0]
	if len(q.visible) > maxToasts {
		q.visible = q.visible[len(q.visible)-maxToasts:]
	}
	return tea.Batch(cmds...)
}

// dismiss removes the toast with id. Unknown ids are ignored.
func (q *toastQueue) dismiss(id int) {
	for i, t := range q.visible {
		if t.id == id {
			q.visible = append(q.visible[:i], q.visible[i+1:]...)
			return
		}
	}
}

// Visible returns the notices currently on screen, oldest first.
func (q *toastQueue) Visible() []viewstate.Notice {
	out := make([]viewstate.Notice, 0, len(q.visible))
	for _, t := range q.visible {
		out = append(out, t.notice)
	}
	return out
}
