package tui

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mediquick/mediquick/internal/tui/commands"
	"github.com/mediquick/mediquick/internal/viewstate"
)

func TestToastQueue_FlushAndDismiss(t *testing.T) {
	q := newToastQueue()

	if cmd := q.flush(); cmd != nil {
		t.Error("flush with nothing pending should return nil")
	}

	q.Notify(viewstate.Notice{Title: "first"})
	if len(q.Visible()) != 0 {
		t.Fatal("notices should stay pending until flushed")
	}
	if cmd := q.flush(); cmd == nil {
		t.Fatal("expected dismissal command")
	}

	visible := q.Visible()
	if len(visible) != 1 || visible[0].Title != "first" {
		t.Fatalf("unexpected visible toasts: %v", visible)
	}
	if visible[0].Duration != viewstate.DefaultNoticeDuration {
		t.Errorf("duration = %v, want default", visible[0].Duration)
	}

	q.dismiss(42)
	if len(q.Visible()) != 1 {
		t.Error("dismissing an unknown id should be ignored")
	}
	q.dismiss(1)
	if len(q.Visible()) != 0 {
		t.Error("expected toast 1 dismissed")
	}
}

func TestToastQueue_KeepsNewest(t *testing.T) {
	q := newToastQueue()
	for _, title := range []string{"a", "b", "c", "d", "e"} {
		q.Notify(viewstate.Notice{Title: title})
	}
	q.flush()

	var got []string
	for _, n := range q.Visible() {
		got = append(got, n.Title)
	}
	if diff := cmp.Diff([]string{"c", "d", "e"}, got); diff != "" {
		t.Errorf("visible toasts (-want +got):\n%s", diff)
	}
}

func TestToastQueue_ErrorNotice(t *testing.T) {
	q := newToastQueue()
	q.errorNotice("Could not update cart", errors.New("boom"))
	q.flush()

	visible := q.Visible()
	if len(visible) != 1 {
		t.Fatalf("expected 1 toast, got %d", len(visible))
	}
	if visible[0].Kind != viewstate.NoticeError || visible[0].Description != "boom" {
		t.Errorf("unexpected error toast: %+v", visible[0])
	}
}

func TestUpdate_DismissToastMsg(t *testing.T) {
	m := newStoreModel(t)
	m = pressKeys(m, "3")
	if len(m.toasts.Visible()) != 1 {
		t.Fatalf("expected one toast, got %v", toastTitles(m))
	}

	id := m.toasts.visible[0].id
	m = send(m, commands.DismissToastMsg{ID: id})
	if len(m.toasts.Visible()) != 0 {
		t.Errorf("expected toast dismissed, got %v", toastTitles(m))
	}
}
