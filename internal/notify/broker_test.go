package notify_test

import (
	"testing"

	"github.com/ferdiebergado/sulat/internal/notify"
)

func TestBroker_Publish(t *testing.T) {
	t.Parallel()

	b := notify.NewBroker(4)
	first, second := b.Subscribe(), b.Subscribe()

	if got := b.Clients(); got != 2 {
		t.Fatalf("b.Clients() = %d, want: 2", got)
	}

	evt := notify.NewEvent(notify.EventLetterOpened, "Ram", "")
	b.Publish(evt)

	for i, sub := range []*notify.Subscription{first, second} {
		got := <-sub.Events
		if got.ID != evt.ID || got.Type != notify.EventLetterOpened || got.Name != "Ram" {
			t.Errorf("subscriber %d got %+v, want: %+v", i, got, evt)
		}
	}
}

func TestBroker_DropsSlowSubscriber(t *testing.T) {
	t.Parallel()

	b := notify.NewBroker(1)
	slow := b.Subscribe()

	b.Publish(notify.NewEvent(notify.EventLetterOpened, "Ram", ""))
	b.Publish(notify.NewEvent(notify.EventLetterOpened, "Sophia", ""))

	if got := b.Clients(); got != 0 {
		t.Errorf("b.Clients() = %d, want: 0", got)
	}

	evt, ok := <-slow.Events
	if !ok || evt.Name != "Ram" {
		t.Errorf("first buffered event = %+v, %v, want: Ram, true", evt, ok)
	}

	if _, ok := <-slow.Events; ok {
		t.Error("slow.Events still open, want: closed")
	}
}

func TestBroker_Unsubscribe(t *testing.T) {
	t.Parallel()

	b := notify.NewBroker(1)
	sub := b.Subscribe()

	b.Unsubscribe(sub)
	b.Unsubscribe(sub)

	if got := b.Clients(); got != 0 {
		t.Errorf("b.Clients() = %d, want: 0", got)
	}

	if _, ok := <-sub.Events; ok {
		t.Error("sub.Events still open, want: closed")
	}
}

func TestBroker_Close(t *testing.T) {
	t.Parallel()

	b := notify.NewBroker(1)
	sub := b.Subscribe()

	b.Close()
	b.Close()

	if _, ok := <-sub.Events; ok {
		t.Error("sub.Events still open after Close, want: closed")
	}

	b.Publish(notify.NewEvent(notify.EventLettersReset, "", ""))

	late := b.Subscribe()
	if _, ok := <-late.Events; ok {
		t.Error("subscription on closed broker is open, want: closed")
	}

	if got := b.Clients(); got != 0 {
		t.Errorf("b.Clients() = %d, want: 0", got)
	}
}
