package cube

import "testing"

func TestEventInvokesListenersInOrder(t *testing.T) {
	var e Event[int]
	var got []int
	e.AddListener(func(v int) { got = append(got, v) })
	e.AddListener(func(v int) { got = append(got, v*10) })

	e.Invoke(3)
	if len(got) != 2 || got[0] != 3 || got[1] != 30 {
		t.Errorf("expected [3 30], got %v", got)
	}
	if e.ListenerCount() != 2 {
		t.Errorf("expected 2 listeners, got %d", e.ListenerCount())
	}
}

func TestEventIgnoresNilListener(t *testing.T) {
	var e Event[string]
	e.AddListener(nil)
	if e.ListenerCount() != 0 {
		t.Errorf("nil listener should not register, count=%d", e.ListenerCount())
	}
	e.Invoke("no-op") // must not panic
}
