package observe

import (
	"strings"
	"testing"
)

func TestRegistry_NotifyOrder(t *testing.T) {
	var r Registry[int]

	var got []string
	r.Add(func(v int) { got = append(got, "a") })
	r.Add(func(v int) { got = append(got, "b") })

	r.Notify(1)

	if strings.Join(got, "") != "ab" {
		t.Errorf("Expected callbacks in registration order, got %v", got)
	}
}

func TestRegistry_Remove(t *testing.T) {
	var r Registry[string]

	calls := 0
	id, remove := r.Add(func(string) { calls++ })
	if !strings.HasPrefix(id, IDPrefix) {
		t.Errorf("Expected id with prefix %q, got %q", IDPrefix, id)
	}
	if r.Len() != 1 {
		t.Fatalf("Expected 1 listener, got %d", r.Len())
	}

	remove()
	remove()
	r.Notify("x")

	if calls != 0 {
		t.Errorf("Removed listener should not be called, got %d calls", calls)
	}
	if r.Len() != 0 {
		t.Errorf("Expected 0 listeners, got %d", r.Len())
	}
}

func TestRegistry_RemoveDuringNotify(t *testing.T) {
	var r Registry[bool]

	var removeSecond func()
	secondCalls := 0
	r.Add(func(bool) { removeSecond() })
	_, removeSecond = r.Add(func(bool) { secondCalls++ })

	r.Notify(true)

	if secondCalls != 0 {
		t.Errorf("Listener removed during delivery should be skipped, got %d calls", secondCalls)
	}
}

func TestRegistry_UniqueIDs(t *testing.T) {
	var r Registry[int]
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id, _ := r.Add(func(int) {})
		if seen[id] {
			t.Fatalf("Duplicate listener id %s", id)
		}
		seen[id] = true
	}
}
