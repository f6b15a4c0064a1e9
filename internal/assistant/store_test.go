package assistant

import "testing"

func TestStoreGetCreatesAndReuses(t *testing.T) {
	store := NewStore(0)

	s1, created := store.Get("")
	if !created || s1.ID == "" {
		t.Fatalf("expected new session with generated id")
	}
	s2, created := store.Get(s1.ID)
	if created || s2 != s1 {
		t.Fatalf("expected existing session to be reused")
	}
	s3, created := store.Get("client-chosen")
	if !created || s3.ID != "client-chosen" {
		t.Fatalf("expected session under caller id, got %q", s3.ID)
	}
	if store.Len() != 2 {
		t.Fatalf("expected 2 sessions, got %d", store.Len())
	}
}

func TestStoreEvictsLeastRecentlyUsed(t *testing.T) {
	store := NewStore(2)

	store.Get("a")
	store.Get("b")
	store.Get("a")
	store.Get("c")

	if store.Len() != 2 {
		t.Fatalf("expected store to stay at capacity, got %d", store.Len())
	}
	if _, created := store.Get("a"); created {
		t.Fatalf("expected recently used session to survive")
	}
	if _, created := store.Get("b"); !created {
		t.Fatalf("expected least recently used session to be evicted")
	}
}

func TestStoreReset(t *testing.T) {
	store := NewStore(10)
	store.Get("a")
	store.Get("b")
	if n := store.Reset(); n != 2 {
		t.Fatalf("expected 2 cleared, got %d", n)
	}
	if store.Len() != 0 {
		t.Fatalf("expected empty store")
	}
}

func TestStoreEvictionOrderFollowsUse(t *testing.T) {
	store := NewStore(3)
	for _, id := range []string{"a", "b", "c"} {
		store.Get(id)
	}
	store.Get("a")
	store.Get("b")
	store.Get("d") // evicts c
	store.Get("e") // evicts a

	for _, id := range []string{"b", "d", "e"} {
		if _, created := store.Get(id); created {
			t.Fatalf("expected %s to survive", id)
		}
	}
	for _, id := range []string{"a", "c"} {
		if store.Len() != 3 {
			t.Fatalf("expected store at capacity, got %d", store.Len())
		}
		if _, created := store.Get(id); !created {
			t.Fatalf("expected %s to have been evicted", id)
		}
	}
}
