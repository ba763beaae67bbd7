package ecs

import "testing"

func TestEntityPool_ZeroIsNeverIssued(t *testing.T) {
	p := NewEntityPool()
	for i := 0; i < 10; i++ {
		if id := p.Create(); id.IsZero() {
			t.Fatalf("Create() returned the zero handle on call %d", i)
		}
	}
	if p.Alive(0) {
		t.Error("zero handle reported alive")
	}
}

func TestEntityPool_StaleHandleAfterReuse(t *testing.T) {
	p := NewEntityPool()
	a := p.Create()
	p.Destroy(a)
	b := p.Create()

	if a.Index() != b.Index() {
		t.Fatalf("slot not recycled: a=%d b=%d", a.Index(), b.Index())
	}
	if p.Alive(a) {
		t.Error("stale handle still alive after slot reuse")
	}
	if !p.Alive(b) {
		t.Error("fresh handle not alive")
	}
	p.Destroy(a) // stale destroy must not retire b
	if !p.Alive(b) {
		t.Error("destroying a stale handle retired the live one")
	}
	if got := p.Len(); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}
}

func TestWorld_FlushKeepsCreationOrder(t *testing.T) {
	w := NewWorld()
	ids := make([]EntityID, 5)
	for i := range ids {
		ids[i] = w.CreateEntity()
	}

	w.MarkForDestruction(ids[1])
	w.MarkForDestruction(ids[3])
	w.MarkForDestruction(ids[3])

	if n := w.FlushDestroyQueue(); n != 2 {
		t.Fatalf("FlushDestroyQueue() = %d, want 2", n)
	}
	want := []EntityID{ids[0], ids[2], ids[4]}
	got := w.Order()
	if len(got) != len(want) {
		t.Fatalf("Order() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Order()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if w.Alive(ids[1]) || w.Alive(ids[3]) {
		t.Error("flushed actors still alive")
	}
}

func TestWorld_FlushClearsComponents(t *testing.T) {
	type hp struct{ v int }
	w := NewWorld()
	store := NewStore[hp]()
	w.Track(store)

	id := w.CreateEntity()
	store.Set(id, &hp{v: 3})
	w.MarkForDestruction(id)

	if !store.Has(id) {
		t.Fatal("component removed before flush")
	}
	w.FlushDestroyQueue()
	if store.Has(id) {
		t.Error("component survived flush")
	}
}

func TestWorld_CreateDuringIterationIsVisible(t *testing.T) {
	w := NewWorld()
	w.CreateEntity()
	visited := 0
	for i := 0; i < w.Len(); i++ {
		visited++
		if i == 0 {
			w.CreateEntity()
		}
	}
	if visited != 2 {
		t.Errorf("visited %d actors, want 2", visited)
	}
}

func TestCount2(t *testing.T) {
	type a struct{ n int }
	type b struct{}
	sa, sb := NewStore[a](), NewStore[b]()
	for i := uint32(1); i <= 4; i++ {
		id := NewEntityID(i, 0)
		sa.Set(id, &a{n: int(i)})
		if i%2 == 0 {
			sb.Set(id, &b{})
		}
	}
	got := Count2(sa, sb, func(_ EntityID, x *a, _ *b) bool { return x.n > 2 })
	if got != 1 {
		t.Errorf("Count2() = %d, want 1", got)
	}
}
