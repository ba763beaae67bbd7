package ecs

// World owns the handle pool, the tracked component stores, the
// creation-ordered list of live actors and the deferred destruction queue.
//
// Actors are never removed while a tick is iterating Order: kills only queue
// the handle, and FlushDestroyQueue runs once at tick end.
type World struct {
	pool         *EntityPool
	stores       []Removable
	order        []EntityID
	destroyQueue []EntityID
	queued       map[EntityID]struct{}
}

func NewWorld() *World {
	return &World{
		pool:         NewEntityPool(),
		order:        make([]EntityID, 0, 256),
		destroyQueue: make([]EntityID, 0, 32),
		queued:       make(map[EntityID]struct{}, 32),
	}
}

func (w *World) Pool() *EntityPool { return w.pool }

// Track registers stores whose records are dropped when an actor is flushed.
func (w *World) Track(stores ...Removable) {
	w.stores = append(w.stores, stores...)
}

// CreateEntity allocates a handle and appends it to the iteration order.
func (w *World) CreateEntity() EntityID {
	id := w.pool.Create()
	w.order = append(w.order, id)
	return id
}

func (w *World) Alive(id EntityID) bool {
	return w.pool.Alive(id)
}

// Len returns the current length of the iteration order, including actors
// created during this tick.
func (w *World) Len() int { return len(w.order) }

// At returns the i-th actor in creation order.
func (w *World) At(i int) EntityID { return w.order[i] }

// Order returns a copy of the creation-ordered handle list.
func (w *World) Order() []EntityID {
	out := make([]EntityID, len(w.order))
	copy(out, w.order)
	return out
}

// MarkForDestruction queues id for end-of-tick removal. Queuing the same
// handle twice is a no-op.
func (w *World) MarkForDestruction(id EntityID) {
	if _, dup := w.queued[id]; dup || !w.pool.Alive(id) {
		return
	}
	w.queued[id] = struct{}{}
	w.destroyQueue = append(w.destroyQueue, id)
}

// FlushDestroyQueue destroys every queued actor, clears its components and
// compacts the iteration order while keeping the survivors' relative order.
func (w *World) FlushDestroyQueue() int {
	if len(w.destroyQueue) == 0 {
		return 0
	}
	for _, id := range w.destroyQueue {
		for _, st := range w.stores {
			st.Remove(id)
		}
		w.pool.Destroy(id)
	}
	kept := w.order[:0]
	for _, id := range w.order {
		if _, gone := w.queued[id]; !gone {
			kept = append(kept, id)
		}
	}
	for i := len(kept); i < len(w.order); i++ {
		w.order[i] = 0
	}
	w.order = kept
	n := len(w.destroyQueue)
	w.destroyQueue = w.destroyQueue[:0]
	clear(w.queued)
	return n
}
