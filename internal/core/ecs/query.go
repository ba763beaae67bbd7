package ecs

// Count2 returns how many actors have both an A and a B record and satisfy
// keep. It walks the smaller store.
func Count2[A, B any](sa *Store[A], sb *Store[B], keep func(EntityID, *A, *B) bool) int {
	n := 0
	if sa.Len() <= sb.Len() {
		for id, a := range sa.data {
			if b, ok := sb.data[id]; ok && keep(id, a, b) {
				n++
			}
		}
		return n
	}
	for id, b := range sb.data {
		if a, ok := sa.data[id]; ok && keep(id, a, b) {
			n++
		}
	}
	return n
}
