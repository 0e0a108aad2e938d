package board

import "github.com/google/uuid"

// MergeOrder applies a saved order to the live id set. Saved ids that are
// still live come first in saved order; live ids absent from the saved order
// follow in their live order. The result holds every live id exactly once.
func MergeOrder(saved, live []uuid.UUID) []uuid.UUID {
	present := make(map[uuid.UUID]bool, len(live))
	for _, id := range live {
		present[id] = true
	}

	out := make([]uuid.UUID, 0, len(live))
	placed := make(map[uuid.UUID]bool, len(live))
	for _, id := range saved {
		if present[id] && !placed[id] {
			placed[id] = true
			out = append(out, id)
		}
	}
	for _, id := range live {
		if !placed[id] {
			placed[id] = true
			out = append(out, id)
		}
	}
	return out
}

// Reorder moves id to position index within order and returns a new slice.
// index is clamped to the valid range. An id missing from order is inserted.
func Reorder(order []uuid.UUID, id uuid.UUID, index int) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(order)+1)
	for _, v := range order {
		if v != id {
			out = append(out, v)
		}
	}
	if index < 0 {
		index = 0
	}
	if index > len(out) {
		index = len(out)
	}
	out = append(out, uuid.Nil)
	copy(out[index+1:], out[index:])
	out[index] = id
	return out
}
