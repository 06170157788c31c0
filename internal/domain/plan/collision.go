package plan

// Overlaps tests two items for interval overlap. Intervals are half-open,
// so items that exactly touch do not collide.
func Overlaps(a, b Item) bool {
	return a.StartMinutes < b.EndMinutes && b.StartMinutes < a.EndMinutes
}

// HasCollision reports whether candidate overlaps any item in the list.
func HasCollision(items []Item, candidate Item) bool {
	for _, it := range items {
		if Overlaps(it, candidate) {
			return true
		}
	}
	return false
}

// hasCollisionExcluding checks candidate against the list with one UID
// left out, for move and resize where the item competes with itself.
func hasCollisionExcluding(items []Item, candidate Item, uid string) bool {
	for _, it := range items {
		if it.UID == uid {
			continue
		}
		if Overlaps(it, candidate) {
			return true
		}
	}
	return false
}
