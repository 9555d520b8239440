package solver

// backjump implements spec.md §4.5: pop the trail's last variable,
// repeatedly, stopping (without popping) the moment its level is at or
// below target. The current level is then set to target directly, which is
// always safe for CDCL's non-chronological jumps since target is never
// above the level that was just popped.
func backjump(store *Store, target int) {
	trail := store.Trail()

	for len(trail) > 0 {
		last := trail[len(trail)-1]
		if store.LevelAt(last.Index()) <= target {
			break
		}

		store.Unassign(last.Index())
		trail = store.Trail()
	}

	store.SetLevel(target)
}
