package listdiff

// queues maps a key to the indexes holding it, highest first, so that
// pop yields the lowest remaining index.
type queues map[any][]int

func keyQueues[T any](items []T, key func(T) any) queues {
	q := make(queues, len(items))
	for i := len(items) - 1; i >= 0; i-- {
		k := keyOf(items[i], key)
		q[k] = append(q[k], i)
	}
	return q
}

func (q queues) pop(k any) (int, bool) {
	s := q[k]
	if len(s) == 0 {
		return 0, false
	}
	i := s[len(s)-1]
	q[k] = s[:len(s)-1]
	return i, true
}

func keyOf[T any](item T, key func(T) any) any {
	if key != nil {
		if k := key(item); k != nil {
			return k
		}
	}
	return item
}

// Diff returns the actions that turn current into next. key extracts
// the identity of an item; a nil key, or a nil result, keys the item by
// itself.
func Diff[T any](current, next []T, key func(T) any) []Action {
	var actions []Action

	// Items of current with no counterpart left in next.
	nextKeys := keyQueues(next, key)
	var candidates []int
	for i, item := range current {
		if _, ok := nextKeys.pop(keyOf(item, key)); !ok {
			candidates = append(candidates, i)
		}
	}

	added := len(next) - (len(current) - len(candidates))
	replaceCount := min(max(added, 0), len(candidates))

	removed := make(map[int]bool, len(candidates)-replaceCount)
	for _, i := range candidates[replaceCount:] {
		removed[i] = true
	}
	pruned := make([]T, 0, len(current)-len(removed))
	for i := len(current) - 1; i >= 0; i-- {
		if removed[i] {
			actions = append(actions, Action{Kind: Remove, A: i})
		}
	}
	for i, item := range current {
		if !removed[i] {
			pruned = append(pruned, item)
		}
	}

	// Unmatched items of next replace candidates, then become additions.
	currentKeys := keyQueues(pruned, key)
	var additions []int
	isAddition := make(map[int]bool)
	unmatched := 0
	for i, item := range next {
		if _, ok := currentKeys.pop(keyOf(item, key)); ok {
			continue
		}
		if unmatched < replaceCount {
			actions = append(actions, Action{Kind: Replace, A: candidates[unmatched], B: i})
		} else {
			additions = append(additions, i)
			isAddition[i] = true
		}
		unmatched++
	}

	// target[old] is where the item at old must end up, ignoring
	// additions. order keeps the keys in insertion order.
	currentKeys = keyQueues(pruned, key)
	target := make([]int, len(pruned))
	order := make([]int, 0, len(pruned))
	replaced := 0
	to := 0
	for i, item := range next {
		if isAddition[i] {
			continue
		}
		from, ok := currentKeys.pop(keyOf(item, key))
		if !ok {
			from = candidates[replaced]
			replaced++
		}
		target[from] = to
		order = append(order, from)
		to++
	}

	for {
		from, ok := mostDisplaced(order, target)
		if !ok {
			break
		}
		to := target[from]
		actions = append(actions, Action{Kind: Move, A: from, B: to})

		// Shift every entry between the two positions one step toward
		// from, as if the item had been moved.
		dir := 1
		if to < from {
			dir = -1
		}
		sub := to
		for i := to; (dir == 1 && i >= from) || (dir == -1 && i <= from); i -= dir {
			target[i], sub = sub, target[i]
		}
	}

	for _, i := range additions {
		actions = append(actions, Action{Kind: Add, A: i})
	}
	return actions
}

// mostDisplaced returns the first index in order with the strictly
// largest displacement, or false when every item is in place.
func mostDisplaced(order, target []int) (int, bool) {
	best, at := 0, -1
	for _, from := range order {
		d := target[from] - from
		if d < 0 {
			d = -d
		}
		if d > best {
			best, at = d, from
		}
	}
	return at, at >= 0
}
