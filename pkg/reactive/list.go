package reactive

// entry is one registration in a list. Removal only flips live, so
// iteration over a snapshot skips entries removed mid-notification.
type entry[F any] struct {
	id   uint64
	fn   F
	live bool
}

// list is an insertion-ordered set of registrations keyed by id.
type list[F any] struct {
	entries []*entry[F]
	index   map[uint64]*entry[F]
	dead    int
}

// add registers fn under id. It reports false if id is already present.
func (l *list[F]) add(id uint64, fn F) bool {
	if l.index == nil {
		l.index = make(map[uint64]*entry[F])
	}
	if _, ok := l.index[id]; ok {
		return false
	}
	e := &entry[F]{id: id, fn: fn, live: true}
	l.index[id] = e
	l.entries = append(l.entries, e)
	return true
}

// remove unregisters id. Removing an unknown id is a no-op.
func (l *list[F]) remove(id uint64) bool {
	e, ok := l.index[id]
	if !ok {
		return false
	}
	delete(l.index, id)
	e.live = false
	l.dead++
	if l.dead > 16 && l.dead*2 > len(l.entries) {
		l.compact()
	}
	return true
}

func (l *list[F]) compact() {
	live := make([]*entry[F], 0, len(l.index))
	for _, e := range l.entries {
		if e.live {
			live = append(live, e)
		}
	}
	l.entries = live
	l.dead = 0
}

func (l *list[F]) has(id uint64) bool {
	_, ok := l.index[id]
	return ok
}

func (l *list[F]) len() int {
	return len(l.index)
}

// snapshot copies the current entries so callbacks may mutate the list.
func (l *list[F]) snapshot() []*entry[F] {
	if len(l.entries) == 0 {
		return nil
	}
	out := make([]*entry[F], len(l.entries))
	copy(out, l.entries)
	return out
}
