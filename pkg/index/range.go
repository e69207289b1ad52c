package index

// Range is one link of the position chain.
type Range struct {
	start int
	count int
	child *Range
}

// New returns a range starting at start.
func New(start int) *Range {
	return &Range{start: start}
}

// Start returns the position of the first child covered by r.
func (r *Range) Start() int {
	return r.start
}

// Count returns the number of children covered by r itself.
func (r *Range) Count() int {
	return r.count
}

// SetCount sets the number of children covered by r. Call UpdateChildren
// afterwards.
func (r *Range) SetCount(n int) {
	r.count = n
}

// NextIndex returns the position right after r.
func (r *Range) NextIndex() int {
	return r.start + r.count
}

// Increment grows r by one child and returns r.
func (r *Range) Increment() *Range {
	r.count++
	return r
}

// Decrement shrinks r by one child and returns r.
func (r *Range) Decrement() *Range {
	if r.count > 0 {
		r.count--
	}
	return r
}

// Child returns the next range in the chain, or nil.
func (r *Range) Child() *Range {
	return r.child
}

// SetChild links c after r without touching any position.
func (r *Range) SetChild(c *Range) {
	r.child = c
}

// Next inserts a new range right after r and returns it. The new range
// takes over r's previous child.
func (r *Range) Next() *Range {
	n := &Range{start: r.NextIndex(), child: r.child}
	r.child = n
	return n
}

// UpdateChildren propagates start positions down the chain. It stops at
// the first child that is already consistent.
func (r *Range) UpdateChildren() {
	for cur := r; cur.child != nil && cur.child.start != cur.NextIndex(); cur = cur.child {
		cur.child.start = cur.NextIndex()
	}
}

// Last returns the final range of the chain starting at r.
func (r *Range) Last() *Range {
	cur := r
	for cur.child != nil {
		cur = cur.child
	}
	return cur
}

// Chain returns the ranges from r to the end of the chain.
func (r *Range) Chain() []*Range {
	var out []*Range
	for cur := r; cur != nil; cur = cur.child {
		out = append(out, cur)
	}
	return out
}
