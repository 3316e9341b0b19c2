package slotweaver

// SlotMap is the result of one classification pass: per-slot content plus
// the catch-all bucket for everything that was not earmarked. A slot name
// is present only if at least one fill for it occurred in the input; Rest
// is always non-nil, even when empty. A SlotMap is built fresh on every
// call and owned by the caller.
type SlotMap struct {
	Slots map[string][]Unit
	Rest  []Unit
}

// Get returns the content classified for slot and whether the slot occurred.
// Absence means "no content for this slot".
func (m SlotMap) Get(slot string) ([]Unit, bool) {
	body, ok := m.Slots[slot]
	return body, ok
}

// Has reports whether any fill for slot occurred in the classified input.
func (m SlotMap) Has(slot string) bool {
	_, ok := m.Slots[slot]
	return ok
}

// Classify partitions children into per-slot content and the rest bucket.
// Only the top level of children is inspected; there is no recursion into
// fill bodies. The pass is ordered: plain units keep their relative order in
// Rest, and when several fills name the same slot the first one wins and the
// later ones are silently dropped. Nil and empty input are fine and yield a
// map with only the empty Rest.
func Classify(children []Unit) SlotMap {
	m := SlotMap{
		Slots: make(map[string][]Unit),
		Rest:  []Unit{},
	}
	for _, child := range children {
		fill, ok := child.(*Fill)
		if !ok {
			m.Rest = append(m.Rest, child)
			continue
		}
		if _, taken := m.Slots[fill.Slot()]; taken {
			continue
		}
		m.Slots[fill.Slot()] = fill.Body()
	}
	return m
}

// Classifier wraps Classify with a single-entry cache keyed on the identity
// of the input slice (same backing array, same length). A render loop that
// passes the same child slice every frame gets the previous SlotMap back
// without a re-scan; any new slice invalidates the entry. Classification is
// pure, so the cache is an optimization only. Not safe for concurrent use;
// keep one Classifier per call site.
type Classifier struct {
	last   []Unit
	cached SlotMap
	valid  bool
}

func (c *Classifier) Classify(children []Unit) SlotMap {
	if c.valid && sameSlice(c.last, children) {
		return c.cached
	}
	c.last = children
	c.cached = Classify(children)
	c.valid = true
	return c.cached
}

// sameSlice reports slice identity, not element equality: both views must
// share a backing array and length. Two distinct empty slices are treated
// as identical since they classify identically.
func sameSlice(a, b []Unit) bool {
	if len(a) != len(b) {
		return false
	}
	return len(a) == 0 || &a[0] == &b[0]
}
