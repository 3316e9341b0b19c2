package slotweaver

// Fill is a tagged unit: content earmarked for a named slot. It re-emits its
// body unchanged and carries the slot name as a read-only marker. Fills are
// immutable after construction and live only inside the child sequence passed
// to one classification call; the library never retains them.
type Fill struct {
	slot string
	body []Unit
}

func (f *Fill) Render() string { return Render(f.body...) }

// Slot returns the slot name this fill is earmarked for.
func (f *Fill) Slot() string { return f.slot }

// Body returns the nested content carried by the fill. Callers must not
// mutate the returned slice.
func (f *Fill) Body() []Unit { return f.body }

// FillFunc produces tagged units for one fixed slot name. Any two FillFuncs
// created for the same name are interchangeable: classification tests the
// produced unit, not the factory that made it.
type FillFunc func(body ...Unit) *Fill

// NewFill returns a factory bound to slot. The name is unconstrained here;
// use Registry.NewFill to restrict tagging to a declared set.
func NewFill(slot string) FillFunc {
	return func(body ...Unit) *Fill {
		return &Fill{slot: slot, body: body}
	}
}
