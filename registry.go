package slotweaver

import (
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"
)

// Registry is an immutable set of slot names a component has declared. It
// restricts tagging: NewFill rejects names outside the set. It deliberately
// does not restrict classification — Classify passes through whatever slot
// names occur in the input, declared or not (see the Classify doc comment).
// Each Registry is independent; two components wanting the same permitted
// set construct their own instances.
type Registry struct {
	allowed map[string]struct{}
	names   []string // sorted, for messages and deterministic iteration
}

// NewRegistry builds a registry over the given slot names. Duplicates are
// silently collapsed. At least one name is required; an empty set is
// rejected with *EmptyRegistryError.
func NewRegistry(names ...string) (*Registry, error) {
	if len(names) == 0 {
		return nil, &EmptyRegistryError{}
	}
	allowed := make(map[string]struct{}, len(names))
	for _, n := range names {
		allowed[n] = struct{}{}
	}
	sorted := make([]string, 0, len(allowed))
	for n := range allowed {
		sorted = append(sorted, n)
	}
	sort.Strings(sorted)
	return &Registry{allowed: allowed, names: sorted}, nil
}

// registryDoc is the on-disk shape accepted by LoadRegistry.
type registryDoc struct {
	Slots []string `yaml:"slots"`
}

// LoadRegistry reads a YAML registry definition of the form
//
//	slots:
//	  - header
//	  - footer
//
// and builds a Registry from it. Documents that do not parse are reported
// with a wrapped error; a parsed document with no slots fails the same way
// NewRegistry does.
func LoadRegistry(r io.Reader) (*Registry, error) {
	var doc registryDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding registry definition: %w", err)
	}
	return NewRegistry(doc.Slots...)
}

// NewFill validates slot against the permitted set, then delegates to the
// package-level NewFill unchanged. Non-members fail with
// *InvalidSlotNameError naming the offending slot.
func (r *Registry) NewFill(slot string) (FillFunc, error) {
	if _, ok := r.allowed[slot]; !ok {
		return nil, NewInvalidSlotNameError(slot, r.names)
	}
	return NewFill(slot), nil
}

// MustNewFill is NewFill for the package-var setup path: it panics on an
// undeclared slot name instead of returning the error.
func (r *Registry) MustNewFill(slot string) FillFunc {
	f, err := r.NewFill(slot)
	if err != nil {
		panic(err)
	}
	return f
}

// Classify delegates to the package-level Classify unchanged. The permitted
// set is enforced at tagging time only: if a fill for an undeclared slot is
// present in children anyway, it still gets a SlotMap entry, exactly as the
// standalone classifier would produce. Callers relying on the registry to
// filter output would mask the tagging bug they actually have.
func (r *Registry) Classify(children []Unit) SlotMap {
	return Classify(children)
}

// Allows reports whether slot is in the permitted set.
func (r *Registry) Allows(slot string) bool {
	_, ok := r.allowed[slot]
	return ok
}

// Names returns the permitted set, sorted. The returned slice is a copy.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}
