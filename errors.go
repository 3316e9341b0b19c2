package slotweaver

import (
	"fmt"
	"strings"
)

// InvalidSlotNameError is returned by Registry.NewFill when the requested
// slot name is not in the registry's permitted set. It fires at factory
// construction time, not at classification time: tagging content for a slot
// the component never declared is a programmer error and should fail fast.
type InvalidSlotNameError struct {
	Slot    string   // the offending slot name
	Allowed []string // the registry's permitted set, sorted
}

// Error implements the error interface.
func (e *InvalidSlotNameError) Error() string {
	return fmt.Sprintf("slot %q is not declared by this registry (declared: %s)",
		e.Slot, strings.Join(e.Allowed, ", "))
}

// EmptyRegistryError is returned by NewRegistry and LoadRegistry when no
// slot names were supplied. A registry exists to close over a set of names;
// an empty set would reject every NewFill call.
type EmptyRegistryError struct{}

// Error implements the error interface.
func (e *EmptyRegistryError) Error() string {
	return "registry requires at least one slot name"
}

// NewInvalidSlotNameError creates a new InvalidSlotNameError.
func NewInvalidSlotNameError(slot string, allowed []string) *InvalidSlotNameError {
	return &InvalidSlotNameError{Slot: slot, Allowed: allowed}
}
