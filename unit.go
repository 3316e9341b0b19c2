package slotweaver

import "strings"

// Unit is a node in the host component tree. The classifier never looks
// inside a unit beyond checking whether it is a *Fill; everything else is
// treated as opaque plain content. Host frameworks plug in by implementing
// Render on their own node types.
type Unit interface {
	// Render returns the unit's output, unchanged by this library.
	Render() string
}

// Text is the built-in plain unit: a string that renders as itself.
type Text string

func (t Text) Render() string { return string(t) }

// Render joins the rendered output of units in order. Convenience for
// turning slot content back into host output.
func Render(units ...Unit) string {
	var sb strings.Builder
	for _, u := range units {
		sb.WriteString(u.Render())
	}
	return sb.String()
}
