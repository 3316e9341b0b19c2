// Package slotpane provides a bordered pane component that routes its
// children into named slot areas. It is the Bubble Tea face of slotweaver:
// the pane declares its slot areas up front, callers tag content for them
// with fills, and every View pass classifies the current children and lays
// the areas out top to bottom with anything untagged at the end.
package slotpane

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/grahms/slotweaver"
)

// Config configures a slot pane.
type Config struct {
	// Slots declares the pane's slot areas, rendered top to bottom in this
	// order. Required; at least one name.
	Slots []string

	// Width is the total pane width including borders (0 = size to content).
	Width int

	// ShowLabels renders each populated area's slot name above its content.
	ShowLabels bool

	// BorderColor and LabelColor override the defaults when non-nil.
	BorderColor lipgloss.TerminalColor
	LabelColor  lipgloss.TerminalColor
}

// Default colors, chosen to read on dark and light terminals alike.
var (
	defaultBorderColor = lipgloss.AdaptiveColor{Light: "240", Dark: "244"}
	defaultLabelColor  = lipgloss.AdaptiveColor{Light: "245", Dark: "241"}
)

// Model holds the pane state. Methods follow the value-receiver convention:
// setters return the updated model.
type Model struct {
	cfg        Config
	reg        *slotweaver.Registry
	children   []slotweaver.Unit
	classifier *slotweaver.Classifier
}

// New creates a pane over the declared slot areas. The slot set is closed at
// construction: Fill rejects names outside it.
func New(cfg Config) (Model, error) {
	reg, err := slotweaver.NewRegistry(cfg.Slots...)
	if err != nil {
		return Model{}, err
	}
	return Model{
		cfg:        cfg,
		reg:        reg,
		classifier: &slotweaver.Classifier{},
	}, nil
}

// Registry exposes the pane's slot registry, e.g. for sharing its permitted
// set with a sibling component.
func (m Model) Registry() *slotweaver.Registry { return m.reg }

// Fill returns a factory tagging content for one of the pane's declared
// areas. Undeclared names fail with *slotweaver.InvalidSlotNameError.
func (m Model) Fill(slot string) (slotweaver.FillFunc, error) {
	return m.reg.NewFill(slot)
}

// SetChildren replaces the pane's child sequence.
func (m Model) SetChildren(children ...slotweaver.Unit) Model {
	m.children = children
	return m
}

// SetWidth updates the total pane width.
func (m Model) SetWidth(width int) Model {
	m.cfg.Width = width
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model. The pane tracks terminal resizes; everything
// else passes through untouched.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.cfg.Width = ws.Width
	}
	return m, nil
}

// View renders the pane. Children are classified on every pass through the
// pane's memoized classifier, so an unchanged child slice costs no re-scan.
// Declared areas render in declaration order, skipping areas with no
// content; untagged children render last, in their original order.
func (m Model) View() string {
	slots := m.classifier.Classify(m.children)

	labelColor := m.cfg.LabelColor
	if labelColor == nil {
		labelColor = defaultLabelColor
	}
	labelStyle := lipgloss.NewStyle().Foreground(labelColor).Bold(true)

	var sections []string
	for _, name := range m.cfg.Slots {
		body, ok := slots.Get(name)
		if !ok {
			continue
		}
		if m.cfg.ShowLabels {
			sections = append(sections, labelStyle.Render(name))
		}
		sections = append(sections, slotweaver.Render(body...))
	}
	if len(slots.Rest) > 0 {
		sections = append(sections, slotweaver.Render(slots.Rest...))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	borderColor := m.cfg.BorderColor
	if borderColor == nil {
		borderColor = defaultBorderColor
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1)
	if m.cfg.Width > 0 {
		// -2 for the border columns; padding is inside the width.
		box = box.Width(max(m.cfg.Width-2, 1))
	}
	return box.Render(content)
}
