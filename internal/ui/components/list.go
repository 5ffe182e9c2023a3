package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ListItem is one choice of a List.
type ListItem struct {
	ID          string
	Title       string
	Description string
	Icon        string
	Disabled    bool
}

// List is a vertical menu of choices, as shown in modals.
type List struct {
	Title       string
	Items       []ListItem
	Selected    int
	Width       int
	ShowNumbers bool
}

// NewList creates a list of the given width.
func NewList(title string, width int, items ...ListItem) *List {
	return &List{Title: title, Items: items, Width: width}
}

// SetItems replaces the choices and resets the selection.
func (l *List) SetItems(items []ListItem) {
	l.Items = items
	l.Selected = 0
}

// SelectedItem returns the highlighted choice, or nil for an empty list.
func (l *List) SelectedItem() *ListItem {
	if l.Selected < 0 || l.Selected >= len(l.Items) {
		return nil
	}
	return &l.Items[l.Selected]
}

// MoveUp moves the highlight up.
func (l *List) MoveUp() {
	if l.Selected > 0 {
		l.Selected--
	}
}

// MoveDown moves the highlight down.
func (l *List) MoveDown() {
	if l.Selected < len(l.Items)-1 {
		l.Selected++
	}
}

// Render draws the list.
func (l *List) Render() string {
	headerStyle := lipgloss.NewStyle().Bold(true)
	selectedStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#EB6620")).
		Padding(0, 1)
	normalStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#374151"}).
		Padding(0, 1)

	var content []string
	if l.Title != "" {
		content = append(content, headerStyle.Render(l.Title), "")
	}
	for i := range l.Items {
		content = append(content, l.renderItem(&l.Items[i], i+1, i == l.Selected, selectedStyle, normalStyle))
	}
	return lipgloss.JoinVertical(lipgloss.Left, content...)
}

func (l *List) renderItem(item *ListItem, number int, selected bool, on, off lipgloss.Style) string {
	var parts []string
	if l.ShowNumbers {
		parts = append(parts, fmt.Sprintf("%d.", number))
	}
	if item.Icon != "" {
		parts = append(parts, item.Icon)
	}
	parts = append(parts, item.Title)

	text := labelStyle.Render(strings.Join(parts, " "))
	if item.Description != "" {
		text += "\n" + mutedText.Render(item.Description)
	}
	if item.Disabled {
		text = disabledText.Render(strings.Join(parts, " "))
	}

	style := off
	if selected {
		style = on
	}
	if l.Width > 4 {
		style = style.Width(l.Width - 2)
	}
	return style.Render(text)
}
