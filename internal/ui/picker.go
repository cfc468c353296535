package ui

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// ErrPickCancelled is returned when the user leaves the picker without confirming
var ErrPickCancelled = errors.New("selection cancelled")

// Picker lets the user choose test classes interactively
type Picker interface {
	Pick(names []string) ([]string, error)
}

// Selection tracks which classes are checked
type Selection struct {
	names   []string
	checked map[int]bool
}

// NewSelection creates a Selection with every name checked
func NewSelection(names []string) *Selection {
	s := &Selection{names: names, checked: make(map[int]bool, len(names))}
	s.SetAll(true)
	return s
}

// Toggle flips the check on index
func (s *Selection) Toggle(index int) {
	if index < 0 || index >= len(s.names) {
		return
	}
	s.checked[index] = !s.checked[index]
}

// SetAll checks or clears every entry
func (s *Selection) SetAll(on bool) {
	for i := range s.names {
		s.checked[i] = on
	}
}

// AllChecked reports whether every entry is checked
func (s *Selection) AllChecked() bool {
	for i := range s.names {
		if !s.checked[i] {
			return false
		}
	}
	return true
}

// IsChecked reports whether index is checked
func (s *Selection) IsChecked(index int) bool {
	return s.checked[index]
}

// Count returns the number of checked entries
func (s *Selection) Count() int {
	n := 0
	for i := range s.names {
		if s.checked[i] {
			n++
		}
	}
	return n
}

// Selected returns the checked names in their original order
func (s *Selection) Selected() []string {
	var selected []string
	for i, name := range s.names {
		if s.checked[i] {
			selected = append(selected, name)
		}
	}
	return selected
}

// Label returns the list text for index using tview color tags
func (s *Selection) Label(index int) string {
	if s.checked[index] {
		return fmt.Sprintf("[green]✓[white] %s", tview.Escape(s.names[index]))
	}
	return fmt.Sprintf("[gray]· %s[white]", tview.Escape(s.names[index]))
}

// TUIPicker is a tview checklist. It draws on the terminal device so stdout
// stays free for the filter.
type TUIPicker struct{}

// NewTUIPicker creates a new TUIPicker
func NewTUIPicker() *TUIPicker {
	return &TUIPicker{}
}

// Pick shows the checklist and returns the confirmed selection
func (p *TUIPicker) Pick(names []string) ([]string, error) {
	if len(names) == 0 {
		return nil, nil
	}

	selection := NewSelection(names)
	confirmed := false

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	for i := range names {
		list.AddItem(selection.Label(i), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	updateHeader := func() {
		headerView.SetText(fmt.Sprintf(" Test classes (%d of %d selected) | [yellow]Space[white] toggle, [yellow]A[white] toggle all, [yellow]Enter[white] confirm, Esc to cancel ", selection.Count(), len(names)))
	}

	refresh := func() {
		for i := range names {
			list.SetItemText(i, selection.Label(i), "")
		}
		updateHeader()
	}

	updateHeader()

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter:
			confirmed = true
			app.Stop()
			return nil
		case tcell.KeyEsc, tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			switch event.Rune() {
			case ' ':
				index := list.GetCurrentItem()
				selection.Toggle(index)
				list.SetItemText(index, selection.Label(index), "")
				updateHeader()
				return nil
			case 'a', 'A':
				selection.SetAll(!selection.AllChecked())
				refresh()
				return nil
			case 'q':
				app.Stop()
				return nil
			}
		}
		return event
	})

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(list, 0, 1, true)

	if err := app.SetRoot(layout, true).SetFocus(list).Run(); err != nil {
		return nil, fmt.Errorf("failed to run TUI: %w", err)
	}

	if !confirmed {
		return nil, ErrPickCancelled
	}
	return selection.Selected(), nil
}
