// Package documents provides the document library view for the TUI.
// It lists the library and lets the user choose which documents the
// next question is about.
package documents

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/docchat-labs/docchat-cli/internal/adapters/driving/tui/keymap"
	"github.com/docchat-labs/docchat-cli/internal/adapters/driving/tui/messages"
	"github.com/docchat-labs/docchat-cli/internal/adapters/driving/tui/styles"
	"github.com/docchat-labs/docchat-cli/internal/core/domain"
	"github.com/docchat-labs/docchat-cli/internal/core/ports/driving"
)

// View represents the document selection view.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap

	documents driving.DocumentService
	selection driving.SelectionService
	ctx       context.Context

	docs   []domain.Document
	cursor int
	width  int
	height int
	ready  bool
}

// NewView creates a new documents view.
func NewView(s *styles.Styles, documents driving.DocumentService, selection driving.SelectionService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:    s,
		keymap:    keymap.DefaultKeyMap(),
		documents: documents,
		selection: selection,
		ctx:       context.Background(),
		width:     80,
		height:    24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init reloads the document list.
func (v *View) Init() tea.Cmd {
	v.Reload()
	return nil
}

// Reload refreshes the document list from the service and clamps the
// cursor to the new bounds.
func (v *View) Reload() {
	v.docs = v.documents.List(v.ctx)
	if v.cursor >= len(v.docs) {
		v.cursor = len(v.docs) - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
}

// Update handles messages for the documents view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, v.keymap.Back):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}

	case keymap.Matches(keyStr, v.keymap.Up):
		if v.cursor > 0 {
			v.cursor--
		}
		return v, nil

	case keymap.Matches(keyStr, v.keymap.Down):
		if v.cursor < len(v.docs)-1 {
			v.cursor++
		}
		return v, nil

	case keymap.Matches(keyStr, v.keymap.Toggle):
		if len(v.docs) == 0 {
			return v, nil
		}
		v.selection.Toggle(v.docs[v.cursor].ID)
		return v, v.selectionChanged()

	case keymap.Matches(keyStr, v.keymap.SelectAll):
		v.selection.SelectAll(v.documents.IDs(v.ctx))
		return v, v.selectionChanged()

	case keymap.Matches(keyStr, v.keymap.DeselectAll):
		v.selection.DeselectAll()
		return v, v.selectionChanged()

	case keymap.Matches(keyStr, v.keymap.Quit):
		return v, tea.Quit
	}

	return v, nil
}

func (v *View) selectionChanged() tea.Cmd {
	count := v.selection.Count()
	return func() tea.Msg {
		return messages.SelectionChanged{Count: count}
	}
}

// View renders the document list with selection markers.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Documents"))
	b.WriteString("\n\n")

	if len(v.docs) == 0 {
		b.WriteString(v.styles.Muted.Render("No documents yet. Add some with 'docchat document add'."))
		b.WriteString("\n\n")
		b.WriteString(v.styles.Help.Render("[esc] back"))
		return b.String()
	}

	for i := range v.docs {
		doc := &v.docs[i]

		marker := "[ ]"
		if v.selection.IsSelected(doc.ID) {
			marker = "[x]"
		}

		line := fmt.Sprintf("%s %s", marker, doc.Title)
		if i == v.cursor {
			line = v.styles.Selected.Render(line)
		} else {
			line = v.styles.Normal.Render(line)
		}

		b.WriteString("  " + line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render(fmt.Sprintf("%d of %d selected", v.selection.Count(), len(v.docs))))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[space] toggle  [a] all  [n] none  [j/k] navigate  [esc] back"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Cursor returns the current cursor index.
func (v *View) Cursor() int {
	return v.cursor
}

// Documents returns the currently listed documents.
func (v *View) Documents() []domain.Document {
	return v.docs
}
