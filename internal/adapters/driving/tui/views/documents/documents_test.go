package documents

import (
	"context"
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docchat-labs/docchat-cli/internal/adapters/driven/storage/memory"
	"github.com/docchat-labs/docchat-cli/internal/adapters/driving/tui/messages"
	"github.com/docchat-labs/docchat-cli/internal/core/services"
)

type fixedClock struct{}

func (fixedClock) Now() time.Time {
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
}

type seqIDGenerator struct{ n int }

func (g *seqIDGenerator) NewID() string {
	g.n++
	return fmt.Sprintf("doc-%d", g.n)
}

func newFixture(t *testing.T, titles ...string) (*View, *services.SelectionService) {
	t.Helper()

	ctx := context.Background()
	docs, err := services.NewDocumentService(ctx, memory.NewKeyValueStore(), fixedClock{}, &seqIDGenerator{})
	require.NoError(t, err)

	for _, title := range titles {
		_, err := docs.Add(ctx, title, "content of "+title)
		require.NoError(t, err)
	}

	selection := services.NewSelectionService()
	view := NewView(nil, docs, selection)
	view.SetDimensions(80, 24)
	view.Reload()
	return view, selection
}

func TestNewView(t *testing.T) {
	view, _ := newFixture(t)

	require.NotNil(t, view)
	assert.NotNil(t, view.styles)
	assert.Equal(t, 0, view.Cursor())
}

func TestView_Reload(t *testing.T) {
	view, _ := newFixture(t, "Alpha", "Beta")

	assert.Len(t, view.Documents(), 2)
}

func TestView_Reload_ClampsCursor(t *testing.T) {
	view, _ := newFixture(t, "Alpha", "Beta")
	view.cursor = 5

	view.Reload()

	assert.Equal(t, 1, view.Cursor())
}

func TestView_Update_Navigation(t *testing.T) {
	view, _ := newFixture(t, "Alpha", "Beta", "Gamma")

	down := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
	view.Update(down)
	view.Update(down)
	assert.Equal(t, 2, view.Cursor())

	// Can't go past the last document.
	view.Update(down)
	assert.Equal(t, 2, view.Cursor())

	up := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}
	view.Update(up)
	assert.Equal(t, 1, view.Cursor())
}

func TestView_Update_ToggleSelection(t *testing.T) {
	view, selection := newFixture(t, "Alpha", "Beta")

	space := tea.KeyMsg{Type: tea.KeySpace}
	_, cmd := view.Update(space)

	assert.True(t, selection.IsSelected("doc-1"))
	require.NotNil(t, cmd)
	changed, ok := cmd().(messages.SelectionChanged)
	require.True(t, ok)
	assert.Equal(t, 1, changed.Count)

	// Toggling again deselects.
	view.Update(space)
	assert.False(t, selection.IsSelected("doc-1"))
}

func TestView_Update_Toggle_EmptyLibrary(t *testing.T) {
	view, selection := newFixture(t)

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeySpace})

	assert.Nil(t, cmd)
	assert.Zero(t, selection.Count())
}

func TestView_Update_SelectAll(t *testing.T) {
	view, selection := newFixture(t, "Alpha", "Beta", "Gamma")

	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})

	assert.Equal(t, 3, selection.Count())
}

func TestView_Update_DeselectAll(t *testing.T) {
	view, selection := newFixture(t, "Alpha", "Beta")
	selection.SelectAll([]string{"doc-1", "doc-2"})

	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})

	assert.Zero(t, selection.Count())
}

func TestView_Update_Esc_ReturnsToMenu(t *testing.T) {
	view, _ := newFixture(t, "Alpha")

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	changed, ok := cmd().(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewMenu, changed.View)
}

func TestView_View_Empty(t *testing.T) {
	view, _ := newFixture(t)

	output := view.View()

	assert.Contains(t, output, "No documents yet")
}

func TestView_View_ShowsMarkers(t *testing.T) {
	view, selection := newFixture(t, "Alpha", "Beta")
	selection.Toggle("doc-1")

	output := view.View()

	assert.Contains(t, output, "[x] Alpha")
	assert.Contains(t, output, "[ ] Beta")
	assert.Contains(t, output, "1 of 2 selected")
}

func TestView_View_NotReady(t *testing.T) {
	docs, err := services.NewDocumentService(context.Background(), memory.NewKeyValueStore(), fixedClock{}, &seqIDGenerator{})
	require.NoError(t, err)
	view := NewView(nil, docs, services.NewSelectionService())

	assert.Contains(t, view.View(), "Initialising")
}
