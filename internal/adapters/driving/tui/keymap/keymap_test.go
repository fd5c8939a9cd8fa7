package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	require.NotNil(t, km)
}

func TestDefaultKeyMap_QuitBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Quit.Keys()
	assert.Contains(t, keys, "q")
	assert.Contains(t, keys, "ctrl+c")
}

func TestDefaultKeyMap_BackBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Back.Keys()
	assert.Contains(t, keys, "esc")
}

func TestDefaultKeyMap_NavigationBindings(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, km.Up.Keys(), "up")
	assert.Contains(t, km.Up.Keys(), "k")
	assert.Contains(t, km.Down.Keys(), "down")
	assert.Contains(t, km.Down.Keys(), "j")
}

func TestDefaultKeyMap_SelectionBindings(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, km.Toggle.Keys(), " ")
	assert.Contains(t, km.SelectAll.Keys(), "a")
	assert.Contains(t, km.DeselectAll.Keys(), "n")
}

func TestDefaultKeyMap_SendBinding(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, km.Send.Keys(), "enter")
}

func TestShortHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := km.ShortHelp()

	assert.Len(t, bindings, 2)
	assert.Equal(t, km.Quit, bindings[0])
	assert.Equal(t, km.Help, bindings[1])
}

func TestDocumentsHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := km.DocumentsHelp()

	assert.Len(t, bindings, 6)
}

func TestFullHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := km.FullHelp()

	assert.Len(t, bindings, 3)    // 3 groups
	assert.Len(t, bindings[0], 3) // Up, Down, Toggle
	assert.Len(t, bindings[1], 2) // Send, Back
	assert.Len(t, bindings[2], 2) // Help, Quit
}

func TestMatches_True(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("q", km.Quit))
	assert.True(t, Matches("ctrl+c", km.Quit))
	assert.True(t, Matches("?", km.Help))
	assert.True(t, Matches("up", km.Up))
	assert.True(t, Matches(" ", km.Toggle))
}

func TestMatches_False(t *testing.T) {
	km := DefaultKeyMap()

	assert.False(t, Matches("x", km.Quit))
	assert.False(t, Matches("a", km.Help))
	assert.False(t, Matches("down", km.Up))
}

func TestBindings_HaveHelp(t *testing.T) {
	km := DefaultKeyMap()

	testCases := []struct {
		name    string
		binding key.Binding
	}{
		{"Quit", km.Quit},
		{"Help", km.Help},
		{"Back", km.Back},
		{"Up", km.Up},
		{"Down", km.Down},
		{"Toggle", km.Toggle},
		{"SelectAll", km.SelectAll},
		{"DeselectAll", km.DeselectAll},
		{"Send", km.Send},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			help := tc.binding.Help()
			assert.NotEmpty(t, help.Key, "binding should have help key")
		})
	}
}
