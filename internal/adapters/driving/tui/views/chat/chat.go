// Package chat provides the conversation view for the TUI: the
// transcript, a question input, and the request status.
package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/docchat-labs/docchat-cli/internal/adapters/driving/tui/keymap"
	"github.com/docchat-labs/docchat-cli/internal/adapters/driving/tui/messages"
	"github.com/docchat-labs/docchat-cli/internal/adapters/driving/tui/styles"
	"github.com/docchat-labs/docchat-cli/internal/core/domain"
	"github.com/docchat-labs/docchat-cli/internal/core/ports/driving"
)

// View represents the chat view.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	input  textinput.Model

	chat      driving.ChatService
	selection driving.SelectionService
	ctx       context.Context

	sending bool
	errText string
	width   int
	height  int
	ready   bool
}

// NewView creates a new chat view.
func NewView(s *styles.Styles, chat driving.ChatService, selection driving.SelectionService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	input := textinput.New()
	input.Placeholder = "Ask a question about the selected documents..."
	input.CharLimit = 2000
	input.Width = 60

	return &View{
		styles:    s,
		keymap:    keymap.DefaultKeyMap(),
		input:     input,
		chat:      chat,
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

// Init focuses the question input.
func (v *View) Init() tea.Cmd {
	v.input.Focus()
	return textinput.Blink
}

// Reset clears the input and any shown error.
func (v *View) Reset() {
	v.input.SetValue("")
	v.errText = ""
}

// Update handles messages for the chat view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.input.Width = msg.Width - 8
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}

		case "ctrl+c":
			return v, tea.Quit

		case "enter":
			return v, v.submit()
		}

	case messages.AnswerReceived:
		v.sending = false
		if msg.Err != nil {
			v.errText = msg.Err.Error()
		}
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// submit sends the typed question unless one is already in flight.
func (v *View) submit() tea.Cmd {
	question := strings.TrimSpace(v.input.Value())
	if question == "" || v.sending {
		return nil
	}

	v.sending = true
	v.errText = ""
	v.input.SetValue("")

	return func() tea.Msg {
		answer, err := v.chat.Send(v.ctx, question)
		return messages.AnswerReceived{Message: answer, Err: err}
	}
}

// View renders the transcript, status, and input field.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Chat"))
	b.WriteString("\n\n")

	history := v.chat.History(v.ctx)
	if len(history) == 0 {
		b.WriteString(v.styles.Muted.Render("No messages yet."))
		b.WriteString("\n")
	}
	for i := range history {
		b.WriteString(v.renderTurn(&history[i]))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case v.sending:
		b.WriteString(v.styles.Muted.Render("Thinking..."))
		b.WriteString("\n")
	case v.errText != "":
		b.WriteString(v.styles.Error.Render("Error: " + v.errText))
		b.WriteString("\n")
	}

	b.WriteString(v.styles.InputField.Render(v.input.View()))
	b.WriteString("\n")

	selected := v.selection.Count()
	status := fmt.Sprintf("%d documents selected", selected)
	if selected == 0 {
		status = "no documents selected (pick some in Documents)"
	}
	b.WriteString(v.styles.Help.Render(status + "  [enter] send  [esc] back"))

	return b.String()
}

// renderTurn formats one transcript entry.
func (v *View) renderTurn(msg *domain.ChatMessage) string {
	var b strings.Builder

	switch msg.Role {
	case domain.RoleUser:
		b.WriteString(v.styles.UserTurn.Render("You: "))
	case domain.RoleAssistant:
		b.WriteString(v.styles.AssistantTurn.Render("DocChat: "))
	}
	b.WriteString(msg.Content)

	if len(msg.Sources) > 0 {
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render("  sources: " + strings.Join(msg.Sources, ", ")))
	}

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Sending reports whether a question is currently in flight.
func (v *View) Sending() bool {
	return v.sending
}

// Err returns the error text shown in the view, if any.
func (v *View) Err() string {
	return v.errText
}
