// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrCancelled is returned when the user cancels a prompt (esc/ctrl+c).
var ErrCancelled = errors.New("cancelled")

type (
	// ConfirmOptions configures the Confirm component.
	ConfirmOptions struct {
		// Title is the question/prompt to display.
		Title string
		// Description provides additional context below the title.
		Description string
		// Affirmative is the text for the affirmative option (default: "Yes").
		Affirmative string
		// Negative is the text for the negative option (default: "No").
		Negative string
		// Default is the default value (true for yes, false for no).
		Default bool
	}

	// confirmModel implements tea.Model for confirmation prompts.
	confirmModel struct {
		result      bool
		done        bool
		cancelled   bool
		width       int
		title       string
		description string
		affirmative string
		negative    string
		selection   bool
	}
)

func newConfirmModel(opts ConfirmOptions) *confirmModel {
	affirmative := opts.Affirmative
	if affirmative == "" {
		affirmative = "Yes"
	}
	negative := opts.Negative
	if negative == "" {
		negative = "No"
	}

	return &confirmModel{
		result:      opts.Default,
		title:       opts.Title,
		description: opts.Description,
		affirmative: affirmative,
		negative:    negative,
		selection:   opts.Default,
	}
}

// Init implements tea.Model.
func (m *confirmModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.done = true
			m.cancelled = true
			return m, tea.Quit
		case "y":
			m.selection = true
			m.result = true
			m.done = true
			return m, tea.Quit
		case "n":
			m.selection = false
			m.result = false
			m.done = true
			return m, tea.Quit
		case "left", "h":
			m.selection = true
		case "right", "l":
			m.selection = false
		case "up", "down", "tab", "shift+tab":
			m.selection = !m.selection
		case "enter", " ":
			m.result = m.selection
			m.done = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}

	return m, nil
}

// View implements tea.Model.
func (m *confirmModel) View() string {
	if m.done {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#7C3AED")).Bold(true).Padding(0, 1)
	inactiveStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF")).Padding(0, 1)
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))

	yesView := inactiveStyle.Render(m.affirmative)
	noView := inactiveStyle.Render(m.negative)
	if m.selection {
		yesView = activeStyle.Render(m.affirmative)
	} else {
		noView = activeStyle.Render(m.negative)
	}

	lines := make([]string, 0, 4)
	if m.title != "" {
		lines = append(lines, titleStyle.Render(m.title))
	}
	if m.description != "" {
		lines = append(lines, descStyle.Render(m.description))
	}
	lines = append(lines,
		yesView+"  "+noView,
		helpStyle.Render("enter submit • y yes • n no • esc cancel"),
	)

	view := strings.Join(lines, "\n")
	if m.width > 0 {
		view = lipgloss.NewStyle().MaxWidth(m.width).Render(view)
	}

	return view
}

// Confirm prompts the user to confirm an action (yes/no).
// Returns true for affirmative, false for negative, or ErrCancelled if the
// user backed out of the prompt entirely.
func Confirm(opts ConfirmOptions) (bool, error) {
	model := newConfirmModel(opts)
	p := tea.NewProgram(model)
	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m := finalModel.(*confirmModel)
	if m.cancelled {
		return false, ErrCancelled
	}
	return m.result, nil
}
