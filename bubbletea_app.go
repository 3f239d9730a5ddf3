// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/cybrota/avltree/avl"
	"github.com/patrickmn/go-cache"
)

// Model represents the Bubble Tea application state
type Model struct {
	ready bool

	// Components
	actions  list.Model
	input    textinput.Model
	treeView viewport.Model

	// Data
	tree        *avl.Tree[int]
	renderCache *cache.Cache
	config      *Config

	// State
	pending     MenuChoice // ChoiceInsert or ChoiceDelete while the input is open
	showingHelp bool
	status      string
	statusError bool

	// copy writes text to the clipboard
	copy func(string) error

	// Styling
	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	// Dimensions
	width  int
	height int
}

// Styles holds all the styling for the application
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	InputPrompt    lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

// NewStyles creates the default styles
func NewStyles() *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Padding(0, 1).
			Bold(true),
		InputPrompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}

// actionItem represents an entry in the actions list
type actionItem struct {
	choice MenuChoice
}

func (i actionItem) FilterValue() string { return menuOptions[i.choice-1] }
func (i actionItem) Title() string {
	return fmt.Sprintf("%d. %s", i.choice, menuOptions[i.choice-1])
}
func (i actionItem) Description() string {
	switch i.choice {
	case ChoiceInsert:
		return "add one or more integers"
	case ChoiceDelete:
		return "remove one or more integers"
	case ChoicePrint:
		return "redraw the tree"
	default:
		return "leave avltree"
	}
}

// clipboardMsg reports the outcome of a clipboard copy
type clipboardMsg struct {
	err error
}

// InitialModel creates the initial model
func InitialModel(tree *avl.Tree[int], rc *cache.Cache, config *Config) Model {
	if config == nil {
		config = defaultConfig()
	}

	items := make([]list.Item, 0, len(menuOptions))
	for i := range menuOptions {
		items = append(items, actionItem{choice: MenuChoice(i + 1)})
	}
	actions := list.New(items, list.NewDefaultDelegate(), 0, 0)
	actions.SetShowTitle(false)
	actions.SetShowHelp(false)
	actions.SetShowStatusBar(false)
	actions.SetFilteringEnabled(false)

	ti := textinput.New()
	ti.Placeholder = "Select insert or delete first..."
	ti.CharLimit = 256
	ti.Width = 30

	treeView := viewport.New(0, 0)

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)

	model := Model{
		actions:         actions,
		input:           ti,
		treeView:        treeView,
		tree:            tree,
		renderCache:     rc,
		config:          config,
		pending:         ChoiceInvalid,
		copy:            copyToClipboard,
		styles:          NewStyles(),
		glamourRenderer: glamourRenderer,
	}
	model.refreshTree()

	return model
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.pending != ChoiceInvalid {
			return m.updateInput(msg)
		}
		return m.updateMenu(msg)

	case clipboardMsg:
		if msg.err != nil {
			m.setError(fmt.Sprintf("Copy failed: %v", msg.err))
		} else {
			m.setStatus("📋 Copied the tree to the clipboard.")
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
	}

	return m, nil
}

// updateMenu handles keys while no action is waiting for input
func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "esc", "q":
		if m.showingHelp {
			m.showingHelp = false
			m.refreshTree()
			return m, nil
		}
		return m, tea.Quit
	case "1", "2", "3", "4":
		choice := parseChoice(msg.String())
		m.actions.Select(int(choice) - 1)
		return m.choose(choice)
	case "enter":
		if item, ok := m.actions.SelectedItem().(actionItem); ok {
			return m.choose(item.choice)
		}
		return m, nil
	case "ctrl+y":
		text := strings.Join(GetOrRender(m.renderCache, m.tree), "\n")
		copyFn := m.copy
		return m, func() tea.Msg {
			return clipboardMsg{err: copyFn(text)}
		}
	case "f1":
		m.showingHelp = !m.showingHelp
		if m.showingHelp {
			m.showHelp()
		} else {
			m.refreshTree()
		}
		return m, nil
	case "pgup":
		m.treeView.LineUp(m.treeView.Height)
		return m, nil
	case "pgdown":
		m.treeView.LineDown(m.treeView.Height)
		return m, nil
	case "home":
		m.treeView.GotoTop()
		return m, nil
	case "end":
		m.treeView.GotoBottom()
		return m, nil
	}

	m.actions, cmd = m.actions.Update(msg)
	return m, cmd
}

// updateInput handles keys while the integer input is open
func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "esc":
		m.closeInput()
		m.setStatus("Cancelled.")
		return m, nil
	case "enter":
		m.submit()
		return m, nil
	}

	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// choose runs a menu action
func (m Model) choose(choice MenuChoice) (tea.Model, tea.Cmd) {
	switch choice {
	case ChoiceInsert, ChoiceDelete:
		m.pending = choice
		m.input.Reset()
		if choice == ChoiceInsert {
			m.input.Placeholder = "Integers to insert, e.g. 10 20 30"
		} else {
			m.input.Placeholder = "Integers to delete, e.g. 20"
		}
		m.setStatus("")
		return m, m.input.Focus()
	case ChoicePrint:
		m.showingHelp = false
		m.refreshTree()
		m.setStatus(fmt.Sprintf("Tree printed: %s.", treeStats(m.tree)))
		return m, nil
	case ChoiceExit:
		return m, tea.Quit
	}
	return m, nil
}

// submit applies the typed integers to the tree. Nothing is applied unless
// every word parses.
func (m *Model) submit() {
	values, err := parseValues(m.input.Value())
	if err != nil {
		m.setError(err.Error())
		return
	}

	var changed, unchanged []string
	for _, v := range values {
		var ok bool
		if m.pending == ChoiceInsert {
			ok = m.tree.Insert(v)
		} else {
			ok = m.tree.Remove(v)
		}
		if ok {
			changed = append(changed, fmt.Sprint(v))
		} else {
			unchanged = append(unchanged, fmt.Sprint(v))
		}
	}

	verb, skipped := "Inserted", "already present"
	if m.pending == ChoiceDelete {
		verb, skipped = "Deleted", "not in the tree"
	}
	var parts []string
	if len(changed) > 0 {
		parts = append(parts, fmt.Sprintf("%s %s", verb, strings.Join(changed, ", ")))
	}
	if len(unchanged) > 0 {
		parts = append(parts, fmt.Sprintf("%s %s", strings.Join(unchanged, ", "), skipped))
	}

	m.closeInput()
	m.showingHelp = false
	m.refreshTree()
	m.setStatus(strings.Join(parts, "; ") + ".")
}

// parseValues splits the input into words and converts each to an integer
func parseValues(text string) ([]int, error) {
	words, err := splitCommand(text)
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("enter at least one integer")
	}
	return parseInts(words)
}

func (m *Model) closeInput() {
	m.pending = ChoiceInvalid
	m.input.Reset()
	m.input.Blur()
	m.input.Placeholder = "Select insert or delete first..."
}

func (m *Model) setStatus(text string) {
	m.status = text
	m.statusError = false
}

func (m *Model) setError(text string) {
	m.status = text
	m.statusError = true
}

// refreshTree puts the current rendering into the tree viewport
func (m *Model) refreshTree() {
	content := strings.Join(GetOrRender(m.renderCache, m.tree), "\n")
	if m.config.Render.ShowStats {
		content += "\n\n" + treeStats(m.tree)
	}
	m.treeView.SetContent(content)
	m.treeView.GotoTop()
}

// showHelp puts the usage guide into the tree viewport
func (m *Model) showHelp() {
	guide := usageMarkdown()
	if m.glamourRenderer != nil {
		if rendered, err := m.glamourRenderer.Render(guide); err == nil {
			guide = rendered
		}
	}
	m.treeView.SetContent(guide)
	m.treeView.GotoTop()
}

// updateLayout updates component sizes based on terminal dimensions
func (m *Model) updateLayout() {
	inputHeight := 3
	viewHeight := m.height - inputHeight - 7
	leftWidth := (m.width * 4 / 10) - 1
	rightWidth := m.width - leftWidth - 3

	m.input.Width = leftWidth - 6
	m.actions.SetSize(leftWidth-2, viewHeight-2)
	m.treeView.Width = rightWidth - 2
	m.treeView.Height = inputHeight + viewHeight
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	if m.width < 30 || m.height < 12 {
		return "Terminal too small. Please resize your terminal."
	}

	inputHeight := 3
	viewHeight := m.height - inputHeight - 7
	leftWidth := (m.width * 4 / 10) - 1
	rightWidth := m.width - leftWidth - 3

	inputActive := m.pending != ChoiceInvalid

	listStyle, listTitle := m.styles.BorderBlurred, " 🌳 Actions "
	if !inputActive {
		listStyle, listTitle = m.styles.BorderFocused, " 🌳 Actions (Active) "
	}
	actionsBox := listStyle.
		Width(leftWidth).
		Height(viewHeight).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(leftWidth-4).Render(listTitle),
			m.actions.View(),
		))

	inputStyle, inputTitle := m.styles.BorderBlurred, " 🔢 Numbers "
	if inputActive {
		inputTitle = " 🔢 Numbers to insert (Active) "
		if m.pending == ChoiceDelete {
			inputTitle = " 🔢 Numbers to delete (Active) "
		}
		inputStyle = m.styles.BorderFocused
	}
	inputBox := inputStyle.
		Width(leftWidth).
		Height(inputHeight).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.InputPrompt.Render(inputTitle),
			m.input.View(),
		))

	viewTitle := " 🌲 Tree "
	if m.showingHelp {
		viewTitle = " 📖 Usage Guide "
	}
	treeBox := m.styles.BorderBlurred.
		Width(rightWidth).
		Height(inputHeight + viewHeight + 2).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(rightWidth-4).Render(viewTitle),
			m.treeView.View(),
		))

	leftColumn := lipgloss.JoinVertical(
		lipgloss.Left,
		actionsBox,
		inputBox,
	)

	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		leftColumn,
		treeBox,
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		main,
		m.renderStatus(),
		m.renderHelp(),
	)
}

func (m Model) renderStatus() string {
	style := m.styles.SuccessMessage
	if m.statusError {
		style = m.styles.ErrorMessage
	}
	return lipgloss.NewStyle().
		Padding(0, 0, 0, 2).
		Render(style.Render(m.status))
}

// renderHelp renders the key-help footer
func (m Model) renderHelp() string {
	var keys []string
	var descs []string

	if m.pending != ChoiceInvalid {
		keys = append(keys, "enter", "esc")
		descs = append(descs, "apply", "cancel")
	} else {
		keys = append(keys, "1-4", "enter", "ctrl+y", "f1", "esc")
		descs = append(descs, "pick action", "run selected", "copy tree", "usage guide", "quit")
	}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	return lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

func copyToClipboard(text string) error {
	return clipboard.WriteAll(text)
}

func runBubbleTeaApp(tree *avl.Tree[int], rc *cache.Cache, config *Config) error {
	model := InitialModel(tree, rc, config)

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	return err
}
