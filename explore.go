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
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cybrota/arbor/trees"
	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
)

// ExploreMode represents the explorer's right hand pane
type ExploreMode int

const (
	ModeTree ExploreMode = iota
	ModeExplain
)

const (
	focusInput = iota
	focusIterations
	focusTree
)

// Model represents the Bubble Tea application state
type Model struct {
	mode  ExploreMode
	ready bool

	commandInput   textinput.Model
	iterationsList list.Model
	treeViewport   viewport.Model

	// Data
	session     *Session
	config      *Config
	renderCache *cache.Cache
	renderer    *treeRenderer
	log         *logrus.Logger

	// State
	focusIndex int
	order      trees.Order
	status     string
	statusErr  bool
	lastPath   []int

	styles *Styles

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
	Muted          lipgloss.Style
}

// NewStyles creates the styles from the active color scheme
func NewStyles() *Styles {
	scheme := GetColorScheme()
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(scheme.BorderFocus).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(scheme.Border),
		Title: lipgloss.NewStyle().
			Foreground(scheme.Title).
			Bold(true),
		InputPrompt: lipgloss.NewStyle().
			Foreground(scheme.Highlight),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(scheme.Success).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(scheme.Error).
			Bold(true),
		Muted: lipgloss.NewStyle().
			Foreground(scheme.TextMuted),
	}
}

// iterationItem represents a saved iteration in the list
type iterationItem struct {
	index int
	it    Iteration
	stamp string
}

func (i iterationItem) FilterValue() string { return i.Title() }
func (i iterationItem) Title() string {
	title := fmt.Sprintf("#%d %s", i.index+1, i.it.Tree.Kind().Title())
	if i.stamp != "" {
		title += " @ " + i.stamp
	}
	return title
}
func (i iterationItem) Description() string {
	return fmt.Sprintf("%d node(s): %s", i.it.Tree.Len(), joinInts(i.it.Tree.Inorder(), " "))
}

// InitialModel creates the initial model
func InitialModel(session *Session, config *Config, rc *cache.Cache, log *logrus.Logger) Model {
	ci := textinput.New()
	ci.Placeholder = "insert 5 3 8 ; delete 3 ; search 4"
	ci.Prompt = "> "
	ci.Focus()
	ci.CharLimit = 256
	ci.Width = 50

	iterationsList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	iterationsList.SetShowTitle(false)
	iterationsList.SetShowHelp(false)
	iterationsList.SetFilteringEnabled(false)

	treeViewport := viewport.New(0, 0)

	if log == nil {
		log = newLogger("error", nil)
	}
	session.AutoSave = config.Explore.AutoSave

	model := Model{
		mode:           ModeTree,
		commandInput:   ci,
		iterationsList: iterationsList,
		treeViewport:   treeViewport,
		session:        session,
		config:         config,
		renderCache:    rc,
		renderer:       newTreeRenderer(config.Render.Colors),
		log:            log,
		focusIndex:     focusInput,
		order:          config.Order(),
		styles:         NewStyles(),
		status:         "tip: " + GetRandomTip(),
	}
	model.refreshTree()
	return model
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "f2":
			if m.mode == ModeTree {
				m.mode = ModeExplain
			} else {
				m.mode = ModeTree
			}
			m.refreshTree()
			return m, nil
		case "f3":
			m.cycleKind()
			return m, nil
		case "f4":
			m.cycleOrder()
			return m, nil
		case "tab":
			m.focusIndex = (m.focusIndex + 1) % 3
			if m.focusIndex == focusInput {
				m.commandInput.Focus()
			} else {
				m.commandInput.Blur()
			}
			return m, nil
		case "ctrl+s":
			m.session.Save()
			m.refreshIterations()
			m.setStatus(fmt.Sprintf("saved iteration #%d", m.session.Index()+1), false)
			return m, nil
		case "ctrl+d":
			m.deleteSelectedIteration()
			return m, nil
		case "ctrl+x":
			m.session.ClearIterations()
			m.refreshIterations()
			m.setStatus("cleared all iterations", false)
			return m, nil
		case "ctrl+a":
			m.session.AutoSave = !m.session.AutoSave
			m.setStatus(fmt.Sprintf("auto-save %s", onOff(m.session.AutoSave)), false)
			return m, nil
		case "ctrl+y":
			m.copyTraversal()
			return m, nil
		case "enter":
			switch m.focusIndex {
			case focusInput:
				m.executeInput()
			case focusIterations:
				m.loadSelectedIteration()
			}
			return m, nil
		}
		return m.updateFocused(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
		m.refreshTree()
	}

	return m, nil
}

// updateFocused forwards remaining keys to the focused component
func (m Model) updateFocused(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focusIndex {
	case focusInput:
		m.commandInput, cmd = m.commandInput.Update(msg)
	case focusIterations:
		m.iterationsList, cmd = m.iterationsList.Update(msg)
	default:
		m.treeViewport, cmd = m.treeViewport.Update(msg)
	}
	return m, cmd
}

// executeInput parses the command line and applies every op in it
func (m *Model) executeInput() {
	line := strings.TrimSpace(m.commandInput.Value())
	if line == "" {
		return
	}
	ops, err := ParseOps(line)
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}

	var messages []string
	m.lastPath = nil
	for _, op := range ops {
		res, err := m.session.Apply(op)
		if err != nil {
			messages = append(messages, err.Error())
			m.setStatus(strings.Join(messages, " | "), true)
			m.refreshIterations()
			return
		}
		if op.Verb == VerbSearch {
			m.lastPath = res.Path
		}
		if res.Message != "" {
			messages = append(messages, res.Message)
		}
	}
	m.commandInput.SetValue("")
	m.refreshIterations()
	m.setStatus(strings.Join(messages, " | "), false)
}

func (m *Model) loadSelectedIteration() {
	idx := m.iterationsList.Index()
	if !m.session.Load(idx) {
		return
	}
	m.lastPath = nil
	m.setStatus(fmt.Sprintf("loaded iteration #%d", idx+1), false)
}

func (m *Model) deleteSelectedIteration() {
	idx := m.iterationsList.Index()
	if !m.session.DeleteIteration(idx) {
		m.setStatus("no iteration selected", true)
		return
	}
	m.refreshIterations()
	m.setStatus(fmt.Sprintf("deleted iteration #%d", idx+1), false)
}

func (m *Model) cycleKind() {
	next := trees.Kinds[0]
	for i, k := range trees.Kinds {
		if k == m.session.Kind() {
			next = trees.Kinds[(i+1)%len(trees.Kinds)]
		}
	}
	if err := m.session.SetKind(next); err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	m.lastPath = nil
	m.setStatus("switched to "+next.Title(), false)
}

func (m *Model) cycleOrder() {
	for i, o := range trees.Orders {
		if o == m.order {
			m.order = trees.Orders[(i+1)%len(trees.Orders)]
			break
		}
	}
	m.setStatus(fmt.Sprintf("traversal order %s", m.order), false)
}

func (m *Model) copyTraversal() {
	text := joinInts(trees.Traverse(m.session.Tree(), m.order), " ")
	if err := copyToClipboard(text); err != nil {
		m.setStatus("copy failed: "+err.Error(), true)
		return
	}
	m.setStatus(fmt.Sprintf("copied %s traversal to clipboard", m.order), false)
}

func (m *Model) setStatus(status string, isErr bool) {
	m.status = status
	m.statusErr = isErr
	if isErr {
		m.log.WithField("status", status).Debug("explorer error")
	}
	m.refreshTree()
}

// refreshIterations rebuilds the iterations list from the session
func (m *Model) refreshIterations() {
	saved := m.session.Iterations()
	now := time.Now()
	items := make([]list.Item, len(saved))
	for i, it := range saved {
		items[i] = iterationItem{index: i, it: it, stamp: iterationStamp(it.SavedAt, now)}
	}
	m.iterationsList.SetItems(items)
	if idx := m.session.Index(); idx >= 0 {
		m.iterationsList.Select(idx)
	}
}

// refreshTree redraws the right hand pane
func (m *Model) refreshTree() {
	if m.mode == ModeExplain {
		rendered, err := renderExplain(m.renderCache, m.session.Kind(), max(m.treeViewport.Width-2, 40))
		if err != nil {
			rendered = explainMarkdown(m.session.Kind())
		}
		m.treeViewport.SetContent(rendered)
		return
	}
	m.treeViewport.SetContent(m.treeContent())
}

func (m Model) treeContent() string {
	tree := m.session.Tree()
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s  nodes=%d height=%d  auto-save=%s\n",
		m.styles.Title.Render(tree.Kind().Title()), tree.Len(), tree.Height(), onOff(m.session.AutoSave))
	if m.status != "" {
		if m.statusErr {
			sb.WriteString(m.styles.ErrorMessage.Render(m.status))
		} else {
			sb.WriteString(m.styles.SuccessMessage.Render(m.status))
		}
		sb.WriteString("\n")
	}
	if err := tree.Check(); err != nil {
		sb.WriteString(m.styles.ErrorMessage.Render("invariant broken: " + err.Error()))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(m.renderer.Render(tree))
	sb.WriteString("\n")

	if m.lastPath != nil {
		fmt.Fprintf(&sb, "search path: %s\n", joinInts(m.lastPath, " -> "))
	}
	fmt.Fprintf(&sb, "%s: %s\n",
		m.styles.InputPrompt.Render(string(m.order)), joinInts(trees.Traverse(tree, m.order), " "))
	return sb.String()
}

// updateLayout updates component dimensions
func (m *Model) updateLayout() {
	inputHeight := 3
	listHeight := m.height - inputHeight - 6
	leftWidth := (m.width * 4 / 10) - 1
	rightWidth := m.width - leftWidth - 3

	m.commandInput.Width = leftWidth - 6
	m.iterationsList.SetSize(leftWidth-2, listHeight-2)
	m.treeViewport.Width = rightWidth - 2
	m.treeViewport.Height = inputHeight + listHeight
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 30 || m.height < 10 {
		return "Terminal too small. Please resize your terminal."
	}

	inputHeight := 3
	listHeight := m.height - inputHeight - 6
	leftWidth := (m.width * 4 / 10) - 1
	rightWidth := m.width - leftWidth - 3

	inputBox := m.boxStyle(focusInput).
		Width(leftWidth).
		Height(inputHeight).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(leftWidth-4).Render(m.title(focusInput, "Operations")),
			m.commandInput.View(),
		))

	listBox := m.boxStyle(focusIterations).
		Width(leftWidth).
		Height(listHeight).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(leftWidth-4).Render(m.title(focusIterations, "Iterations")),
			m.iterationsList.View(),
		))

	paneTitle := "Tree"
	if m.mode == ModeExplain {
		paneTitle = "Notes"
	}
	treeBox := m.boxStyle(focusTree).
		Width(rightWidth).
		Height(inputHeight + listHeight + 2).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(rightWidth-4).Render(m.title(focusTree, paneTitle)),
			m.treeViewport.View(),
		))

	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, inputBox, listBox),
		treeBox,
	)
	return lipgloss.JoinVertical(lipgloss.Left, main, m.renderHelp())
}

func (m Model) boxStyle(focus int) lipgloss.Style {
	if m.focusIndex == focus {
		return m.styles.BorderFocused
	}
	return m.styles.BorderBlurred
}

func (m Model) title(focus int, name string) string {
	if m.focusIndex == focus {
		return " " + name + " (Active) "
	}
	return " " + name + " "
}

// renderHelp renders the help footer
func (m Model) renderHelp() string {
	keys := []string{"enter", "tab", "ctrl+s", "ctrl+d", "ctrl+x", "ctrl+a", "ctrl+y", "f2", "f3", "f4", "esc"}
	descs := []string{"run / load", "switch focus", "save", "delete iteration", "clear iterations",
		"auto-save", "copy traversal", "notes", "tree kind", "traversal", "quit"}

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

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// copyToClipboard copies text to clipboard
func copyToClipboard(text string) error {
	return clipboard.WriteAll(text)
}

// runExplorer starts the Bubble Tea application
func runExplorer(session *Session, config *Config, rc *cache.Cache, log *logrus.Logger) error {
	InitializeColors()

	model := InitialModel(session, config, rc, log)

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := program.Run()
	return err
}
