package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Hessevalentino/WSS/pkg/wifi"
)

type menuAction string

const (
	actionScan       menuAction = "Scan networks"
	actionContinuous menuAction = "Continuous scanning"
	actionAuto       menuAction = "Auto-connect"
	actionDiscover   menuAction = "Device discovery"
	actionStats      menuAction = "Statistics"
	actionExport     menuAction = "Export data"
	actionSettings   menuAction = "Settings"
	actionLogs       menuAction = "Show logs"
	actionQuit       menuAction = "Exit"
)

type menuItem struct {
	title       string
	description string
}

func (i menuItem) Title() string       { return i.title }
func (i menuItem) Description() string { return i.description }
func (i menuItem) FilterValue() string { return i.title }

type menuModel struct {
	list   list.Model
	chosen string
}

func (m menuModel) Init() tea.Cmd {
	return nil
}

func (m menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.chosen = string(actionQuit)
			return m, tea.Quit
		case "enter":
			if i, ok := m.list.SelectedItem().(menuItem); ok {
				m.chosen = i.title
			}
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		h, v := lipgloss.NewStyle().Margin(1, 2).GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m menuModel) View() string {
	help := helpStyle.Render("enter: select • q/esc: quit")
	return lipgloss.NewStyle().Margin(1, 2).Render(m.list.View() + "\n" + help)
}

// runMenu shows the main menu and returns the selected action.
func runMenu() menuAction {
	items := []list.Item{
		menuItem{title: string(actionScan), description: "Run one scan cycle and show the results"},
		menuItem{title: string(actionContinuous), description: "Scan repeatedly and watch for open networks"},
		menuItem{title: string(actionAuto), description: "Try every open network and report which ones work"},
		menuItem{title: string(actionDiscover), description: "Enumerate devices on the local network"},
		menuItem{title: string(actionStats), description: "Session counters and success rate"},
		menuItem{title: string(actionExport), description: "Save session data as JSON or CSV"},
		menuItem{title: string(actionSettings), description: "Show current configuration"},
		menuItem{title: string(actionLogs), description: "List exported log files"},
		menuItem{title: string(actionQuit), description: "Leave the application"},
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = selectedItemStyle
	delegate.Styles.SelectedDesc = selectedItemStyle.Foreground(subtleColor)

	l := list.New(items, delegate, 0, 0)
	l.Title = "WiFi Scanner Suite"
	l.Styles.Title = titleStyle
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)

	p := tea.NewProgram(menuModel{list: l}, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return actionQuit
	}

	if m, ok := finalModel.(menuModel); ok && m.chosen != "" {
		return menuAction(m.chosen)
	}
	return actionQuit
}

// scanModel shows a spinner while one scan cycle runs in the background.
type scanModel struct {
	spinner  spinner.Model
	scanning bool
	networks []wifi.Network
	scan     func() []wifi.Network
}

type scanDoneMsg []wifi.Network

func newScanModel(scan func() []wifi.Network) scanModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(primaryColor)

	return scanModel{spinner: s, scanning: true, scan: scan}
}

func (m scanModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		return scanDoneMsg(m.scan())
	})
}

func (m scanModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" || msg.String() == "esc" {
			return m, tea.Quit
		}
	case scanDoneMsg:
		m.scanning = false
		m.networks = msg
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m scanModel) View() string {
	if !m.scanning {
		return ""
	}
	return lipgloss.NewStyle().Margin(1, 2).Render(
		fmt.Sprintf("%s Scanning WiFi networks...", m.spinner.View()))
}

// runScanWithSpinner runs one scan cycle behind a spinner view. It falls
// back to a plain scan when the terminal cannot host the program.
func runScanWithSpinner(scan func() []wifi.Network) []wifi.Network {
	p := tea.NewProgram(newScanModel(scan))
	finalModel, err := p.Run()
	if err != nil {
		return scan()
	}
	if m, ok := finalModel.(scanModel); ok {
		return m.networks
	}
	return nil
}
