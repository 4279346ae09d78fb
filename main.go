// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// main.go - Entry point for the Sentinel client.
//
// Routes CLI commands to their handlers, or launches the full-screen
// console when no command is given. The console walks Login -> Welcome ->
// Workspace; the workspace holds the chat tab and, for admins, the audit
// log tab.

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/sentinel-tui/internal/auditlog"
	"github.com/jeranaias/sentinel-tui/internal/cli"
	"github.com/jeranaias/sentinel-tui/internal/config"
	"github.com/jeranaias/sentinel-tui/internal/gateway"
	"github.com/jeranaias/sentinel-tui/internal/identity"
	"github.com/jeranaias/sentinel-tui/internal/session"
	"github.com/jeranaias/sentinel-tui/internal/ui/chat"
	"github.com/jeranaias/sentinel-tui/internal/ui/components"
	"github.com/jeranaias/sentinel-tui/internal/ui/login"
	"github.com/jeranaias/sentinel-tui/internal/ui/logs"
	"github.com/jeranaias/sentinel-tui/internal/ui/styles"
)

// =============================================================================
// VERSION INFO
// =============================================================================

// Build metadata, overridden via -ldflags at release time.
var (
	Version   = "0.3.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

// =============================================================================
// ENTRY POINT
// =============================================================================

func main() {
	args := cli.Parse()

	var err error
	switch args.Command {
	case cli.CmdAsk:
		err = cli.HandleAsk(args)
	case cli.CmdChat:
		err = cli.HandleChat(args)
	case cli.CmdLogs:
		err = cli.HandleLogs(args)
	case cli.CmdLogin:
		err = cli.HandleLogin(args)
	case cli.CmdLogout:
		err = cli.HandleLogout(args)
	case cli.CmdWhoami:
		err = cli.HandleWhoami(args)
	case cli.CmdStatus:
		err = cli.HandleStatus(args)
	case cli.CmdConfig:
		err = cli.HandleConfig(args)
	case cli.CmdVersion:
		err = cli.HandleVersion(args)
	case cli.CmdHelp:
		cli.PrintUsage()
	case cli.CmdUnknown:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", args.Unknown)
		cli.PrintUsage()
		os.Exit(cli.ExitUsageError)
	default:
		err = runTUI(args)
	}

	if err != nil {
		cli.DisplayError(err, args.JSON)
		os.Exit(cli.GetExitCode(err))
	}
}

// =============================================================================
// TUI LAUNCH
// =============================================================================

// runTUI wires the application together and runs the Bubble Tea program.
func runTUI(args cli.Args) error {
	cfg := config.Global()

	clientCfg := &gateway.ClientConfig{
		BaseURL:      cfg.Gateway.APIBaseURL,
		Timeout:      time.Duration(cfg.Gateway.TimeoutSecs) * time.Second,
		DefaultModel: cfg.Gateway.DefaultModel,
	}
	if args.Gateway != "" {
		clientCfg.BaseURL = args.Gateway
	}
	if args.Model != "" {
		clientCfg.DefaultModel = args.Model
	}
	client := gateway.NewClientWithConfig(clientCfg)

	store := identity.NewStore(identity.DefaultPath())

	controller := session.NewController(client)
	controller.SetGate(store)

	engine := auditlog.NewEngine(client)

	model := newRootModel(cfg, client, store, controller, engine)

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("console error: %w", err)
	}
	return nil
}

// =============================================================================
// ROOT MODEL
// =============================================================================

// State represents the top-level screen.
type State int

const (
	StateLogin State = iota
	StateWelcome
	StateWorkspace
)

// Tab identifies a workspace tab.
type Tab int

const (
	TabChat Tab = iota
	TabLogs
)

// healthTickMsg drives the periodic gateway health check.
type healthTickMsg struct{}

// healthCheckInterval is how often the status bar probes the gateway.
const healthCheckInterval = 30 * time.Second

// Model is the root Bubble Tea model.
type Model struct {
	state State
	tab   Tab

	width  int
	height int

	theme  *styles.Theme
	client *gateway.Client
	store  *identity.Store

	login     login.Model
	welcome   *components.Welcome
	chat      chat.Model
	logs      logs.Model
	statusbar *components.StatusBar

	// logsStarted defers the first audit fetch until the tab is opened.
	logsStarted bool
}

func newRootModel(
	cfg *config.Config,
	client *gateway.Client,
	store *identity.Store,
	controller *session.Controller,
	engine *auditlog.Engine,
) Model {
	theme := styles.NewTheme()

	chatModel := chat.New(theme, controller, client)
	chatModel.SetMarkdown(cfg.UI.MarkdownRendering)
	chatModel.SetShowScores(cfg.UI.ShowSecurityScores)

	welcome := components.NewWelcome(theme)
	welcome.SetVersion(Version)
	welcome.SetGateway(client.GetConfig().BaseURL, client.GetConfig().DefaultModel)

	statusbar := components.NewStatusBar(theme)
	statusbar.SetGateway(client.GetConfig().BaseURL, client.GetConfig().DefaultModel)

	m := Model{
		state:     StateLogin,
		theme:     theme,
		client:    client,
		store:     store,
		login:     login.New(theme, store),
		welcome:   welcome,
		chat:      chatModel,
		logs:      logs.New(theme, engine),
		statusbar: statusbar,
	}

	// A persisted session skips the login form.
	if user := store.Current(); user != nil {
		m.applyUser(user)
		m.state = StateWelcome
	}

	return m
}

// applyUser pushes the signed-in user into the widgets that show it.
func (m *Model) applyUser(user *identity.User) {
	m.statusbar.SetUser(user.Name, string(user.Role))
	m.welcome.SetUser(user.Name)
}

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.login.Init(),
		m.checkGatewayCmd(),
		healthTick(),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		// Fall through to the active screen so inner viewports resize too.

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+l":
			if m.state != StateLogin {
				return m.logout()
			}
		}

	case login.SuccessMsg:
		m.applyUser(msg.User)
		m.state = StateWelcome
		return m, nil

	case chat.GatewayStatusMsg:
		m.statusbar.SetConnected(msg.Running)
		return m, nil

	// Exchange results always reach the chat model, even when another
	// screen is in front, so the controller settles and busy clears.
	case chat.VerdictMsg, chat.VerdictErrMsg, chat.ClearTranscriptMsg:
		var cmd tea.Cmd
		m.chat, cmd = m.chat.Update(msg)
		m.syncStatus()
		return m, cmd

	case healthTickMsg:
		return m, tea.Batch(m.checkGatewayCmd(), healthTick())
	}

	switch m.state {
	case StateLogin:
		return m.updateLogin(msg)
	case StateWelcome:
		return m.updateWelcome(msg)
	default:
		return m.updateWorkspace(msg)
	}
}

// resize distributes the window size to every screen.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	m.login.SetSize(width, height)
	m.welcome.SetSize(width, height)
	m.statusbar.SetWidth(width)

	// Tab bar and status bar frame the workspace content.
	content := height - workspaceChromeHeight
	if content < 4 {
		content = 4
	}
	m.chat.SetSize(width, content)
	m.logs.SetSize(width, content)
}

// workspaceChromeHeight is the tab bar plus the bordered status bar.
const workspaceChromeHeight = 3

// =============================================================================
// SCREEN UPDATES
// =============================================================================

func (m Model) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.login, cmd = m.login.Update(msg)
	return m, cmd
}

func (m Model) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		m.state = StateWorkspace
		m.tab = TabChat
		return m, m.chat.Init()
	}

	var cmd tea.Cmd
	m.welcome, cmd = m.welcome.Update(msg)
	return m, cmd
}

func (m Model) updateWorkspace(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "f2":
			if m.store.Current().IsAdmin() {
				return m.switchTab()
			}
		}

		// Keys go only to the active tab.
		if m.tab == TabChat {
			var cmd tea.Cmd
			m.chat, cmd = m.chat.Update(msg)
			m.syncStatus()
			return m, cmd
		}
		var cmd tea.Cmd
		m.logs, cmd = m.logs.Update(msg)
		return m, cmd
	}

	// Everything else fans out so background results land regardless of
	// which tab is in front.
	var cmd tea.Cmd
	m.chat, cmd = m.chat.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	m.logs, cmd = m.logs.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	m.syncStatus()

	return m, tea.Batch(cmds...)
}

// syncStatus mirrors the chat state into the status bar. Offline wins;
// the health tick restores it once the gateway answers again.
func (m *Model) syncStatus() {
	if !m.statusbar.Connected {
		return
	}
	if m.chat.Busy() {
		m.statusbar.SetStatus(components.StatusSubmitting)
	} else {
		m.statusbar.SetStatus(components.StatusReady)
	}
}

// switchTab toggles between the chat and audit log tabs. Only admins
// have a second tab at all.
func (m Model) switchTab() (tea.Model, tea.Cmd) {
	if m.tab == TabChat {
		m.tab = TabLogs
		if !m.logsStarted {
			m.logsStarted = true
			return m, m.logs.Init()
		}
		return m, nil
	}

	m.tab = TabChat
	return m, nil
}

// logout clears the session and returns to the login form.
func (m Model) logout() (tea.Model, tea.Cmd) {
	m.store.Logout()

	m.state = StateLogin
	m.tab = TabChat
	m.logsStarted = false
	m.login = login.New(m.theme, m.store)
	m.login.SetSize(m.width, m.height)
	m.statusbar.SetUser("", "")

	return m, tea.Batch(m.login.Init(), func() tea.Msg { return chat.ClearTranscriptMsg{} })
}

// =============================================================================
// HEALTH CHECK
// =============================================================================

// checkGatewayCmd probes the orchestrator health endpoint.
func (m Model) checkGatewayCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return chat.GatewayStatusMsg{Running: client.CheckRunning(ctx) == nil}
	}
}

func healthTick() tea.Cmd {
	return tea.Tick(healthCheckInterval, func(time.Time) tea.Msg {
		return healthTickMsg{}
	})
}

// =============================================================================
// RENDERING
// =============================================================================

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	switch m.state {
	case StateLogin:
		return m.login.View()
	case StateWelcome:
		return m.welcome.View()
	}

	var content string
	if m.tab == TabChat {
		content = m.chat.View()
	} else {
		content = m.logs.View()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTabBar(),
		content,
		m.statusbar.View(),
	)
}

// renderTabBar renders the workspace tab headers. Employees only see the
// chat tab.
func (m Model) renderTabBar() string {
	render := func(label string, active bool) string {
		if active {
			return m.theme.TabActive.Render(label)
		}
		return m.theme.TabInactive.Render(label)
	}

	tabs := render(" Chat ", m.tab == TabChat)
	if m.store.Current().IsAdmin() {
		tabs = lipgloss.JoinHorizontal(lipgloss.Top,
			tabs,
			render(" Audit Log ", m.tab == TabLogs),
		)
	}

	return m.theme.Header.Width(m.width).Render(tabs)
}
