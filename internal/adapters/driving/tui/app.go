// Package tui provides the interactive terminal interface for managing
// the translation queue.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/polyglot-labs/polyglot-cli/internal/core/domain"
	"github.com/polyglot-labs/polyglot-cli/internal/core/ports/driving"
)

// Ports holds the services the TUI drives.
type Ports struct {
	Intake     driving.IntakeService
	Submission driving.SubmissionCoordinator
	Download   driving.DownloadService
}

// Messages produced by background commands.
type (
	itemsMsg    []domain.FileItem
	submitMsg   struct{ err error }
	downloadMsg struct {
		name string
		err  error
	}
	resetMsg struct {
		count int
		err   error
	}
	removeMsg struct{ err error }
)

// App is the bubbletea model for the translation queue.
type App struct {
	ports   Ports
	ctx     context.Context
	styles  Styles
	spinner spinner.Model

	items   []domain.FileItem
	cursor  int
	busy    bool
	message string
	err     error
}

// NewApp creates the TUI application.
func NewApp(ports Ports) (*App, error) {
	if ports.Intake == nil || ports.Submission == nil || ports.Download == nil {
		return nil, fmt.Errorf("tui requires intake, submission and download services")
	}

	styles := NewStyles(DefaultTheme())
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Selected

	return &App{
		ports:   ports,
		ctx:     context.Background(),
		styles:  styles,
		spinner: sp,
	}, nil
}

// WithContext sets the context used for service calls.
func (a *App) WithContext(ctx context.Context) {
	if ctx != nil {
		a.ctx = ctx
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.loadItems(), a.spinner.Tick)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case itemsMsg:
		a.items = msg
		if a.cursor >= len(a.items) {
			a.cursor = max(0, len(a.items)-1)
		}
		return a, nil

	case submitMsg:
		a.busy = false
		a.err = msg.err
		if msg.err == nil {
			a.message = "batch submitted"
		}
		return a, a.loadItems()

	case downloadMsg:
		a.busy = false
		a.err = msg.err
		if msg.err == nil {
			a.message = "saved " + msg.name
		}
		return a, a.loadItems()

	case resetMsg:
		a.err = msg.err
		if msg.err == nil {
			a.message = fmt.Sprintf("%d file(s) reset to pending", msg.count)
		}
		return a, a.loadItems()

	case removeMsg:
		a.err = msg.err
		return a, a.loadItems()
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit

	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}

	case "down", "j":
		if a.cursor < len(a.items)-1 {
			a.cursor++
		}

	case "s":
		if a.busy {
			return a, nil
		}
		a.busy = true
		a.message = "submitting..."
		a.err = nil
		return a, a.submit()

	case "d":
		if a.busy {
			return a, nil
		}
		a.busy = true
		a.message = "downloading archive..."
		a.err = nil
		return a, a.downloadAll()

	case "o":
		if a.busy || len(a.items) == 0 {
			return a, nil
		}
		a.busy = true
		a.message = "downloading..."
		a.err = nil
		return a, a.downloadOne(a.items[a.cursor].ID)

	case "r":
		a.err = nil
		return a, a.resetErrors()

	case "x":
		if len(a.items) == 0 {
			return a, nil
		}
		a.err = nil
		return a, a.remove(a.items[a.cursor].ID)
	}

	return a, nil
}

// View implements tea.Model.
func (a *App) View() string {
	s := a.styles.Title.Render("Polyglot Translation Queue") + "\n"

	if len(a.items) == 0 {
		s += a.styles.Muted.Render("Queue is empty.") + "\n"
	}
	for i, item := range a.items {
		cursor := "  "
		rowStyle := a.styles.Normal
		if i == a.cursor {
			cursor = "> "
			rowStyle = a.styles.Selected
		}
		row := fmt.Sprintf("%-40s %10s  %s",
			item.DisplayPath(),
			domain.FormatSize(item.SizeBytes),
			a.styles.Status(item.Status).Render(string(item.Status)))
		if item.ErrorDetail != "" {
			row += a.styles.Error.Render(" " + item.ErrorDetail)
		}
		s += cursor + rowStyle.Render(row) + "\n"
	}

	s += "\n"
	if a.busy {
		s += a.spinner.View() + " "
	}
	if a.err != nil {
		s += a.styles.Error.Render(a.err.Error())
	} else if a.message != "" {
		s += a.styles.Muted.Render(a.message)
	}
	s += "\n"

	s += a.styles.Footer.Render(a.footer()) + "\n"
	return s
}

func (a *App) footer() string {
	counts := driving.BatchCounts{}
	for _, item := range a.items {
		switch item.Status {
		case domain.StatusPending:
			counts.Pending++
		case domain.StatusTranslating:
			counts.Translating++
		case domain.StatusTranslated:
			counts.Translated++
		case domain.StatusError:
			counts.Errored++
		}
	}
	return fmt.Sprintf(
		"%d pending, %d translating, %d translated, %d failed · s submit · d download all · o download · r retry errors · x remove · q quit",
		counts.Pending, counts.Translating, counts.Translated, counts.Errored)
}

// Background commands.

func (a *App) loadItems() tea.Cmd {
	return func() tea.Msg {
		items, err := a.ports.Intake.List(a.ctx)
		if err != nil {
			return itemsMsg(nil)
		}
		return itemsMsg(items)
	}
}

func (a *App) submit() tea.Cmd {
	return func() tea.Msg {
		return submitMsg{err: a.ports.Submission.Submit(a.ctx)}
	}
}

func (a *App) downloadAll() tea.Cmd {
	return func() tea.Msg {
		name, err := a.ports.Download.DownloadAll(a.ctx)
		return downloadMsg{name: name, err: err}
	}
}

func (a *App) downloadOne(id string) tea.Cmd {
	return func() tea.Msg {
		name, err := a.ports.Download.DownloadOne(a.ctx, id)
		return downloadMsg{name: name, err: err}
	}
}

func (a *App) resetErrors() tea.Cmd {
	return func() tea.Msg {
		count, err := a.ports.Submission.ResetErrors(a.ctx)
		return resetMsg{count: count, err: err}
	}
}

func (a *App) remove(id string) tea.Cmd {
	return func() tea.Msg {
		return removeMsg{err: a.ports.Intake.Remove(a.ctx, id)}
	}
}
