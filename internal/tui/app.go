package tui

import (
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
)

// App wraps the Bubbletea program
type App struct {
	program *tea.Program
	model   Model
}

// New creates a new TUI application
func New(opts Options) *App {
	return &App{model: NewModel(opts)}
}

// Run starts the TUI application and blocks until it exits.
func (a *App) Run() error {
	a.program = tea.NewProgram(
		a.model,
		tea.WithAltScreen(),
	)

	// Quit cleanly on termination so the fetch and watch are canceled
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		if _, ok := <-sigChan; ok {
			a.program.Send(tea.Quit())
		}
	}()

	final, err := a.program.Run()

	signal.Stop(sigChan)
	close(sigChan)

	if m, ok := final.(Model); ok {
		m.teardown()
	} else {
		a.model.teardown()
	}
	return err
}
