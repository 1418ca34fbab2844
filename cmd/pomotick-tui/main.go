package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"pomotick/internal/core/timer"
	"pomotick/internal/quotes"
	"pomotick/internal/storage"
	"pomotick/internal/ui/termui"
)

const configName = "pomotick"

func main() {
	logger := zap.Must(zap.NewDevelopment())
	defer func() { _ = logger.Sync() }()

	settings, err := storage.LoadSettings(configName)
	if err != nil {
		logger.Warn("loading settings failed, using defaults", zap.Error(err))
	}

	// The worker strategy keeps time in its own goroutine, so the
	// countdown survives a stopped or backgrounded terminal.
	core := timer.New(settings.TimerConfig(), timer.Options{
		Logger:    logger,
		UseWorker: true,
	})
	defer core.Close()

	program := tea.NewProgram(termui.NewModel(core, quotes.NewRotation()))
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "pomotick-tui: %v\n", err)
		os.Exit(1)
	}
}
