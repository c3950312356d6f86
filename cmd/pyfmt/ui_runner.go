package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"pyfmt/internal/driver"
	"pyfmt/internal/ui"
)

type fmtOutcome struct {
	results []driver.FormatResult
	err     error
}

// runFmtWithUI formats paths behind a live progress display. The driver runs
// in a goroutine and streams events into the model; results come back once
// both the run and the display have finished.
func runFmtWithUI(ctx context.Context, title string, paths []string, opts driver.FormatOptions) ([]driver.FormatResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan fmtOutcome, 1)

	go func() {
		opts.Progress = driver.ChannelSink{Ch: events}
		res, err := driver.FormatPaths(ctx, paths, opts)
		outcomeCh <- fmtOutcome{results: res, err: err}
		close(events)
	}()

	// Список файлов соберёт драйвер, модель узнаёт их из событий
	model := ui.NewProgressModel(title, nil, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
