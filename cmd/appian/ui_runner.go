package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"appian/internal/driver"
	"appian/internal/source"
	"appian/internal/ui"
)

type parseDirOutcome struct {
	fs      *source.FileSet
	results []driver.ParseDirResult
	err     error
}

// runParseDirWithUI запускает ParseDir и показывает прогресс по файлам, пока он идёт.
func runParseDirWithUI(ctx context.Context, title, dir string, opts driver.Options, jobs int) (*source.FileSet, []driver.ParseDirResult, error) {
	files, err := driver.ListSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	events := make(chan driver.ProgressEvent, 256)
	outcomeCh := make(chan parseDirOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events}
		fs, results, err := driver.ParseDir(ctx, dir, optsCopy, jobs)
		outcomeCh <- parseDirOutcome{fs: fs, results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr), tea.WithInput(nil))
	_, uiErr := program.Run()
	// UI мог выйти раньше: дочитываем события, чтобы воркеры не встали
	for range events {
	}
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fs, outcome.results, uiErr
	}
	return outcome.fs, outcome.results, outcome.err
}
