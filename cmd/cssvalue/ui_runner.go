package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"cssvalue/internal/driver"
	"cssvalue/internal/pipeline"
	"cssvalue/internal/ui"
)

type checkOutcome struct {
	result *driver.CheckResult
	err    error
}

func runCheckWithUI(e *env, title string, display, files []string, baseDir string, opts driver.Options) (*driver.CheckResult, error) {
	events := make(chan pipeline.Event, 256)
	outcomeCh := make(chan checkOutcome, 1)

	go func() {
		o := opts
		o.Progress = pipeline.ChannelSink{Ch: events}
		res, err := driver.ParseFiles(e.ctx, files, baseDir, o)
		outcomeCh <- checkOutcome{result: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, display, events)
	program := tea.NewProgram(model, tea.WithOutput(e.out))
	_, uiErr := program.Run()
	if uiErr != nil {
		// UI упал: дочитываем события, чтобы воркеры не заблокировались
		go func() {
			for range events {
			}
		}()
	}
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}
