package ui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/7even/clj-sculptor/internal/driver"
)

// Progress drives a progress view for a formatting run. Events sent to
// Sink are rendered until Wait is called.
type Progress struct {
	ch      chan driver.Event
	program *tea.Program
	done    chan error
}

// StartProgress starts rendering to out in a background goroutine.
func StartProgress(title string, files []string, out io.Writer) *Progress {
	ch := make(chan driver.Event, 64)
	p := &Progress{
		ch:      ch,
		program: tea.NewProgram(NewProgressModel(title, files, ch), tea.WithOutput(out), tea.WithInput(nil)),
		done:    make(chan error, 1),
	}
	go func() {
		_, err := p.program.Run()
		p.done <- err
	}()
	return p
}

// Sink returns the driver.ProgressSink feeding this view.
func (p *Progress) Sink() driver.ProgressSink {
	return driver.ChannelSink{Ch: p.ch}
}

// Wait closes the event stream and blocks until the view has drawn its
// final frame.
func (p *Progress) Wait() error {
	close(p.ch)
	return <-p.done
}
