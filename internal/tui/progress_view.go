package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-backup-keeper/internal/service"
	"github.com/MKhiriev/go-backup-keeper/models"
)

// progressBuffer lets an operation run ahead of the UI by a few events.
const progressBuffer = 32

type progressView struct {
	bar     progress.Model
	spinner spinner.Model
	event   models.ProgressEvent
}

func newProgressView() progressView {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return progressView{
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		spinner: s,
	}
}

func (p *progressView) reset() {
	p.event = models.ProgressEvent{}
}

func (p progressView) View() string {
	label := "starting"
	if p.event.Stage != "" {
		label = string(p.event.Stage)
	}
	out := fmt.Sprintf("%s %s\n%s", p.spinner.View(), label, p.bar.ViewAs(float64(p.event.Percent)/100))
	if p.event.Message != "" {
		out += "\n" + helpStyle.Render(p.event.Message)
	}
	return out
}

// startOperation runs op off the UI goroutine. Its progress events and its
// final message are delivered to Update.
func startOperation(ctx context.Context, op func(onProgress service.ProgressFunc) tea.Msg) tea.Cmd {
	ch := make(chan models.ProgressEvent, progressBuffer)

	run := func() tea.Msg {
		defer close(ch)
		return op(func(event models.ProgressEvent) {
			select {
			case ch <- event:
			case <-ctx.Done():
			}
		})
	}

	return tea.Batch(run, waitForProgress(ch))
}

// waitForProgress yields the next event, or nothing once ch is closed.
func waitForProgress(ch <-chan models.ProgressEvent) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-ch
		if !ok {
			return nil
		}
		return progressMsg{event: event, ch: ch}
	}
}
