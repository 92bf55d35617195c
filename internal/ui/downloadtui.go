package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	dlTitleStyle    = lipgloss.NewStyle().Bold(true)
	dlSubtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	dlStatusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dlFrameStyle    = lipgloss.NewStyle().Padding(1, 2)
)

type dlProgressMsg struct{ written, total int64 }

type dlDoneMsg struct{ err error }

// downloadModel is the little "Downloading Update..." window, as a
// terminal view. It cannot be dismissed; it quits when the download
// finishes either way.
type downloadModel struct {
	title    string
	subtitle string
	bar      progress.Model
	written  int64
	total    int64
	err      error
}

func newDownloadModel(title, subtitle string) downloadModel {
	return downloadModel{
		title:    title,
		subtitle: subtitle,
		bar:      progress.New(progress.WithDefaultGradient()),
	}
}

func (m downloadModel) Init() tea.Cmd { return nil }

func (m downloadModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dlProgressMsg:
		m.written, m.total = msg.written, msg.total
		if m.total > 0 {
			return m, m.bar.SetPercent(float64(m.written) / float64(m.total))
		}
		return m, nil
	case dlDoneMsg:
		m.err = msg.err
		return m, tea.Quit
	case progress.FrameMsg:
		pm, cmd := m.bar.Update(msg)
		m.bar = pm.(progress.Model)
		return m, cmd
	case tea.WindowSizeMsg:
		w := msg.Width - 12
		if w > 60 {
			w = 60
		}
		if w > 0 {
			m.bar.Width = w
		}
		return m, nil
	}
	// Key presses are deliberately ignored: the download cannot be
	// cancelled once started.
	return m, nil
}

func (m downloadModel) View() string {
	var b strings.Builder
	b.WriteString(dlTitleStyle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(dlSubtitleStyle.Render(m.subtitle))
	b.WriteString("\n\n")
	b.WriteString(m.bar.View())
	b.WriteString("\n")
	if m.total > 0 {
		b.WriteString(dlStatusStyle.Render(fmt.Sprintf("%s / %s", FormatMB(m.written), FormatMB(m.total))))
	} else if m.written > 0 {
		b.WriteString(dlStatusStyle.Render("Downloaded: " + FormatMB(m.written)))
	} else {
		b.WriteString(dlStatusStyle.Render("Connecting..."))
	}
	return dlFrameStyle.Render(b.String())
}

// ShowDownload runs the download with the best progress display the
// terminal allows: the TUI view on a TTY, the plain ProgressBar
// otherwise. Display setup failure is non-fatal, the download still
// runs silently, and the returned error is always the
// download's own.
func ShowDownload(title, subtitle string, run func(report func(written, total int64)) error) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		var bar *ProgressBar
		err := run(func(written, total int64) {
			if bar == nil {
				bar = NewProgressBar(os.Stdout, total)
			}
			bar.Update(written)
		})
		if bar != nil {
			bar.Finish()
		}
		return err
	}

	p := tea.NewProgram(newDownloadModel(title, subtitle))

	errCh := make(chan error, 1)
	go func() {
		err := run(func(written, total int64) {
			p.Send(dlProgressMsg{written, total})
		})
		errCh <- err
		p.Send(dlDoneMsg{err: err})
	}()

	// A failed TUI is not a failed download; keep waiting for the
	// real result.
	_, _ = p.Run()
	ResetTerminalAfterTUI()
	return <-errCh
}
