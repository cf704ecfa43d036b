package display

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

var (
	captionBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#52525b")).
			Foreground(lipgloss.Color("#d4d4d8")).
			Padding(0, 1)

	partialTitle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a")).
			Italic(true)

	finalTitle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0")).
			Bold(true)
)

// TerminalSink draws each update as a bordered block on a writer.
type TerminalSink struct {
	mu  sync.Mutex
	out io.Writer
}

// NewTerminalSink creates a sink writing to out.
func NewTerminalSink(out io.Writer) *TerminalSink {
	return &TerminalSink{out: out}
}

// Show renders u. Blank lines are kept so the block height stays fixed.
func (s *TerminalSink) Show(ctx context.Context, u Update) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	title := partialTitle.Render(fmt.Sprintf("%s · partial", u.SessionID))
	if u.Final {
		title = finalTitle.Render(fmt.Sprintf("%s · final", u.SessionID))
	}

	rows := make([]string, len(u.Lines))
	for i, l := range u.Lines {
		if l == "" {
			l = " "
		}
		rows[i] = l
	}
	block := lipgloss.JoinVertical(lipgloss.Left, title, captionBox.Render(strings.Join(rows, "\n")))

	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := fmt.Fprintln(s.out, block)
	return err
}
