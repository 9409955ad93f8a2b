package notify

import (
	"fmt"
	"io"
	"os"
)

// Presenter delivers a fired notification to the user. Implementations
// are fire-and-forget; errors are logged by the scheduler, never
// propagated.
type Presenter interface {
	Show(title, body string) error
}

// ConsolePresenter writes notifications to a terminal stream.
type ConsolePresenter struct {
	Out io.Writer
}

// NewConsolePresenter presents notifications on stdout.
func NewConsolePresenter() *ConsolePresenter {
	return &ConsolePresenter{Out: os.Stdout}
}

// Show prints the notification.
func (p *ConsolePresenter) Show(title, body string) error {
	_, err := fmt.Fprintf(p.Out, "\n🔔 %s\n   %s\n", title, body)
	return err
}
