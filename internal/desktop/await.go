package desktop

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/gitshell/internal/window"
)

// DialogResultMsg delivers a dialog's result back to the Bubble Tea loop.
type DialogResultMsg[R any] struct {
	Key   string
	Value R
	Err   error
}

// AwaitDialog returns a command that waits off the event loop for fut and
// reports its result as a DialogResultMsg.
func AwaitDialog[R any](ctx context.Context, key string, fut *window.Future[R]) tea.Cmd {
	return func() tea.Msg {
		v, err := fut.Await(ctx)
		return DialogResultMsg[R]{Key: key, Value: v, Err: err}
	}
}

// ShowDialog shows the dialog now, on the calling (event loop) goroutine, and
// returns the command awaiting its result.
func ShowDialog[R any](ctx context.Context, c *window.Controller, key string, viewModel any) tea.Cmd {
	return AwaitDialog(ctx, key, window.ShowDialog[R](ctx, c, key, viewModel))
}
