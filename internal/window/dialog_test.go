package window

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowDialog_UnknownKeyResolvesToDefault(t *testing.T) {
	f := newFixture(true)

	fut := ShowDialog[int](context.Background(), f.controller, "Nope", nil)

	v, ok := fut.Value()
	require.True(t, ok, "resolved immediately")
	assert.Zero(t, v)
	assert.NoError(t, fut.Err())
}

func TestShowDialog_InstantiationFailureResolvesToDefault(t *testing.T) {
	f := newFixture(true)

	fut := ShowDialog[string](context.Background(), f.controller, "Broken", nil)

	v, err := fut.Await(context.Background())
	require.NoError(t, err)
	assert.Empty(t, v)
}

func TestShowDialog_ResultOnlyAfterClose(t *testing.T) {
	f := newFixture(true)
	vm := "create branch"

	fut := ShowDialog[string](context.Background(), f.controller, "CreateBranch", vm)

	d := f.ws.lastDialog()
	assert.True(t, d.modal)
	assert.Same(t, f.main, d.owner)
	assert.Equal(t, vm, d.context)

	d.name = "feature/login"
	_, ok := fut.Value()
	require.False(t, ok, "no result before the window closes")
	select {
	case <-fut.Done():
		require.Fail(t, "future resolved before close")
	default:
	}

	d.Close()

	v, err := fut.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "feature/login", v)
}

func TestShowDialog_AwaitBlocksUntilClose(t *testing.T) {
	f := newFixture(true)
	fut := ShowDialog[string](context.Background(), f.controller, "CreateBranch", nil)
	d := f.ws.lastDialog()

	got := make(chan string, 1)
	go func() {
		v, _ := fut.Await(context.Background())
		got <- v
	}()

	select {
	case <-got:
		require.Fail(t, "await returned before close")
	case <-time.After(20 * time.Millisecond):
	}

	d.name = "main"
	d.Close()

	select {
	case v := <-got:
		assert.Equal(t, "main", v)
	case <-time.After(time.Second):
		require.Fail(t, "await did not return after close")
	}
}

func TestShowDialog_WithoutCapabilityResolvesToDefault(t *testing.T) {
	f := newFixture(true)

	fut := ShowDialog[string](context.Background(), f.controller, "About", nil)
	_, ok := fut.Value()
	require.False(t, ok)

	f.ws.last().Close()

	v, ok := fut.Value()
	require.True(t, ok)
	assert.Empty(t, v)
}

func TestShowDialog_MismatchedResultTypeResolvesToDefault(t *testing.T) {
	f := newFixture(true)

	fut := ShowDialog[int](context.Background(), f.controller, "CreateBranch", nil)
	d := f.ws.lastDialog()
	d.name = "ignored"
	d.Close()

	v, ok := fut.Value()
	require.True(t, ok)
	assert.Zero(t, v)
}

func TestShowDialog_NoMainWindowResolvesImmediately(t *testing.T) {
	f := newFixture(false)

	fut := ShowDialog[string](context.Background(), f.controller, "CreateBranch", nil)

	d := f.ws.lastDialog()
	assert.True(t, d.shown)
	assert.False(t, d.modal)
	assert.False(t, d.isClosed(), "the dialog is still open")

	v, ok := fut.Value()
	require.True(t, ok, "resolved without waiting for close")
	assert.Empty(t, v)

	d.name = "late"
	d.Close()
	v, _ = fut.Value()
	assert.Empty(t, v, "a later close does not change the result")
}

func TestShowDialog_HookFiresOnce(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	f := newFixture(true)
	events := f.controller.Events().Subscribe(ctx)

	fut := ShowDialog[string](ctx, f.controller, "CreateBranch", nil)
	d := f.ws.lastDialog()
	d.name = "first"
	d.Close()
	d.name = "second"
	d.closeAgain()

	v, _ := fut.Value()
	assert.Equal(t, "first", v)

	var kinds []string
	for len(events) > 0 {
		kinds = append(kinds, string((<-events).Type))
	}
	assert.Equal(t, []string{"shown", "closed", "resolved"}, kinds)
}

func TestShowDialog_EventsCarryPresentationMode(t *testing.T) {
	tests := []struct {
		name     string
		withMain bool
		want     []string
	}{
		{"modal over main window", true, []string{"shown modal=true", "closed modal=true", "resolved modal=true"}},
		{"modeless without main window", false, []string{"shown modal=false", "closed modal=false"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			f := newFixture(tt.withMain)
			events := f.controller.Events().Subscribe(ctx)

			ShowDialog[string](ctx, f.controller, "CreateBranch", nil)
			f.ws.lastDialog().Close()

			var got []string
			for len(events) > 0 {
				ev := <-events
				got = append(got, fmt.Sprintf("%s modal=%t", ev.Type, ev.Payload.Modal))
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestShowDialog_DialogsAreNotCached(t *testing.T) {
	f := newFixture(true)

	ShowDialog[string](context.Background(), f.controller, "CreateBranch", nil)

	assert.Equal(t, 0, f.controller.Cache().Len())
}

func TestShowDialog_PresentationFailure(t *testing.T) {
	f := newFixture(true)
	boom := errors.New("no tty")
	f.ws.showErr = boom

	fut := ShowDialog[string](context.Background(), f.controller, "CreateBranch", nil)

	v, err := fut.Await(context.Background())
	assert.Empty(t, v)
	require.ErrorIs(t, err, boom)
	var perr *PresentationError
	require.ErrorAs(t, err, &perr)
	assert.True(t, perr.Modal)
}

func TestFuture_AwaitHonorsContext(t *testing.T) {
	f := newFixture(true)
	fut := ShowDialog[string](context.Background(), f.controller, "CreateBranch", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := fut.Await(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	_, ok := fut.Value()
	assert.False(t, ok, "abandoning the wait leaves the dialog pending")
	assert.False(t, f.ws.lastDialog().isClosed())
}

func TestResolved(t *testing.T) {
	v, err := Resolved(true).Await(context.Background())
	require.NoError(t, err)
	assert.True(t, v)
}
