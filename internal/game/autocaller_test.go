package game

import (
	"context"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutoCallerDrawsUntilFirstWin(t *testing.T) {
	g, err := New(Config{Players: 2, Seed: seed(42)})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mock := quartz.NewMock(t)
	trap := mock.Trap().TickerFunc("autocaller")
	defer trap.Close()

	ac := NewAutoCaller(g, time.Second, mock, nil)

	draws := 0
	done := make(chan error, 1)
	go func() {
		done <- ac.Run(ctx, func(res *DrawResult) { draws++ })
	}()

	// Wait for the ticker to be registered before advancing time.
	call := trap.MustWait(ctx)
	require.NoError(t, call.Release(ctx))

	for {
		select {
		case err := <-done:
			require.NoError(t, err)
			assert.NotEmpty(t, g.Winners())
			assert.Equal(t, len(g.Called()), draws)
			assert.Greater(t, draws, 0)
			return
		default:
			mock.Advance(time.Second).MustWait(ctx)
		}
	}
}

func TestAutoCallerOnFinishedGame(t *testing.T) {
	g, err := New(Config{Players: 1, Seed: seed(1)})
	require.NoError(t, err)
	for !g.Finished() {
		_, err := g.DrawNext()
		require.NoError(t, err)
	}

	ac := NewAutoCaller(g, time.Millisecond, quartz.NewMock(t), nil)
	err = ac.Run(context.Background(), nil)
	assert.ErrorIs(t, err, ErrFinished)
}

func TestAutoCallerStopsOnCancel(t *testing.T) {
	g, err := New(Config{Players: 1, Seed: seed(2)})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	mock := quartz.NewMock(t)
	trap := mock.Trap().TickerFunc("autocaller")
	defer trap.Close()

	ac := NewAutoCaller(g, time.Second, mock, nil)
	done := make(chan error, 1)
	go func() {
		done <- ac.Run(ctx, nil)
	}()

	call := trap.MustWait(context.Background())
	require.NoError(t, call.Release(context.Background()))

	cancel()
	require.NoError(t, <-done)
	assert.Empty(t, g.Winners())
}
