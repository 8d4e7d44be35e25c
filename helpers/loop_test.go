package helpers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tilinna/clock"
)

func TestLoop_StartStop(t *testing.T) {
	mc := clock.NewMock(TestNow())
	ctx := clock.Context(context.Background(), mc)

	var runs atomic.Int32
	var l Loop
	assert.Equal(t, LoopNotStarted, l.State())
	assert.False(t, l.Stop())

	require.True(t, l.Start(ctx, time.Minute, func(context.Context) { runs.Add(1) }))
	assert.False(t, l.Start(ctx, time.Minute, func(context.Context) { runs.Add(100) }))
	assert.Equal(t, LoopRunning, l.State())
	require.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, 5*time.Millisecond)

	mc.Add(time.Minute)
	require.Eventually(t, func() bool { return runs.Load() == 2 }, time.Second, 5*time.Millisecond)

	assert.True(t, l.Stop())
	assert.False(t, l.Stop())
	assert.Equal(t, LoopStopped, l.State())

	mc.Add(time.Minute)
	time.Sleep(20 * time.Millisecond)
	assert.EqualValues(t, 2, runs.Load())
}

func TestLoop_StopWaitsForRunInFlight(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	var finished atomic.Bool

	var l Loop
	l.Start(context.Background(), time.Hour, func(context.Context) {
		close(entered)
		<-release
		finished.Store(true)
	})
	<-entered

	stopped := make(chan struct{})
	go func() {
		l.Stop()
		close(stopped)
	}()
	select {
	case <-stopped:
		t.Fatal("Stop returned while fn was running")
	case <-time.After(20 * time.Millisecond):
	}
	close(release)
	<-stopped
	assert.True(t, finished.Load())
}

func TestLoop_ParentCancelEndsLoop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	var l Loop
	l.Start(ctx, time.Hour, func(ctx context.Context) {
		<-ctx.Done()
		close(done)
	})
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("loop context not canceled")
	}
	assert.True(t, l.Stop())
}

func TestLoop_Restart(t *testing.T) {
	var runs atomic.Int32
	var l Loop
	fn := func(context.Context) { runs.Add(1) }

	require.True(t, l.Start(context.Background(), time.Hour, fn))
	require.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, 5*time.Millisecond)
	require.True(t, l.Stop())

	require.True(t, l.Start(context.Background(), time.Hour, fn))
	require.Eventually(t, func() bool { return runs.Load() == 2 }, time.Second, 5*time.Millisecond)
	require.True(t, l.Stop())
}
