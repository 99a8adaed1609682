package rest_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/misterclayt0n/ironlog/internal/rest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestLoop_StartIsIdempotent(t *testing.T) {
	defer goleak.VerifyNone(t)

	l := rest.NewLoop(time.Millisecond)
	var ticks atomic.Int32
	tick := func(<-chan struct{}) bool {
		ticks.Add(1)
		return true
	}

	require.True(t, l.Start(tick))
	assert.False(t, l.Start(tick))
	assert.True(t, l.Running())

	require.Eventually(t, func() bool { return ticks.Load() > 2 }, time.Second, time.Millisecond)

	l.Stop()
	assert.False(t, l.Running())

	stopped := ticks.Load()
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, stopped, ticks.Load(), "no tick after Stop returned")
}

func TestLoop_EndsWhenTickReturnsFalse(t *testing.T) {
	defer goleak.VerifyNone(t)

	l := rest.NewLoop(time.Millisecond)
	require.True(t, l.Start(func(<-chan struct{}) bool { return false }))

	select {
	case <-l.Done():
	case <-time.After(time.Second):
		t.Fatal("loop did not exit")
	}
	assert.False(t, l.Running())

	// a finished loop can be started again
	require.True(t, l.Start(func(<-chan struct{}) bool { return false }))
	<-l.Done()
	l.Stop()
}

func TestLoop_StopUnblocksWaitingTick(t *testing.T) {
	defer goleak.VerifyNone(t)

	lock := make(chan struct{}, 1)
	lock <- struct{}{} // held by "the caller of Stop"

	l := rest.NewLoop(time.Millisecond)
	entered := make(chan struct{}, 1)
	l.Start(func(quit <-chan struct{}) bool {
		select {
		case entered <- struct{}{}:
		default:
		}
		select {
		case <-quit:
			return false
		case lock <- struct{}{}:
			<-lock
			return true
		}
	})

	<-entered
	l.Stop()
	assert.False(t, l.Running())
}

func TestLoop_StopWithoutStart(t *testing.T) {
	l := rest.NewLoop(0)
	l.Stop()
	assert.False(t, l.Running())
	assert.Nil(t, l.Done())
}
