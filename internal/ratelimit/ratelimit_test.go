package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimiterWait(t *testing.T) {
	l := New("IGDB", 100)
	assert.Equal(t, "IGDB", l.Name())

	for i := 0; i < 5; i++ {
		require.NoError(t, l.Wait(context.Background()))
	}
}

func TestLimiterWait_CancelledContext(t *testing.T) {
	l := New("IGDB", 1)
	// Drain the single burst token so the next call has to wait.
	require.NoError(t, l.Wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := l.Wait(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limit wait for IGDB")
}

func TestLimiterWait_Unlimited(t *testing.T) {
	l := New("unlimited", 0)

	start := time.Now()
	for i := 0; i < 50; i++ {
		require.NoError(t, l.Wait(context.Background()))
	}
	assert.Less(t, time.Since(start), time.Second)
}

func TestDelayWait(t *testing.T) {
	d := Delay(20 * time.Millisecond)

	start := time.Now()
	require.NoError(t, d.Wait(context.Background()))
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	assert.Equal(t, 20*time.Millisecond, d.Duration())
}

func TestDelayWait_Zero(t *testing.T) {
	require.NoError(t, Delay(0).Wait(context.Background()))
}

func TestDelayWait_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Delay(time.Hour).Wait(ctx)
	require.ErrorIs(t, err, context.Canceled)

	err = Delay(0).Wait(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
