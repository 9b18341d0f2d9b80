//go:build unit
// +build unit

package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Renz00/recipe-vault/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct {
	failures int
	calls    int
}

func (p *fakePinger) Ping(_ context.Context) error {
	p.calls++
	if p.calls <= p.failures {
		return errors.New("connection refused")
	}
	return nil
}

func TestDBWaiter_Wait_DatabaseReady(t *testing.T) {
	logger := testutil.SetupTestLogger(t)

	pinger := &fakePinger{}
	waiter := &DBWaiter{pinger: pinger, interval: time.Millisecond, logger: logger}

	require.NoError(t, waiter.Wait(context.Background()))
	assert.Equal(t, 1, pinger.calls)
}

func TestDBWaiter_Wait_DatabaseDelayed(t *testing.T) {
	logger := testutil.SetupTestLogger(t)

	// Five refused probes before the server comes up
	pinger := &fakePinger{failures: 5}
	waiter := &DBWaiter{pinger: pinger, interval: time.Millisecond, logger: logger}

	require.NoError(t, waiter.Wait(context.Background()))
	assert.Equal(t, 6, pinger.calls)
}

func TestDBWaiter_Wait_ContextCancelled(t *testing.T) {
	logger := testutil.SetupTestLogger(t)

	pinger := &fakePinger{failures: 1 << 30}
	waiter := &DBWaiter{pinger: pinger, interval: time.Millisecond, logger: logger}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := waiter.Wait(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
