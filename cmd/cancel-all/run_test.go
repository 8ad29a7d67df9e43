package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/betbot/cryptsy/cryptsy/client"
	"github.com/betbot/cryptsy/cryptsy/types"
	"github.com/betbot/cryptsy/internal/mockexchange"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCreds = types.Credentials{Key: "pub", Secret: "priv"}

func newDryRunner(t *testing.T, privateBody string) (*runner, *mockexchange.Exchange, *bytes.Buffer) {
	t.Helper()
	fake := mockexchange.New(testCreds)
	if privateBody != "" {
		fake.SetPrivateResponse(client.MethodCancelAllOrders, privateBody)
	}
	out := &bytes.Buffer{}
	c := client.NewClient(client.Config{
		Credentials: testCreds,
		PublicURL:   "http://fake" + mockexchange.PublicPath,
		PrivateURL:  "http://fake" + mockexchange.PrivatePath,
		Transport:   fake.Transport(),
	})
	r := &runner{
		client: c,
		delay:  10 * time.Second,
		out:    out,
		wait:   func(ctx context.Context, d time.Duration) error { return ctx.Err() },
	}
	return r, fake, out
}

func TestRunPrintsEachEntry(t *testing.T) {
	r, fake, out := newDryRunner(t, `{"success":1,"return":[{"orderid":"5"},{"orderid":"7"}]}`)

	report, err := r.run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"5", "7"}, report.OrderIDs())
	assert.Equal(t, 1, fake.CallCount(client.MethodCancelAllOrders))

	text := out.String()
	assert.Contains(t, text, "Sleeping 10s. (abort possible)")
	assert.Contains(t, text, `{"orderid":"5"}`)
	assert.Contains(t, text, `{"orderid":"7"}`)
	assert.NotContains(t, text, "No orders to cancel.")
	assert.Contains(t, text, "Completed.")
}

func TestRunWithoutReturn(t *testing.T) {
	r, _, out := newDryRunner(t, `{"success":1}`)

	report, err := r.run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, report.Entries)

	text := out.String()
	assert.Contains(t, text, "No orders to cancel.")
	assert.Contains(t, text, "Success : 1")
	assert.Contains(t, text, "Completed.")
}

func TestRunReportsExchangeFailure(t *testing.T) {
	r, _, out := newDryRunner(t, `{"success":"0","error":"Unable to cancel"}`)

	report, err := r.run(context.Background())
	require.NoError(t, err)
	assert.False(t, bool(report.Success))

	text := out.String()
	assert.Contains(t, text, "Success : 0")
	assert.Contains(t, text, "Exchange said: Unable to cancel")
	assert.Contains(t, text, "Completed.")
}

func TestRunAbortedDuringCountdown(t *testing.T) {
	r, fake, out := newDryRunner(t, "")
	r.wait = sleepCtx

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.run(ctx)
	assert.ErrorIs(t, err, errAborted)
	assert.Zero(t, fake.CallCount(client.MethodCancelAllOrders))
	assert.NotContains(t, out.String(), "Completed.")
}

func TestRunDecodeFailure(t *testing.T) {
	r, fake, out := newDryRunner(t, "")
	fake.FailNext(client.MethodCancelAllOrders, mockexchange.Reply{Status: 502, Body: "<html>bad gateway</html>"})

	_, err := r.run(context.Background())
	assert.ErrorIs(t, err, client.ErrDecode)
	assert.NotContains(t, out.String(), "Completed.")
}

func TestSleepCtx(t *testing.T) {
	assert.NoError(t, sleepCtx(context.Background(), time.Millisecond))
	assert.NoError(t, sleepCtx(context.Background(), 0))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, sleepCtx(ctx, time.Hour), context.Canceled)
}

func TestDryRunConfig(t *testing.T) {
	cfg := dryRunConfig(client.Config{ProxyURL: "http://10.0.0.1:3128"})
	assert.False(t, cfg.Credentials.Empty())
	assert.Empty(t, cfg.ProxyURL)
	require.NotNil(t, cfg.Transport)

	res, err := client.NewClient(cfg).CancelAllOrders(context.Background())
	require.NoError(t, err)
	assert.True(t, bool(res.Success))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitOK, exitCode(nil))
	assert.Equal(t, exitAborted, exitCode(errAborted))
	assert.Equal(t, exitAborted, exitCode(errors.Wrap(errAborted, "countdown")))
	assert.Equal(t, exitFailed, exitCode(client.ErrDecode))
}

func TestCancelAllExitCodes(t *testing.T) {
	t.Run("done", func(t *testing.T) {
		r, fake, _ := newDryRunner(t, "")
		assert.Equal(t, exitOK, cancelAll(r))
		assert.Equal(t, 1, fake.CallCount(client.MethodCancelAllOrders))
	})

	t.Run("failed", func(t *testing.T) {
		r, fake, _ := newDryRunner(t, "")
		fake.FailNext(client.MethodCancelAllOrders, mockexchange.Reply{Status: 500, Body: "oops"})
		assert.Equal(t, exitFailed, cancelAll(r))
	})

	t.Run("aborted", func(t *testing.T) {
		r, fake, _ := newDryRunner(t, "")
		r.wait = func(context.Context, time.Duration) error { return context.Canceled }
		assert.Equal(t, exitAborted, cancelAll(r))
		assert.Zero(t, fake.CallCount(client.MethodCancelAllOrders))
	})
}
