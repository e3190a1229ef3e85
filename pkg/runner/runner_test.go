package runner

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/speedlog/pkg/errors"
)

func TestNewMissingBinary(t *testing.T) {
	_, err := New(WithCommand("definitely-not-a-real-utility-xyz"))

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeNotFound))
}

func TestRunCapturesOutput(t *testing.T) {
	r, err := New(WithCommand("echo", "Latency: 12.3 ms (jitter: 1.1 ms)"))
	require.NoError(t, err)

	out, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.Contains(t, out, "Latency: 12.3 ms")
	assert.Equal(t, StatusCompleted, r.Status())
}

func TestRunFreshBufferPerRun(t *testing.T) {
	r, err := New(WithCommand("echo", "one line"))
	require.NoError(t, err)

	first, err := r.Run(context.Background())
	require.NoError(t, err)
	second, err := r.Run(context.Background())
	require.NoError(t, err)

	// Output never accumulates across runs.
	assert.Equal(t, first, second)
	assert.Equal(t, 1, strings.Count(second, "one line"))
}

func TestRunTimeout(t *testing.T) {
	r, err := New(
		WithCommand("sleep", "30"),
		WithTimeout(100*time.Millisecond),
	)
	require.NoError(t, err)

	start := time.Now()
	_, err = r.Run(context.Background())
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeTimeout))
	assert.Equal(t, StatusTimedOut, r.Status())
	// The child is terminated on expiry rather than awaited.
	assert.Less(t, elapsed, 5*time.Second)
}

func TestRunNonZeroExit(t *testing.T) {
	r, err := New(WithCommand("sh", "-c", "exit 3"))
	require.NoError(t, err)

	_, err = r.Run(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeInternal))
	assert.False(t, errors.IsCode(err, errors.ErrCodeTimeout))
}

func TestDefaults(t *testing.T) {
	r := &Runner{
		binary:  defaultBinary,
		args:    defaultArgs,
		timeout: DefaultTimeout,
		status:  StatusIdle,
	}

	assert.Equal(t, "speedtest", r.binary)
	assert.Contains(t, r.args, "--accept-license")
	assert.Equal(t, 100*time.Second, r.Timeout())
	assert.Equal(t, StatusIdle, r.Status())
}
