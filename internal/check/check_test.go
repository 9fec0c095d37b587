package check

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunOptionalGuardFalseSkips(t *testing.T) {
	executed := false
	outcome, err := RunOptional(OptionalCheck{
		Desc:  "auto-advance toggle state",
		Guard: func() bool { return false },
		Assert: func() error {
			executed = true
			return errors.New("would have failed")
		},
	})
	require.NoError(t, err, "a skipped check must never count as a failure")
	assert.Equal(t, OutcomeSkipped, outcome)
	assert.False(t, executed, "guarded assertion must not execute on a false probe")
}

func TestRunOptionalGuardTrueRuns(t *testing.T) {
	outcome, err := RunOptional(OptionalCheck{
		Desc:   "unread badge count",
		Guard:  func() bool { return true },
		Assert: func() error { return nil },
	})
	require.NoError(t, err)
	assert.Equal(t, OutcomePassed, outcome)
}

func TestRunOptionalPresentButFailing(t *testing.T) {
	outcome, err := RunOptional(OptionalCheck{
		Desc:   "campaign status",
		Guard:  func() bool { return true },
		Assert: func() error { return errors.New("wrong status") },
	})
	require.Error(t, err, "a present element failing its assertion is a real failure")
	assert.Equal(t, OutcomeFailed, outcome)
	assert.Contains(t, err.Error(), "campaign status")
}

func TestRunOptionalNilGuardRuns(t *testing.T) {
	outcome, err := RunOptional(OptionalCheck{
		Desc:   "ungated",
		Assert: func() error { return nil },
	})
	require.NoError(t, err)
	assert.Equal(t, OutcomePassed, outcome)
}

func TestRunRequired(t *testing.T) {
	outcome, err := RunRequired(RequiredCheck{
		Desc:   "dashboard heading",
		Assert: func() error { return nil },
	})
	require.NoError(t, err)
	assert.Equal(t, OutcomePassed, outcome)

	outcome, err = RunRequired(RequiredCheck{
		Desc:   "dashboard heading",
		Assert: func() error { return errors.New("not found") },
	})
	require.Error(t, err)
	assert.Equal(t, OutcomeFailed, outcome)
	assert.Contains(t, err.Error(), "dashboard heading")
}

func TestPollSucceedsAfterRetries(t *testing.T) {
	attempts := 0
	err := Poll(2*time.Second, func() error {
		attempts++
		if attempts < 3 {
			return errors.New("not yet")
		}
		return nil
	})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, attempts, 3)
}

func TestPollTimesOutWithLastError(t *testing.T) {
	err := Poll(300*time.Millisecond, func() error {
		return errors.New("text never matched")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "text never matched")
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "passed", OutcomePassed.String())
	assert.Equal(t, "failed", OutcomeFailed.String())
	assert.Equal(t, "skipped", OutcomeSkipped.String())
}
