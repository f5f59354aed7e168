package tests

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/ib-77/tryop/pkg/tryop"
	"github.com/ib-77/tryop/pkg/tryop/bound"
	"github.com/ib-77/tryop/pkg/tryop/chain"
	"github.com/ib-77/tryop/pkg/tryop/group"
	"github.com/ib-77/tryop/pkg/tryop/pipe"
	"github.com/ib-77/tryop/pkg/tryop/run"

	"github.com/stretchr/testify/assert"
)

// TestFetchFlow drives the whole surface the way a service would: a
// bound instance with mapping, retry and hooks, fanned out over flaky
// sources, with the results post-processed through pipe and chain.
func TestFetchFlow(t *testing.T) {
	ctx := context.Background()

	var retried []string
	inst := bound.New[string](
		func(raw error) error { return fmt.Errorf("source unavailable: %w", raw) },
		run.WithRetry[string](run.Retry{Times: 2, WaitBefore: run.Backoff(time.Millisecond)}),
		run.OnRetry[string](func(err error, attempt int, _ []any) {
			retried = append(retried, fmt.Sprintf("attempt %d: %v", attempt, err))
		}),
	)

	calls := map[string]int{}
	sources := map[string]group.Op[string]{
		"stable": func(context.Context) (string, error) {
			return "alpha", nil
		},
		"flaky": func(context.Context) (string, error) {
			calls["flaky"]++
			if calls["flaky"] < 3 {
				return "", errors.New("connection reset")
			}
			return "beta", nil
		},
	}

	o := inst.All(ctx, sources)
	assert.True(t, o.IsSuccess(), "flaky source should recover within its retries")
	assert.Equal(t, map[string]string{"stable": "alpha", "flaky": "beta"}, o.Value())
	assert.Equal(t, 3, calls["flaky"])
	assert.Len(t, retried, 2)
	assert.Contains(t, retried[0], "source unavailable")

	// post-process one member's payload through the combinators
	upper := pipe.Map(ctx, tryop.Success(o.Value()["stable"]),
		func(_ context.Context, s string) string { return strings.ToUpper(s) })
	assert.Equal(t, "ALPHA", upper.Value())

	report := chain.Finally(
		chain.Then(chain.Start(ctx, upper), func(_ context.Context, s string) tryop.Outcome[string] {
			if s == "" {
				return tryop.Fail[string](errors.New("empty payload"))
			}
			return tryop.Success("payload=" + s)
		}),
		func(_ context.Context, s string) string { return s },
		func(_ context.Context, err error) string { return "error: " + err.Error() },
	)
	assert.Equal(t, "payload=ALPHA", report)
}

// TestFetchFlow_DeadAndSlowSources exercises the failure side: an
// always-dead source short-circuits All while AllSettled reports every
// member individually.
func TestFetchFlow_DeadAndSlowSources(t *testing.T) {
	ctx := context.Background()

	inst := bound.New[string](
		func(raw error) error { return fmt.Errorf("source unavailable: %w", raw) },
		run.WithAbortAfter[string](20*time.Millisecond),
	)

	sources := map[string]group.Op[string]{
		"dead": func(context.Context) (string, error) {
			return "", errors.New("503")
		},
		"slow": func(ctx context.Context) (string, error) {
			select {
			case <-time.After(time.Second):
				return "late", nil
			case <-ctx.Done():
				return "", ctx.Err()
			}
		},
	}

	start := time.Now()
	o := inst.All(ctx, sources)
	assert.True(t, o.IsFailure())
	assert.Contains(t, o.Err().Error(), "source unavailable")
	assert.Less(t, time.Since(start), 500*time.Millisecond, "first failure should win immediately")

	outcomes := inst.AllSettled(ctx, sources)
	assert.Len(t, outcomes, 2)
	assert.True(t, outcomes["dead"].IsFailure())
	assert.True(t, outcomes["slow"].IsFailure(), "slow source should hit the per-attempt deadline")
	assert.True(t, tryop.IsCancellationError(outcomes["slow"].Err()))
}
