package circuitbreaker

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/library/pkg/metrics"
)

var errBroker = errors.New("broker unavailable")

func tripAfter(n uint32) func(Counts) bool {
	return func(c Counts) bool { return c.ConsecutiveFailures >= n }
}

func TestCircuitBreaker_ClosedState(t *testing.T) {
	cb := NewCircuitBreaker("test", Config{Interval: 10 * time.Second, Timeout: 30 * time.Second, ReadyToTrip: tripAfter(5)})

	for i := 0; i < 10; i++ {
		require.NoError(t, cb.Execute(func() error { return nil }))
	}

	assert.Equal(t, StateClosed, cb.State())
	assert.Equal(t, uint32(10), cb.Counts().TotalSuccesses)
}

func TestCircuitBreaker_OpenState(t *testing.T) {
	cb := NewCircuitBreaker("test", Config{Timeout: 30 * time.Second, ReadyToTrip: tripAfter(5)})

	for i := 0; i < 5; i++ {
		assert.ErrorIs(t, cb.Execute(func() error { return errBroker }), errBroker)
	}
	require.Equal(t, StateOpen, cb.State())

	called := false
	err := cb.Execute(func() error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrOpenState)
	assert.False(t, called, "熔断器打开时不应该调用实际函数")
}

func TestCircuitBreaker_HalfOpen(t *testing.T) {
	newOpen := func(t *testing.T) *CircuitBreaker {
		cb := NewCircuitBreaker("test", Config{MaxRequests: 1, Timeout: 50 * time.Millisecond, ReadyToTrip: tripAfter(3)})
		for i := 0; i < 3; i++ {
			_ = cb.Execute(func() error { return errBroker })
		}
		require.Equal(t, StateOpen, cb.State())
		time.Sleep(80 * time.Millisecond)
		require.Equal(t, StateHalfOpen, cb.State())
		return cb
	}

	t.Run("探测成功后关闭", func(t *testing.T) {
		cb := newOpen(t)
		require.NoError(t, cb.Execute(func() error { return nil }))
		assert.Equal(t, StateClosed, cb.State())
	})

	t.Run("探测失败后重新打开", func(t *testing.T) {
		cb := newOpen(t)
		assert.ErrorIs(t, cb.Execute(func() error { return errBroker }), errBroker)
		assert.Equal(t, StateOpen, cb.State())
	})

	t.Run("超过探测数的请求被拒绝", func(t *testing.T) {
		cb := newOpen(t)
		release := make(chan struct{})
		started := make(chan struct{})
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = cb.Execute(func() error {
				close(started)
				<-release
				return nil
			})
		}()
		<-started

		assert.ErrorIs(t, cb.Execute(func() error { return nil }), ErrOpenState)
		close(release)
		wg.Wait()
		assert.Equal(t, StateClosed, cb.State())
	})
}

func TestCircuitBreaker_IntervalResetsCounts(t *testing.T) {
	cb := NewCircuitBreaker("test", Config{Interval: 30 * time.Millisecond, ReadyToTrip: tripAfter(3)})

	_ = cb.Execute(func() error { return errBroker })
	_ = cb.Execute(func() error { return errBroker })
	time.Sleep(50 * time.Millisecond)
	_ = cb.Execute(func() error { return errBroker })

	assert.Equal(t, StateClosed, cb.State())
	assert.Equal(t, uint32(1), cb.Counts().ConsecutiveFailures)
}

func TestCircuitBreaker_StateChangeCallback(t *testing.T) {
	cb := NewCircuitBreaker("events", Config{Timeout: 30 * time.Millisecond, ReadyToTrip: tripAfter(2)})

	var transitions []string
	cb.SetStateChangeCallback(func(name string, from, to State) {
		assert.Equal(t, "events", name)
		transitions = append(transitions, from.String()+"->"+to.String())
	})

	_ = cb.Execute(func() error { return errBroker })
	_ = cb.Execute(func() error { return errBroker })
	time.Sleep(50 * time.Millisecond)
	_ = cb.Execute(func() error { return nil })

	assert.Equal(t, []string{"CLOSED->OPEN", "OPEN->HALF_OPEN", "HALF_OPEN->CLOSED"}, transitions)
}

func TestCounts_FailureRate(t *testing.T) {
	assert.Zero(t, Counts{}.FailureRate())
	assert.InDelta(t, 0.25, Counts{Requests: 4, TotalFailures: 1}.FailureRate(), 1e-9)
}

func TestInstrumentAndRecord(t *testing.T) {
	cb := Instrument(NewCircuitBreaker("instrumented", Config{Timeout: time.Minute, ReadyToTrip: tripAfter(1)}))

	err := cb.Execute(func() error { return errBroker })
	Record(cb, err)
	err = cb.Execute(func() error { return nil })
	Record(cb, err)

	assert.Equal(t, float64(StateOpen), testutil.ToFloat64(metrics.CircuitBreakerState.WithLabelValues("instrumented")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.CircuitBreakerRequests.WithLabelValues("instrumented", "failure")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.CircuitBreakerRequests.WithLabelValues("instrumented", "rejected")))
}
