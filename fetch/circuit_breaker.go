package fetch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cenk/backoff"
	circuit "github.com/rubyist/circuitbreaker"

	"github.com/git-pkgs/offset/internal/core"
)

// ErrCircuitOpen is returned without touching the network while a
// datasource's breaker is open.
var ErrCircuitOpen = fmt.Errorf("circuit breaker open")

// CircuitBreakerSource wraps a Source with per-datasource circuit breakers,
// so a registry that keeps failing stops costing retry budgets for a while.
type CircuitBreakerSource struct {
	source   Source
	breakers map[string]*circuit.Breaker
	mu       sync.RWMutex
}

// NewCircuitBreakerSource creates a circuit breaker wrapper for a source.
func NewCircuitBreakerSource(source Source) *CircuitBreakerSource {
	return &CircuitBreakerSource{
		source:   source,
		breakers: make(map[string]*circuit.Breaker),
	}
}

// getBreaker returns or creates the circuit breaker for a datasource.
func (cbs *CircuitBreakerSource) getBreaker(datasource string) *circuit.Breaker {
	cbs.mu.RLock()
	breaker, exists := cbs.breakers[datasource]
	cbs.mu.RUnlock()

	if exists {
		return breaker
	}

	cbs.mu.Lock()
	defer cbs.mu.Unlock()

	// Double-check after acquiring write lock
	if breaker, exists := cbs.breakers[datasource]; exists {
		return breaker
	}

	// Trips after 5 consecutive failures, resets on an exponential schedule
	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = 30 * time.Second
	expBackoff.MaxInterval = 5 * time.Minute
	expBackoff.Multiplier = 2.0
	expBackoff.Reset()

	opts := &circuit.Options{
		BackOff:    expBackoff,
		ShouldTrip: circuit.ThresholdTripFunc(5),
	}
	breaker = circuit.NewBreakerWithOptions(opts)

	cbs.breakers[datasource] = breaker
	return breaker
}

// FetchReleases forwards to the wrapped source unless the datasource's
// breaker is open.
func (cbs *CircuitBreakerSource) FetchReleases(ctx context.Context, datasource, pkg string) ([]core.Release, error) {
	breaker := cbs.getBreaker(datasource)

	if !breaker.Ready() {
		return nil, fmt.Errorf("%w for datasource %s", ErrCircuitOpen, datasource)
	}

	var releases []core.Release
	err := breaker.Call(func() error {
		var fetchErr error
		releases, fetchErr = cbs.source.FetchReleases(ctx, datasource, pkg)
		return fetchErr
	}, 0)

	if err != nil {
		return nil, err
	}
	return releases, nil
}

// BreakerStates returns the current state of all breakers, keyed by
// datasource (for health checks).
func (cbs *CircuitBreakerSource) BreakerStates() map[string]string {
	cbs.mu.RLock()
	defer cbs.mu.RUnlock()

	states := make(map[string]string)
	for datasource, breaker := range cbs.breakers {
		if breaker.Tripped() {
			states[datasource] = "open"
		} else {
			states[datasource] = "closed"
		}
	}
	return states
}
