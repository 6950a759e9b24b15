package store

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/nebulahq/chainpulse/internal/domain"
)

// Submitter confirms a review submission with the remote side.
// chainpulse has no real backend, so the default implementation simulates
// the network step; tests inject their own.
type Submitter interface {
	Submit(ctx context.Context, projectID string, draft domain.ReviewDraft) error
}

// SubmitterFunc adapts a function to the Submitter interface.
type SubmitterFunc func(ctx context.Context, projectID string, draft domain.ReviewDraft) error

// Submit calls f.
func (f SubmitterFunc) Submit(ctx context.Context, projectID string, draft domain.ReviewDraft) error {
	return f(ctx, projectID, draft)
}

// SimulatedSubmitter models the remote submission step with a fixed delay
// and a configurable failure rate. Once the delay starts the submission runs
// to completion; there is no mid-flight cancellation.
type SimulatedSubmitter struct {
	Delay       time.Duration
	FailureRate float64

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSimulatedSubmitter creates a simulated submitter with the given delay
// and failure rate in [0,1].
func NewSimulatedSubmitter(delay time.Duration, failureRate float64) *SimulatedSubmitter {
	return &SimulatedSubmitter{
		Delay:       delay,
		FailureRate: failureRate,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Submit waits the configured delay and then succeeds or fails according to
// the failure rate. The context is only honored before the delay begins.
func (s *SimulatedSubmitter) Submit(ctx context.Context, projectID string, draft domain.ReviewDraft) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if s.Delay > 0 {
		time.Sleep(s.Delay)
	}

	s.mu.Lock()
	roll := s.rng.Float64()
	s.mu.Unlock()

	if roll < s.FailureRate {
		return fmt.Errorf("simulated network failure for project %s", projectID)
	}
	return nil
}
