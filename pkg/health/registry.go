package health

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Registry holds the checkers consulted by readiness probes.
type Registry struct {
	mu       sync.RWMutex
	checkers []Checker
}

func NewRegistry(checkers ...Checker) *Registry {
	return &Registry{checkers: checkers}
}

// Register adds checkers after construction; nil checkers are ignored.
func (r *Registry) Register(checkers ...Checker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range checkers {
		if c != nil {
			r.checkers = append(r.checkers, c)
		}
	}
}

type CheckResult struct {
	Name    string `json:"name"`
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
}

type ReadinessResponse struct {
	Status Status        `json:"status"`
	Checks []CheckResult `json:"checks,omitempty"`
}

// CheckAll runs every checker in parallel. The overall status is down when
// any single check is down.
func (r *Registry) CheckAll(ctx context.Context) ReadinessResponse {
	r.mu.RLock()
	checkers := append([]Checker(nil), r.checkers...)
	r.mu.RUnlock()

	if len(checkers) == 0 {
		return ReadinessResponse{Status: StatusUp}
	}

	results := make([]CheckResult, len(checkers))
	var g errgroup.Group
	for i, c := range checkers {
		g.Go(func() error {
			res := c.Check(ctx)
			if ctx.Err() != nil && res.Status != StatusDown {
				res = Down(ctx.Err().Error())
			}
			results[i] = CheckResult{Name: c.Name(), Status: res.Status, Message: res.Message}
			return nil
		})
	}
	_ = g.Wait()

	overall := StatusUp
	for _, res := range results {
		if res.Status != StatusUp {
			overall = StatusDown
			break
		}
	}
	return ReadinessResponse{Status: overall, Checks: results}
}
