// Package health runs readiness checks against the service's dependencies.
package health

import (
	"context"
	"time"
)

const DefaultTimeout = 5 * time.Second

type Status string

const (
	StatusUp   Status = "up"
	StatusDown Status = "down"
)

type Result struct {
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
}

func Up() Result { return Result{Status: StatusUp} }

func Down(msg string) Result { return Result{Status: StatusDown, Message: msg} }

// Checker probes a single dependency.
type Checker interface {
	Name() string
	Check(ctx context.Context) Result
}

// PingChecker turns an error-returning ping into a Checker.
type PingChecker struct {
	name string
	ping func(ctx context.Context) error
}

func NewPingChecker(name string, ping func(ctx context.Context) error) *PingChecker {
	return &PingChecker{name: name, ping: ping}
}

func (c *PingChecker) Name() string { return c.name }

func (c *PingChecker) Check(ctx context.Context) Result {
	if err := c.ping(ctx); err != nil {
		return Down(err.Error())
	}
	return Up()
}
