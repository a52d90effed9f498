// Package saga runs a sequence of steps and undoes the completed ones when a later step fails.
package saga

import (
	"context"
	"errors"
	"fmt"
)

type Step struct {
	Name string
	Do   func(ctx context.Context) error
	// Compensate undoes Do. May be nil for steps with nothing to undo.
	Compensate func(ctx context.Context) error
}

// CompensationError is returned when a step failed and at least one compensation failed too,
// meaning the steps already applied could not be fully reverted.
type CompensationError struct {
	Step   string
	Err    error
	Failed map[string]error
}

func (e *CompensationError) Error() string {
	return fmt.Sprintf("step %s failed: %v; %d compensation(s) failed", e.Step, e.Err, len(e.Failed))
}

func (e *CompensationError) Unwrap() error {
	return e.Err
}

// Hooks are optional observers, used for logging and metrics.
type Hooks struct {
	OnCompensate       func(step string)
	OnCompensateFailed func(step string, err error)
}

type Saga struct {
	steps []Step
	hooks Hooks
}

func New(hooks Hooks, steps ...Step) *Saga {
	return &Saga{steps: steps, hooks: hooks}
}

func (s *Saga) Add(steps ...Step) {
	s.steps = append(s.steps, steps...)
}

// Run executes steps in order. On the first failure the compensations of the
// completed steps run in reverse order and the step error is returned.
func (s *Saga) Run(ctx context.Context) error {
	for i, step := range s.steps {
		if err := step.Do(ctx); err != nil {
			failed := s.compensate(ctx, s.steps[:i])
			if len(failed) > 0 {
				return &CompensationError{Step: step.Name, Err: err, Failed: failed}
			}
			return err
		}
	}
	return nil
}

func (s *Saga) compensate(ctx context.Context, done []Step) map[string]error {
	// compensations must run even if the caller ctx is already cancelled
	ctx = context.WithoutCancel(ctx)

	var failed map[string]error
	for i := len(done) - 1; i >= 0; i-- {
		step := done[i]
		if step.Compensate == nil {
			continue
		}
		if s.hooks.OnCompensate != nil {
			s.hooks.OnCompensate(step.Name)
		}
		if err := step.Compensate(ctx); err != nil {
			if failed == nil {
				failed = make(map[string]error)
			}
			failed[step.Name] = err
			if s.hooks.OnCompensateFailed != nil {
				s.hooks.OnCompensateFailed(step.Name, err)
			}
		}
	}
	return failed
}

func IsCompensationFailure(err error) bool {
	var ce *CompensationError
	return errors.As(err, &ce)
}
