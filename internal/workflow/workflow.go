package workflow

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
)

// Workflow executes its steps in order. When a step fails, the failed step
// and every previous one are compensated in reverse order.
type Workflow struct {
	steps []Step
}

func (w *Workflow) Execute(ctx context.Context) error {
	for idx, step := range w.steps {
		slog.DebugContext(ctx, "executing step", slog.String("step", step.Name()))

		if executionErr := step.Execute(ctx); executionErr != nil {
			if compensationErrs := w.compensate(ctx, idx); compensationErrs != nil {
				return errors.WithStack(NewCompensationError(step.Name(), executionErr, compensationErrs...))
			}

			return errors.Wrapf(executionErr, "step '%s' failed", step.Name())
		}
	}

	return nil
}

func (w *Workflow) compensate(ctx context.Context, fromIndex int) []error {
	errs := make([]error, 0)
	for idx := fromIndex; idx >= 0; idx -= 1 {
		step := w.steps[idx]

		if err := step.Compensate(ctx); err != nil {
			errs = append(errs, errors.Wrapf(err, "could not roll back step '%s'", step.Name()))
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func New(steps ...Step) *Workflow {
	return &Workflow{steps: steps}
}
