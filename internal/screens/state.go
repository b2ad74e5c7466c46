package screens

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/spigell/hr-assistant/internal/ai"
	"github.com/spigell/hr-assistant/internal/logger"
)

// Status is the lifecycle position of a feature screen.
type Status int

const (
	StatusIdle Status = iota
	StatusSubmitting
	StatusSuccess
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusSubmitting:
		return "submitting"
	case StatusSuccess:
		return "success"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome is either nothing yet, an in-flight call, a result or an error message.
// Only the constructors below build it, so a result and a message never coexist.
type Outcome[T any] struct {
	status  Status
	result  *T
	message string
	invalid bool
}

func Idle[T any]() Outcome[T] {
	return Outcome[T]{status: StatusIdle}
}

func submitting[T any]() Outcome[T] {
	return Outcome[T]{status: StatusSubmitting}
}

func succeeded[T any](result *T) Outcome[T] {
	return Outcome[T]{status: StatusSuccess, result: result}
}

func failed[T any](message string, invalid bool) Outcome[T] {
	return Outcome[T]{status: StatusFailed, message: message, invalid: invalid}
}

func (o Outcome[T]) Status() Status { return o.status }

// Result returns the result when the outcome is a success.
func (o Outcome[T]) Result() (*T, bool) {
	if o.status != StatusSuccess {
		return nil, false
	}
	return o.result, true
}

// Value is Result for templates: nil unless the outcome is a success.
func (o Outcome[T]) Value() *T {
	result, _ := o.Result()
	return result
}

// Message is the user-facing error text of a failed outcome.
func (o Outcome[T]) Message() string {
	if o.status != StatusFailed {
		return ""
	}
	return o.message
}

// Invalid reports whether the outcome failed validation before any call was made.
func (o Outcome[T]) Invalid() bool { return o.status == StatusFailed && o.invalid }

// Busy reports whether submit controls should be disabled.
func (o Outcome[T]) Busy() bool { return o.status == StatusSubmitting }

// ValidationError is a form error shown inline without contacting the model.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Recorder receives one observation per gateway call or rejected submission.
type Recorder interface {
	ObserveSubmission(feature, outcome string, elapsed time.Duration)
}

const (
	OutcomeSuccess   = "success"
	OutcomeInvalid   = "invalid"
	OutcomeNoContent = "no_content"
	OutcomeMalformed = "malformed"
	OutcomeCanceled  = "canceled"
	OutcomeTransport = "transport"
)

// Feature holds the state of one screen and runs its submissions.
// It is safe for concurrent use; the last submission to resolve wins.
type Feature[Req, Res any] struct {
	name     string
	validate func(Req) error
	invoke   func(context.Context, Req) (*Res, error)
	failure  string
	logger   *zap.Logger
	recorder Recorder

	mu    sync.Mutex
	state Outcome[Res]
}

func newFeature[Req, Res any](name, failure string, validate func(Req) error, invoke func(context.Context, Req) (*Res, error), deps Deps) *Feature[Req, Res] {
	return &Feature[Req, Res]{
		name:     name,
		validate: validate,
		invoke:   invoke,
		failure:  failure,
		logger:   logger.WithFeature(deps.Logger, name),
		recorder: deps.Recorder,
		state:    Idle[Res](),
	}
}

// Name identifies the feature in logs and metrics.
func (f *Feature[Req, Res]) Name() string { return f.name }

// State returns the current outcome.
func (f *Feature[Req, Res]) State() Outcome[Res] {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Submit validates req and, when valid, invokes the gateway exactly once.
func (f *Feature[Req, Res]) Submit(ctx context.Context, req Req) Outcome[Res] {
	if err := f.validate(req); err != nil {
		message := err.Error()
		var verr *ValidationError
		if errors.As(err, &verr) {
			message = verr.Message
		}
		f.logger.Debug("submission rejected by validation", zap.Error(err))
		f.record(OutcomeInvalid, 0)
		return f.set(failed[Res](message, true))
	}

	f.set(submitting[Res]())

	start := time.Now()
	result, err := f.invoke(ctx, req)
	elapsed := time.Since(start)

	if err == nil && result == nil {
		err = ai.ErrNoContent
	}

	if err != nil {
		kind := classify(err)
		f.logger.Error("gateway call failed",
			zap.String("kind", kind),
			zap.Duration("elapsed", elapsed),
			zap.Error(err),
		)
		f.record(kind, elapsed)
		return f.set(failed[Res](f.failure, false))
	}

	f.logger.Info("gateway call succeeded", zap.Duration("elapsed", elapsed))
	f.record(OutcomeSuccess, elapsed)
	return f.set(succeeded(result))
}

// Reset discards the held result, as when the user navigates away.
func (f *Feature[Req, Res]) Reset() {
	f.set(Idle[Res]())
}

func (f *Feature[Req, Res]) set(o Outcome[Res]) Outcome[Res] {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = o
	return o
}

func (f *Feature[Req, Res]) record(outcome string, elapsed time.Duration) {
	if f.recorder != nil {
		f.recorder.ObserveSubmission(f.name, outcome, elapsed)
	}
}

func classify(err error) string {
	switch {
	case errors.Is(err, ai.ErrNoContent):
		return OutcomeNoContent
	case errors.Is(err, ai.ErrMalformedResponse):
		return OutcomeMalformed
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return OutcomeCanceled
	default:
		return OutcomeTransport
	}
}
