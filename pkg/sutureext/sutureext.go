package sutureext

import (
	"context"
	"errors"
	"log/slog"

	"github.com/thejerf/suture/v4"
)

// New returns a supervisor that logs its events with slog.
func New(name string) *suture.Supervisor {
	return suture.New(name, suture.Spec{
		EventHook: EventHook(slog.Default()),
	})
}

func EventHook(log *slog.Logger) suture.EventHook {
	return func(ei suture.Event) {
		switch e := ei.(type) {
		case suture.EventStopTimeout:
			log.Warn("Service failed to terminate in a timely manner", "supervisor", e.SupervisorName, "service", e.ServiceName)
		case suture.EventServicePanic:
			log.Error("Caught a service panic", "supervisor", e.SupervisorName, "service", e.ServiceName, "panic", e.PanicMsg)
			log.Debug(e.Stacktrace)
		case suture.EventServiceTerminate:
			log.Error("Service failed", "supervisor", e.SupervisorName, "service", e.ServiceName, "error", e.Err, "restarting", e.Restarting)
		case suture.EventBackoff:
			log.Debug("Too many service failures, entering the backoff state", "supervisor", e.SupervisorName)
		case suture.EventResume:
			log.Debug("Exiting backoff state", "supervisor", e.SupervisorName)
		default:
			log.Warn("Unknown suture supervisor event", "type", int(e.Type()), "event", e.String())
		}
	}
}

// Service forces the use of the String method.
type Service interface {
	String() string
	suture.Service
}

func Add(super *suture.Supervisor, service Service) suture.ServiceToken {
	return super.Add(sanitizeService{Service: service})
}

type sanitizeService struct {
	Service
}

func (s sanitizeService) Serve(ctx context.Context) error {
	return SanitizeError(ctx, s.Service.Serve(ctx))
}

// SanitizeError hides context errors that did not come from ctx. Suture stops
// restarting a service that returns a context error.
func SanitizeError(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}

	if ctx.Err() != nil {
		return ctx.Err()
	}

	if !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	errs := []error{errors.New(err.Error())}
	if errors.Is(err, suture.ErrDoNotRestart) {
		errs = append(errs, suture.ErrDoNotRestart)
	}
	if errors.Is(err, suture.ErrTerminateSupervisorTree) {
		errs = append(errs, suture.ErrTerminateSupervisorTree)
	}

	return errors.Join(errs...)
}
