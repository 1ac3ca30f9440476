package command

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/code19m/errx"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/rise-and-shine/reactive/logger"
	"github.com/rise-and-shine/reactive/observable"
	"github.com/rise-and-shine/reactive/result"
)

// invoker is the signature every execution middleware wraps.
type invoker[T any] func(ctx context.Context) result.Result[T]

// engine holds the state machine shared by all command arities: the
// in-flight flag, the last settlement, and the notifier announcing every
// transition. Arity-specific shells only differ in how they forward
// arguments into the invoker.
type engine[T any] struct {
	name     string
	logger   logger.Logger
	opts     Options
	notifier *observable.Notifier

	mu      sync.Mutex
	running bool
	last    *result.Result[T]
}

func newEngine[T any](opts Options) *engine[T] {
	return &engine[T]{
		name:   opts.name,
		logger: opts.logger.Named(opts.name),
		opts:   opts,
		notifier: observable.NewNotifier(
			observable.WithName(opts.name),
			observable.WithLogger(opts.logger),
		),
	}
}

// Running reports whether an execution is currently in flight.
func (e *engine[T]) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running
}

// IsCompleted reports whether the last execution settled with a success.
// It is false before the first settlement and after ClearResult.
func (e *engine[T]) IsCompleted() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.last != nil && e.last.IsOk()
}

// IsError reports whether the last execution settled with a failure.
// It is false before the first settlement and after ClearResult.
func (e *engine[T]) IsError() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.last != nil && e.last.IsErr()
}

// LastResult returns the settlement of the most recent execution. The second
// return value is false when no execution has settled yet, or after
// ClearResult.
func (e *engine[T]) LastResult() (result.Result[T], bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.last == nil {
		return result.Result[T]{}, false
	}
	return *e.last, true
}

// ClearResult discards the last settlement and notifies subscribers once.
// The in-flight flag is untouched, so calling it during a running execution
// is legal and only clears the result.
func (e *engine[T]) ClearResult() {
	e.mu.Lock()
	e.last = nil
	e.mu.Unlock()

	e.notifier.NotifyAll()
}

// Subscribe registers a listener for state-transition notifications.
func (e *engine[T]) Subscribe(l observable.Listener) observable.Subscription {
	return e.notifier.Subscribe(l)
}

// Unsubscribe removes a previously registered listener.
func (e *engine[T]) Unsubscribe(s observable.Subscription) {
	e.notifier.Unsubscribe(s)
}

// execute runs one full transition cycle: guard, enter running, invoke the
// action through the middleware chain, settle. It blocks until the action
// settles; callers wanting fire-and-forget semantics run it on their own
// goroutine.
func (e *engine[T]) execute(ctx context.Context, invoke invoker[T]) {
	if !e.begin() {
		e.logger.Debugw("execution skipped: already running")
		return
	}

	start := time.Now()
	res := e.buildChain(invoke)(ctx)
	e.settle(res)

	log := e.logger.With("duration", time.Since(start).String())
	if err, failed := res.Err(); failed {
		log.Errorx(err)
	} else {
		log.Debugw("execution settled")
	}
}

// begin is the in-flight guard: it flips the command into the running state
// and fires the first notification, or reports false when an execution is
// already in flight. The test-and-set and the clearing of the previous
// settlement happen under one lock so observers never see a stale result
// next to running=true.
func (e *engine[T]) begin() bool {
	e.mu.Lock()
	if e.running {
		e.mu.Unlock()
		return false
	}
	e.running = true
	e.last = nil
	e.mu.Unlock()

	e.notifier.NotifyAll()
	return true
}

// settle records the outcome, leaves the running state and fires the second
// notification.
func (e *engine[T]) settle(res result.Result[T]) {
	e.mu.Lock()
	e.running = false
	e.last = &res
	e.mu.Unlock()

	e.notifier.NotifyAll()
}

// buildChain wraps the action invocation with the configured middleware.
// Recovery sits outermost so a panic anywhere below still settles the
// execution with a failure.
func (e *engine[T]) buildChain(invoke invoker[T]) invoker[T] {
	h := invoke

	h = e.wrapRetry(h)
	h = e.wrapTimeout(h)
	h = e.wrapTracing(h)
	h = e.wrapRecovery(h)

	return h
}

// wrapRecovery converts a panic inside the action into a failure result, so
// the single-error-channel contract holds even for misbehaving actions.
func (e *engine[T]) wrapRecovery(next invoker[T]) invoker[T] {
	return func(ctx context.Context) (res result.Result[T]) {
		defer func() {
			if r := recover(); r != nil {
				stackTrace := make([]byte, 4096)
				stackTrace = stackTrace[:runtime.Stack(stackTrace, false)]

				res = result.Err[T](errx.New("[command]: panic recovered in action", errx.WithDetails(errx.D{
					"command_name": e.name,
					"panic_values": fmt.Sprintf("%v", r),
					"stack_trace":  string(stackTrace),
				})))
			}
		}()

		return next(ctx)
	}
}

// wrapTracing opens one span per execution and records the settlement status.
func (e *engine[T]) wrapTracing(next invoker[T]) invoker[T] {
	if !e.opts.tracing {
		return next
	}

	return func(ctx context.Context) result.Result[T] {
		ctx, span := otel.Tracer("reactive/command").Start(ctx, fmt.Sprintf("COMMAND %s", e.name),
			trace.WithAttributes(
				attribute.String("command.name", e.name),
			),
			trace.WithSpanKind(trace.SpanKindInternal),
		)
		defer span.End()

		res := next(ctx)
		if err, failed := res.Err(); failed {
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			} else {
				span.SetStatus(codes.Error, "failure")
			}
		} else {
			span.SetStatus(codes.Ok, "")
		}

		return res
	}
}

// wrapTimeout bounds a single execution. The action is expected to honour
// context cancellation; a run that outlives the deadline still settles,
// typically with a failure wrapping ctx.Err().
func (e *engine[T]) wrapTimeout(next invoker[T]) invoker[T] {
	if e.opts.timeout <= 0 {
		return next
	}

	return func(ctx context.Context) result.Result[T] {
		ctx, cancel := context.WithTimeout(ctx, e.opts.timeout)
		defer cancel()

		return next(ctx)
	}
}

// wrapRetry re-invokes a failing action with backoff and jitter. All
// attempts happen inside the single running window, so observers still see
// exactly one enter-running and one settle notification.
func (e *engine[T]) wrapRetry(next invoker[T]) invoker[T] {
	if e.opts.retryAttempts <= 1 {
		return next
	}

	return func(ctx context.Context) result.Result[T] {
		log := e.logger.Named("retry")

		var res result.Result[T]
		err := retry.Do(
			func() error {
				res = next(ctx)
				if err, failed := res.Err(); failed && err != nil {
					return err
				}
				return nil
			},
			retry.Context(ctx),
			retry.Attempts(e.opts.retryAttempts),
			retry.Delay(e.opts.retryDelay),
			retry.MaxJitter(10),
			retry.LastErrorOnly(true),
			retry.OnRetry(func(n uint, err error) {
				log.Debugw("retrying action", "attempt", n+1, "error", err.Error())
			}),
		)
		if err != nil {
			return result.Err[T](err)
		}

		return res
	}
}
