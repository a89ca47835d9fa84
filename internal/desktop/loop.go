package desktop

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ItsNotGoodName/webdesk/internal/bus"
)

var ErrSessionClosed = errors.New("session closed")

type (
	EventSessionOpened struct {
		ID   string
		Loop *Loop
	}
	EventSessionClosed struct {
		ID string
	}
)

// Result is the model's state after a call.
type Result struct {
	Windows  []WindowView
	Dragging bool
}

type request struct {
	msg   Msg
	reply chan reply
}

type reply struct {
	result Result
	err    error
}

// NewLoop starts the goroutine that owns model until ctx is done or the loop
// is closed.
func NewLoop(ctx context.Context, model *Model) *Loop {
	l := &Loop{
		ID:       model.ID,
		hello:    model.Hello(),
		hub:      bus.NewHub[Frame](),
		requestC: make(chan request),
		doneC:    make(chan struct{}),
		closeC:   make(chan struct{}),
	}

	bus.Publish(EventSessionOpened{ID: l.ID, Loop: l})

	go l.run(ctx, model)

	return l
}

type Loop struct {
	ID       string
	hello    Frame
	hub      *bus.Hub[Frame]
	requestC chan request
	doneC    chan struct{}
	closeC   chan struct{}
}

// Hello returns the first frame for a new viewer.
func (l *Loop) Hello() Frame {
	return l.hello
}

// Subscribe returns the frames produced after the call.
func (l *Loop) Subscribe(ctx context.Context) (<-chan Frame, func()) {
	return l.hub.Subscribe(ctx)
}

// Send queues msgs without waiting for them to be applied.
func (l *Loop) Send(ctx context.Context, msgs ...Msg) error {
	for _, msg := range msgs {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.doneC:
			return ErrSessionClosed
		case l.requestC <- request{msg: msg}:
		}
	}
	return nil
}

// Call applies msg and waits for the result.
func (l *Loop) Call(ctx context.Context, msg Msg) (Result, error) {
	req := request{msg: msg, reply: make(chan reply, 1)}

	select {
	case <-ctx.Done():
		return Result{}, ctx.Err()
	case <-l.doneC:
		return Result{}, ErrSessionClosed
	case l.requestC <- req:
	}

	select {
	case <-ctx.Done():
		return Result{}, ctx.Err()
	case <-l.doneC:
		return Result{}, ErrSessionClosed
	case r := <-req.reply:
		return r.result, r.err
	}
}

// Query returns the model's state without changing it.
func (l *Loop) Query(ctx context.Context) (Result, error) {
	return l.Call(ctx, Snapshot{})
}

func (l *Loop) Close(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-l.doneC:
		return nil
	case l.closeC <- struct{}{}:
		<-l.doneC
		return nil
	}
}

// Done is closed after the loop stops.
func (l *Loop) Done() <-chan struct{} {
	return l.doneC
}

func (l *Loop) run(ctx context.Context, model *Model) {
	defer func() {
		bus.Publish(EventSessionClosed{ID: l.ID})
		close(l.doneC)
	}()

	log := slog.With("package", "desktop", "session", l.ID)
	log.Debug("Session started")
	defer log.Debug("Session stopped")

	for {
		select {
		case <-ctx.Done():
			return
		case <-l.closeC:
			return
		case req := <-l.requestC:
			frame, err := model.Update(req.msg)
			if err != nil {
				log.Debug("Failed to apply message", "error", err)
			}

			if req.reply != nil {
				req.reply <- reply{
					result: Result{Windows: model.Windows(), Dragging: model.Dragging()},
					err:    err,
				}
			}

			if len(frame.Ops) == 0 {
				continue
			}
			if err := l.hub.Broadcast(ctx, frame); err != nil {
				return
			}
		}
	}
}
