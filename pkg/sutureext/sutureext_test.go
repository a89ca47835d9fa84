package sutureext

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/thejerf/suture/v4"
)

func TestSanitizeError(t *testing.T) {
	ctx := context.Background()

	assert.NoError(t, SanitizeError(ctx, nil))

	plain := errors.New("plain")
	assert.Equal(t, plain, SanitizeError(ctx, plain))

	err := SanitizeError(ctx, fmt.Errorf("dial: %w", context.DeadlineExceeded))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, context.DeadlineExceeded)
	assert.EqualError(t, err, "dial: context deadline exceeded")

	err = SanitizeError(ctx, errors.Join(context.Canceled, suture.ErrDoNotRestart))
	assert.NotErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, err, suture.ErrDoNotRestart)
}

func TestSanitizeErrorKeepsOwnContextError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, SanitizeError(ctx, errors.New("stopped")), context.Canceled)
}

type onceService struct {
	ran chan struct{}
}

func (s onceService) String() string {
	return "once"
}

func (s onceService) Serve(ctx context.Context) error {
	close(s.ran)
	return suture.ErrDoNotRestart
}

func TestAdd(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	svc := onceService{ran: make(chan struct{})}
	super := New("test")
	Add(super, svc)

	errC := super.ServeBackground(ctx)

	select {
	case <-svc.ran:
	case <-ctx.Done():
		t.Fatal("service did not run")
	}

	cancel()
	<-errC
}
