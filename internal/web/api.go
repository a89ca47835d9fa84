package web

import (
	"context"
	"errors"
	"net/http"

	"github.com/ItsNotGoodName/webdesk/internal/build"
	"github.com/ItsNotGoodName/webdesk/internal/desktop"
	"github.com/ItsNotGoodName/webdesk/internal/wm"
	"github.com/danielgtaylor/huma/v2"
)

type (
	BuildOutput struct {
		Body build.Build
	}

	Session struct {
		ID string `json:"id" doc:"Session id"`
	}
	SessionsOutput struct {
		Body []Session
	}

	SessionInput struct {
		ID string `path:"id" doc:"Session id"`
	}
	WindowsOutput struct {
		Body []desktop.WindowView
	}

	OpenWindowInput struct {
		ID   string `path:"id" doc:"Session id"`
		Body struct {
			Key   string `json:"key" minLength:"1" doc:"Content key, e.g. about or proj-map:README.txt"`
			Title string `json:"title,omitempty" doc:"Title override for a new window"`
		}
	}
	WindowOutput struct {
		Body desktop.WindowView
	}

	CloseWindowInput struct {
		ID  string `path:"id" doc:"Session id"`
		Key string `path:"key" doc:"Window key"`
	}
)

// RegisterAPI adds the REST operations to api.
func RegisterAPI(api huma.API, sessions *Sessions) {
	huma.Get(api, "/api/build", func(ctx context.Context, input *struct{}) (*BuildOutput, error) {
		return &BuildOutput{Body: build.Current}, nil
	})

	huma.Get(api, "/api/sessions", func(ctx context.Context, input *struct{}) (*SessionsOutput, error) {
		ids := sessions.IDs()
		out := &SessionsOutput{Body: make([]Session, 0, len(ids))}
		for _, id := range ids {
			out.Body = append(out.Body, Session{ID: id})
		}
		return out, nil
	})

	huma.Get(api, "/api/sessions/{id}/windows", func(ctx context.Context, input *SessionInput) (*WindowsOutput, error) {
		loop, err := lookup(sessions, input.ID)
		if err != nil {
			return nil, err
		}

		res, err := loop.Query(ctx)
		if err != nil {
			return nil, apiError(err)
		}

		return &WindowsOutput{Body: res.Windows}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "open-window",
		Method:        http.MethodPost,
		Path:          "/api/sessions/{id}/windows",
		Summary:       "Open window",
		DefaultStatus: http.StatusCreated,
	}, func(ctx context.Context, input *OpenWindowInput) (*WindowOutput, error) {
		loop, err := lookup(sessions, input.ID)
		if err != nil {
			return nil, err
		}

		res, err := loop.Call(ctx, desktop.Open{Key: input.Body.Key, Title: input.Body.Title})
		if err != nil {
			return nil, apiError(err)
		}

		for _, w := range res.Windows {
			if w.Key == input.Body.Key {
				return &WindowOutput{Body: w}, nil
			}
		}
		return nil, huma.Error500InternalServerError("window not open after open")
	})

	huma.Delete(api, "/api/sessions/{id}/windows/top", func(ctx context.Context, input *SessionInput) (*struct{}, error) {
		return call(ctx, sessions, input.ID, desktop.CloseTopmost{})
	})

	huma.Delete(api, "/api/sessions/{id}/windows/{key}", func(ctx context.Context, input *CloseWindowInput) (*struct{}, error) {
		return call(ctx, sessions, input.ID, desktop.CloseWindow{Key: input.Key})
	})
}

func lookup(sessions *Sessions, id string) (*desktop.Loop, error) {
	loop, ok := sessions.Get(id)
	if !ok {
		return nil, huma.Error404NotFound("session not found")
	}
	return loop, nil
}

func call(ctx context.Context, sessions *Sessions, id string, msg desktop.Msg) (*struct{}, error) {
	loop, err := lookup(sessions, id)
	if err != nil {
		return nil, err
	}

	if _, err := loop.Call(ctx, msg); err != nil {
		return nil, apiError(err)
	}
	return &struct{}{}, nil
}

func apiError(err error) error {
	switch {
	case errors.Is(err, desktop.ErrSessionClosed):
		return huma.Error404NotFound("session not found", err)
	case errors.Is(err, wm.ErrNoContent):
		return huma.Error422UnprocessableEntity("no content for key", err)
	default:
		return err
	}
}
