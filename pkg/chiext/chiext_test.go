package chiext

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticEmbedFS(t *testing.T) {
	fsys := fstest.MapFS{
		"public/index.html":   {Data: []byte("<h1>index</h1>")},
		"public/app.js":       {Data: []byte("console.log(1)")},
		"public/assets/a.css": {Data: []byte("body{}")},
		"private/secret.txt":  {Data: []byte("secret")},
	}

	mw, err := StaticEmbedFS(StaticFSConfig{FileSystem: fsys, Root: "public", CacheControl: "no-cache"})
	require.NoError(t, err)

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	tests := []struct {
		method string
		path   string
		status int
		body   string
	}{
		{http.MethodGet, "/", http.StatusOK, "<h1>index</h1>"},
		{http.MethodGet, "/app.js", http.StatusOK, "console.log(1)"},
		{http.MethodGet, "/assets/a.css", http.StatusOK, "body{}"},
		{http.MethodGet, "/api/build", http.StatusTeapot, ""},
		{http.MethodGet, "/secret.txt", http.StatusTeapot, ""},
		{http.MethodPost, "/app.js", http.StatusTeapot, ""},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

		assert.Equal(t, tt.status, rec.Code, tt.path)
		if tt.body != "" {
			assert.Equal(t, tt.body, rec.Body.String(), tt.path)
			assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"), tt.path)
		}
	}
}

func TestStaticEmbedFSBadRoot(t *testing.T) {
	_, err := StaticEmbedFS(StaticFSConfig{FileSystem: fstest.MapFS{}, Root: "missing"})
	assert.Error(t, err)
}

func TestLogger(t *testing.T) {
	handler := Logger()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
