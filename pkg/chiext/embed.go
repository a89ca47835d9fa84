package chiext

import (
	"io/fs"
	"net/http"
	"strings"
)

type StaticFSConfig struct {
	FileSystem fs.FS
	// Root is the directory inside FileSystem that is served at "/".
	Root string
	// CacheControl is sent with every static response when set.
	CacheControl string
}

// StaticEmbedFS serves the top-level files and folders of the filesystem and
// passes every other request to the next handler. "/" serves index.html.
func StaticEmbedFS(config StaticFSConfig) (func(next http.Handler) http.Handler, error) {
	fsys := config.FileSystem
	if config.Root != "" {
		sub, err := fs.Sub(fsys, config.Root)
		if err != nil {
			return nil, err
		}
		fsys = sub
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, err
	}

	files := make(map[string]bool, len(entries))
	dirs := make([]string, 0)
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, "/"+e.Name()+"/")
		} else {
			files["/"+e.Name()] = true
		}
	}

	fileServer := http.FileServer(http.FS(fsys))
	serveIndex := func(w http.ResponseWriter, r *http.Request) {
		http.ServeFileFS(w, r, fsys, "index.html")
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet && r.Method != http.MethodHead {
				next.ServeHTTP(w, r)
				return
			}

			path := r.URL.Path
			isStatic := path == "/" || files[path]
			for _, dir := range dirs {
				if strings.HasPrefix(path, dir) {
					isStatic = true
					break
				}
			}
			if !isStatic {
				next.ServeHTTP(w, r)
				return
			}

			if config.CacheControl != "" {
				w.Header().Set("Cache-Control", config.CacheControl)
			}

			if path == "/" || path == "/index.html" {
				serveIndex(w, r)
				return
			}
			fileServer.ServeHTTP(w, r)
		})
	}, nil
}
