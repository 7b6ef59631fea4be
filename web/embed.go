// Package web carries the compiled SPA bundle inside the binary so the
// platform ships as a single artifact.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed dist/*
var distFS embed.FS

// GetFileSystem exposes the bundle rooted at dist/ for http.FileServer.
func GetFileSystem() (http.FileSystem, error) {
	subFS, err := fs.Sub(distFS, "dist")
	if err != nil {
		return nil, err
	}
	return http.FS(subFS), nil
}
