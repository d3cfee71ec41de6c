// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

// Package httpd is a development file server for the web build of the
// emulator. It serves a directory, with listings, and makes sure that
// WebAssembly modules are sent with the content type required by
// WebAssembly.instantiateStreaming().
package httpd

import (
	"fmt"
	"net"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jetsetilly/chip8web/logger"
	"github.com/pkg/errors"
)

// DefaultPort is the port used if none is specified.
const DefaultPort = 8081

// WasmSuffix is the file extension of WebAssembly modules.
const WasmSuffix = ".wasm"

// WasmContentType is the content type sent for files with WasmSuffix.
const WasmContentType = "application/wasm"

type wasmHandler struct {
	fileHandler http.Handler
}

// WasmHandler sets the content type for WebAssembly modules before passing
// the request to the next handler. The extension is matched without regard
// to case.
func WasmHandler(next http.Handler) http.Handler {
	return &wasmHandler{
		fileHandler: next,
	}
}

func (hnd *wasmHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if strings.EqualFold(path.Ext(r.URL.Path), WasmSuffix) {
		w.Header().Set("Content-Type", WasmContentType)
	}
	hnd.fileHandler.ServeHTTP(w, r)
}

// requestLogger logs every request once it has been served
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			logger.Fields(logger.Allow, "httpd", map[string]any{
				"status":   ww.Status(),
				"duration": time.Since(start).Round(time.Microsecond),
			}, fmt.Sprintf("%s %s", r.Method, r.RequestURI))
		}()
		next.ServeHTTP(ww, r)
	})
}

// Router returns the handler serving the contents of dir.
func Router(dir string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)
	r.Handle("/*", WasmHandler(http.FileServer(http.Dir(dir))))
	return r
}

// Banner is the message printed once the server is listening.
func Banner(port int) string {
	return fmt.Sprintf("serving HTTP on port %d (%s)", port, URL(port))
}

// URL returns the local address of a server on the port.
func URL(port int) string {
	return fmt.Sprintf("http://localhost:%d", port)
}

// Listen binds the port on all interfaces. An error is returned if the port
// is already in use.
func Listen(port int) (net.Listener, error) {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, errors.Wrap(err, "httpd")
	}
	return ln, nil
}

// Serve the contents of dir on a listener returned by Listen(). Serve only
// returns if the server fails.
func Serve(ln net.Listener, dir string) error {
	srv := &http.Server{
		Handler:        Router(dir),
		MaxHeaderBytes: 1 << 20,
	}
	return errors.Wrap(srv.Serve(ln), "httpd")
}
