// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package testutil

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// Server is a fake upstream dictionary repository. Files are served by URL
// path, e.g. "/en/en_US.dic". Unknown paths return 404.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	files    map[string]string
	broken   map[string]bool
	requests []string
}

// NewServer starts a new Server serving files. The server is closed when the
// test finishes.
func NewServer(t *testing.T, files map[string]string) *Server {
	t.Helper()

	s := &Server{
		files:  map[string]string{},
		broken: map[string]bool{},
	}
	for p, c := range files {
		s.files[p] = c
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)

	return s
}

// Break makes requests for path fail at the transport level. The response
// headers promise a body that is cut short by closing the connection.
func (s *Server) Break(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.broken[path] = true
}

// Requests returns the paths requested so far, in order.
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requests...)
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.requests = append(s.requests, r.URL.Path)
	broken := s.broken[r.URL.Path]
	content, ok := s.files[r.URL.Path]
	s.mu.Unlock()

	if broken {
		hj, ok := w.(http.Hijacker)
		if !ok {
			http.Error(w, "hijacking not supported", http.StatusInternalServerError)
			return
		}
		conn, buf, err := hj.Hijack()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		defer conn.Close()
		_, _ = buf.WriteString("HTTP/1.1 200 OK\r\nContent-Length: 1024\r\n\r\ntruncated")
		_ = buf.Flush()
		return
	}

	if !ok {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(content))
}
