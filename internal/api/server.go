package api

import (
	"encoding/json"
	"log"
	"net/http"

	"task-tracker/pkg/task"
)

// Subscriber delivers task events to stream clients.
type Subscriber interface {
	Subscribe() chan *task.Event
	Unsubscribe(ch chan *task.Event)
}

// Server is the HTTP API server.
type Server struct {
	tasks     task.Store
	events    Subscriber
	staticDir string
	mux       *http.ServeMux
	handler   http.Handler
}

// New creates a new Server. events may be nil, in which case the
// stream endpoint is not registered.
func New(tasks task.Store, events Subscriber, staticDir string) *Server {
	s := &Server{
		tasks:     tasks,
		events:    events,
		staticDir: staticDir,
		mux:       http.NewServeMux(),
	}
	s.routes()
	s.handler = requestID(logRequests(recoverPanics(s.mux)))
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func (s *Server) routes() {
	// Tasks
	s.mux.HandleFunc("GET /tasks", s.handleTaskList)
	s.mux.HandleFunc("POST /tasks", s.handleTaskCreate)
	s.mux.HandleFunc("PUT /tasks/{id}", s.handleTaskToggle)
	s.mux.HandleFunc("DELETE /tasks/{id}", s.handleTaskDelete)
	if s.events != nil {
		s.mux.HandleFunc("GET /tasks/stream", s.handleTaskStream)
	}

	// System
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /status", s.handleStatus)

	// Static page and assets
	s.mux.HandleFunc("GET /{$}", s.handleIndex)
	s.mux.Handle("GET /", http.FileServer(http.Dir(s.staticDir)))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write json: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
