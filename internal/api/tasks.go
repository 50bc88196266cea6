package api

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"task-tracker/pkg/task"
)

type createRequest struct {
	Text *string `json:"text"`
}

type taskResponse struct {
	Task    *task.Task `json:"task"`
	Success bool       `json:"success"`
}

func (s *Server) handleTaskList(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.tasks.List(r.Context())
	if err != nil {
		writeTaskError(w, err)
		return
	}
	writeJSON(w, 200, map[string][]task.Task{"tasks": tasks})
}

func (s *Server) handleTaskCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	// An empty body is a request without a text field.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, 500, "invalid JSON: "+err.Error())
		return
	}
	t, err := s.tasks.Create(r.Context(), req.Text)
	if err != nil {
		writeTaskError(w, err)
		return
	}
	writeJSON(w, 201, taskResponse{Task: t, Success: true})
}

func (s *Server) handleTaskToggle(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	t, err := s.tasks.Toggle(r.Context(), id)
	if err != nil {
		writeTaskError(w, err)
		return
	}
	writeJSON(w, 200, taskResponse{Task: t, Success: true})
}

func (s *Server) handleTaskDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	t, err := s.tasks.Delete(r.Context(), id)
	if err != nil {
		writeTaskError(w, err)
		return
	}
	writeJSON(w, 200, taskResponse{Task: t, Success: true})
}

// pathID parses the {id} segment. Anything that is not an integer names
// no task, so it is answered with 404.
func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeTaskError(w, task.ErrNotFound)
		return 0, false
	}
	return id, true
}

// writeTaskError maps store errors to status codes.
func writeTaskError(w http.ResponseWriter, err error) {
	var verr *task.ValidationError
	switch {
	case errors.As(err, &verr):
		writeError(w, 400, verr.Msg)
	case errors.Is(err, task.ErrInvalidInput):
		writeError(w, 400, err.Error())
	case errors.Is(err, task.ErrNotFound):
		writeError(w, 404, "Task not found")
	default:
		log.Printf("api: %v", err)
		writeError(w, 500, err.Error())
	}
}
