package api

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	page, err := os.ReadFile(filepath.Join(s.staticDir, "index.html"))
	if err != nil {
		log.Printf("api: load index: %v", err)
		writeError(w, 500, fmt.Sprintf("Error loading index.html: %v", err))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(200)
	w.Write(page)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, 200, map[string]string{"status": "ok"})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	st, err := s.tasks.Stats(r.Context())
	if err != nil {
		writeTaskError(w, err)
		return
	}
	writeJSON(w, 200, st)
}
