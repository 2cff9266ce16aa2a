package handlers

import (
	"encoding/json"
	"log"
	"net/http"
)

// writeJSON streams v to the client. Generation responses can be large
// (every sheet carries its stops and polyline), so encode failures after the
// header is out can only be logged.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("op=write_json method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}
