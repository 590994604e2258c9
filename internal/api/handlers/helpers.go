package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"fuelroute/internal/api/dto"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

// writeDetail writes the {"detail": "..."} envelope spec §6/§7 mandate
// for both validation failures and service-level failures.
func writeDetail(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, dto.ErrorResponse{Detail: msg})
}
