package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/asymdl-hash/AsymLAB-sub000/internal/api"
)

func writeJSONError(w http.ResponseWriter, status int, body api.ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}
