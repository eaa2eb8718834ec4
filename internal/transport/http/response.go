package http

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/XenoDev09/Three-Tier-App/internal/pkg/log"
)

type errorBody struct {
	Error   bool   `json:"error"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.L().Debug("write response", zap.Int("status", status), zap.Error(err))
	}
}

func writeErr(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Error: true, Code: status, Message: msg})
}
