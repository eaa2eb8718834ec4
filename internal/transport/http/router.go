package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/XenoDev09/Three-Tier-App/internal/middleware"
	"github.com/XenoDev09/Three-Tier-App/internal/pkg/log"
)

func NewRouter(h *Handler, allowOrigins []string) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.CORS(allowOrigins))
	r.Use(middleware.RequestLog(log.L()))

	r.HandleFunc("/healthz", h.Healthz).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/readyz", h.Readyz).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/pool/stats", h.PoolStats).Methods(http.MethodGet, http.MethodOptions)
	return r
}
