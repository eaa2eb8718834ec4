package http

import (
	"net/http"

	"github.com/XenoDev09/Three-Tier-App/internal/domain"
	"github.com/XenoDev09/Three-Tier-App/internal/dto"
	"github.com/XenoDev09/Three-Tier-App/internal/pkg/log"
)

type Handler struct {
	UC domain.HealthUsecase
}

func NewHandler(uc domain.HealthUsecase) *Handler { return &Handler{UC: uc} }

// Healthz is the liveness probe and never touches the database.
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, StatusOK, dto.StatusResponse{Status: MsgOK})
}

func (h *Handler) Readyz(w http.ResponseWriter, r *http.Request) {
	if err := h.UC.Ready(r.Context()); err != nil {
		log.Error.Printf("readyz not_ready err=%v", err)
		writeErr(w, StatusServiceUnavailable, MsgUnavailable)
		return
	}
	writeJSON(w, StatusOK, dto.StatusResponse{Status: MsgOK})
}

func (h *Handler) PoolStats(w http.ResponseWriter, r *http.Request) {
	s := h.UC.Stats(r.Context())
	writeJSON(w, StatusOK, dto.PoolStatsResponse{
		TotalConns:           s.TotalConns,
		IdleConns:            s.IdleConns,
		AcquiredConns:        s.AcquiredConns,
		ConstructingConns:    s.ConstructingConns,
		MaxConns:             s.MaxConns,
		AcquireCount:         s.AcquireCount,
		NewConnsCount:        s.NewConnsCount,
		EmptyAcquireCount:    s.EmptyAcquireCount,
		CanceledAcquireCount: s.CanceledAcquireCount,
		AcquireDurationMs:    s.AcquireDuration.Milliseconds(),
	})
}
