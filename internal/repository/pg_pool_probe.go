package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/XenoDev09/Three-Tier-App/internal/domain"
)

type PgPoolProbe struct{ db *pgxpool.Pool }

func NewPgPoolProbe(db *pgxpool.Pool) *PgPoolProbe { return &PgPoolProbe{db: db} }

func (r *PgPoolProbe) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

func (r *PgPoolProbe) Stat() domain.PoolStatus {
	return toPoolStatus(r.db.Stat())
}

func toPoolStatus(s *pgxpool.Stat) domain.PoolStatus {
	if s == nil {
		return domain.PoolStatus{}
	}
	return domain.PoolStatus{
		TotalConns:           s.TotalConns(),
		IdleConns:            s.IdleConns(),
		AcquiredConns:        s.AcquiredConns(),
		ConstructingConns:    s.ConstructingConns(),
		MaxConns:             s.MaxConns(),
		AcquireCount:         s.AcquireCount(),
		NewConnsCount:        s.NewConnsCount(),
		EmptyAcquireCount:    s.EmptyAcquireCount(),
		CanceledAcquireCount: s.CanceledAcquireCount(),
		AcquireDuration:      s.AcquireDuration(),
	}
}
