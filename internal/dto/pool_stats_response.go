package dto

type PoolStatsResponse struct {
	TotalConns           int32 `json:"total_conns"`
	IdleConns            int32 `json:"idle_conns"`
	AcquiredConns        int32 `json:"acquired_conns"`
	ConstructingConns    int32 `json:"constructing_conns"`
	MaxConns             int32 `json:"max_conns"`
	AcquireCount         int64 `json:"acquire_count"`
	NewConnsCount        int64 `json:"new_conns_count"`
	EmptyAcquireCount    int64 `json:"empty_acquire_count"`
	CanceledAcquireCount int64 `json:"canceled_acquire_count"`
	AcquireDurationMs    int64 `json:"acquire_duration_ms"`
}
