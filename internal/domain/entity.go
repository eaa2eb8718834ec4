package domain

import "time"

// PoolStatus is a point-in-time snapshot of the shared connection pool.
type PoolStatus struct {
	TotalConns        int32
	IdleConns         int32
	AcquiredConns     int32
	ConstructingConns int32
	MaxConns          int32

	AcquireCount         int64
	NewConnsCount        int64
	EmptyAcquireCount    int64
	CanceledAcquireCount int64
	AcquireDuration      time.Duration
}
