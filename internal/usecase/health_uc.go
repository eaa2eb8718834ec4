package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/XenoDev09/Three-Tier-App/internal/domain"
)

const defaultPingTimeout = 2 * time.Second

type healthUC struct {
	probe   domain.PoolProbe
	timeout time.Duration
}

func NewHealthUC(p domain.PoolProbe, timeout time.Duration) domain.HealthUsecase {
	if timeout <= 0 {
		timeout = defaultPingTimeout
	}
	return &healthUC{probe: p, timeout: timeout}
}

func (u *healthUC) Ready(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()
	if err := u.probe.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}
	return nil
}

func (u *healthUC) Stats(_ context.Context) domain.PoolStatus {
	return u.probe.Stat()
}
