package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/XenoDev09/Three-Tier-App/internal/domain"
	"github.com/XenoDev09/Three-Tier-App/internal/mocks"
)

func TestNewHealthUC(t *testing.T) {
	probe := mocks.NewPoolProbe(t)

	t.Run("explicit_timeout", func(t *testing.T) {
		uc := NewHealthUC(probe, time.Second)
		u, ok := uc.(*healthUC)
		require.True(t, ok)
		assert.Equal(t, probe, u.probe)
		assert.Equal(t, time.Second, u.timeout)
	})

	t.Run("zero_timeout_uses_default", func(t *testing.T) {
		u := NewHealthUC(probe, 0).(*healthUC)
		assert.Equal(t, defaultPingTimeout, u.timeout)
	})
}

func Test_healthUC_Ready(t *testing.T) {
	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		probe := mocks.NewPoolProbe(t)
		probe.
			On("Ping", mock.MatchedBy(func(c context.Context) bool {
				_, ok := c.Deadline()
				return ok
			})).
			Return(nil).
			Once()

		uc := NewHealthUC(probe, time.Second)
		require.NoError(t, uc.Ready(ctx))
	})

	t.Run("ping_error_is_unavailable", func(t *testing.T) {
		probe := mocks.NewPoolProbe(t)
		probe.
			On("Ping", mock.Anything).
			Return(errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")).
			Once()

		uc := NewHealthUC(probe, time.Second)
		err := uc.Ready(ctx)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrUnavailable))
		assert.Contains(t, err.Error(), "connection refused")
	})
}

func Test_healthUC_Stats(t *testing.T) {
	probe := mocks.NewPoolProbe(t)
	want := domain.PoolStatus{TotalConns: 3, IdleConns: 2, AcquiredConns: 1, MaxConns: 10, AcquireCount: 99}
	probe.On("Stat").Return(want).Once()

	uc := NewHealthUC(probe, time.Second)
	assert.Equal(t, want, uc.Stats(context.Background()))
}
