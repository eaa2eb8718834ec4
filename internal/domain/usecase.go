//go:generate mockery --name=HealthUsecase --output=../mocks --case=underscore
package domain

import "context"

type HealthUsecase interface {
	Ready(ctx context.Context) error
	Stats(ctx context.Context) PoolStatus
}
