//go:generate mockery --name=PoolProbe --output=../mocks --case=underscore
package domain

import "context"

type PoolProbe interface {
	Ping(ctx context.Context) error
	Stat() PoolStatus
}
