package db

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"sync/atomic"

	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrClosed = errors.New("db: provider closed")

// Provider owns the process-wide pool. The pool is built on the first call to
// Pool and every later call returns that same instance, or the same error.
// After Close, Pool returns ErrClosed.
type Provider struct {
	cfg   PoolConfig
	hooks Hooks

	once   sync.Once
	pool   *pgxpool.Pool
	err    error
	closed atomic.Bool
}

func NewProvider(pc PoolConfig, hooks Hooks) *Provider {
	return &Provider{cfg: pc, hooks: hooks}
}

func (p *Provider) Pool(ctx context.Context) (*pgxpool.Pool, error) {
	p.once.Do(func() {
		p.pool, p.err = NewPool(ctx, p.cfg, p.hooks)
	})
	if p.closed.Load() {
		return nil, ErrClosed
	}
	return p.pool, p.err
}

// Close closes the pool if it was built. Only the process shutdown path calls it.
func (p *Provider) Close() {
	p.once.Do(func() { p.err = ErrClosed })
	if p.closed.Swap(true) {
		return
	}
	if p.pool != nil {
		p.pool.Close()
	}
}

var (
	urlCredentials = regexp.MustCompile(`(://[^:@/\s]*):[^@\s]*@`)
	kvPassword     = regexp.MustCompile(`(?i)(password=)('[^']*'|[^\s&]+)`)
)

// Redact hides the password of a connection string, URL or keyword/value form.
func Redact(connString string) string {
	s := urlCredentials.ReplaceAllString(connString, "$1:***@")
	return kvPassword.ReplaceAllString(s, "${1}***")
}
