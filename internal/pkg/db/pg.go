package db

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/multitracer"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/XenoDev09/Three-Tier-App/internal/config"
)

// PoolConfig is everything the pool is built from. Zero sizing fields keep the
// pgxpool defaults.
type PoolConfig struct {
	ConnString string
	RequireTLS bool

	MaxConns          int32
	MinConns          int32
	MaxConnLifetime   time.Duration
	MaxConnIdleTime   time.Duration
	HealthCheckPeriod time.Duration

	Tracing bool
}

func FromConfig(c config.Config) PoolConfig {
	return PoolConfig{
		ConnString:        c.DatabaseURL,
		RequireTLS:        c.RequireTLS(),
		MaxConns:          c.DBMaxConns,
		MinConns:          c.DBMinConns,
		MaxConnLifetime:   c.DBMaxConnLifetime,
		MaxConnIdleTime:   c.DBMaxConnIdleTime,
		HealthCheckPeriod: c.DBHealthCheckPeriod,
		Tracing:           c.DBTracing,
	}
}

// BuildConfig turns pc into a pgxpool config with the transport settings and
// hooks applied. It does not open any connection.
func BuildConfig(pc PoolConfig, hooks Hooks) (*pgxpool.Config, error) {
	if hooks == nil {
		hooks = NopHooks{}
	}
	cfg, err := pgxpool.ParseConfig(pc.ConnString)
	if err != nil {
		return nil, fmt.Errorf("parse db config: %w", err)
	}

	applyTransport(&cfg.ConnConfig.Config, pc.RequireTLS)

	if pc.MaxConns > 0 {
		cfg.MaxConns = pc.MaxConns
	}
	if pc.MinConns > 0 {
		cfg.MinConns = pc.MinConns
	}
	if pc.MaxConnLifetime > 0 {
		cfg.MaxConnLifetime = pc.MaxConnLifetime
	}
	if pc.MaxConnIdleTime > 0 {
		cfg.MaxConnIdleTime = pc.MaxConnIdleTime
	}
	if pc.HealthCheckPeriod > 0 {
		cfg.HealthCheckPeriod = pc.HealthCheckPeriod
	}

	cfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		hooks.OnConnect(ctx, connInfo(conn))
		return nil
	}

	cfg.ConnConfig.OnPgError = pgErrorHandler(hooks, cfg.ConnConfig.OnPgError)

	var tracer pgx.QueryTracer = &errorTracer{hooks: hooks}
	if pc.Tracing {
		tracer = multitracer.New(tracer, otelpgx.NewTracer())
	}
	cfg.ConnConfig.Tracer = tracer

	return cfg, nil
}

// NewPool builds the pool. Connections are opened lazily, so an unreachable
// server is reported through hooks.OnError on first use, not here.
func NewPool(ctx context.Context, pc PoolConfig, hooks Hooks) (*pgxpool.Pool, error) {
	cfg, err := BuildConfig(pc, hooks)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	return pool, nil
}

// applyTransport forces every host attempt to the same transport: TLS without
// peer verification when requireTLS is set, plaintext otherwise. Fallbacks that
// only differ by TLS mode collapse into one attempt per host.
func applyTransport(cc *pgconn.Config, requireTLS bool) {
	tlsFor := func(host string) *tls.Config {
		if !requireTLS || isUnixSocket(host) {
			return nil
		}
		return &tls.Config{InsecureSkipVerify: true, ServerName: host}
	}

	cc.TLSConfig = tlsFor(cc.Host)

	seen := map[string]struct{}{hostPort(cc.Host, cc.Port): {}}
	fallbacks := make([]*pgconn.FallbackConfig, 0, len(cc.Fallbacks))
	for _, fb := range cc.Fallbacks {
		k := hostPort(fb.Host, fb.Port)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		fallbacks = append(fallbacks, &pgconn.FallbackConfig{Host: fb.Host, Port: fb.Port, TLSConfig: tlsFor(fb.Host)})
	}
	cc.Fallbacks = fallbacks
}

func isUnixSocket(host string) bool { return strings.HasPrefix(host, "/") }

func hostPort(host string, port uint16) string {
	return net.JoinHostPort(host, strconv.Itoa(int(port)))
}
