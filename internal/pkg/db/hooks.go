package db

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// Hooks observes pool events. Implementations are called from pgx's own
// goroutines, possibly concurrently, and must not block or panic.
type Hooks interface {
	OnConnect(ctx context.Context, info ConnInfo)
	OnError(ctx context.Context, err error)
}

// ConnInfo describes a freshly established connection.
type ConnInfo struct {
	Host     string
	Port     uint16
	Database string
	User     string
	PID      uint32
}

func connInfo(conn *pgx.Conn) ConnInfo {
	if conn == nil {
		return ConnInfo{}
	}
	cc := conn.Config()
	info := ConnInfo{Host: cc.Host, Port: cc.Port, Database: cc.Database, User: cc.User}
	if pc := conn.PgConn(); pc != nil {
		info.PID = pc.PID()
	}
	return info
}

type NopHooks struct{}

func (NopHooks) OnConnect(context.Context, ConnInfo) {}
func (NopHooks) OnError(context.Context, error)      {}

// LogHooks writes one info line per new connection and one error line per
// reported failure.
type LogHooks struct{ L *zap.Logger }

func NewLogHooks(l *zap.Logger) LogHooks {
	if l == nil {
		l = zap.NewNop()
	}
	return LogHooks{L: l.Named("postgres")}
}

func (h LogHooks) OnConnect(_ context.Context, info ConnInfo) {
	h.L.Info("connected to PostgreSQL database",
		zap.String("host", info.Host),
		zap.Uint16("port", info.Port),
		zap.String("database", info.Database),
		zap.Uint32("pid", info.PID),
	)
}

func (h LogHooks) OnError(_ context.Context, err error) {
	h.L.Error("PostgreSQL connection error", zap.Error(err))
}

// errorTracer forwards failed connects and queries that broke their
// connection to Hooks.OnError. SQL errors and caller cancellation belong to the
// code that ran the query and are not reported.
type errorTracer struct{ hooks Hooks }

var (
	_ pgx.QueryTracer   = (*errorTracer)(nil)
	_ pgx.ConnectTracer = (*errorTracer)(nil)
)

func (t *errorTracer) TraceConnectStart(ctx context.Context, _ pgx.TraceConnectStartData) context.Context {
	return ctx
}

func (t *errorTracer) TraceConnectEnd(ctx context.Context, data pgx.TraceConnectEndData) {
	if data.Err != nil {
		t.hooks.OnError(ctx, data.Err)
	}
}

func (t *errorTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, _ pgx.TraceQueryStartData) context.Context {
	return ctx
}

func (t *errorTracer) TraceQueryEnd(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryEndData) {
	if brokeConnection(conn, data.Err) {
		t.hooks.OnError(ctx, data.Err)
	}
}

func brokeConnection(conn *pgx.Conn, err error) bool {
	if err == nil {
		return false
	}
	if conn != nil && !conn.IsClosed() {
		return false
	}
	// server errors are either query-level or FATAL, and FATAL goes through pgErrorHandler
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// pgErrorHandler reports FATAL and PANIC errors the server sends on an
// established connection, such as an admin shutdown of an idle backend, then
// defers to next so pgx still closes the connection. Errors before the backend
// PID is known are startup failures and already reach TraceConnectEnd.
func pgErrorHandler(hooks Hooks, next pgconn.PgErrorHandler) pgconn.PgErrorHandler {
	return func(pc *pgconn.PgConn, pgErr *pgconn.PgError) bool {
		fatal := isFatal(pgErr)
		if fatal && pc != nil && pc.PID() != 0 {
			hooks.OnError(context.Background(), pgErr)
		}
		if next != nil {
			return next(pc, pgErr)
		}
		return !fatal
	}
}

func isFatal(pgErr *pgconn.PgError) bool {
	return strings.EqualFold(pgErr.Severity, "FATAL") || strings.EqualFold(pgErr.Severity, "PANIC")
}
