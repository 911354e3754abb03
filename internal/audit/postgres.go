package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const insertTimeout = 5 * time.Second

// PostgresRecorder persists audit entries through a pgx pool. The schema is
// applied by the migrations in the repository root.
type PostgresRecorder struct {
	pool *pgxpool.Pool
}

func NewPostgresRecorder(pool *pgxpool.Pool) *PostgresRecorder {
	return &PostgresRecorder{pool: pool}
}

func (p *PostgresRecorder) RecordIntroAnswer(ctx context.Context, userID int64, answer string) {
	e := newEntry(userID, KindIntroAnswer)
	e.Text = answer
	p.insert(ctx, e)
}

func (p *PostgresRecorder) RecordTurn(ctx context.Context, userID int64, capability, model string, callErr error) {
	e := newEntry(userID, KindTurn)
	e.Capability = capability
	e.Model = model
	e.Error = errString(callErr)
	p.insert(ctx, e)
}

func (p *PostgresRecorder) insert(ctx context.Context, e Entry) {
	// Detach from the turn's deadline; the audit write may outlive it.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), insertTimeout)
	defer cancel()

	_, err := p.pool.Exec(ctx,
		`INSERT INTO audit_log (id, user_id, kind, capability, model, text, error, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		e.ID, e.UserID, e.Kind, e.Capability, e.Model, e.Text, e.Error, e.CreatedAt,
	)
	if err != nil {
		slog.Error("audit insert failed", "kind", e.Kind, "user_id", e.UserID, "error", err)
	}
}
