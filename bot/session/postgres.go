package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"

	"crushbot/core/logger"
)

// PostgresStore persists sessions as JSONB rows keyed by the external user
// id. It satisfies the same Store contract as MemoryStore: lookups never
// fail from the caller's point of view — storage errors are logged and the
// caller sees a default session, keeping the bot responsive.
type PostgresStore struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewPostgresStore wraps an open connection pool.
func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db, now: time.Now}
}

const (
	selectSessionSQL          = `SELECT data FROM sessions WHERE user_id = $1`
	selectSessionForUpdateSQL = `SELECT data FROM sessions WHERE user_id = $1 FOR UPDATE`
	upsertSessionSQL          = `
		INSERT INTO sessions (user_id, data, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET data = $2, updated_at = $3`
)

func (p *PostgresStore) logErr(event string, userID int64, err error) {
	logger.Component("db.sessions").Error("session store error",
		slog.String("event", event),
		slog.Int64("user_id", userID),
		slog.String("err", err.Error()),
	)
}

// GetOrCreate returns the stored session, inserting defaults on first access.
func (p *PostgresStore) GetOrCreate(userID int64, displayName string) UserSession {
	return p.Update(userID, displayName, nil)
}

// View returns a snapshot without creating anything.
func (p *PostgresStore) View(userID int64) (UserSession, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var raw []byte
	err := p.db.GetContext(ctx, &raw, selectSessionSQL, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return UserSession{}, false
	}
	if err != nil {
		p.logErr("session.view", userID, err)
		return UserSession{}, false
	}

	var s UserSession
	if err := json.Unmarshal(raw, &s); err != nil {
		p.logErr("session.decode", userID, err)
		return UserSession{}, false
	}
	return s, true
}

// Update loads the row under SELECT ... FOR UPDATE, applies fn, and writes
// the result back in the same transaction, giving the per-user atomicity the
// Store contract requires.
func (p *PostgresStore) Update(userID int64, displayName string, fn func(*UserSession)) UserSession {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	fallback := newSession(displayName, p.now())
	if fn != nil {
		fn(fallback)
	}

	tx, err := p.db.BeginTxx(ctx, nil)
	if err != nil {
		p.logErr("session.begin", userID, err)
		return fallback.clone()
	}
	defer func() { _ = tx.Rollback() }()

	s := newSession(displayName, p.now())
	var raw []byte
	err = tx.GetContext(ctx, &raw, selectSessionForUpdateSQL, userID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		// first access, keep defaults
	case err != nil:
		p.logErr("session.select", userID, err)
		return fallback.clone()
	default:
		if err := json.Unmarshal(raw, s); err != nil {
			p.logErr("session.decode", userID, err)
			s = newSession(displayName, p.now())
		}
	}

	if s.DisplayName == "" && displayName != "" {
		s.DisplayName = displayName
	}
	if fn != nil {
		fn(s)
	}

	data, err := json.Marshal(s)
	if err != nil {
		p.logErr("session.encode", userID, err)
		return s.clone()
	}
	if _, err := tx.ExecContext(ctx, upsertSessionSQL, userID, data, p.now()); err != nil {
		p.logErr("session.upsert", userID, err)
		return s.clone()
	}
	if err := tx.Commit(); err != nil {
		p.logErr("session.commit", userID, err)
	}
	return s.clone()
}
