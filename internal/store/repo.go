package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/aventura-edu/backend/internal/game"
)

const defaultStoreTTL = 24 * time.Hour

const (
	kindQuestion = "question"
	kindStory    = "story"
)

// Querier is the subset of pgxpool.Pool the repo needs.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

const (
	selectContentSQL = `
		SELECT payload FROM generated_content
		WHERE kind = $1 AND subject_key = $2 AND theme_key = $3 AND grade_key = $4 AND slot = $5
		  AND expires_at > now()
		ORDER BY created_at DESC
		LIMIT $6`

	insertContentSQL = `
		INSERT INTO generated_content (id, kind, subject_key, theme_key, grade_key, slot, payload, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now(), $8)`

	purgeContentSQL = `SELECT purge_expired_content()`
)

// Repo persists generated content in Postgres with an expiry horizon, so the
// store tier keeps serving across process restarts but never serves stale
// curriculum content forever.
type Repo struct {
	db  Querier
	ttl time.Duration
}

func NewRepo(db Querier, ttl time.Duration) *Repo {
	if ttl <= 0 {
		ttl = defaultStoreTTL
	}
	return &Repo{db: db, ttl: ttl}
}

// QueryPayloads returns the unexpired payloads for a slot, newest first.
func (r *Repo) QueryPayloads(ctx context.Context, kind string, params game.GameParameters, slot, limit int) ([][]byte, error) {
	rows, err := r.db.Query(ctx, selectContentSQL,
		kind, keyPart(params.Subject), keyPart(params.Theme), keyPart(params.SchoolGrade), slot, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payloads [][]byte
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		payloads = append(payloads, payload)
	}
	return payloads, rows.Err()
}

// InsertPayload writes one payload with the configured expiry.
func (r *Repo) InsertPayload(ctx context.Context, kind string, params game.GameParameters, slot int, payload []byte) error {
	_, err := r.db.Exec(ctx, insertContentSQL,
		uuid.New(), kind, keyPart(params.Subject), keyPart(params.Theme), keyPart(params.SchoolGrade),
		slot, payload, time.Now().Add(r.ttl))
	return err
}

// PurgeExpired invokes the database-side cleanup routine and reports how many
// rows it removed.
func (r *Repo) PurgeExpired(ctx context.Context) (int, error) {
	rows, err := r.db.Query(ctx, purgeContentSQL)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var removed int
	if rows.Next() {
		if err := rows.Scan(&removed); err != nil {
			return 0, err
		}
	}
	return removed, rows.Err()
}
