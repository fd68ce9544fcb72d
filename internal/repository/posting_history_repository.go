package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/maheshrc27/content-pipeline/internal/models"
)

// PostingHistoryRepository keeps an audit trail of publish attempts. It is not
// a source of truth for post state.
type PostingHistoryRepository interface {
	EnsureSchema(ctx context.Context) error
	Create(ctx context.Context, ph *models.PostingHistory) (int64, error)
	ListByRecordID(ctx context.Context, recordID string) ([]*models.PostingHistory, error)
}

type postingHistoryRepository struct {
	db *sql.DB
}

// NewPostingHistoryRepository returns a Postgres-backed history, or a no-op
// one when db is nil.
func NewPostingHistoryRepository(db *sql.DB) PostingHistoryRepository {
	if db == nil {
		return noopPostingHistory{}
	}
	return &postingHistoryRepository{db: db}
}

func (r *postingHistoryRepository) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS posting_history (
			id            BIGSERIAL PRIMARY KEY,
			record_id     TEXT NOT NULL,
			platform      TEXT NOT NULL,
			external_id   TEXT NOT NULL DEFAULT '',
			error_message TEXT NOT NULL DEFAULT '',
			created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS posting_history_record_id_idx ON posting_history (record_id);
	`
	if _, err := r.db.ExecContext(ctx, query); err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *postingHistoryRepository) Create(ctx context.Context, ph *models.PostingHistory) (int64, error) {
	query := `
		INSERT INTO posting_history (record_id, platform, external_id, error_message)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query, ph.RecordID, ph.Platform, ph.ExternalID, ph.ErrorMessage).Scan(&id)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}

	return id, nil
}

func (r *postingHistoryRepository) ListByRecordID(ctx context.Context, recordID string) ([]*models.PostingHistory, error) {
	query := `SELECT id, record_id, platform, external_id, error_message, created_at FROM posting_history WHERE record_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, recordID)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	phs := []*models.PostingHistory{}
	for rows.Next() {
		var ph models.PostingHistory
		err := rows.Scan(&ph.ID, &ph.RecordID, &ph.Platform, &ph.ExternalID, &ph.ErrorMessage, &ph.CreatedAt)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		phs = append(phs, &ph)
	}
	return phs, rows.Err()
}

type noopPostingHistory struct{}

func (noopPostingHistory) EnsureSchema(context.Context) error { return nil }

func (noopPostingHistory) Create(context.Context, *models.PostingHistory) (int64, error) {
	return 0, nil
}

func (noopPostingHistory) ListByRecordID(context.Context, string) ([]*models.PostingHistory, error) {
	return []*models.PostingHistory{}, nil
}
