package repo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	dom "Bluecroft/internal/domain"
)

// CaseRepo archives saved case records. The in-memory store stays the
// source of truth for a running session; the archive only restores the
// saved list across restarts.
type CaseRepo interface {
	Insert(ctx context.Context, c dom.Case) error
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]dom.Case, error)
}

// PGCaseRepo stores each case as a JSONB document keyed by case ID.
type PGCaseRepo struct {
	db *pgxpool.Pool
}

func NewPGCaseRepo(db *pgxpool.Pool) *PGCaseRepo {
	return &PGCaseRepo{db: db}
}

func (r *PGCaseRepo) Insert(ctx context.Context, c dom.Case) error {
	doc, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal case %s: %w", c.ID, err)
	}
	_, err = r.db.Exec(ctx, `
		INSERT INTO cases (id, created_at, doc)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc`,
		c.ID, c.CreatedAt, doc)
	return err
}

func (r *PGCaseRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM cases WHERE id = $1`, id)
	return err
}

func (r *PGCaseRepo) ListAll(ctx context.Context) ([]dom.Case, error) {
	rows, err := r.db.Query(ctx, `SELECT doc FROM cases ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Case
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		var c dom.Case
		if err := json.Unmarshal(doc, &c); err != nil {
			return nil, fmt.Errorf("unmarshal archived case: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
