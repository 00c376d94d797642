package store

import (
	"context"
	"time"

	"empire-engine/internal/apperr"
	"empire-engine/internal/domain"
)

func appendActivity(ctx context.Context, q execer, leadID, actType, description string, at time.Time) error {
	_, err := q.ExecContext(ctx, `
INSERT INTO activities (lead_id, type, description, created_at)
VALUES (?, ?, ?, ?);`, leadID, actType, description, formatTime(at))
	return err
}

// Activities returns a lead's ledger oldest-first. The ledger is append-only:
// there is no update or delete path anywhere in this package.
func (s *Store) Activities(ctx context.Context, leadID string) ([]domain.Activity, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, lead_id, type, description, created_at
FROM activities
WHERE lead_id = ?
ORDER BY id ASC;`, leadID)
	if err != nil {
		return nil, apperr.Storage("list activities for "+leadID, err).WithOp("store.activities")
	}
	defer rows.Close()

	var out []domain.Activity
	for rows.Next() {
		var a domain.Activity
		var created string
		if err := rows.Scan(&a.ID, &a.LeadID, &a.Type, &a.Description, &created); err != nil {
			return nil, apperr.Storage("scan activity", err).WithOp("store.activities")
		}
		a.CreatedAt = parseTime(created)
		out = append(out, a)
	}
	return out, rows.Err()
}
