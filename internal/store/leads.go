package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"empire-engine/internal/apperr"
	"empire-engine/internal/domain"
)

const upsertLeadSQL = `
INSERT INTO leads (
  id, name, email, company, title, industry, company_size, notes,
  category, stream, score, deal_value, stage, source,
  contact_attempts, last_contact_at, created_at, updated_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  name = excluded.name,
  email = excluded.email,
  company = excluded.company,
  title = excluded.title,
  industry = excluded.industry,
  company_size = excluded.company_size,
  notes = excluded.notes,
  category = excluded.category,
  stream = excluded.stream,
  score = excluded.score,
  deal_value = excluded.deal_value,
  stage = excluded.stage,
  source = excluded.source,
  contact_attempts = excluded.contact_attempts,
  last_contact_at = excluded.last_contact_at,
  created_at = excluded.created_at,
  updated_at = excluded.updated_at;`

const selectLeadCols = `
id, name, email, company, title, industry, company_size, notes,
category, stream, score, deal_value, stage, source,
contact_attempts, last_contact_at, created_at, updated_at`

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func upsertLead(ctx context.Context, q execer, l domain.Lead) error {
	var lastContact any
	if l.LastContactAt != nil {
		lastContact = formatTime(*l.LastContactAt)
	}
	_, err := q.ExecContext(ctx, upsertLeadSQL,
		l.ID, l.Name, l.Email, l.Company, l.Title, l.Industry, l.CompanySize, l.Notes,
		l.Category, l.Stream, l.Score, l.DealValue, l.Stage, l.Source,
		l.ContactAttempts, lastContact, formatTime(l.CreatedAt), formatTime(l.UpdatedAt),
	)
	return err
}

// Upsert inserts the lead or fully replaces the row with the same id.
// Activity history is independent of the row and survives replacement.
func (s *Store) Upsert(ctx context.Context, l domain.Lead) error {
	if err := upsertLead(ctx, s.db, l); err != nil {
		return apperr.Storage("upsert lead "+l.ID, err).WithOp("store.upsert")
	}
	return nil
}

// UpsertWithActivity writes the lead row and appends an activity in one
// transaction: readers never observe one without the other.
func (s *Store) UpsertWithActivity(ctx context.Context, l domain.Lead, actType, description string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return apperr.Storage("begin upsert tx", err).WithOp("store.upsert")
	}
	defer func() { _ = tx.Rollback() }()

	if err := upsertLead(ctx, tx, l); err != nil {
		return apperr.Storage("upsert lead "+l.ID, err).WithOp("store.upsert")
	}
	if err := appendActivity(ctx, tx, l.ID, actType, description, time.Now()); err != nil {
		return apperr.Storage("append activity for "+l.ID, err).WithOp("store.upsert")
	}
	if err := tx.Commit(); err != nil {
		return apperr.Storage("commit upsert tx", err).WithOp("store.upsert")
	}
	return nil
}

// RecordContact increments the lead's contact counter, stamps the contact
// time, and appends a contacted activity, all atomically. Unknown ids fail
// with a not-found error and write nothing.
func (s *Store) RecordContact(ctx context.Context, leadID, method string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return apperr.Storage("begin contact tx", err).WithOp("store.contact")
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now()
	res, err := tx.ExecContext(ctx, `
UPDATE leads
SET contact_attempts = contact_attempts + 1,
    last_contact_at = ?,
    updated_at = ?
WHERE id = ?;`, formatTime(now), formatTime(now), leadID)
	if err != nil {
		return apperr.Storage("record contact for "+leadID, err).WithOp("store.contact")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return apperr.Storage("record contact for "+leadID, err).WithOp("store.contact")
	}
	if n == 0 {
		return apperr.NotFound("lead not found: " + leadID).WithOp("store.contact")
	}

	desc := fmt.Sprintf("Contact attempt via %s", method)
	if err := appendActivity(ctx, tx, leadID, domain.ActivityContacted, desc, now); err != nil {
		return apperr.Storage("append contact activity for "+leadID, err).WithOp("store.contact")
	}
	if err := tx.Commit(); err != nil {
		return apperr.Storage("commit contact tx", err).WithOp("store.contact")
	}
	return nil
}

// Get returns a lead by id.
func (s *Store) Get(ctx context.Context, id string) (domain.Lead, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+selectLeadCols+` FROM leads WHERE id = ?;`, id)
	l, err := scanLead(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Lead{}, apperr.NotFound("lead not found: " + id).WithOp("store.get")
	}
	if err != nil {
		return domain.Lead{}, apperr.Storage("get lead "+id, err).WithOp("store.get")
	}
	return l, nil
}

// ListByStream groups all leads by revenue stream. Within each stream leads
// are ordered by deal value desc, then score desc, then creation time desc;
// this ordering is a contract surface for reporting and must stay stable, so
// id breaks any remaining ties deterministically.
func (s *Store) ListByStream(ctx context.Context) (map[string][]domain.Lead, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT `+selectLeadCols+`
FROM leads
ORDER BY deal_value DESC, score DESC, created_at DESC, id DESC;`)
	if err != nil {
		return nil, apperr.Storage("list leads", err).WithOp("store.list")
	}
	defer rows.Close()

	out := make(map[string][]domain.Lead)
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, apperr.Storage("scan lead", err).WithOp("store.list")
		}
		out[l.Stream] = append(out[l.Stream], l)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage("list leads", err).WithOp("store.list")
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLead(r rowScanner) (domain.Lead, error) {
	var l domain.Lead
	var lastContact sql.NullString
	var created, updated string
	if err := r.Scan(
		&l.ID, &l.Name, &l.Email, &l.Company, &l.Title, &l.Industry, &l.CompanySize, &l.Notes,
		&l.Category, &l.Stream, &l.Score, &l.DealValue, &l.Stage, &l.Source,
		&l.ContactAttempts, &lastContact, &created, &updated,
	); err != nil {
		return domain.Lead{}, err
	}
	if lastContact.Valid {
		t := parseTime(lastContact.String)
		l.LastContactAt = &t
	}
	l.CreatedAt = parseTime(created)
	l.UpdatedAt = parseTime(updated)
	return l, nil
}
