// Package repo provides postgres persistence for wrap snapshots
package repo

import (
	"context"
	"time"

	"gitwrapped/internal/modkit/repokit"
	perr "gitwrapped/internal/platform/errors"
)

// Row is a wrap snapshot row. The derived payload travels as JSONB so the
// schema stays stable while the snapshot shape evolves
type Row struct {
	ID         string
	Username   string
	Year       int
	Data       []byte
	ViewCount  int
	ShareCount int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Repo defines the repository contract for wraps
type Repo interface {
	Upsert(ctx context.Context, id, username string, year int, data []byte) (Row, error)
	ByID(ctx context.Context, id string) (Row, error)
	ByUserYear(ctx context.Context, username string, year int) (Row, error)
	IncrementViews(ctx context.Context, id string) error
	RecordShare(ctx context.Context, id, platform string) error
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	// queries holds the database query methods
	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

const rowColumns = `id::text, username, year, data, view_count, share_count, created_at, updated_at`

func (r *queries) scanRow(row repokit.Row) (Row, error) {
	var out Row
	err := row.Scan(
		&out.ID,
		&out.Username,
		&out.Year,
		&out.Data,
		&out.ViewCount,
		&out.ShareCount,
		&out.CreatedAt,
		&out.UpdatedAt,
	)
	return out, err
}

// Upsert writes a snapshot keyed by (username, year). A conflicting row keeps
// its id and counters; only the payload and updated_at move
func (r *queries) Upsert(ctx context.Context, id, username string, year int, data []byte) (Row, error) {
	const sql = `
insert into wraps (id, username, year, data, view_count, share_count, created_at, updated_at)
values ($1::uuid, $2, $3, $4, 0, 0, now(), now())
on conflict (username, year) do update
set data = excluded.data, updated_at = now()
returning ` + rowColumns
	row, err := r.scanRow(r.q.QueryRow(ctx, sql, id, username, year, data))
	if err != nil {
		return Row{}, perr.FromPostgresf(err, "wrap upsert for %s/%d", username, year)
	}
	return row, nil
}

func (r *queries) ByID(ctx context.Context, id string) (Row, error) {
	const sql = `select ` + rowColumns + ` from wraps where id = $1::uuid`
	return r.scanRow(r.q.QueryRow(ctx, sql, id))
}

func (r *queries) ByUserYear(ctx context.Context, username string, year int) (Row, error) {
	const sql = `select ` + rowColumns + ` from wraps where lower(username) = lower($1) and year = $2`
	return r.scanRow(r.q.QueryRow(ctx, sql, username, year))
}

func (r *queries) IncrementViews(ctx context.Context, id string) error {
	const sql = `update wraps set view_count = view_count + 1 where id = $1::uuid`
	_, err := r.q.Exec(ctx, sql, id)
	return perr.FromPostgres(err, "wrap view bump")
}

// RecordShare bumps the share counter and appends the share event row
func (r *queries) RecordShare(ctx context.Context, id, platform string) error {
	const bump = `update wraps set share_count = share_count + 1 where id = $1::uuid`
	if _, err := r.q.Exec(ctx, bump, id); err != nil {
		return perr.FromPostgres(err, "share count bump")
	}
	const insert = `insert into wrap_shares (wrap_id, platform, created_at) values ($1::uuid, $2, now())`
	_, err := r.q.Exec(ctx, insert, id, platform)
	return perr.FromPostgres(err, "share event insert")
}
