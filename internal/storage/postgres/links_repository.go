package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/IgorGrieder/shortlink/internal/infrastructure/db"
	"github.com/IgorGrieder/shortlink/internal/processing/links"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS short_links (
	alias      TEXT PRIMARY KEY,
	url        TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	expires    TIMESTAMPTZ NOT NULL
)`

var _ links.LinkRepository = (*LinksRepository)(nil)

type LinksRepository struct {
	pool *pgxpool.Pool
}

func NewLinksRepository(p *db.Postgres) (*LinksRepository, error) {
	if p == nil || p.Pool == nil {
		return nil, errors.New("postgres pool is nil")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if _, err := p.Pool.Exec(ctx, schema); err != nil {
		return nil, err
	}

	return &LinksRepository{pool: p.Pool}, nil
}

func (r *LinksRepository) Exists(ctx context.Context, alias string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM short_links WHERE alias = $1)`,
		alias,
	).Scan(&exists)
	return exists, err
}

// ON CONFLICT DO NOTHING gives the same insert-only-on-absent behaviour as the
// Mongo $setOnInsert upsert.
func (r *LinksRepository) InsertIfAbsent(ctx context.Context, link *links.ShortLink) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO short_links (alias, url, created_at, expires)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (alias) DO NOTHING`,
		link.Alias, link.URL, link.CreatedAt.UTC(), link.Expires.UTC(),
	)
	return err
}

func (r *LinksRepository) FindLive(ctx context.Context, alias string, at time.Time) (*links.ShortLink, error) {
	var out links.ShortLink
	err := r.pool.QueryRow(ctx,
		`SELECT alias, url, created_at, expires
		 FROM short_links
		 WHERE alias = $1 AND expires > $2`,
		alias, at.UTC(),
	).Scan(&out.Alias, &out.URL, &out.CreatedAt, &out.Expires)
	if err == nil {
		out.CreatedAt = out.CreatedAt.UTC()
		out.Expires = out.Expires.UTC()
		return &out, nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, links.ErrNotFound
	}
	return nil, err
}
