package links

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound            = errors.New("link not found")
	ErrUnavailable         = errors.New("alias unavailable")
	ErrNoURL               = errors.New("no url to shorten")
	ErrAliasRequired       = errors.New("alias not provided")
	ErrAliasSpaceExhausted = errors.New("failed to generate a unique alias")
)

// LinkRepository is the record store behind the service. InsertIfAbsent must
// be atomic: when a document with the same alias already exists it is a no-op
// and returns nil.
type LinkRepository interface {
	Exists(ctx context.Context, alias string) (bool, error)
	InsertIfAbsent(ctx context.Context, link *ShortLink) error
	FindLive(ctx context.Context, alias string, at time.Time) (*ShortLink, error)
}

type AliasGenerator interface {
	Generate() (string, error)
}
