// Package memory keeps short links in process memory. It backs local
// development and tests; nothing survives a restart.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/IgorGrieder/shortlink/internal/processing/links"
)

var _ links.LinkRepository = (*LinksRepository)(nil)

type LinksRepository struct {
	mu    sync.RWMutex
	links map[string]links.ShortLink
}

func NewLinksRepository() *LinksRepository {
	return &LinksRepository{links: make(map[string]links.ShortLink)}
}

func (r *LinksRepository) Exists(_ context.Context, alias string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.links[alias]
	return ok, nil
}

func (r *LinksRepository) InsertIfAbsent(_ context.Context, link *links.ShortLink) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.links[link.Alias]; ok {
		return nil
	}
	r.links[link.Alias] = *link
	return nil
}

func (r *LinksRepository) FindLive(_ context.Context, alias string, at time.Time) (*links.ShortLink, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	link, ok := r.links[alias]
	if !ok || !link.Live(at) {
		return nil, links.ErrNotFound
	}
	return &link, nil
}

// Len counts stored records, expired ones included.
func (r *LinksRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.links)
}
