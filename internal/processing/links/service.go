package links

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const (
	// MaxAttempts bounds how many generated candidates are checked before the
	// alias space is considered saturated.
	MaxAttempts = 5

	DefaultTTL = 7 * 24 * time.Hour
)

type Service struct {
	linkRepo  LinkRepository
	generator AliasGenerator
	ttl       time.Duration
	now       func() time.Time
}

func NewService(linkRepo LinkRepository, generator AliasGenerator, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Service{
		linkRepo:  linkRepo,
		generator: generator,
		ttl:       ttl,
		now:       time.Now,
	}
}

// Generate picks an alias for in.URL and stores the mapping.
//
// A caller-supplied alias is used verbatim and rejected with ErrUnavailable if
// any record (live or expired) already holds it. Otherwise up to MaxAttempts
// random aliases are tried. The existence checks only improve the answer given
// to the caller; uniqueness itself comes from InsertIfAbsent, so two requests
// racing for the same alias both return it while only the first write lands.
func (s *Service) Generate(ctx context.Context, in GenerateInput) (string, error) {
	var target string
	if strings.TrimSpace(in.URL) != "" {
		target = NormalizeURL(in.URL)
	}

	alias := strings.TrimSpace(in.Alias)
	if alias != "" {
		exists, err := s.linkRepo.Exists(ctx, alias)
		if err != nil {
			return "", fmt.Errorf("check alias: %w", err)
		}
		if exists {
			return "", ErrUnavailable
		}
	} else {
		var err error
		alias, err = s.pickAlias(ctx)
		if err != nil {
			return "", err
		}
	}

	if target == "" {
		return "", ErrNoURL
	}

	now := s.now().UTC()
	link := &ShortLink{
		Alias:     alias,
		URL:       target,
		CreatedAt: now,
		Expires:   now.Add(s.ttl),
	}
	if err := s.linkRepo.InsertIfAbsent(ctx, link); err != nil {
		return "", fmt.Errorf("insert link: %w", err)
	}

	return alias, nil
}

func (s *Service) pickAlias(ctx context.Context) (string, error) {
	for range MaxAttempts {
		candidate, err := s.generator.Generate()
		if err != nil {
			return "", fmt.Errorf("generate alias: %w", err)
		}

		exists, err := s.linkRepo.Exists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("check alias: %w", err)
		}
		if !exists {
			return candidate, nil
		}
	}

	return "", ErrAliasSpaceExhausted
}

// Resolve returns the live link stored under alias.
func (s *Service) Resolve(ctx context.Context, alias string) (*ShortLink, error) {
	if alias == "" {
		return nil, ErrAliasRequired
	}

	link, err := s.linkRepo.FindLive(ctx, alias, s.now().UTC())
	if err != nil {
		return nil, err
	}

	return link, nil
}
