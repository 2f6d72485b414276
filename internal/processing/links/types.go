package links

import "time"

// ShortLink maps an alias to its target URL until Expires.
type ShortLink struct {
	Alias     string
	URL       string
	CreatedAt time.Time
	Expires   time.Time
}

// Live reports whether the link can still be resolved at the given instant.
func (l *ShortLink) Live(at time.Time) bool {
	return l.Expires.After(at)
}

type GenerateInput struct {
	URL   string
	Alias string
}
