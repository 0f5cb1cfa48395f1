// Package catalog loads and normalizes the problem catalog. The loaded
// collection is the single owning copy; other components hold non-owning
// references into it.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/puzpuzpuz/xsync/v3"

	"github.com/mashrafi141/my-judge-webapp2/api"
)

// ErrUnavailable means the remote catalog could not be fetched or parsed.
// The prior catalog, if any, is retained.
var ErrUnavailable = errors.New("problem catalog unavailable")

// Source fetches the raw problem collection.
type Source interface {
	Problems(ctx context.Context) ([]api.Problem, error)
}

// Loader owns the problem collection: sorted ascending by numeric
// identifier, deduplicated by identifier. Entries whose identifier could
// not be parsed as a number carry identifier 0 and therefore sort first.
type Loader struct {
	src    Source
	cache  *Cache
	logger *slog.Logger

	mu       *xsync.RBMutex
	problems []api.Problem
	index    *xsync.MapOf[int, *api.Problem]
}

// Option configures a Loader.
type Option func(*Loader)

// WithCache enables the on-disk last-good-catalog cache.
func WithCache(c *Cache) Option {
	return func(l *Loader) { l.cache = c }
}

// WithLogger sets the loader's logger.
func WithLogger(lg *slog.Logger) Option {
	return func(l *Loader) { l.logger = lg }
}

func NewLoader(src Source, opts ...Option) *Loader {
	l := &Loader{
		src:    src,
		logger: slog.Default(),
		mu:     xsync.NewRBMutex(),
		index:  xsync.NewMapOf[int, *api.Problem](),
	}
	for _, o := range opts {
		o(l)
	}
	return l
}

// Load fetches and installs the catalog, replacing the previous collection
// wholesale. On failure the prior catalog is retained and ErrUnavailable
// is returned; when nothing was loaded yet, the loader falls back to the
// on-disk cache of the last good catalog so a stale list beats an empty one.
func (l *Loader) Load(ctx context.Context) ([]api.Problem, error) {
	fetched, err := l.src.Problems(ctx)
	if err != nil {
		if l.Len() == 0 && l.cache != nil {
			if cached, cerr := l.cache.Restore(); cerr == nil && len(cached) > 0 {
				l.logger.Warn("catalog fetch failed, serving cached copy",
					"error", err, "problems", len(cached))
				l.install(cached)
				return l.Problems(), fmt.Errorf("%w: %v", ErrUnavailable, err)
			}
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	l.install(normalize(fetched))

	if l.cache != nil {
		if cerr := l.cache.Store(l.Problems()); cerr != nil {
			// Cache is best-effort; a failed write never fails the load.
			l.logger.Warn("failed to write catalog cache", "error", cerr)
		}
	}
	return l.Problems(), nil
}

// normalize deduplicates by identifier (first occurrence wins) and sorts
// ascending by identifier, keeping the pre-sort order among equal ids.
func normalize(problems []api.Problem) []api.Problem {
	seen := mapset.NewThreadUnsafeSet[int]()
	out := make([]api.Problem, 0, len(problems))
	for _, p := range problems {
		if seen.Add(p.ID) {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}

func (l *Loader) install(problems []api.Problem) {
	l.mu.Lock()
	l.problems = problems
	l.mu.Unlock()

	l.index.Clear()
	for i := range problems {
		l.index.Store(problems[i].ID, &problems[i])
	}
}

// Problems returns a copy of the loaded ordered sequence.
func (l *Loader) Problems() []api.Problem {
	tok := l.mu.RLock()
	defer l.mu.RUnlock(tok)
	out := make([]api.Problem, len(l.problems))
	copy(out, l.problems)
	return out
}

// Len returns the number of loaded problems.
func (l *Loader) Len() int {
	tok := l.mu.RLock()
	defer l.mu.RUnlock(tok)
	return len(l.problems)
}

// Get looks up a problem by identifier.
func (l *Loader) Get(id int) (*api.Problem, bool) {
	return l.index.Load(id)
}

// First returns the first problem post-sort, used as the default
// selection when nothing is selected yet.
func (l *Loader) First() (*api.Problem, bool) {
	tok := l.mu.RLock()
	defer l.mu.RUnlock(tok)
	if len(l.problems) == 0 {
		return nil, false
	}
	return &l.problems[0], true
}
