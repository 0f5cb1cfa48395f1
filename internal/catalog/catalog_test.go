package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mashrafi141/my-judge-webapp2/api"
	"github.com/mashrafi141/my-judge-webapp2/internal/catalog"
)

type fakeSource struct {
	problems []api.Problem
	err      error
	calls    int
}

func (f *fakeSource) Problems(ctx context.Context) ([]api.Problem, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.problems, nil
}

func TestLoadSortsAscendingByID(t *testing.T) {
	src := &fakeSource{problems: []api.Problem{
		{ID: 3, Title: "c"},
		{ID: 1, Title: "a"},
		{ID: 2, Title: "b"},
	}}
	l := catalog.NewLoader(src)

	got, err := l.Load(context.Background())
	require.NoError(t, err)

	ids := make([]int, len(got))
	for i, p := range got {
		ids[i] = p.ID
	}
	require.Equal(t, []int{1, 2, 3}, ids)
}

func TestUnparsableIDsSortFirst(t *testing.T) {
	// Entries with non-numeric identifiers decode to id 0 and therefore
	// precede everything else.
	src := &fakeSource{problems: []api.Problem{
		{ID: 5, Title: "five"},
		{ID: 0, Title: "bogus"},
	}}
	l := catalog.NewLoader(src)

	got, err := l.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, "bogus", got[0].Title)
	require.Equal(t, "five", got[1].Title)
}

func TestLoadDeduplicatesKeepingFirst(t *testing.T) {
	src := &fakeSource{problems: []api.Problem{
		{ID: 2, Title: "first"},
		{ID: 2, Title: "second"},
		{ID: 1, Title: "one"},
	}}
	l := catalog.NewLoader(src)

	got, err := l.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "one", got[0].Title)
	require.Equal(t, "first", got[1].Title)
}

func TestLoadFailureRetainsPriorCatalog(t *testing.T) {
	src := &fakeSource{problems: []api.Problem{{ID: 1, Title: "a"}}}
	l := catalog.NewLoader(src)

	_, err := l.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, l.Len())

	src.err = errors.New("connection refused")
	_, err = l.Load(context.Background())
	require.ErrorIs(t, err, catalog.ErrUnavailable)
	require.Equal(t, 1, l.Len(), "prior catalog must survive a failed reload")
}

func TestGetAndFirst(t *testing.T) {
	src := &fakeSource{problems: []api.Problem{{ID: 4, Title: "d"}, {ID: 2, Title: "b"}}}
	l := catalog.NewLoader(src)

	_, err := l.Load(context.Background())
	require.NoError(t, err)

	p, ok := l.Get(4)
	require.True(t, ok)
	require.Equal(t, "d", p.Title)

	_, ok = l.Get(99)
	require.False(t, ok)

	first, ok := l.First()
	require.True(t, ok)
	require.Equal(t, 2, first.ID)
}

func TestCacheRoundTripAndColdStartFallback(t *testing.T) {
	dir := t.TempDir()
	cache, err := catalog.NewCache(dir)
	require.NoError(t, err)

	// Warm process populates the cache.
	src := &fakeSource{problems: []api.Problem{{ID: 1, Title: "a"}, {ID: 2, Title: "b"}}}
	warm := catalog.NewLoader(src, catalog.WithCache(cache))
	_, err = warm.Load(context.Background())
	require.NoError(t, err)

	// Cold process starts with the judge down: Load reports unavailable
	// but serves the stale cached catalog.
	down := &fakeSource{err: errors.New("judge down")}
	cold := catalog.NewLoader(down, catalog.WithCache(cache))
	_, err = cold.Load(context.Background())
	require.ErrorIs(t, err, catalog.ErrUnavailable)
	require.Equal(t, 2, cold.Len())

	first, ok := cold.First()
	require.True(t, ok)
	require.Equal(t, "a", first.Title)
}
