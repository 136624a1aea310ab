package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"weddingregistry/internal/domain"
)

func TestGuestDirectory_ResolveOrCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a new guest for an unseen phone", func(t *testing.T) {
		repo := newFakeGuestRepo()
		dir := NewGuestDirectory(repo)

		g, err := dir.ResolveOrCreate(ctx, "Ann Lee", "555-0100")
		require.NoError(t, err)
		require.NotEmpty(t, g.ID)
		require.Equal(t, "Ann Lee", g.Name)
		require.Equal(t, "555-0100", g.Phone)
	})

	t.Run("returns the existing guest for a known phone", func(t *testing.T) {
		repo := newFakeGuestRepo()
		dir := NewGuestDirectory(repo)

		first, err := dir.ResolveOrCreate(ctx, "Ann Lee", "555-0100")
		require.NoError(t, err)

		// The stored name wins; a later submission with a different name does
		// not update the record.
		second, err := dir.ResolveOrCreate(ctx, "Annie L.", "555-0100")
		require.NoError(t, err)
		require.Equal(t, first.ID, second.ID)
		require.Equal(t, "Ann Lee", second.Name)
		require.Equal(t, 1, repo.count())
	})

	t.Run("trims whitespace", func(t *testing.T) {
		repo := newFakeGuestRepo()
		dir := NewGuestDirectory(repo)

		g, err := dir.ResolveOrCreate(ctx, "  Ann Lee ", " 555-0100 ")
		require.NoError(t, err)
		require.Equal(t, "Ann Lee", g.Name)
		require.Equal(t, "555-0100", g.Phone)
	})
}

func TestGuestDirectory_ResolveOrCreate_Concurrent(t *testing.T) {
	ctx := context.Background()
	repo := newFakeGuestRepo()
	dir := NewGuestDirectory(repo)

	const callers = 16
	var wg sync.WaitGroup
	guests := make([]*domain.Guest, callers)
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			guests[i], errs[i] = dir.ResolveOrCreate(ctx, "Ann Lee", "555-0100")
		}(i)
	}
	wg.Wait()

	// Every caller resolves to the single winning record.
	require.Equal(t, 1, repo.count())
	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		require.Equal(t, guests[0].ID, guests[i].ID)
	}
}
