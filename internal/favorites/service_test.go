package favorites

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abrar/astrolearn/internal/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return NewService(st.FavoriteRepo())
}

func TestAdd(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	added, err := svc.Add(ctx, "Black Holes", "A region of extreme gravity.")
	require.NoError(t, err)
	assert.True(t, added)

	fav, err := svc.Get(ctx, "Black Holes")
	require.NoError(t, err)
	require.NotNil(t, fav)
	assert.Equal(t, "A region of extreme gravity.", fav.Explanation)
	assert.False(t, fav.DateAdded.IsZero())
}

func TestAdd_DuplicateName(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	added, err := svc.Add(ctx, "Nebulae", "Clouds of gas and dust.")
	require.NoError(t, err)
	require.True(t, added)

	added, err = svc.Add(ctx, "Nebulae", "Different text.")
	require.NoError(t, err)
	assert.False(t, added)

	// Original explanation is untouched.
	fav, err := svc.Get(ctx, "Nebulae")
	require.NoError(t, err)
	require.NotNil(t, fav)
	assert.Equal(t, "Clouds of gas and dust.", fav.Explanation)
}

func TestAdd_EmptyName(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Add(context.Background(), "  ", "text")
	require.Error(t, err)
}

func TestRemoveAndUndo(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "Exoplanets", "Planets beyond our solar system.")
	require.NoError(t, err)

	fav, err := svc.Get(ctx, "Exoplanets")
	require.NoError(t, err)
	require.NotNil(t, fav)

	require.NoError(t, svc.Remove(ctx, *fav))
	assert.True(t, svc.CanUndo())

	gone, err := svc.Get(ctx, "Exoplanets")
	require.NoError(t, err)
	assert.Nil(t, gone)

	restored, err := svc.Undo(ctx)
	require.NoError(t, err)
	require.NotNil(t, restored)
	assert.Equal(t, "Exoplanets", restored.Name)
	assert.Equal(t, fav.Explanation, restored.Explanation)
	assert.False(t, svc.CanUndo())

	back, err := svc.Get(ctx, "Exoplanets")
	require.NoError(t, err)
	require.NotNil(t, back)
}

func TestUndo_EmptySlot(t *testing.T) {
	svc := newTestService(t)

	restored, err := svc.Undo(context.Background())
	require.NoError(t, err)
	assert.Nil(t, restored)
}

func TestUndo_SlotHoldsOnlyLastRemoval(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "Stars", "Balls of plasma.")
	require.NoError(t, err)
	_, err = svc.Add(ctx, "Galaxies", "Vast star systems.")
	require.NoError(t, err)

	stars, err := svc.Get(ctx, "Stars")
	require.NoError(t, err)
	galaxies, err := svc.Get(ctx, "Galaxies")
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, *stars))
	require.NoError(t, svc.Remove(ctx, *galaxies))

	restored, err := svc.Undo(ctx)
	require.NoError(t, err)
	require.NotNil(t, restored)
	assert.Equal(t, "Galaxies", restored.Name)

	// Second undo has nothing left.
	restored, err = svc.Undo(ctx)
	require.NoError(t, err)
	assert.Nil(t, restored)
}

func TestList_FilterAndSort(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for _, f := range []struct{ name, text string }{
		{"Black Holes", "Gravity wells."},
		{"Dark Matter", "Invisible mass."},
		{"Milky Way", "Our home galaxy."},
	} {
		_, err := svc.Add(ctx, f.name, f.text)
		require.NoError(t, err)
	}

	all, err := svc.List(ctx, "", store.SortNameAsc)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Black Holes", all[0].Name)
	assert.Equal(t, "Milky Way", all[2].Name)

	matched, err := svc.List(ctx, "dark", store.SortNameAsc)
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "Dark Matter", matched[0].Name)

	// Query also matches explanation text.
	matched, err = svc.List(ctx, "galaxy", store.SortNameAsc)
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "Milky Way", matched[0].Name)
}
