package favorites

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karthikn/pondy-guide/internal/types"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func samplePlace() types.SavedPlace {
	return types.SavedPlace{
		PlaceID:  uuid.New(),
		Name:     "Promenade Beach",
		Location: "Goubert Avenue",
		Category: types.CategoryNature,
		Rating:   4.6,
	}
}

func TestLocalStore_ToggleRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "guest_favorites.json")
	store, err := NewLocalStore(path, testLogger())
	require.NoError(t, err)

	guest := "guest-device-1"
	place := samplePlace()

	fav, err := store.IsFavorite(ctx, guest, place.PlaceID)
	require.NoError(t, err)
	assert.False(t, fav)

	nowFav, err := store.Toggle(ctx, guest, place)
	require.NoError(t, err)
	assert.True(t, nowFav)

	// A fresh store reading the same file must see the addition.
	reread, err := NewLocalStore(path, testLogger())
	require.NoError(t, err)
	fav, err = reread.IsFavorite(ctx, guest, place.PlaceID)
	require.NoError(t, err)
	assert.True(t, fav)

	nowFav, err = store.Toggle(ctx, guest, place)
	require.NoError(t, err)
	assert.False(t, nowFav)

	// Second toggle returns the backing file to its prior state.
	reread, err = NewLocalStore(path, testLogger())
	require.NoError(t, err)
	list, err := reread.List(ctx, guest)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestLocalStore_ScopesAreIndependent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "guest_favorites.json")
	store, err := NewLocalStore(path, testLogger())
	require.NoError(t, err)

	place := samplePlace()
	_, err = store.Toggle(ctx, "guest-a", place)
	require.NoError(t, err)

	fav, err := store.IsFavorite(ctx, "guest-b", place.PlaceID)
	require.NoError(t, err)
	assert.False(t, fav)

	listA, err := store.List(ctx, "guest-a")
	require.NoError(t, err)
	assert.Len(t, listA, 1)
}

func TestLocalStore_SubscribeObservesToggles(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "guest_favorites.json")
	store, err := NewLocalStore(path, testLogger())
	require.NoError(t, err)

	guest := "guest-device-1"
	ch, cancel := store.Subscribe(guest)
	defer cancel()

	place := samplePlace()
	_, err = store.Toggle(ctx, guest, place)
	require.NoError(t, err)

	select {
	case snapshot := <-ch:
		require.Len(t, snapshot, 1)
		assert.Equal(t, place.PlaceID, snapshot[0].PlaceID)
	case <-time.After(time.Second):
		t.Fatal("no snapshot delivered after toggle")
	}

	_, err = store.Toggle(ctx, guest, place)
	require.NoError(t, err)

	select {
	case snapshot := <-ch:
		assert.Empty(t, snapshot)
	case <-time.After(time.Second):
		t.Fatal("no snapshot delivered after second toggle")
	}
}

func TestLocalStore_MissingFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.json")
	store, err := NewLocalStore(path, testLogger())
	require.NoError(t, err)

	list, err := store.List(context.Background(), "anyone")
	require.NoError(t, err)
	assert.Empty(t, list)
}
