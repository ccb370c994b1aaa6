package spatial

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"bitbucket.org/kleinnic74/geoangles/domain/gps"
	"bitbucket.org/kleinnic74/geoangles/library"
	"bitbucket.org/kleinnic74/geoangles/library/boltstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"
)

func openStore(t *testing.T) library.ClosableStore {
	db, err := bolt.Open(filepath.Join(t.TempDir(), "index.db"), 0600, nil)
	require.NoError(t, err)
	store, err := boltstore.NewBoltStore(db)
	require.NoError(t, err)
	t.Cleanup(store.Close)
	return store
}

func names(waypoints []*library.Waypoint) (n []string) {
	for _, w := range waypoints {
		n = append(n, w.Name)
	}
	return
}

func TestIndexedStoreLoadsExisting(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)
	vienna := library.NewWaypoint("Vienna", gps.NewCoordinates(48.2082, 16.3738), gps.North)
	perth := library.NewWaypoint("Perth", gps.NewCoordinates(-31.9523, 115.8613), gps.North)
	perth.Created = vienna.Created.Add(time.Second)
	require.NoError(t, store.Add(ctx, vienna))
	require.NoError(t, store.Add(ctx, perth))

	index, err := NewIndexedStore(ctx, store)
	require.NoError(t, err)

	found, err := index.Within(ctx, gps.RectFrom(10, 40, 20, 50))
	require.NoError(t, err)
	assert.Equal(t, []string{"Vienna"}, names(found))

	found, err = index.Within(ctx, gps.WorldBounds)
	require.NoError(t, err)
	assert.Equal(t, []string{"Vienna", "Perth"}, names(found))
}

func TestIndexedStoreFollowsAddAndDelete(t *testing.T) {
	ctx := context.Background()
	index, err := NewIndexedStore(ctx, openStore(t))
	require.NoError(t, err)

	w := library.NewWaypoint("Lighthouse", gps.NewCoordinates(-39.2025, 122.5), gps.West)
	require.NoError(t, index.Add(ctx, w))
	err = index.Add(ctx, library.NewWaypoint("lighthouse", gps.NewCoordinates(0, 0), gps.West))
	assert.True(t, errors.Is(err, library.ErrAlreadyExists))

	found, err := index.Within(ctx, gps.RectFrom(120, -40, 125, -39))
	require.NoError(t, err)
	assert.Equal(t, []string{"Lighthouse"}, names(found))

	require.NoError(t, index.Delete(ctx, w.ID))
	found, err = index.Within(ctx, gps.WorldBounds)
	require.NoError(t, err)
	assert.Empty(t, found)
	assert.True(t, errors.Is(index.Delete(ctx, w.ID), library.ErrNotFound))
}

func TestIndexedStoreConcurrentAddAndDelete(t *testing.T) {
	ctx := context.Background()
	index, err := NewIndexedStore(ctx, openStore(t))
	require.NoError(t, err)

	waypoints := make([]*library.Waypoint, 50)
	var wg sync.WaitGroup
	for i := range waypoints {
		w := library.NewWaypoint(fmt.Sprintf("wp%02d", i), gps.NewCoordinates(float64(i%80), float64(i)), gps.North)
		waypoints[i] = w
		wg.Add(2)
		go func() {
			defer wg.Done()
			index.Add(ctx, w)
		}()
		go func() {
			defer wg.Done()
			index.Delete(ctx, w.ID)
		}()
	}
	wg.Wait()

	found, err := index.Within(ctx, gps.WorldBounds)
	require.NoError(t, err)
	indexed := make(map[library.WaypointID]bool)
	for _, w := range found {
		indexed[w.ID] = true
	}
	for _, w := range waypoints {
		_, err := index.Get(ctx, w.ID)
		stored := err == nil
		if !stored {
			assert.True(t, errors.Is(err, library.ErrNotFound), w.Name)
		}
		assert.Equal(t, stored, indexed[w.ID], w.Name)
	}
}
