// Package spatial keeps waypoints indexed by position in memory
package spatial

import (
	"context"
	"sort"
	"sync"

	"bitbucket.org/kleinnic74/geoangles/consts"
	"bitbucket.org/kleinnic74/geoangles/domain/gps"
	"bitbucket.org/kleinnic74/geoangles/library"
	"bitbucket.org/kleinnic74/geoangles/logging"
	"go.uber.org/zap"
)

// IndexedStore wraps a WaypointStore and maintains a QuadTree of all its
// waypoints. Waypoints with a non-finite position are stored but not indexed.
// Changes hold the lock across the store and the tree so both see the same order.
type IndexedStore struct {
	library.WaypointStore

	lock sync.RWMutex
	tree *QuadTree
}

// NewIndexedStore loads all waypoints of store into a new index
func NewIndexedStore(ctx context.Context, store library.WaypointStore) (*IndexedStore, error) {
	all, _, err := store.FindAllPaged(ctx, 0, 0, consts.Ascending)
	if err != nil {
		return nil, err
	}
	s := &IndexedStore{
		WaypointStore: store,
		tree:          NewQuadTree(gps.WorldBounds),
	}
	for _, w := range all {
		s.tree.Insert(w.Position.Normalize().Point(), w)
	}
	logging.From(ctx).Info("Indexed waypoints", zap.Int("count", s.tree.Len()))
	return s, nil
}

func (s *IndexedStore) Add(ctx context.Context, w *library.Waypoint) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	if err := s.WaypointStore.Add(ctx, w); err != nil {
		return err
	}
	if !s.tree.Insert(w.Position.Normalize().Point(), w) {
		logging.From(ctx).Debug("Waypoint not indexed", zap.String("id", string(w.ID)), zap.Stringer("position", w.Position))
	}
	return nil
}

func (s *IndexedStore) Delete(ctx context.Context, id library.WaypointID) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	w, err := s.WaypointStore.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.WaypointStore.Delete(ctx, id); err != nil {
		return err
	}
	s.tree.Remove(w.Position.Normalize().Point(), func(o interface{}) bool {
		return o.(*library.Waypoint).ID == id
	})
	return nil
}

// Within returns the waypoints inside bounds, oldest first
func (s *IndexedStore) Within(ctx context.Context, bounds gps.Rect) ([]*library.Waypoint, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	result := []*library.Waypoint{}
	s.tree.WithinFunc(bounds, func(o interface{}, _ gps.Point) {
		result = append(result, o.(*library.Waypoint))
	})
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Created.Equal(result[j].Created) {
			return result[i].Name < result[j].Name
		}
		return result[i].Created.Before(result[j].Created)
	})
	return result, nil
}

// Visit walks the index structure
func (s *IndexedStore) Visit(v Visitor) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	s.tree.Visit(v)
}
