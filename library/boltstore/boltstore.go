// Package boltstore is an implementation of a waypoint store
// using BoltDB for storing data persistently
package boltstore

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"time"

	"bitbucket.org/kleinnic74/geoangles/consts"
	"bitbucket.org/kleinnic74/geoangles/library"
	"bitbucket.org/kleinnic74/geoangles/logging"
	"github.com/google/uuid"
	"github.com/reusee/mmh3"
	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"
)

var (
	waypointsBucket = []byte("waypoints")
	idMapBucket     = []byte("idmap")
	namesBucket     = []byte("names")
)

const sortableTimeLayout = "2006-01-02T15:04:05.000000000Z"

// BoltStore uses BoltDB as the storage implementation to store waypoints.
// Waypoints are kept in order of creation.
type BoltStore struct {
	db *bolt.DB
}

// NewBoltStore creates a new BoltStore in the given database, the needed
// buckets are created if not yet available.
func NewBoltStore(db *bolt.DB) (library.ClosableStore, error) {
	for _, b := range [][]byte{waypointsBucket, idMapBucket, namesBucket} {
		if err := createBucket(db, b); err != nil {
			return nil, err
		}
	}
	return &BoltStore{
		db: db,
	}, nil
}

func createBucket(db *bolt.DB, name []byte) error {
	return db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(name)
		return err
	})
}

// Close closes this store
func (store *BoltStore) Close() {
	store.db.Close()
}

// Add adds the given waypoint to this store, missing ids and creation
// timestamps are filled in. Names are unique ignoring case.
func (store *BoltStore) Add(ctx context.Context, w *library.Waypoint) error {
	w.Name = strings.TrimSpace(w.Name)
	if w.Name == "" {
		return library.ErrNameRequired
	}
	if w.ID == "" {
		w.ID = library.WaypointID(uuid.New().String())
	}
	if w.Created.IsZero() {
		w.Created = time.Now().UTC()
	}
	id := sortableID(w.Created, w.ID)
	encoded, err := json.Marshal(w)
	if err != nil {
		logging.From(ctx).Error("Failed to encode waypoint", zap.String("waypoint", string(w.ID)), zap.Error(err))
		return err
	}
	return store.db.Update(func(tx *bolt.Tx) error {
		names := tx.Bucket(namesBucket)
		nameKey := []byte(strings.ToLower(w.Name))
		if existing := names.Get(nameKey); existing != nil {
			return library.AlreadyExists(w.Name)
		}
		idmap := tx.Bucket(idMapBucket)
		if existing := idmap.Get([]byte(w.ID)); existing != nil {
			return library.AlreadyExists(w.Name)
		}
		if err := tx.Bucket(waypointsBucket).Put(id, encoded); err != nil {
			return err
		}
		if err := idmap.Put([]byte(w.ID), id); err != nil {
			return err
		}
		return names.Put(nameKey, []byte(w.ID))
	})
}

// Get returns the waypoint with the given id
func (store *BoltStore) Get(ctx context.Context, id library.WaypointID) (*library.Waypoint, error) {
	var found *library.Waypoint
	return found, store.db.View(func(tx *bolt.Tx) (err error) {
		found, err = get(ctx, tx, id)
		return
	})
}

// FindByName returns the waypoint with the given name, ignoring case
func (store *BoltStore) FindByName(ctx context.Context, name string) (*library.Waypoint, error) {
	var found *library.Waypoint
	return found, store.db.View(func(tx *bolt.Tx) (err error) {
		id := tx.Bucket(namesBucket).Get([]byte(strings.ToLower(strings.TrimSpace(name))))
		if id == nil {
			return library.NotFound(library.WaypointID(name))
		}
		found, err = get(ctx, tx, library.WaypointID(id))
		return
	})
}

func get(ctx context.Context, tx *bolt.Tx, id library.WaypointID) (*library.Waypoint, error) {
	internalID := tx.Bucket(idMapBucket).Get([]byte(id))
	if internalID == nil {
		return nil, library.NotFound(id)
	}
	data := tx.Bucket(waypointsBucket).Get(internalID)
	if data == nil {
		return nil, library.NotFound(id)
	}
	var w library.Waypoint
	if err := json.Unmarshal(data, &w); err != nil {
		logging.From(ctx).Error("Could not unmarshal waypoint", zap.String("waypoint", string(id)), zap.Error(err))
		return nil, err
	}
	return &w, nil
}

// FindAllPaged returns at most maxCount waypoints starting at index start
// and whether more waypoints are available. A maxCount of zero or less returns all
// waypoints from start.
func (store *BoltStore) FindAllPaged(ctx context.Context, start, maxCount int, order consts.SortOrder) ([]*library.Waypoint, bool, error) {
	if start < 0 {
		start = 0
	}
	found, err := store.findRange(ctx, order, func(c Cursor) Cursor {
		c = c.Skip(uint(start))
		if maxCount > 0 {
			c = c.Limit(uint(maxCount + 1))
		}
		return c
	})
	if err != nil {
		return nil, false, err
	}
	hasMore := maxCount > 0 && len(found) > maxCount
	if hasMore {
		found = found[:maxCount]
	}
	return found, hasMore, nil
}

func (store *BoltStore) findRange(ctx context.Context, order consts.SortOrder, f func(Cursor) Cursor) ([]*library.Waypoint, error) {
	var found = make([]*library.Waypoint, 0)

	err := store.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(waypointsBucket)
		var c Cursor
		if order == consts.Descending {
			c = newReverseCursor(b.Cursor())
		} else {
			c = newForwardCursor(b.Cursor())
		}
		c = f(c)
		for k, v := c.First(); k != nil; k, v = c.Next() {
			var w library.Waypoint
			if err := json.Unmarshal(v, &w); err != nil {
				logging.From(ctx).Error("Could not unmarshal waypoint", zap.ByteString("key", k), zap.Error(err))
				return err
			}
			found = append(found, &w)
		}
		return nil
	})
	return found, err
}

// Delete removes the waypoint with the given id
func (store *BoltStore) Delete(ctx context.Context, id library.WaypointID) error {
	return store.db.Update(func(tx *bolt.Tx) error {
		w, err := get(ctx, tx, id)
		if err != nil {
			return err
		}
		idmap := tx.Bucket(idMapBucket)
		if err := tx.Bucket(waypointsBucket).Delete(idmap.Get([]byte(id))); err != nil {
			return err
		}
		if err := idmap.Delete([]byte(id)); err != nil {
			return err
		}
		return tx.Bucket(namesBucket).Delete([]byte(strings.ToLower(w.Name)))
	})
}

// sortableID orders waypoints by creation time, the hash of the id breaks ties
func sortableID(ts time.Time, id library.WaypointID) []byte {
	var key bytes.Buffer
	key.Write([]byte(ts.UTC().Format(sortableTimeLayout)))
	h := mmh3.New32()
	h.Write([]byte(strings.ToLower(string(id))))
	key.Write(h.Sum(nil))
	return key.Bytes()
}
