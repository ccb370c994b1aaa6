package library

import (
	"context"
	"errors"
	"fmt"

	"bitbucket.org/kleinnic74/geoangles/consts"
	"bitbucket.org/kleinnic74/geoangles/domain/gps"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrNameRequired  = errors.New("waypoint requires a name")
)

// NotFound returns an error wrapping ErrNotFound for the given waypoint id
func NotFound(id WaypointID) error {
	return fmt.Errorf("waypoint '%s': %w", id, ErrNotFound)
}

// AlreadyExists returns an error wrapping ErrAlreadyExists for the given waypoint name
func AlreadyExists(name string) error {
	return fmt.Errorf("waypoint named '%s': %w", name, ErrAlreadyExists)
}

// WaypointStore represents a persistent storage of waypoints
type WaypointStore interface {
	Add(ctx context.Context, w *Waypoint) error
	Get(ctx context.Context, id WaypointID) (*Waypoint, error)
	FindByName(ctx context.Context, name string) (*Waypoint, error)
	FindAllPaged(ctx context.Context, start, maxCount int, order consts.SortOrder) ([]*Waypoint, bool, error)
	Delete(ctx context.Context, id WaypointID) error
}

// ClosableStore is a WaypointStore that can be closed
type ClosableStore interface {
	WaypointStore

	Close()
}

// GeoIndex finds waypoints by position
type GeoIndex interface {
	Within(ctx context.Context, bounds gps.Rect) ([]*Waypoint, error)
}
