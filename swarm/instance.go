package swarm

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"
)

var (
	instanceBucket = []byte("_instance")
	instanceIDKey  = []byte("id")
)

// InstanceID uniquely identifies a server across restarts
type InstanceID string

func (id InstanceID) String() string {
	return string(id)
}

type Instance struct {
	ID         InstanceID        `json:"id"`
	Name       string            `json:"name"`
	Properties map[string]string `json:"properties,omitempty"`
}

type PropertyDefinition func(*Instance)

func WithPropertyValue(name, value string) PropertyDefinition {
	return func(i *Instance) {
		if value != "" {
			i.Properties[name] = value
		}
	}
}

// NewInstance loads the id of this server from db, creating it on first use.
// The instance is named after the host.
func NewInstance(ctx context.Context, db *bolt.DB, properties ...PropertyDefinition) (*Instance, error) {
	var id InstanceID
	err := db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(instanceBucket)
		if err != nil {
			return err
		}
		if v := b.Get(instanceIDKey); v != nil {
			id = InstanceID(v)
			return nil
		}
		id = InstanceID(uuid.New().String())
		return b.Put(instanceIDKey, []byte(id))
	})
	if err != nil {
		return nil, err
	}
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	instance := &Instance{
		ID:         id,
		Name:       fmt.Sprintf("geoangles on %s", hostname),
		Properties: map[string]string{"id": string(id)},
	}
	for _, p := range properties {
		p(instance)
	}
	return instance, nil
}
