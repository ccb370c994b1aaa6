package swarm

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"bitbucket.org/kleinnic74/geoangles/logging"
	"github.com/grandcat/zeroconf"
	"go.uber.org/zap"
)

const (
	GeoAnglesSVCName = "_geoangles._tcp"

	browseInterval = 5 * time.Minute
)

type Peer struct {
	Name       string            `json:"name"`
	ID         InstanceID        `json:"id"`
	URL        string            `json:"url"`
	Type       string            `json:"service"`
	Properties map[string]string `json:"properties,omitempty"`
	IsSelf     bool              `json:"-"`
}

func propertiesAsTXT(p map[string]string) (txt []string) {
	for k, v := range p {
		txt = append(txt, fmt.Sprintf("%s=%s", k, v))
	}
	return
}

func propertiesFromTXT(txt []string) (p map[string]string) {
	p = make(map[string]string)
	for _, kv := range txt {
		parts := strings.SplitN(kv, "=", 2)
		if parts[0] == "" {
			continue
		}
		if len(parts) == 1 {
			p[parts[0]] = ""
			continue
		}
		p[parts[0]] = parts[1]
	}
	return
}

// Controller announces this server over mDNS and keeps track of the other
// servers announcing the same service
type Controller struct {
	instance *Instance

	port uint

	done     chan struct{}
	shutdown sync.Once

	peers    map[string]Peer
	peerLock sync.RWMutex
}

func NewController(instance *Instance, port uint) *Controller {
	return &Controller{
		instance: instance,
		port:     port,
		peers:    make(map[string]Peer),
		done:     make(chan struct{}),
	}
}

// ListenAndServe blocks until the context is cancelled or Shutdown is called
func (c *Controller) ListenAndServe(ctx context.Context) {
	logger, ctx := logging.SubFrom(ctx, "swarm.controller")
	server, err := zeroconf.Register(c.instance.Name, GeoAnglesSVCName, "local.", int(c.port), propertiesAsTXT(c.instance.Properties), nil)
	if err != nil {
		logger.Error("Failed to publish zeroconf service", zap.Error(err))
		return
	}
	defer server.Shutdown()
	logger.Info("Announced service", zap.String("service", GeoAnglesSVCName), zap.Uint("port", c.port))

	for {
		if err := c.browse(ctx); err != nil {
			logger.Error("Failed to browse mDNS services", zap.Error(err))
		}
		select {
		case <-ctx.Done():
			return
		case <-c.done:
			logger.Info("Shutting down")
			return
		case <-time.After(time.Second):
		}
	}
}

func (c *Controller) browse(ctx context.Context) error {
	resolver, err := zeroconf.NewResolver()
	if err != nil {
		return err
	}
	browseCtx, cancel := context.WithTimeout(ctx, browseInterval)
	defer cancel()

	peerCh := make(chan *zeroconf.ServiceEntry)
	if err := resolver.Browse(browseCtx, GeoAnglesSVCName, "local.", peerCh); err != nil {
		return err
	}
	for {
		select {
		case p, ok := <-peerCh:
			if !ok {
				return nil
			}
			if p != nil {
				c.peerDiscovered(ctx, p)
			}
		case <-browseCtx.Done():
			return nil
		case <-c.done:
			return nil
		}
	}
}

func (c *Controller) Shutdown() {
	c.shutdown.Do(func() { close(c.done) })
}

func (c *Controller) peerDiscovered(ctx context.Context, p *zeroconf.ServiceEntry) {
	c.peerLock.Lock()
	defer c.peerLock.Unlock()

	properties := propertiesFromTXT(p.Text)
	id := InstanceID(properties["id"])
	peer := Peer{
		Name:       p.Instance,
		ID:         id,
		Type:       p.Service,
		URL:        asURL(p),
		Properties: properties,
		IsSelf:     c.instance.ID == id,
	}

	if _, found := c.peers[peer.Name]; !found {
		c.peers[peer.Name] = peer
		logging.From(ctx).Info("Peer detected",
			zap.String("peer.instance", peer.Name),
			zap.Stringer("peer.ID", peer.ID),
			zap.String("peer.URL", peer.URL),
			zap.String("peer.hostname", p.HostName),
			zap.Array("peer.addresses", logging.IPs(append(p.AddrIPv4, p.AddrIPv6...))),
			zap.Bool("self", peer.IsSelf))
	}
}

func asURL(p *zeroconf.ServiceEntry) string {
	if len(p.AddrIPv4) > 0 {
		return fmt.Sprintf("http://%s:%d", p.AddrIPv4[0], p.Port)
	}
	if len(p.AddrIPv6) > 0 {
		return fmt.Sprintf("http://[%s]:%d", p.AddrIPv6[0], p.Port)
	}
	return ""
}

// GetPeers returns the other servers seen so far
func (c *Controller) GetPeers() (r []Peer) {
	c.peerLock.RLock()
	defer c.peerLock.RUnlock()

	for _, p := range c.peers {
		if !p.IsSelf {
			r = append(r, p)
		}
	}
	return
}
