// Copyright 2026 CareConnect Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package realtime

import (
	"sync"

	"github.com/bytedance/sonic"

	"github.com/careconnect-hq/careconnect/pkg/log"
	"github.com/careconnect-hq/careconnect/pkg/metrics"
	"github.com/careconnect-hq/careconnect/pkg/safe"
	"github.com/careconnect-hq/careconnect/pkg/ws"
)

// Notifier is what services use to push fresh data to dashboard
// subscribers after a mutation.
type Notifier interface {
	Publish(collections ...string)
}

// NopNotifier discards every publish. Used when no hub is wired, and in
// tests.
type NopNotifier struct{}

func (NopNotifier) Publish(...string) {}

// Fetcher loads the current snapshot of one collection.
type Fetcher func() (any, error)

// SnapshotMessage is the wire frame pushed to subscribers. Every frame
// carries the full current state of one collection.
type SnapshotMessage struct {
	Type       string `json:"type"`
	Collection string `json:"collection"`
	Rows       any    `json:"rows"`
}

type clientCommand struct {
	Action     string `json:"action"`
	Collection string `json:"collection"`
}

// Broker owns the hub and the per-collection fetchers. It implements
// both Notifier (for services) and ws.Handler (for connections).
type Broker struct {
	hub      ws.Hub
	mu       sync.RWMutex
	fetchers map[string]Fetcher
}

func NewBroker() *Broker {
	return &Broker{
		hub:      ws.NewHub(),
		fetchers: make(map[string]Fetcher),
	}
}

func (b *Broker) Hub() ws.Hub {
	return b.hub
}

// RegisterFetcher binds a collection name to its snapshot loader.
func (b *Broker) RegisterFetcher(collection string, fetcher Fetcher) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.fetchers[collection] = fetcher
}

// Publish reloads each named collection and broadcasts the snapshot to
// every subscriber. Runs async so mutating requests never wait on slow
// subscribers.
func (b *Broker) Publish(collections ...string) {
	for _, collection := range collections {
		name := collection
		safe.Go(func() {
			b.publishOne(name, "")
		})
	}
}

func (b *Broker) publishOne(collection, connID string) {
	b.mu.RLock()
	fetcher, ok := b.fetchers[collection]
	b.mu.RUnlock()
	if !ok {
		log.Warnw("no fetcher registered for collection", "collection", collection)
		return
	}

	rows, err := fetcher()
	if err != nil {
		log.Errorw("failed to load collection snapshot", "collection", collection, "error", err)
		return
	}

	msg := SnapshotMessage{
		Type:       "snapshot",
		Collection: collection,
		Rows:       rows,
	}

	if connID != "" {
		data, err := sonic.Marshal(msg)
		if err != nil {
			log.Errorw("failed to marshal snapshot", "collection", collection, "error", err)
			return
		}
		if err := b.hub.SendToID(connID, ws.TextMessage, data); err != nil {
			log.Debugw("failed to send snapshot", "collection", collection, "connId", connID, "error", err)
		}
		return
	}

	b.hub.BroadcastJSON(msg)
}

// OnConnect pushes the full snapshot of every registered collection to
// the new subscriber.
func (b *Broker) OnConnect(conn ws.Conn) error {
	b.mu.RLock()
	names := make([]string, 0, len(b.fetchers))
	for name := range b.fetchers {
		names = append(names, name)
	}
	b.mu.RUnlock()

	connID := conn.ID()
	safe.Go(func() {
		for _, name := range names {
			b.publishOne(name, connID)
		}
	})

	metrics.DashboardSubscribers.Set(float64(b.hub.Count()))
	log.Debugw("dashboard subscriber connected", "connId", connID, "remote", conn.RemoteAddr(), "subscribers", b.hub.Count())
	return nil
}

// OnMessage handles refresh requests from the client.
func (b *Broker) OnMessage(conn ws.Conn, messageType int, data []byte) error {
	if messageType != ws.TextMessage {
		return nil
	}

	var cmd clientCommand
	if err := sonic.Unmarshal(data, &cmd); err != nil {
		return ws.ErrInvalidMessageType
	}

	if cmd.Action == "refresh" && cmd.Collection != "" {
		b.publishOne(cmd.Collection, conn.ID())
	}
	return nil
}

func (b *Broker) OnDisconnect(conn ws.Conn, err error) {
	metrics.DashboardSubscribers.Set(float64(b.hub.Count()))
	log.Debugw("dashboard subscriber disconnected", "connId", conn.ID(), "error", err)
}

func (b *Broker) OnError(conn ws.Conn, err error) {
	log.Warnw("dashboard subscriber error", "connId", conn.ID(), "error", err)
}
