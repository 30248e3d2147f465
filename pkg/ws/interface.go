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

package ws

import (
	"context"
)

// Conn is a single WebSocket connection.
type Conn interface {
	// ID returns the connection's unique identifier.
	ID() string

	ReadMessage() (messageType int, p []byte, err error)

	WriteMessage(messageType int, data []byte) error

	WriteJSON(v any) error

	ReadJSON(v any) error

	Close() error

	RemoteAddr() string

	Context() context.Context

	SetContext(ctx context.Context)
}

// Hub tracks every live connection.
type Hub interface {
	Register(conn Conn)

	Unregister(conn Conn)

	// Broadcast sends a message to every connection.
	Broadcast(messageType int, data []byte)

	BroadcastJSON(v any)

	// SendToID sends a message to one connection.
	SendToID(id string, messageType int, data []byte) error

	SendToIDJSON(id string, v any) error

	GetConn(id string) (Conn, bool)

	GetConns() map[string]Conn

	Count() int
}

// Handler receives connection lifecycle events.
type Handler interface {
	OnConnect(conn Conn) error

	OnMessage(conn Conn, messageType int, data []byte) error

	OnDisconnect(conn Conn, err error)

	OnError(conn Conn, err error)
}

// WebSocket message type constants.
const (
	TextMessage   = 1
	BinaryMessage = 2
	CloseMessage  = 8
	PingMessage   = 9
	PongMessage   = 10
)
