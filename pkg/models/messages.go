/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package models

import "encoding/json"

// Channel names a broadcast topic a client can subscribe to.
type Channel string

const (
	ChannelStats    Channel = "stats"
	ChannelAlerts   Channel = "alerts"
	ChannelTopology Channel = "topology"
)

// Channels lists the fixed channel set in timer order.
func Channels() []Channel {
	return []Channel{ChannelStats, ChannelAlerts, ChannelTopology}
}

// MessageType is the "type" discriminator of a pushed message.
type MessageType string

const (
	MessageStats        MessageType = "stats"
	MessageAlerts       MessageType = "alerts"
	MessageTopology     MessageType = "topology"
	MessageDeviceUpdate MessageType = "device_update"
	MessageNewAlert     MessageType = "new_alert"
	MessageMacChange    MessageType = "mac_change"
)

// Channel returns the channel that carries messages of type t, or "" for unknown types.
func (t MessageType) Channel() Channel {
	switch t {
	case MessageStats, MessageMacChange:
		return ChannelStats
	case MessageAlerts, MessageNewAlert:
		return ChannelAlerts
	case MessageTopology, MessageDeviceUpdate:
		return ChannelTopology
	default:
		return ""
	}
}

// Message is the envelope of every frame pushed to subscribers.
type Message struct {
	Type MessageType `json:"type"`
	Data interface{} `json:"data"`
}

// RawMessage is the client-side view of Message with the payload left undecoded.
type RawMessage struct {
	Type MessageType     `json:"type"`
	Data json.RawMessage `json:"data"`
}
