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

package broadcast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/netwatch/pkg/models"
)

func TestRegistryRegisterAndMembers(t *testing.T) {
	registry := NewRegistry()

	a := newRecordingSubscriber("a")
	b := newRecordingSubscriber("b")

	assert.True(t, registry.Register(models.ChannelStats, a))
	assert.True(t, registry.Register(models.ChannelStats, b))
	assert.True(t, registry.Register(models.ChannelStats, a))

	members := registry.Members(models.ChannelStats)
	require.Len(t, members, 2)
	assert.ElementsMatch(t, []string{"a", "b"}, []string{members[0].ID(), members[1].ID()})

	assert.Empty(t, registry.Members(models.ChannelAlerts))
	assert.Equal(t, map[models.Channel]int{
		models.ChannelStats:    2,
		models.ChannelAlerts:   0,
		models.ChannelTopology: 0,
	}, registry.Counts())
}

func TestRegistryUnknownChannel(t *testing.T) {
	registry := NewRegistry()

	assert.False(t, registry.Register("metrics", newRecordingSubscriber("a")))
	assert.Empty(t, registry.Members("metrics"))

	for _, n := range registry.Counts() {
		assert.Zero(t, n)
	}
}

func TestRegistryUnregisterIsIdempotent(t *testing.T) {
	registry := NewRegistry()
	a := newRecordingSubscriber("a")

	registry.Register(models.ChannelAlerts, a)
	registry.Unregister(models.ChannelAlerts, a)
	registry.Unregister(models.ChannelAlerts, a)
	registry.Unregister("metrics", a)

	assert.Empty(t, registry.Members(models.ChannelAlerts))
}

func TestRegistryMembersIsSnapshot(t *testing.T) {
	registry := NewRegistry()
	a := newRecordingSubscriber("a")
	b := newRecordingSubscriber("b")

	registry.Register(models.ChannelTopology, a)
	registry.Register(models.ChannelTopology, b)

	members := registry.Members(models.ChannelTopology)
	registry.Unregister(models.ChannelTopology, a)

	assert.Len(t, members, 2)
	assert.Len(t, registry.Members(models.ChannelTopology), 1)
}
