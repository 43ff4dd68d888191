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

package dashboard

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/netwatch/pkg/models"
)

func sampleDevices() []models.Device {
	return []models.Device{
		{ID: 1, Hostname: "core-sw-01", IPAddress: "10.0.0.1", Status: models.DeviceStatusUp},
		{ID: 2, Hostname: "edge-rtr-01", IPAddress: "10.0.1.1", Status: models.DeviceStatusDown},
		{ID: 3, Hostname: "dist-sw-02", IPAddress: "10.0.2.1", Status: models.DeviceStatusWarning},
	}
}

func unacked(ids ...int64) []models.Alert {
	alerts := make([]models.Alert, 0, len(ids))
	for _, id := range ids {
		alerts = append(alerts, models.Alert{ID: id, Severity: models.SeverityWarning, Message: "link flap"})
	}

	return alerts
}

// assertUnreadDerivable checks the counter against the alert list.
func assertUnreadDerivable(t *testing.T, s *Store) {
	t.Helper()

	st := s.Snapshot()
	assert.Equal(t, countUnread(st.Alerts), st.UnreadAlerts)
}

func TestApplyDeviceStatusUpdate_UnknownIDDropped(t *testing.T) {
	s := NewStore()
	s.ReplaceDevices(sampleDevices())

	before := s.Snapshot()

	assert.False(t, s.ApplyDeviceStatusUpdate(99, models.DeviceStatusDown))

	after := s.Snapshot()
	assert.Equal(t, before.Devices, after.Devices)
	assert.Len(t, after.Devices, 3)
	assert.Equal(t, before.Version, after.Version)
}

func TestApplyDeviceStatusUpdate_Known(t *testing.T) {
	s := NewStore()
	s.ReplaceDevices(sampleDevices())

	require.True(t, s.ApplyDeviceStatusUpdate(2, models.DeviceStatusUp))

	st := s.Snapshot()
	assert.Equal(t, models.DeviceStatusUp, st.Devices[1].Status)
	assert.Equal(t, "edge-rtr-01", st.Devices[1].Hostname)
}

func TestAcknowledgeAlert_FloorAtZero(t *testing.T) {
	s := NewStore()
	s.ReplaceAlerts(unacked(1, 2))
	require.Equal(t, 2, s.UnreadAlerts())

	assert.True(t, s.AcknowledgeAlert(1))
	assert.Equal(t, 1, s.UnreadAlerts())

	for i := 0; i < 5; i++ {
		assert.False(t, s.AcknowledgeAlert(1))
		assert.False(t, s.AcknowledgeAlert(404))
	}

	assert.Equal(t, 1, s.UnreadAlerts())

	assert.True(t, s.AcknowledgeAlert(2))
	assert.False(t, s.AcknowledgeAlert(2))
	assert.Equal(t, 0, s.UnreadAlerts())

	st := s.Snapshot()
	require.Len(t, st.Alerts, 2)
	assert.True(t, st.Alerts[0].Acknowledged)
	assert.True(t, st.Alerts[1].Acknowledged)
}

func TestReplaceAlerts_ResetsCounter(t *testing.T) {
	s := NewStore()

	for i := int64(100); i < 120; i++ {
		s.AppendAlert(models.Alert{ID: i})
	}

	require.Equal(t, 20, s.UnreadAlerts())

	s.ReplaceAlerts(unacked(1, 2, 3, 4, 5))
	assert.Equal(t, 5, s.UnreadAlerts())

	empty := NewStore()
	empty.ReplaceAlerts(unacked(1, 2, 3, 4, 5))
	assert.Equal(t, 5, empty.UnreadAlerts())
}

func TestReplaceAlerts_CountsOnlyUnacknowledged(t *testing.T) {
	s := NewStore()

	alerts := unacked(1, 2, 3)
	alerts[1].Acknowledged = true

	s.ReplaceAlerts(alerts)
	assert.Equal(t, 2, s.UnreadAlerts())
}

func TestReplaceAlerts_TakesStateFromNewList(t *testing.T) {
	s := NewStore()
	s.ReplaceAlerts(unacked(1, 2))
	require.True(t, s.AcknowledgeAlert(1))
	require.Equal(t, 1, s.UnreadAlerts())

	s.ReplaceAlerts(unacked(1, 2, 3, 4, 5))

	assert.Equal(t, 5, s.UnreadAlerts())
	assert.False(t, s.Snapshot().Alerts[0].Acknowledged)
	assertUnreadDerivable(t, s)
}

func TestAppendAlert_FrontAndUnique(t *testing.T) {
	s := NewStore()
	s.ReplaceAlerts(unacked(1, 2))

	s.AppendAlert(models.Alert{ID: 3})
	s.AppendAlert(models.Alert{ID: 1, Message: "updated"})

	st := s.Snapshot()
	require.Len(t, st.Alerts, 3)
	assert.Equal(t, []int64{1, 3, 2}, []int64{st.Alerts[0].ID, st.Alerts[1].ID, st.Alerts[2].ID})
	assert.Equal(t, "updated", st.Alerts[0].Message)
	assert.Equal(t, 3, st.UnreadAlerts)
}

func TestUnreadCounterStaysDerivable(t *testing.T) {
	s := NewStore()

	s.ReplaceAlerts(unacked(1, 2, 3))
	assertUnreadDerivable(t, s)

	s.AppendAlert(models.Alert{ID: 4})
	assertUnreadDerivable(t, s)

	s.AcknowledgeAlert(2)
	assertUnreadDerivable(t, s)

	s.AppendAlert(models.Alert{ID: 2})
	assertUnreadDerivable(t, s)

	s.AcknowledgeAlert(404)
	assertUnreadDerivable(t, s)

	s.ReplaceAlerts(unacked(5, 6))
	assertUnreadDerivable(t, s)

	t.Run("duplicate turns unacknowledged", func(t *testing.T) {
		st := NewStore()
		alerts := unacked(1, 2)
		alerts[0].Acknowledged = true
		st.ReplaceAlerts(alerts)

		st.AppendAlert(models.Alert{ID: 1})
		assert.Equal(t, 2, st.UnreadAlerts())
		assertUnreadDerivable(t, st)
	})

	t.Run("duplicate turns acknowledged", func(t *testing.T) {
		st := NewStore()
		st.ReplaceAlerts(unacked(1, 2))

		st.AppendAlert(models.Alert{ID: 1, Acknowledged: true})
		assert.Equal(t, 1, st.UnreadAlerts())
		assertUnreadDerivable(t, st)
	})

	s.ClearAlerts()
	assertUnreadDerivable(t, s)
}

func TestSelectDevice(t *testing.T) {
	s := NewStore()
	s.ReplaceDevices(sampleDevices())

	require.True(t, s.SelectDevice(2))
	s.ReplaceDeviceInterfaces([]models.Interface{
		{ID: 20, DeviceID: 2, InterfaceName: "Gi0/0"},
		{ID: 30, DeviceID: 3, InterfaceName: "Gi0/1"},
	})

	st := s.Snapshot()
	device, ok := st.SelectedDevice()
	require.True(t, ok)
	assert.Equal(t, "edge-rtr-01", device.Hostname)
	require.Len(t, st.DeviceInterfaces, 1)
	assert.Equal(t, int64(20), st.DeviceInterfaces[0].ID)

	assert.False(t, s.SelectDevice(42))

	st = s.Snapshot()
	assert.Nil(t, st.SelectedDeviceID)
	assert.Empty(t, st.DeviceInterfaces)
}

func TestReplaceDeviceInterfaces_Wholesale(t *testing.T) {
	s := NewStore()
	s.ReplaceDevices(sampleDevices())
	s.SelectDevice(1)

	s.ReplaceDeviceInterfaces([]models.Interface{{ID: 1, DeviceID: 1}, {ID: 2, DeviceID: 1}})
	s.ReplaceDeviceInterfaces([]models.Interface{{ID: 3, DeviceID: 1, Status: models.InterfaceStatusDown}})

	st := s.Snapshot()
	require.Len(t, st.DeviceInterfaces, 1)
	assert.Equal(t, int64(3), st.DeviceInterfaces[0].ID)
}

func TestReplaceDeviceInterfaces_NoSelection(t *testing.T) {
	s := NewStore()
	s.ReplaceDevices(sampleDevices())

	s.ReplaceDeviceInterfaces([]models.Interface{{ID: 1, DeviceID: 1}, {ID: 2, DeviceID: 2}})

	assert.Empty(t, s.Snapshot().DeviceInterfaces)
}

func TestRemoveDeviceClearsSelection(t *testing.T) {
	s := NewStore()
	s.ReplaceDevices(sampleDevices())
	s.SelectDevice(3)

	s.RemoveDevice(3)

	st := s.Snapshot()
	assert.Len(t, st.Devices, 2)
	assert.Nil(t, st.SelectedDeviceID)
}

func TestRecordAnomalyEvent_MostRecentFirst(t *testing.T) {
	s := NewStore()

	s.RecordAnomalyEvent(models.MacChangeLog{ID: 1, DeviceID: 7, OldMAC: "a", NewMAC: "b"})
	s.RecordAnomalyEvent(models.MacChangeLog{ID: 2, DeviceID: 7, OldMAC: "b", NewMAC: "c"})
	s.RecordAnomalyEvent(models.MacChangeLog{ID: 3, DeviceID: 8, OldMAC: "x", NewMAC: "y"})

	st := s.Snapshot()
	require.Len(t, st.Anomalies[7], 2)
	assert.Equal(t, int64(2), st.Anomalies[7][0].ID)
	assert.Equal(t, int64(1), st.Anomalies[7][1].ID)
	assert.Len(t, st.Anomalies[8], 1)
}

func TestApplyStatsSnapshot_DetectsMACChange(t *testing.T) {
	mock := clock.NewMock()
	mock.Set(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))

	s := NewStore(WithStoreClock(mock))
	s.ReplaceDevices(sampleDevices())
	s.SelectDevice(1)

	stat := &models.InterfaceStat{ID: 5, InterfaceID: 10, InBps: 1200}
	first := []models.InterfaceSnapshot{
		{Interface: models.Interface{ID: 10, DeviceID: 1, InterfaceName: "Gi0/1", MACAddress: "00:11:22:33:44:55"}, Stats: stat},
		{Interface: models.Interface{ID: 20, DeviceID: 2, InterfaceName: "Gi0/2", MACAddress: "00:aa:bb:cc:dd:ee"}},
	}

	s.ApplyStatsSnapshot(first)

	st := s.Snapshot()
	assert.Empty(t, st.Anomalies)
	require.Len(t, st.DeviceInterfaces, 1)
	require.Contains(t, st.InterfaceStats, int64(10))
	assert.Equal(t, int64(1200), st.InterfaceStats[10].InBps)

	second := []models.InterfaceSnapshot{
		{Interface: models.Interface{ID: 10, DeviceID: 1, InterfaceName: "Gi0/1", MACAddress: "00:11:22:33:44:55"}},
		{Interface: models.Interface{ID: 20, DeviceID: 2, InterfaceName: "Gi0/2", MACAddress: "00:aa:bb:cc:dd:ff"}},
	}

	s.ApplyStatsSnapshot(second)

	st = s.Snapshot()
	require.Len(t, st.Anomalies[2], 1)
	change := st.Anomalies[2][0]
	assert.Equal(t, "00:aa:bb:cc:dd:ee", change.OldMAC)
	assert.Equal(t, "00:aa:bb:cc:dd:ff", change.NewMAC)
	assert.Equal(t, "Gi0/2", change.InterfaceName)
	require.NotNil(t, change.InterfaceID)
	assert.Equal(t, int64(20), *change.InterfaceID)
	assert.Equal(t, mock.Now().UTC(), change.Timestamp)
	assert.Empty(t, st.Anomalies[1])

	// stats are replaced wholesale: the latest snapshot had no stat row
	assert.Nil(t, st.InterfaceStats[10])
}

func TestApplyStatsSnapshot_PushedChangeNotDuplicated(t *testing.T) {
	s := NewStore()

	iface := int64(20)
	s.ApplyStatsSnapshot([]models.InterfaceSnapshot{{Interface: models.Interface{ID: 20, DeviceID: 2, MACAddress: "aa"}}})
	s.RecordAnomalyEvent(models.MacChangeLog{DeviceID: 2, InterfaceID: &iface, OldMAC: "aa", NewMAC: "bb"})
	s.ApplyStatsSnapshot([]models.InterfaceSnapshot{{Interface: models.Interface{ID: 20, DeviceID: 2, MACAddress: "bb"}}})

	assert.Len(t, s.Snapshot().Anomalies[2], 1)
}

func TestFilteredDevices(t *testing.T) {
	s := NewStore()
	s.ReplaceDevices(sampleDevices())

	st := s.Snapshot()
	assert.Len(t, st.FilteredDevices(), 3)

	s.SetStatusFilter(FilterDown)
	st = s.Snapshot()
	require.Len(t, st.FilteredDevices(), 1)
	assert.Equal(t, int64(2), st.FilteredDevices()[0].ID)

	s.SetStatusFilter(FilterAll)
	s.SetSearch("SW")
	st = s.Snapshot()
	assert.Len(t, st.FilteredDevices(), 2)

	s.SetSearch("10.0.2")
	st = s.Snapshot()
	require.Len(t, st.FilteredDevices(), 1)
	assert.Equal(t, "dist-sw-02", st.FilteredDevices()[0].Hostname)

	s.SetStatusFilter("bogus")
	assert.Equal(t, FilterAll, s.Snapshot().StatusFilter)
}

func TestVersionAndChanges(t *testing.T) {
	s := NewStore()
	assert.Equal(t, uint64(0), s.Version())

	s.ReplaceDevices(sampleDevices())
	s.ReplaceAlerts(nil)

	assert.Equal(t, uint64(2), s.Version())

	select {
	case <-s.Changes():
	default:
		t.Fatal("expected a pending change signal")
	}

	select {
	case <-s.Changes():
		t.Fatal("signals should coalesce")
	default:
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	s := NewStore()
	s.ReplaceDevices(sampleDevices())

	st := s.Snapshot()
	st.Devices[0].Hostname = "mutated"

	assert.Equal(t, "core-sw-01", s.Snapshot().Devices[0].Hostname)
}
