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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/netwatch/pkg/logger"
	"github.com/carverauto/netwatch/pkg/models"
)

func TestDispatch(t *testing.T) {
	store := NewStore()
	store.ReplaceDevices(sampleDevices())

	d := NewDispatcher(store, logger.NewTestLogger())

	tests := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{"device update", `{"type":"device_update","data":{"id":1,"status":"down"}}`, false},
		{"unknown device", `{"type":"device_update","data":{"id":99,"status":"down"}}`, false},
		{"new alert", `{"type":"new_alert","data":{"id":7,"severity":"critical","message":"Interface Gi0/1 down"}}`, false},
		{"mac change", `{"type":"mac_change","data":{"id":3,"deviceId":2,"oldMac":"aa","newMac":"bb"}}`, false},
		{"topology", `{"type":"topology","data":[{"id":1,"srcDeviceId":1,"dstDeviceId":2}]}`, false},
		{"unknown type", `{"type":"heartbeat","data":{}}`, true},
		{"missing data", `{"type":"new_alert"}`, true},
		{"bad json", `{"type":`, true},
		{"bad data", `{"type":"alerts","data":{"id":1}}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := d.Dispatch([]byte(tt.payload))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
		})
	}

	st := store.Snapshot()

	assert.Len(t, st.Devices, 3)
	assert.Equal(t, models.DeviceStatusDown, st.Devices[0].Status)

	require.Len(t, st.Alerts, 1)
	assert.Equal(t, int64(7), st.Alerts[0].ID)
	assert.Equal(t, 1, st.UnreadAlerts)

	require.Len(t, st.Anomalies[2], 1)
	assert.Equal(t, "bb", st.Anomalies[2][0].NewMAC)

	require.Len(t, st.TopologyLinks, 1)
}

func TestDispatch_AlertsSnapshotReplaces(t *testing.T) {
	store := NewStore()
	store.AppendAlert(models.Alert{ID: 50})

	d := NewDispatcher(store, logger.NewTestLogger())

	require.NoError(t, d.Dispatch([]byte(`{"type":"alerts","data":[{"id":3},{"id":2,"acknowledged":true},{"id":1}]}`)))

	st := store.Snapshot()
	require.Len(t, st.Alerts, 3)
	assert.Equal(t, int64(3), st.Alerts[0].ID)
	assert.Equal(t, 2, st.UnreadAlerts)
}

func TestDispatch_StatsSnapshot(t *testing.T) {
	store := NewStore()
	store.ReplaceDevices(sampleDevices())
	store.SelectDevice(1)

	d := NewDispatcher(store, logger.NewTestLogger())

	payload := `{"type":"stats","data":[
		{"interface":{"id":10,"deviceId":1,"interfaceName":"Gi0/1"},"stats":{"id":1,"interfaceId":10,"inBps":800,"outBps":400}},
		{"interface":{"id":11,"deviceId":1,"interfaceName":"Gi0/2"},"stats":null}
	]}`

	require.NoError(t, d.Dispatch([]byte(payload)))

	st := store.Snapshot()
	require.Len(t, st.DeviceInterfaces, 2)
	require.NotNil(t, st.InterfaceStats[10])
	assert.Equal(t, int64(400), st.InterfaceStats[10].OutBps)
	assert.Nil(t, st.InterfaceStats[11])
}
