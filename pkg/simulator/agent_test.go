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

package simulator

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/gosnmp/gosnmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/netwatch/pkg/models"
)

// quietAgent never flaps, changes MAC or goes unreachable.
func quietAgent(deviceID int64) *Agent {
	a := NewAgent(deviceID, rand.New(rand.NewPCG(1, uint64(deviceID))))
	a.chances = chances{}

	return a
}

func TestCalcBps(t *testing.T) {
	assert.Equal(t, int64(1000), CalcBps(0, 1000, 8*time.Second))
	assert.Equal(t, int64(0), CalcBps(5000, 1000, 8*time.Second))
	assert.Equal(t, int64(0), CalcBps(0, 1000, 0))
	assert.Equal(t, int64(0), CalcBps(42, 42, time.Second))
}

func TestAgentWalkIfTable(t *testing.T) {
	a := quietAgent(0x010203)
	a.interfaces[1].up = false
	a.interfaces[0].inOctets = 1500
	a.interfaces[0].outOctets = 700

	rows := ParseInterfaceTable(
		a.Walk(oidIfDescr),
		a.Walk(oidIfOperStatus),
		a.Walk(oidIfInOctets),
		a.Walk(oidIfOutOctets),
		a.Walk(oidIfPhysAddress))

	require.Len(t, rows, defaultInterfaceCount)

	assert.Equal(t, 1, rows[0].Index)
	assert.Equal(t, "GigabitEthernet0/0", rows[0].Name)
	assert.Equal(t, models.InterfaceStatusUp, rows[0].OperStatus)
	assert.Equal(t, uint64(1500), rows[0].InOctets)
	assert.Equal(t, uint64(700), rows[0].OutOctets)
	assert.Equal(t, "02:00:01:02:03:01", rows[0].MACAddress)

	assert.Equal(t, models.InterfaceStatusDown, rows[1].OperStatus)
}

func TestParseInterfaceTable_MissingColumns(t *testing.T) {
	descr := []gosnmp.SnmpPDU{
		{Name: oidIfDescr + ".7", Type: gosnmp.OctetString, Value: []byte("eth7\x00")},
		{Name: ".1.3.6.1.2.1.2.2.1.20.7", Type: gosnmp.OctetString, Value: []byte("other column")},
	}
	oper := []gosnmp.SnmpPDU{
		{Name: oidIfOperStatus + ".9", Type: gosnmp.Integer, Value: ifOperUp},
	}

	rows := ParseInterfaceTable(descr, oper, nil, nil, nil)

	require.Len(t, rows, 1)
	assert.Equal(t, "eth7", rows[0].Name)
	assert.Equal(t, models.InterfaceStatusDown, rows[0].OperStatus)
	assert.Empty(t, rows[0].MACAddress)
}

func TestAgentUnreachable(t *testing.T) {
	a := quietAgent(1)
	a.chances.unreachable = 1

	a.Advance(time.Second)

	assert.Nil(t, a.Walk(oidIfDescr))
	assert.Nil(t, a.Walk(oidLLDPRemSysName))
}

func TestAgentAdvanceCounters(t *testing.T) {
	a := quietAgent(1)
	a.interfaces[2].up = false

	a.Advance(30 * time.Second)

	rows := ParseInterfaceTable(a.Walk(oidIfDescr), nil, a.Walk(oidIfInOctets), a.Walk(oidIfOutOctets), nil)
	require.Len(t, rows, defaultInterfaceCount)

	assert.Zero(t, rows[2].InOctets)
	assert.Zero(t, rows[2].OutOctets)

	for _, i := range []int{0, 1, 3} {
		bps := CalcBps(0, rows[i].InOctets, 30*time.Second)
		assert.LessOrEqual(t, bps, int64(maxUtilization*defaultSpeedBps)+1)
	}
}

func TestAgentDeterministicWithSeed(t *testing.T) {
	a := NewAgent(5, rand.New(rand.NewPCG(99, 5)))
	b := NewAgent(5, rand.New(rand.NewPCG(99, 5)))

	for i := 0; i < 20; i++ {
		a.Advance(time.Second)
		b.Advance(time.Second)
	}

	assert.Equal(t, a.Walk(oidIfInOctets), b.Walk(oidIfInOctets))
	assert.Equal(t, a.Walk(oidIfPhysAddress), b.Walk(oidIfPhysAddress))
}

func TestLLDPNeighbors(t *testing.T) {
	a := quietAgent(1)
	a.SetNeighbor(4, models.Device{ID: 2, Hostname: "dist-sw-02", IPAddress: "10.0.0.2"}, "GigabitEthernet0/0")

	neighbors := ParseLLDPNeighbors(a.Walk(oidLLDPRemSysName), a.Walk(oidLLDPRemPortDesc), a.Walk(oidLLDPRemManAddr))

	require.Len(t, neighbors, 1)
	assert.Equal(t, Neighbor{LocalIndex: 4, SysName: "dist-sw-02", PortDesc: "GigabitEthernet0/0", ManAddr: "10.0.0.2"}, neighbors[0])
	assert.Equal(t, "GigabitEthernet0/3", a.InterfaceName(4))
	assert.Empty(t, a.InterfaceName(9))
}

func TestAgentRandomMACIsUnicastLocal(t *testing.T) {
	a := quietAgent(1)

	for i := 0; i < 50; i++ {
		mac := a.randomMAC()
		require.Len(t, mac, macByteLength)
		assert.Equal(t, byte(0x02), mac[0]&0x03)
	}
}
