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

// Package simulator produces interface statistics, alerts and topology for
// the devices in the database without talking to real equipment. Each device
// is backed by an in-memory agent that answers IF-MIB and LLDP-MIB walks.
package simulator

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/gosnmp/gosnmp"

	"github.com/carverauto/netwatch/pkg/models"
)

// IF-MIB ifTable columns and LLDP-MIB remote table columns.
const (
	oidIfDescr       = ".1.3.6.1.2.1.2.2.1.2"
	oidIfPhysAddress = ".1.3.6.1.2.1.2.2.1.6"
	oidIfOperStatus  = ".1.3.6.1.2.1.2.2.1.8"
	oidIfInOctets    = ".1.3.6.1.2.1.2.2.1.10"
	oidIfOutOctets   = ".1.3.6.1.2.1.2.2.1.16"

	oidLLDPRemPortDesc = ".1.0.8802.1.1.2.1.4.1.1.8"
	oidLLDPRemSysName  = ".1.0.8802.1.1.2.1.4.1.1.9"
	oidLLDPRemManAddr  = ".1.0.8802.1.1.2.1.4.2.1.4"
)

const (
	ifOperUp   = 1
	ifOperDown = 2

	defaultInterfaceCount = 4
	defaultSpeedBps       = 1_000_000_000

	unreachableChance = 0.02
	flapChance        = 0.05
	macChangeChance   = 0.01
	maxUtilization    = 0.3
)

type agentInterface struct {
	index     int
	name      string
	mac       []byte
	up        bool
	speedBps  uint64
	inOctets  uint32
	outOctets uint32
}

// chances are per-interval event probabilities.
type chances struct {
	unreachable float64
	flap        float64
	macChange   float64
}

type lldpNeighbor struct {
	sysName  string
	portDesc string
	manAddr  string
}

// Agent answers walks for one simulated device. It is not safe for
// concurrent use.
type Agent struct {
	deviceID   int64
	rng        *rand.Rand
	reachable  bool
	chances    chances
	interfaces []*agentInterface
	neighbors  map[int]lldpNeighbor
}

// NewAgent builds an agent with the default interface set. The MAC addresses
// are derived from the device id so restarts report the same hardware.
func NewAgent(deviceID int64, rng *rand.Rand) *Agent {
	a := &Agent{
		deviceID:  deviceID,
		rng:       rng,
		reachable: true,
		chances:   chances{unreachable: unreachableChance, flap: flapChance, macChange: macChangeChance},
		neighbors: make(map[int]lldpNeighbor),
	}

	for i := 1; i <= defaultInterfaceCount; i++ {
		a.interfaces = append(a.interfaces, &agentInterface{
			index:    i,
			name:     fmt.Sprintf("GigabitEthernet0/%d", i-1),
			mac:      baseMAC(deviceID, i),
			up:       true,
			speedBps: defaultSpeedBps,
		})
	}

	return a
}

func baseMAC(deviceID int64, index int) []byte {
	// locally administered unicast prefix
	return []byte{0x02, 0x00, byte(deviceID >> 16), byte(deviceID >> 8), byte(deviceID), byte(index)}
}

// InterfaceName returns the ifDescr of an interface index.
func (a *Agent) InterfaceName(index int) string {
	for _, iface := range a.interfaces {
		if iface.index == index {
			return iface.name
		}
	}

	return ""
}

// SetNeighbor makes the agent report an LLDP neighbor on a local interface.
func (a *Agent) SetNeighbor(localIndex int, peer models.Device, peerPort string) {
	a.neighbors[localIndex] = lldpNeighbor{
		sysName:  peer.DisplayName(),
		portDesc: peerPort,
		manAddr:  peer.IPAddress,
	}
}

// ClearNeighbors removes every LLDP neighbor.
func (a *Agent) ClearNeighbors() {
	a.neighbors = make(map[int]lldpNeighbor)
}

// Advance moves the counters forward by one polling interval and applies
// random reachability, link flaps and MAC changes.
func (a *Agent) Advance(interval time.Duration) {
	a.reachable = a.rng.Float64() >= a.chances.unreachable
	if !a.reachable {
		return
	}

	seconds := interval.Seconds()

	for _, iface := range a.interfaces {
		if a.rng.Float64() < a.chances.flap {
			iface.up = !iface.up
		}

		if a.rng.Float64() < a.chances.macChange {
			iface.mac = a.randomMAC()
		}

		if !iface.up {
			continue
		}

		iface.inOctets += a.octets(iface.speedBps, seconds)
		iface.outOctets += a.octets(iface.speedBps, seconds)
	}
}

func (a *Agent) octets(speedBps uint64, seconds float64) uint32 {
	bps := a.rng.Float64() * maxUtilization * float64(speedBps)

	return uint32(uint64(bps*seconds/8) & 0xffffffff)
}

func (a *Agent) randomMAC() []byte {
	mac := make([]byte, 6)
	for i := range mac {
		mac[i] = byte(a.rng.IntN(256))
	}

	mac[0] = (mac[0] | 0x02) &^ 0x01

	return mac
}

// Walk returns the PDUs under one table column. An unreachable agent returns nil.
func (a *Agent) Walk(column string) []gosnmp.SnmpPDU {
	if !a.reachable {
		return nil
	}

	switch column {
	case oidLLDPRemSysName, oidLLDPRemPortDesc, oidLLDPRemManAddr:
		return a.walkLLDP(column)
	}

	pdus := make([]gosnmp.SnmpPDU, 0, len(a.interfaces))

	for _, iface := range a.interfaces {
		name := column + "." + strconv.Itoa(iface.index)

		switch column {
		case oidIfDescr:
			pdus = append(pdus, gosnmp.SnmpPDU{Name: name, Type: gosnmp.OctetString, Value: []byte(iface.name)})
		case oidIfPhysAddress:
			pdus = append(pdus, gosnmp.SnmpPDU{Name: name, Type: gosnmp.OctetString, Value: append([]byte(nil), iface.mac...)})
		case oidIfOperStatus:
			status := ifOperDown
			if iface.up {
				status = ifOperUp
			}

			pdus = append(pdus, gosnmp.SnmpPDU{Name: name, Type: gosnmp.Integer, Value: status})
		case oidIfInOctets:
			pdus = append(pdus, gosnmp.SnmpPDU{Name: name, Type: gosnmp.Counter32, Value: uint(iface.inOctets)})
		case oidIfOutOctets:
			pdus = append(pdus, gosnmp.SnmpPDU{Name: name, Type: gosnmp.Counter32, Value: uint(iface.outOctets)})
		default:
			return nil
		}
	}

	return pdus
}

// walkLLDP indexes the remote table by the local port number only.
func (a *Agent) walkLLDP(column string) []gosnmp.SnmpPDU {
	pdus := make([]gosnmp.SnmpPDU, 0, len(a.neighbors))

	for _, iface := range a.interfaces {
		n, ok := a.neighbors[iface.index]
		if !ok {
			continue
		}

		var value string

		switch column {
		case oidLLDPRemSysName:
			value = n.sysName
		case oidLLDPRemPortDesc:
			value = n.portDesc
		case oidLLDPRemManAddr:
			value = n.manAddr
		}

		pdus = append(pdus, gosnmp.SnmpPDU{
			Name:  column + "." + strconv.Itoa(iface.index),
			Type:  gosnmp.OctetString,
			Value: []byte(value),
		})
	}

	return pdus
}
