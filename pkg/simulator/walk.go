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
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gosnmp/gosnmp"

	"github.com/carverauto/netwatch/pkg/models"
)

const macByteLength = 6

// InterfaceRow is one ifTable row assembled from the column walks.
type InterfaceRow struct {
	Index      int
	Name       string
	MACAddress string
	OperStatus string
	InOctets   uint64
	OutOctets  uint64
}

// Neighbor is one LLDP remote table entry.
type Neighbor struct {
	LocalIndex int
	SysName    string
	PortDesc   string
	ManAddr    string
}

// oidIndex returns the trailing sub-identifier of pdu under column.
func oidIndex(name, column string) (int, bool) {
	name = strings.TrimPrefix(name, ".")
	column = strings.TrimPrefix(column, ".")

	if !strings.HasPrefix(name, column+".") {
		return 0, false
	}

	idx, err := strconv.Atoi(name[len(column)+1:])
	if err != nil {
		return 0, false
	}

	return idx, true
}

func octetString(pdu gosnmp.SnmpPDU) string {
	if pdu.Type != gosnmp.OctetString {
		return ""
	}

	b, ok := pdu.Value.([]byte)
	if !ok {
		return ""
	}

	return strings.TrimSpace(strings.ReplaceAll(string(b), "\x00", ""))
}

func formatMACAddress(mac []byte) string {
	if len(mac) != macByteLength {
		return ""
	}

	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x", mac[0], mac[1], mac[2], mac[3], mac[4], mac[5])
}

func counterValue(pdu gosnmp.SnmpPDU) uint64 {
	switch pdu.Type {
	case gosnmp.Counter32, gosnmp.Counter64, gosnmp.Gauge32, gosnmp.Uinteger32, gosnmp.Integer:
		return gosnmp.ToBigInt(pdu.Value).Uint64()
	default:
		return 0
	}
}

// ParseInterfaceTable joins the ifDescr walk with the other column walks by
// ifIndex. Rows without an ifDescr entry are dropped; a missing oper status
// is reported as down.
func ParseInterfaceTable(descr, oper, in, out, mac []gosnmp.SnmpPDU) []InterfaceRow {
	rows := make(map[int]*InterfaceRow, len(descr))

	for _, pdu := range descr {
		idx, ok := oidIndex(pdu.Name, oidIfDescr)
		if !ok {
			continue
		}

		rows[idx] = &InterfaceRow{Index: idx, Name: octetString(pdu), OperStatus: models.InterfaceStatusDown}
	}

	apply := func(pdus []gosnmp.SnmpPDU, column string, fn func(*InterfaceRow, gosnmp.SnmpPDU)) {
		for _, pdu := range pdus {
			idx, ok := oidIndex(pdu.Name, column)
			if !ok {
				continue
			}

			if row, ok := rows[idx]; ok {
				fn(row, pdu)
			}
		}
	}

	apply(oper, oidIfOperStatus, func(row *InterfaceRow, pdu gosnmp.SnmpPDU) {
		if pdu.Type == gosnmp.Integer && gosnmp.ToBigInt(pdu.Value).Int64() == ifOperUp {
			row.OperStatus = models.InterfaceStatusUp
		}
	})
	apply(in, oidIfInOctets, func(row *InterfaceRow, pdu gosnmp.SnmpPDU) {
		row.InOctets = counterValue(pdu)
	})
	apply(out, oidIfOutOctets, func(row *InterfaceRow, pdu gosnmp.SnmpPDU) {
		row.OutOctets = counterValue(pdu)
	})
	apply(mac, oidIfPhysAddress, func(row *InterfaceRow, pdu gosnmp.SnmpPDU) {
		if b, ok := pdu.Value.([]byte); ok && pdu.Type == gosnmp.OctetString {
			row.MACAddress = formatMACAddress(b)
		}
	})

	sorted := make([]InterfaceRow, 0, len(rows))
	for _, row := range rows {
		sorted = append(sorted, *row)
	}

	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Index < sorted[j].Index })

	return sorted
}

// ParseLLDPNeighbors joins the LLDP remote columns by local port index.
func ParseLLDPNeighbors(sysNames, portDescs, manAddrs []gosnmp.SnmpPDU) []Neighbor {
	byIndex := make(map[int]*Neighbor, len(sysNames))

	for _, pdu := range sysNames {
		idx, ok := oidIndex(pdu.Name, oidLLDPRemSysName)
		if !ok {
			continue
		}

		byIndex[idx] = &Neighbor{LocalIndex: idx, SysName: octetString(pdu)}
	}

	for _, pdu := range portDescs {
		if idx, ok := oidIndex(pdu.Name, oidLLDPRemPortDesc); ok && byIndex[idx] != nil {
			byIndex[idx].PortDesc = octetString(pdu)
		}
	}

	for _, pdu := range manAddrs {
		if idx, ok := oidIndex(pdu.Name, oidLLDPRemManAddr); ok && byIndex[idx] != nil {
			byIndex[idx].ManAddr = octetString(pdu)
		}
	}

	neighbors := make([]Neighbor, 0, len(byIndex))
	for _, n := range byIndex {
		neighbors = append(neighbors, *n)
	}

	sort.Slice(neighbors, func(i, j int) bool { return neighbors[i].LocalIndex < neighbors[j].LocalIndex })

	return neighbors
}

// CalcBps converts an octet counter delta into bits per second. Negative
// deltas, as seen after a counter wrap or reset, yield zero.
func CalcBps(oldOctets, newOctets uint64, interval time.Duration) int64 {
	seconds := interval.Seconds()
	if seconds <= 0 {
		return 0
	}

	delta := float64(newOctets) - float64(oldOctets)

	return int64(max(delta*8/seconds, 0))
}
