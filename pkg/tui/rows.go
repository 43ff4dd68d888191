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

package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"

	"github.com/carverauto/netwatch/pkg/dashboard"
	"github.com/carverauto/netwatch/pkg/models"
)

const timeLayout = "15:04:05"

func deviceColumns() []table.Column {
	return []table.Column{
		{Title: "ID", Width: 5},
		{Title: "Hostname", Width: 20},
		{Title: "IP Address", Width: 16},
		{Title: "Vendor", Width: 10},
		{Title: "Status", Width: 8},
		{Title: "Last Seen", Width: 10},
	}
}

func alertColumns() []table.Column {
	return []table.Column{
		{Title: "ID", Width: 5},
		{Title: "Severity", Width: 9},
		{Title: "Message", Width: 44},
		{Title: "Time", Width: 9},
		{Title: "Ack", Width: 3},
	}
}

func deviceRows(st *dashboard.State) []table.Row {
	devices := st.FilteredDevices()
	rows := make([]table.Row, 0, len(devices))

	for _, d := range devices {
		lastSeen := "-"
		if d.LastSeen != nil {
			lastSeen = d.LastSeen.Local().Format(timeLayout)
		}

		rows = append(rows, table.Row{
			strconv.FormatInt(d.ID, 10),
			d.Hostname,
			d.IPAddress,
			d.Vendor,
			string(d.Status),
			lastSeen,
		})
	}

	return rows
}

func alertRows(st *dashboard.State) []table.Row {
	rows := make([]table.Row, 0, len(st.Alerts))

	for _, a := range st.Alerts {
		ack := ""
		if a.Acknowledged {
			ack = "✓"
		}

		rows = append(rows, table.Row{
			strconv.FormatInt(a.ID, 10),
			string(a.Severity),
			a.Message,
			formatTime(a.Timestamp),
			ack,
		})
	}

	return rows
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}

	return t.Local().Format(timeLayout)
}

// formatBps renders a rate with a decimal SI unit.
func formatBps(bps int64) string {
	units := []string{"bps", "Kbps", "Mbps", "Gbps", "Tbps"}
	v := float64(bps)
	i := 0

	for v >= 1000 && i < len(units)-1 {
		v /= 1000
		i++
	}

	if i == 0 {
		return fmt.Sprintf("%d %s", bps, units[0])
	}

	return fmt.Sprintf("%.1f %s", v, units[i])
}

// rowID parses the ID column of a table row.
func rowID(row table.Row) (int64, bool) {
	if len(row) == 0 {
		return 0, false
	}

	id, err := strconv.ParseInt(row[0], 10, 64)
	if err != nil {
		return 0, false
	}

	return id, true
}

func deviceByID(st *dashboard.State, id int64) (models.Device, bool) {
	for _, d := range st.Devices {
		if d.ID == id {
			return d, true
		}
	}

	return models.Device{}, false
}

// interfaceLines renders the selected device's interfaces with their latest rates.
func interfaceLines(st *dashboard.State) []string {
	lines := make([]string, 0, len(st.DeviceInterfaces))

	for _, iface := range st.DeviceInterfaces {
		in, out := "-", "-"
		if stat := st.InterfaceStats[iface.ID]; stat != nil {
			in, out = formatBps(stat.InBps), formatBps(stat.OutBps)
		}

		mac := iface.MACAddress
		if mac == "" {
			mac = "-"
		}

		lines = append(lines, fmt.Sprintf("%-22s %-5s %-17s in %-11s out %s",
			iface.InterfaceName, iface.Status, mac, in, out))
	}

	return lines
}

func anomalyLines(st *dashboard.State, deviceID int64, limit int) []string {
	logs := st.Anomalies[deviceID]
	if len(logs) > limit {
		logs = logs[:limit]
	}

	lines := make([]string, 0, len(logs))
	for _, l := range logs {
		lines = append(lines, fmt.Sprintf("%s %s: %s -> %s", formatTime(l.Timestamp), l.InterfaceName, l.OldMAC, l.NewMAC))
	}

	return lines
}

func anomalyCount(st *dashboard.State) int {
	n := 0
	for _, logs := range st.Anomalies {
		n += len(logs)
	}

	return n
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
