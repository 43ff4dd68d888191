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

// Package dashboard holds the client-side view of a netwatch core: a
// versioned state store fed by the REST API and the broadcast channels.
package dashboard

import (
	"strings"
	"sync"

	"github.com/benbjohnson/clock"

	"github.com/carverauto/netwatch/pkg/models"
)

// StatusFilter narrows the device list. FilterAll disables filtering.
type StatusFilter string

const (
	FilterAll     StatusFilter = "all"
	FilterUp      StatusFilter = StatusFilter(models.DeviceStatusUp)
	FilterDown    StatusFilter = StatusFilter(models.DeviceStatusDown)
	FilterWarning StatusFilter = StatusFilter(models.DeviceStatusWarning)
	FilterUnknown StatusFilter = StatusFilter(models.DeviceStatusUnknown)
)

// StatusFilters returns the filters in display order.
func StatusFilters() []StatusFilter {
	return []StatusFilter{FilterAll, FilterUp, FilterDown, FilterWarning, FilterUnknown}
}

// State is an immutable copy of the store taken by Snapshot.
type State struct {
	Version          uint64
	Devices          []models.Device
	Alerts           []models.Alert
	UnreadAlerts     int
	SelectedDeviceID *int64
	DeviceInterfaces []models.Interface
	InterfaceStats   map[int64]*models.InterfaceStat
	Anomalies        map[int64][]models.MacChangeLog
	TopologyLinks    []models.TopologyLink
	Search           string
	StatusFilter     StatusFilter
}

// SelectedDevice returns the selected device, if any.
func (s *State) SelectedDevice() (models.Device, bool) {
	if s.SelectedDeviceID == nil {
		return models.Device{}, false
	}

	for _, d := range s.Devices {
		if d.ID == *s.SelectedDeviceID {
			return d, true
		}
	}

	return models.Device{}, false
}

// FilteredDevices applies the search text and status filter to Devices.
func (s *State) FilteredDevices() []models.Device {
	search := strings.ToLower(strings.TrimSpace(s.Search))
	out := make([]models.Device, 0, len(s.Devices))

	for _, d := range s.Devices {
		if s.StatusFilter != "" && s.StatusFilter != FilterAll && string(d.Status) != string(s.StatusFilter) {
			continue
		}

		if search != "" &&
			!strings.Contains(strings.ToLower(d.Hostname), search) &&
			!strings.Contains(d.IPAddress, search) {
			continue
		}

		out = append(out, d)
	}

	return out
}

// Store is the client state. All mutation goes through its methods; readers
// take a Snapshot. Every mutation bumps Version and signals Changes.
type Store struct {
	mu sync.RWMutex

	version    uint64
	devices    []models.Device
	alerts     []models.Alert
	unread     int
	selected   *int64
	interfaces []models.Interface
	stats      map[int64]*models.InterfaceStat
	anomalies  map[int64][]models.MacChangeLog
	lastMAC    map[int64]string
	links      []models.TopologyLink
	search     string
	filter     StatusFilter

	clock   clock.Clock
	changes chan struct{}
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithStoreClock sets the clock used to timestamp derived anomalies.
func WithStoreClock(c clock.Clock) StoreOption {
	return func(s *Store) {
		s.clock = c
	}
}

// NewStore returns an empty store.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		stats:     make(map[int64]*models.InterfaceStat),
		anomalies: make(map[int64][]models.MacChangeLog),
		lastMAC:   make(map[int64]string),
		filter:    FilterAll,
		clock:     clock.New(),
		changes:   make(chan struct{}, 1),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Changes signals after mutations. Signals coalesce: a reader that falls
// behind sees one pending signal, never a backlog.
func (s *Store) Changes() <-chan struct{} {
	return s.changes
}

// commit must be called with mu held.
func (s *Store) commit() {
	s.version++

	select {
	case s.changes <- struct{}{}:
	default:
	}
}

// Version returns the current state version.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.version
}

// UnreadAlerts returns the unread counter.
func (s *Store) UnreadAlerts() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.unread
}

// Snapshot copies the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := State{
		Version:          s.version,
		Devices:          append([]models.Device(nil), s.devices...),
		Alerts:           append([]models.Alert(nil), s.alerts...),
		UnreadAlerts:     s.unread,
		DeviceInterfaces: append([]models.Interface(nil), s.interfaces...),
		InterfaceStats:   make(map[int64]*models.InterfaceStat, len(s.stats)),
		Anomalies:        make(map[int64][]models.MacChangeLog, len(s.anomalies)),
		TopologyLinks:    append([]models.TopologyLink(nil), s.links...),
		Search:           s.search,
		StatusFilter:     s.filter,
	}

	if s.selected != nil {
		id := *s.selected
		st.SelectedDeviceID = &id
	}

	for id, stat := range s.stats {
		if stat == nil {
			st.InterfaceStats[id] = nil
			continue
		}

		c := *stat
		st.InterfaceStats[id] = &c
	}

	for id, logs := range s.anomalies {
		st.Anomalies[id] = append([]models.MacChangeLog(nil), logs...)
	}

	return st
}

// ReplaceDevices swaps the device list. A selection pointing at a device
// that is no longer listed is cleared.
func (s *Store) ReplaceDevices(devices []models.Device) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.devices = append([]models.Device(nil), devices...)

	if s.selected != nil && s.deviceIndex(*s.selected) < 0 {
		s.clearSelection()
	}

	s.commit()
}

// ApplyDeviceStatusUpdate changes the status of a known device. Updates for
// unknown ids are dropped and reported as false.
func (s *Store) ApplyDeviceStatusUpdate(id int64, status models.DeviceStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.deviceIndex(id)
	if i < 0 {
		return false
	}

	s.devices[i].Status = status
	s.commit()

	return true
}

// UpsertDevice replaces a device with the same id or appends it.
func (s *Store) UpsertDevice(device models.Device) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.deviceIndex(device.ID); i >= 0 {
		s.devices[i] = device
	} else {
		s.devices = append(s.devices, device)
	}

	s.commit()
}

// RemoveDevice deletes a device and clears the selection when it pointed at it.
func (s *Store) RemoveDevice(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.deviceIndex(id)
	if i < 0 {
		return
	}

	s.devices = append(s.devices[:i], s.devices[i+1:]...)

	if s.selected != nil && *s.selected == id {
		s.clearSelection()
	}

	s.commit()
}

func (s *Store) deviceIndex(id int64) int {
	for i := range s.devices {
		if s.devices[i].ID == id {
			return i
		}
	}

	return -1
}

// SelectDevice makes id the selected device. An unknown id clears the
// selection. Interfaces cached for a previous selection are dropped.
func (s *Store) SelectDevice(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.deviceIndex(id) < 0 {
		s.clearSelection()
		s.commit()

		return false
	}

	if s.selected == nil || *s.selected != id {
		s.interfaces = nil
		s.stats = make(map[int64]*models.InterfaceStat)
	}

	s.selected = &id
	s.commit()

	return true
}

// ClearSelection deselects the current device.
func (s *Store) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clearSelection()
	s.commit()
}

func (s *Store) clearSelection() {
	s.selected = nil
	s.interfaces = nil
	s.stats = make(map[int64]*models.InterfaceStat)
}

// ReplaceDeviceInterfaces swaps the interface list of the selected device.
// Interfaces of other devices are ignored, and with nothing selected the
// list is cleared.
func (s *Store) ReplaceDeviceInterfaces(interfaces []models.Interface) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.interfaces = s.interfaces[:0:0]

	if s.selected == nil {
		s.commit()

		return
	}

	for _, iface := range interfaces {
		if iface.DeviceID != *s.selected {
			continue
		}

		s.interfaces = append(s.interfaces, iface)
	}

	s.commit()
}

// ApplyStatsSnapshot consumes a stats broadcast. Interfaces of the selected
// device replace the cached list wholesale along with their latest stat. For
// every interface a MAC address that differs from the last one seen is
// recorded as an anomaly on its device.
func (s *Store) ApplyStatsSnapshot(snapshot []models.InterfaceSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now().UTC()

	for _, entry := range snapshot {
		iface := entry.Interface

		prev, seen := s.lastMAC[iface.ID]
		if iface.MACAddress != "" {
			s.lastMAC[iface.ID] = iface.MACAddress
		}

		if !seen || prev == "" || iface.MACAddress == "" || prev == iface.MACAddress {
			continue
		}

		id := iface.ID
		s.prependAnomaly(models.MacChangeLog{
			DeviceID:      iface.DeviceID,
			InterfaceID:   &id,
			InterfaceName: iface.InterfaceName,
			OldMAC:        prev,
			NewMAC:        iface.MACAddress,
			Timestamp:     now,
		})
	}

	if s.selected != nil {
		interfaces := make([]models.Interface, 0)
		stats := make(map[int64]*models.InterfaceStat)

		for _, entry := range snapshot {
			if entry.Interface.DeviceID != *s.selected {
				continue
			}

			interfaces = append(interfaces, entry.Interface)
			stats[entry.Interface.ID] = entry.Stats
		}

		s.interfaces = interfaces
		s.stats = stats
	}

	s.commit()
}

// ReplaceAlerts swaps the alert list and recomputes the unread counter from
// it. Acknowledged state is taken from the new list only.
func (s *Store) ReplaceAlerts(alerts []models.Alert) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.alerts = make([]models.Alert, 0, len(alerts))
	seen := make(map[int64]struct{}, len(alerts))

	for _, a := range alerts {
		if _, dup := seen[a.ID]; dup {
			continue
		}

		seen[a.ID] = struct{}{}
		s.alerts = append(s.alerts, a)
	}

	s.unread = countUnread(s.alerts)
	s.commit()
}

// AppendAlert puts an alert at the front of the list. An alert already listed
// is replaced and moved to the front; the unread counter follows its
// acknowledged state.
func (s *Store) AppendAlert(alert models.Alert) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.alerts {
		if s.alerts[i].ID != alert.ID {
			continue
		}

		if !s.alerts[i].Acknowledged {
			s.unread--
		}

		s.alerts = append(s.alerts[:i], s.alerts[i+1:]...)

		break
	}

	s.alerts = append([]models.Alert{alert}, s.alerts...)

	if !alert.Acknowledged {
		s.unread++
	}

	s.commit()
}

// AcknowledgeAlert flags an unacknowledged alert. Absent or already
// acknowledged ids are no-ops and the counter never goes below zero.
func (s *Store) AcknowledgeAlert(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.alerts {
		if s.alerts[i].ID != id {
			continue
		}

		if s.alerts[i].Acknowledged {
			return false
		}

		s.alerts[i].Acknowledged = true

		if s.unread > 0 {
			s.unread--
		}

		s.commit()

		return true
	}

	return false
}

// ClearAlerts empties the alert list.
func (s *Store) ClearAlerts() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.alerts = nil
	s.unread = 0
	s.commit()
}

func countUnread(alerts []models.Alert) int {
	n := 0

	for _, a := range alerts {
		if !a.Acknowledged {
			n++
		}
	}

	return n
}

// RecordAnomalyEvent prepends a change-of-identity event to its device log.
func (s *Store) RecordAnomalyEvent(event models.MacChangeLog) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if event.InterfaceID != nil && event.NewMAC != "" {
		s.lastMAC[*event.InterfaceID] = event.NewMAC
	}

	s.prependAnomaly(event)
	s.commit()
}

// ReplaceAnomalies swaps the log of one device, newest first.
func (s *Store) ReplaceAnomalies(deviceID int64, events []models.MacChangeLog) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.anomalies[deviceID] = append([]models.MacChangeLog(nil), events...)
	s.commit()
}

func (s *Store) prependAnomaly(event models.MacChangeLog) {
	s.anomalies[event.DeviceID] = append([]models.MacChangeLog{event}, s.anomalies[event.DeviceID]...)
}

// ReplaceTopologyLinks swaps the topology link list.
func (s *Store) ReplaceTopologyLinks(links []models.TopologyLink) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.links = append([]models.TopologyLink(nil), links...)
	s.commit()
}

// SetSearch sets the device search text.
func (s *Store) SetSearch(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.search = text
	s.commit()
}

// SetStatusFilter sets the device status filter. Unknown values reset it to FilterAll.
func (s *Store) SetStatusFilter(filter StatusFilter) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch filter {
	case FilterUp, FilterDown, FilterWarning, FilterUnknown:
		s.filter = filter
	default:
		s.filter = FilterAll
	}

	s.commit()
}
